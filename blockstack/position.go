package blockstack

// Pos is an opaque index identifying one instruction in a flat instruction
// sequence. It is never reused or mutated. Keeping it a distinct type from
// op.Label prevents accidentally mixing "position in sequence" with "depth
// from current scope".
type Pos int
