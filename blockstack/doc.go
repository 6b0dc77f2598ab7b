// Package blockstack resolves the implicit nested block structure of flat,
// stack-machine-style instruction sequences.
//
// Control-flow instructions (block, loop, if, else, end) delimit nested
// scopes, but the instruction sequence itself is flat: an end carries no
// reference to the begin it closes, and a branch names its target only as a
// relative depth. This package makes those relationships explicit and
// queryable in O(1):
//
//   - which begin matches which else/end (the [BeginEndMap])
//   - which scopes are open at a given point in a forward traversal
//     (the [BlockStack])
//   - which absolute instruction a branch or return jumps to, and which
//     scopes it implicitly exits (the [BranchTarget] queries)
//
// # Usage
//
// Construction runs a single forward pass over the full sequence to build
// the begin-end index. The caller then traverses the sequence and reports
// every structural instruction, in order, via the scope-open/close methods:
//
//	stack := blockstack.New(instrs)
//	for i, instr := range instrs {
//	    switch instr.Op {
//	    case op.Block:
//	        stack.BeginBlock(blockstack.Pos(i))
//	    case op.Loop:
//	        stack.BeginLoop(blockstack.Pos(i))
//	    case op.If:
//	        stack.BeginIf(blockstack.Pos(i))
//	    case op.Else:
//	        stack.Else()
//	    case op.End:
//	        stack.End()
//	    case op.Br:
//	        target := stack.BrTarget(instr.Label)
//	        // rewrite or record the resolved jump
//	    }
//	}
//
// BrTarget and ReturnTarget may be called at any point mid-traversal and
// reflect only the scopes open at that point.
//
// # Concurrency
//
// The BeginEndMap is immutable once built and safe for concurrent reads.
// A BlockStack is a private, mutable structure owned by one traversal and
// must not be shared.
//
// # Failure model
//
// Unbalanced nesting, unresolvable labels, and out-of-step calls are
// input-contract violations, not recoverable runtime conditions: they mean
// the upstream decoder produced inconsistent instructions or the caller is
// driving the stack out of order. All of them panic with a descriptive
// [github.com/cloudcmds/wasmflow/errz.Violation]. Callers that want
// diagnostics instead of a crash can pre-validate a sequence with the
// root package's Check function.
package blockstack
