package blockstack

import (
	"github.com/cloudcmds/wasmflow/errz"
	"github.com/cloudcmds/wasmflow/op"
)

// BeginEndMap maps every begin-class position (block, loop, or if begin,
// plus every else) to its structurally matching terminator: the else
// position for an if with an else branch, the end position otherwise.
// It is built once per instruction sequence and immutable afterwards, so
// it is safe for concurrent reads by independent traversals.
type BeginEndMap map[Pos]Pos

// NewBeginEndMap scans the instruction sequence once and returns the
// begin-end index. The final instruction is the sequence's own closing end
// and is excluded from structural scanning. Panics with *errz.Violation if
// the nesting is unbalanced.
func NewBeginEndMap(instrs []op.Instr) BeginEndMap {
	if len(instrs) == 0 {
		panic(errz.Nestingf("empty instruction sequence, the final instruction must be the closing end"))
	}
	m := make(BeginEndMap)
	var pending []Pos
	for i, instr := range instrs[:len(instrs)-1] {
		pos := Pos(i)
		switch instr.Op {
		case op.Block, op.Loop, op.If:
			pending = append(pending, pos)
		case op.Else, op.End:
			if len(pending) == 0 {
				panic(errz.Nestingf("could not end block at %d, begin stack was empty", pos))
			}
			begin := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			m[begin] = pos
			// An else closes the if-body and opens its own body, which a
			// later end closes.
			if instr.Op == op.Else {
				pending = append(pending, pos)
			}
		}
	}
	if len(pending) != 0 {
		panic(errz.Nestingf("%d block(s) were not closed, first unclosed begin at %d", len(pending), pending[0]))
	}
	return m
}
