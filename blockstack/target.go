package blockstack

import (
	"github.com/cloudcmds/wasmflow/errz"
	"github.com/cloudcmds/wasmflow/op"
)

// BranchTarget is the result of resolving a branch or return against the
// scopes open at the current traversal point.
type BranchTarget struct {
	// AbsoluteInstr is the resolved absolute instruction position. It is
	// always a structural begin or end instruction, not the next
	// instruction to execute: callers apply their own convention
	// (typically +1) to step past it.
	AbsoluteInstr Pos

	// EndedBlocks lists every scope implicitly exited by the jump, in the
	// order they are left (innermost first). The last entry is the target
	// scope itself.
	EndedBlocks []Element
}

// BrTarget resolves a relative branch label against the scopes currently
// open. Label 0 targets the innermost scope. A branch to a loop re-enters
// at the loop's begin (a backward jump enabling iteration); a branch to any
// other scope exits forward past its end. Panics with *errz.Violation if
// the label is deeper than the number of open scopes.
func (s *BlockStack) BrTarget(label op.Label) BranchTarget {
	n := int(label) + 1
	if n > len(s.elements) {
		panic(errz.Labelf("cannot find target block for label %d, only %d scope(s) open", label, len(s.elements)))
	}
	ended := make([]Element, 0, n)
	for i := len(s.elements) - 1; i >= len(s.elements)-n; i-- {
		ended = append(ended, s.elements[i])
	}

	var abs Pos
	switch target := ended[n-1].(type) {
	case Loop:
		abs = target.Begin
	case Function:
		abs = target.End
	case Block:
		abs = target.End
	case If:
		abs = target.End
	case Else:
		abs = target.End
	}

	s.log.Debug().
		Uint32("label", uint32(label)).
		Int("absolute_instr", int(abs)).
		Int("ended_blocks", n).
		Msg("branch resolved")
	return BranchTarget{AbsoluteInstr: abs, EndedBlocks: ended}
}

// ReturnTarget resolves a return at the current traversal point: the
// target is the function's end, and every currently open scope is
// implicitly exited, innermost first.
func (s *BlockStack) ReturnTarget() BranchTarget {
	if len(s.elements) == 0 {
		panic(errz.Contractf("block stack is empty"))
	}
	fn, ok := s.elements[0].(Function)
	if !ok {
		panic(errz.Contractf("missing function scope at bottom of block stack, got %#v", s.elements[0]))
	}
	ended := make([]Element, 0, len(s.elements))
	for i := len(s.elements) - 1; i >= 0; i-- {
		ended = append(ended, s.elements[i])
	}

	s.log.Debug().
		Int("absolute_instr", int(fn.End)).
		Int("ended_blocks", len(ended)).
		Msg("return resolved")
	return BranchTarget{AbsoluteInstr: fn.End, EndedBlocks: ended}
}
