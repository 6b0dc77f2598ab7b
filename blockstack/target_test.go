package blockstack

import (
	"testing"

	"github.com/cloudcmds/wasmflow/op"
	"github.com/stretchr/testify/require"
)

func TestBrTargetLoop(t *testing.T) {
	// Branching to a loop re-enters at its begin
	s := New(seq(op.Loop, op.Nop, op.Br, op.End, op.End))
	s.BeginLoop(0)

	target := s.BrTarget(0)
	require.Equal(t, Pos(0), target.AbsoluteInstr)
	require.Equal(t, []Element{Loop{Begin: 0, End: 3}}, target.EndedBlocks)
}

func TestBrTargetBlock(t *testing.T) {
	// Branching out of a block exits forward past its end
	s := New(seq(op.Block, op.Br, op.End, op.End))
	s.BeginBlock(0)

	target := s.BrTarget(0)
	require.Equal(t, Pos(2), target.AbsoluteInstr)
	require.Equal(t, []Element{Block{Begin: 0, End: 2}}, target.EndedBlocks)
}

func TestBrTargetOuterScope(t *testing.T) {
	s := New(seq(op.Block, op.Loop, op.Br, op.End, op.End, op.End))
	s.BeginBlock(0)
	s.BeginLoop(1)

	target := s.BrTarget(1)
	require.Equal(t, Pos(4), target.AbsoluteInstr)

	// label+1 ended scopes, innermost first, last one the target
	require.Equal(t, []Element{
		Loop{Begin: 1, End: 3},
		Block{Begin: 0, End: 4},
	}, target.EndedBlocks)
}

func TestBrTargetFunction(t *testing.T) {
	s := New(seq(op.Br, op.End))
	target := s.BrTarget(0)
	require.Equal(t, Pos(1), target.AbsoluteInstr)
	require.Equal(t, []Element{Function{End: 1}}, target.EndedBlocks)
}

func TestBrTargetIfAndElse(t *testing.T) {
	s := New(seq(op.If, op.Br, op.Else, op.Br, op.End, op.End))
	s.BeginIf(0)

	// From inside the if-body, label 0 exits forward past the shared end
	require.Equal(t, Pos(4), s.BrTarget(0).AbsoluteInstr)

	s.Else()
	// Same from inside the else-body
	require.Equal(t, Pos(4), s.BrTarget(0).AbsoluteInstr)
}

func TestBrTargetLabelTooDeep(t *testing.T) {
	s := New(seq(op.Block, op.Br, op.End, op.End))
	s.BeginBlock(0)
	require.PanicsWithError(t,
		"invalid label: cannot find target block for label 3, only 2 scope(s) open",
		func() { s.BrTarget(3) })
}

func TestReturnTarget(t *testing.T) {
	s := New(seq(op.Block, op.Loop, op.Return, op.End, op.End, op.End))
	s.BeginBlock(0)
	s.BeginLoop(1)

	target := s.ReturnTarget()
	require.Equal(t, Pos(5), target.AbsoluteInstr)

	// A return implicitly exits every open scope, innermost first
	require.Equal(t, []Element{
		Loop{Begin: 1, End: 3},
		Block{Begin: 0, End: 4},
		Function{End: 5},
	}, target.EndedBlocks)
}

func TestReturnTargetAtFunctionDepth(t *testing.T) {
	s := New(seq(op.Return, op.End))
	target := s.ReturnTarget()
	require.Equal(t, Pos(1), target.AbsoluteInstr)
	require.Equal(t, []Element{Function{End: 1}}, target.EndedBlocks)
}

func TestBrTargetDoesNotMutateStack(t *testing.T) {
	s := New(seq(op.Block, op.Loop, op.Br, op.End, op.End, op.End))
	s.BeginBlock(0)
	s.BeginLoop(1)

	before := s.Depth()
	s.BrTarget(1)
	s.ReturnTarget()
	require.Equal(t, before, s.Depth())
	require.Equal(t, Loop{Begin: 1, End: 3}, s.Top())
}
