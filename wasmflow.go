// Package wasmflow resolves the implicit nested control-flow structure of
// flat, stack-machine-style instruction sequences into explicit, queryable
// relationships: which begin matches which else/end, and which absolute
// instruction a branch or return jumps to.
//
// The core lives in [github.com/cloudcmds/wasmflow/blockstack]; this
// package adds conveniences for callers that do not drive a full traversal
// themselves. Decoding bytecode into instructions and rewriting code using
// the resolved targets are both out of scope and belong to the surrounding
// toolchain.
package wasmflow

import (
	"github.com/cloudcmds/wasmflow/blockstack"
	"github.com/cloudcmds/wasmflow/errz"
	"github.com/cloudcmds/wasmflow/op"
	"github.com/hashicorp/go-multierror"
)

// Check validates that the structural instructions in the sequence are
// balanced, without panicking. Unlike blockstack.New it keeps scanning
// after a violation and reports every problem found, which makes it useful
// as a pre-validation step for upstream decoders that want diagnostics
// rather than a crash. The final instruction must be the sequence's own
// closing end and is excluded from the scan.
func Check(instrs []op.Instr) error {
	if len(instrs) == 0 {
		return errz.Nestingf("empty instruction sequence, the final instruction must be the closing end")
	}
	var result *multierror.Error
	var pending []blockstack.Pos
	for i, instr := range instrs[:len(instrs)-1] {
		pos := blockstack.Pos(i)
		switch instr.Op {
		case op.Block, op.Loop, op.If:
			pending = append(pending, pos)
		case op.Else, op.End:
			if len(pending) == 0 {
				result = multierror.Append(result, errz.Nestingf("unmatched %s at %d", instr.Op, pos))
			} else {
				pending = pending[:len(pending)-1]
			}
			if instr.Op == op.Else {
				pending = append(pending, pos)
			}
		}
	}
	for _, pos := range pending {
		result = multierror.Append(result, errz.Nestingf("unclosed block beginning at %d", pos))
	}
	return result.ErrorOrNil()
}

// StackAt replays a forward traversal of the sequence and returns the
// block stack state just before the instruction at pos executes. It is a
// convenience for passes that need scope context at a single point; passes
// that walk the whole sequence should drive a BlockStack directly.
func StackAt(instrs []op.Instr, pos blockstack.Pos, opts ...blockstack.Option) *blockstack.BlockStack {
	stack := blockstack.New(instrs, opts...)
	for i := 0; i < int(pos) && i < len(instrs); i++ {
		switch instrs[i].Op {
		case op.Block:
			stack.BeginBlock(blockstack.Pos(i))
		case op.Loop:
			stack.BeginLoop(blockstack.Pos(i))
		case op.If:
			stack.BeginIf(blockstack.Pos(i))
		case op.Else:
			stack.Else()
		case op.End:
			stack.End()
		}
	}
	return stack
}
