// Package dis disassembles instruction sequences, annotating each
// structural instruction with its matching begin/else/end and each branch
// with its resolved absolute target. It is a debugging surface layered on
// top of the blockstack package.
package dis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cloudcmds/wasmflow"
	"github.com/cloudcmds/wasmflow/blockstack"
	"github.com/cloudcmds/wasmflow/errz"
	"github.com/cloudcmds/wasmflow/op"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Instruction is a single disassembled instruction.
type Instruction struct {
	Offset  int
	Opcode  string
	Operand string
	Depth   int
	Info    string
}

// Disassemble produces one row per instruction. The sequence is validated
// first, so malformed nesting is reported as an error rather than a panic.
// Branch and return rows are annotated with the absolute target resolved at
// that point in the traversal.
func Disassemble(instrs []op.Instr) ([]Instruction, error) {
	if err := wasmflow.Check(instrs); err != nil {
		return nil, err
	}
	stack := blockstack.New(instrs)
	rows := make([]Instruction, 0, len(instrs))
	for i, instr := range instrs {
		pos := blockstack.Pos(i)
		row := Instruction{Offset: i, Opcode: instr.Op.String()}
		if op.GetInfo(instr.Op).OperandCount > 0 {
			row.Operand = strconv.Itoa(int(instr.Label))
		}

		// Depth of the instruction itself, not counting the implicit
		// function scope. Else and end rows align with their begin.
		depth := stack.Depth() - 1
		switch instr.Op {
		case op.Else, op.End:
			depth--
			if depth < 0 {
				depth = 0
			}
		}
		row.Depth = depth

		switch instr.Op {
		case op.Block:
			stack.BeginBlock(pos)
			row.Info = fmt.Sprintf("end %d", stack.Top().EndPos())
		case op.Loop:
			stack.BeginLoop(pos)
			row.Info = fmt.Sprintf("end %d", stack.Top().EndPos())
		case op.If:
			stack.BeginIf(pos)
			ifScope := stack.Top().(blockstack.If)
			if ifScope.BeginElse != nil {
				row.Info = fmt.Sprintf("else %d, end %d", *ifScope.BeginElse, ifScope.End)
			} else {
				row.Info = fmt.Sprintf("end %d", ifScope.End)
			}
		case op.Else:
			ifScope := stack.Else().(blockstack.If)
			row.Info = fmt.Sprintf("if %d, end %d", ifScope.BeginIf, ifScope.End)
		case op.End:
			row.Info = describeClosed(stack.End())
		case op.Br, op.BrIf:
			if int(instr.Label)+1 > stack.Depth() {
				return nil, errz.Labelf("cannot find target block for label %d at %d", instr.Label, pos)
			}
			row.Info = fmt.Sprintf("target %d", stack.BrTarget(instr.Label).AbsoluteInstr)
		case op.Return:
			row.Info = fmt.Sprintf("target %d", stack.ReturnTarget().AbsoluteInstr)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func describeClosed(e blockstack.Element) string {
	switch e := e.(type) {
	case blockstack.Function:
		return "function"
	case blockstack.Block:
		return fmt.Sprintf("block %d", e.Begin)
	case blockstack.Loop:
		return fmt.Sprintf("loop %d", e.Begin)
	case blockstack.If:
		return fmt.Sprintf("if %d", e.BeginIf)
	case blockstack.Else:
		return fmt.Sprintf("else %d", e.BeginElse)
	}
	return ""
}

var (
	structuralColor = color.New(color.FgCyan)
	branchColor     = color.New(color.FgYellow)
)

func colorize(opcode string) string {
	switch opcode {
	case "BLOCK", "LOOP", "IF", "ELSE", "END":
		return structuralColor.Sprint(opcode)
	case "BR", "BR_IF", "RETURN":
		return branchColor.Sprint(opcode)
	}
	return opcode
}

// Print renders the disassembled instructions as an ASCII table.
func Print(instrs []Instruction, w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"OFFSET", "OPCODE", "OPERAND", "DEPTH", "INFO"})
	for _, instr := range instrs {
		tbl.AppendRow(table.Row{
			instr.Offset,
			colorize(instr.Opcode),
			instr.Operand,
			instr.Depth,
			instr.Info,
		})
	}
	tbl.Render()
}
