package dis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cloudcmds/wasmflow/op"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	instrs := []op.Instr{
		{Op: op.Loop},           // 0
		{Op: op.If},             // 1
		{Op: op.Br, Label: 1},   // 2
		{Op: op.Else},           // 3
		{Op: op.BrIf, Label: 0}, // 4
		{Op: op.End},            // 5
		{Op: op.End},            // 6
		{Op: op.Return},         // 7
		{Op: op.End},            // 8
	}
	rows, err := Disassemble(instrs)
	require.NoError(t, err)
	require.Equal(t, []Instruction{
		{Offset: 0, Opcode: "LOOP", Depth: 0, Info: "end 6"},
		{Offset: 1, Opcode: "IF", Depth: 1, Info: "else 3, end 5"},
		{Offset: 2, Opcode: "BR", Operand: "1", Depth: 2, Info: "target 0"},
		{Offset: 3, Opcode: "ELSE", Depth: 1, Info: "if 1, end 5"},
		{Offset: 4, Opcode: "BR_IF", Operand: "0", Depth: 2, Info: "target 5"},
		{Offset: 5, Opcode: "END", Depth: 1, Info: "else 3"},
		{Offset: 6, Opcode: "END", Depth: 0, Info: "loop 0"},
		{Offset: 7, Opcode: "RETURN", Depth: 0, Info: "target 8"},
		{Offset: 8, Opcode: "END", Depth: 0, Info: "function"},
	}, rows)
}

func TestDisassembleUnbalanced(t *testing.T) {
	_, err := Disassemble([]op.Instr{
		{Op: op.End},
		{Op: op.End},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmatched END at 0")
}

func TestDisassembleBadLabel(t *testing.T) {
	_, err := Disassemble([]op.Instr{
		{Op: op.Block},
		{Op: op.Br, Label: 5},
		{Op: op.End},
		{Op: op.End},
	})
	require.EqualError(t, err, "invalid label: cannot find target block for label 5 at 1")
}

func TestPrint(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	rows, err := Disassemble([]op.Instr{
		{Op: op.Block},
		{Op: op.Nop},
		{Op: op.End},
		{Op: op.End},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Print(rows, &buf)

	out := buf.String()
	for _, want := range []string{"OFFSET", "OPCODE", "OPERAND", "DEPTH", "INFO", "BLOCK", "NOP", "END", "end 2", "block 0", "function"} {
		require.Contains(t, out, want)
	}
	// top border, header, separator, one line per row, bottom border
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(rows)+4)
}
