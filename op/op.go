// Package op defines the instruction kinds that appear in the flat,
// stack-machine-style code sequences consumed by the control-flow analyses.
package op

import "fmt"

// Code is an integer opcode that identifies an instruction kind.
type Code uint16

const (
	Invalid Code = 0

	// Non-structural
	Nop         Code = 1
	Unreachable Code = 2
	Call        Code = 3
	Return      Code = 4

	// Structural (open or close a nested scope)
	Block Code = 10
	Loop  Code = 11
	If    Code = 12
	Else  Code = 13
	End   Code = 14

	// Branches
	Br   Code = 20
	BrIf Code = 21
)

// Label is a relative branch depth: 0 targets the innermost enclosing
// scope, 1 the next one out, and so on (de Bruijn-style). It is a distinct
// type from an instruction position so the two cannot be mixed up.
type Label uint32

// Instr is a single instruction in a code sequence. Label is only
// meaningful for opcodes whose operand is a relative branch depth
// (Br and BrIf).
type Instr struct {
	Op    Code
	Label Label
}

// IsStructural returns true if the opcode opens or closes a nested scope.
func (c Code) IsStructural() bool {
	switch c {
	case Block, Loop, If, Else, End:
		return true
	}
	return false
}

// String returns the opcode's name, e.g. "BR_IF".
func (c Code) String() string {
	if name := GetInfo(c).Name; name != "" {
		return name
	}
	return fmt.Sprintf("OP_%d", uint16(c))
}

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	// Operand counts reflect only the relative-depth operands carried by
	// Instr. Other operand kinds (call indices, immediates) belong to the
	// upstream decoder and are not modeled here.
	ops := []opInfo{
		{Nop, "NOP", 0},
		{Unreachable, "UNREACHABLE", 0},
		{Call, "CALL", 0},
		{Return, "RETURN", 0},
		{Block, "BLOCK", 0},
		{Loop, "LOOP", 0},
		{If, "IF", 0},
		{Else, "ELSE", 0},
		{End, "END", 0},
		{Br, "BR", 1},
		{BrIf, "BR_IF", 1},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}
