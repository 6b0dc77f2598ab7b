// Package errz defines the violation errors raised by the control-flow
// analyses.
package errz

import "fmt"

// Kind represents the category of a violation.
type Kind int

const (
	// ErrNesting indicates unbalanced begin/else/end structure in the
	// instruction sequence.
	ErrNesting Kind = iota
	// ErrLabel indicates a branch label deeper than the number of
	// currently open scopes.
	ErrLabel
	// ErrContract indicates the caller drove the block stack out of step
	// with the instruction order.
	ErrContract
)

// String returns the string representation of the violation kind.
func (k Kind) String() string {
	switch k {
	case ErrNesting:
		return "invalid block nesting"
	case ErrLabel:
		return "invalid label"
	case ErrContract:
		return "contract violation"
	default:
		return "violation"
	}
}

// Violation is a fatal input-contract violation. The blockstack package
// uses it as a panic value: none of these conditions are recoverable, and
// silently propagating a wrong resolution would corrupt any downstream
// rewrite built on it.
type Violation struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}

// Nestingf creates an ErrNesting violation with a formatted message.
func Nestingf(format string, args ...any) *Violation {
	return &Violation{Kind: ErrNesting, Message: fmt.Sprintf(format, args...)}
}

// Labelf creates an ErrLabel violation with a formatted message.
func Labelf(format string, args ...any) *Violation {
	return &Violation{Kind: ErrLabel, Message: fmt.Sprintf(format, args...)}
}

// Contractf creates an ErrContract violation with a formatted message.
func Contractf(format string, args ...any) *Violation {
	return &Violation{Kind: ErrContract, Message: fmt.Sprintf(format, args...)}
}
