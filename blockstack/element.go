package blockstack

import "encoding/json"

// Element is one open scope on the block stack. It is a closed sum: the
// only implementations are Function, Block, Loop, If, and Else. Callers
// that need to distinguish scope kinds (for example, loops branch backward
// while everything else branches forward) switch exhaustively on the
// concrete type.
//
// Elements marshal to JSON with a lowercase "type" tag, e.g.
// {"type":"loop","begin":3,"end":9}.
type Element interface {
	// EndPos returns the position of the end instruction that closes the
	// scope.
	EndPos() Pos
	element()
}

// Function is the implicit whole-function scope at the bottom of every
// block stack. It has no begin instruction; its end is the final
// instruction of the sequence.
type Function struct {
	End Pos
}

// Block is an open block scope.
type Block struct {
	Begin Pos
	End   Pos
}

// Loop is an open loop scope. Branches targeting a loop re-enter at its
// begin.
type Loop struct {
	Begin Pos
	End   Pos
}

// If is an open if scope. BeginElse is nil when the if-body runs straight
// to the matching end with no else branch.
type If struct {
	BeginIf   Pos
	BeginElse *Pos
	End       Pos
}

// Else is an open else scope. It carries the begin of the if it belongs to
// in addition to its own begin; both share the same end.
type Else struct {
	BeginElse Pos
	BeginIf   Pos
	End       Pos
}

func (Function) element() {}
func (Block) element()    {}
func (Loop) element()     {}
func (If) element()       {}
func (Else) element()     {}

// EndPos returns the position of the function's closing end.
func (f Function) EndPos() Pos { return f.End }

// EndPos returns the position of the block's closing end.
func (b Block) EndPos() Pos { return b.End }

// EndPos returns the position of the loop's closing end.
func (l Loop) EndPos() Pos { return l.End }

// EndPos returns the position of the end shared by the if-body and any
// else-body.
func (i If) EndPos() Pos { return i.End }

// EndPos returns the position of the end shared with the sibling if.
func (e Else) EndPos() Pos { return e.End }

// MarshalJSON implements json.Marshaler.
func (f Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		End  Pos    `json:"end"`
	}{"function", f.End})
}

// MarshalJSON implements json.Marshaler.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Begin Pos    `json:"begin"`
		End   Pos    `json:"end"`
	}{"block", b.Begin, b.End})
}

// MarshalJSON implements json.Marshaler.
func (l Loop) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Begin Pos    `json:"begin"`
		End   Pos    `json:"end"`
	}{"loop", l.Begin, l.End})
}

// MarshalJSON implements json.Marshaler.
func (i If) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Begin     Pos    `json:"begin"`
		BeginElse *Pos   `json:"begin_else,omitempty"`
		End       Pos    `json:"end"`
	}{"if", i.BeginIf, i.BeginElse, i.End})
}

// MarshalJSON implements json.Marshaler.
func (e Else) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Begin   Pos    `json:"begin"`
		BeginIf Pos    `json:"begin_if"`
		End     Pos    `json:"end"`
	}{"else", e.BeginElse, e.BeginIf, e.End})
}
