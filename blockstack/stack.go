package blockstack

import (
	"github.com/cloudcmds/wasmflow/errz"
	"github.com/cloudcmds/wasmflow/op"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// BlockStack tracks the scopes currently open at some point in a forward
// traversal of an instruction sequence. The bottom of the stack is always
// the implicit Function scope; the top is the innermost open scope.
//
// A BlockStack is owned by exactly one traversal. The caller must invoke
// the scope-open/close methods in lockstep with the structural instructions
// it encounters.
type BlockStack struct {
	id       string
	elements []Element
	beginEnd BeginEndMap
	log      zerolog.Logger
}

// Option configures a BlockStack.
type Option func(*BlockStack)

// WithLogger enables debug tracing of scope open/close events and branch
// resolutions. The default logger discards all events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *BlockStack) {
		s.log = logger
	}
}

// New builds the begin-end index for instrs with a single forward pass and
// returns a BlockStack holding only the implicit function scope, whose end
// is the sequence's final instruction. Panics with *errz.Violation if the
// nesting is unbalanced.
func New(instrs []op.Instr, opts ...Option) *BlockStack {
	s := &BlockStack{
		id:       uuid.Must(uuid.NewV4()).String(),
		beginEnd: NewBeginEndMap(instrs),
		elements: []Element{Function{End: Pos(len(instrs) - 1)}},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("block_stack_id", s.id).Logger()
	return s
}

// ID returns the unique identifier for this block stack, used to correlate
// trace events.
func (s *BlockStack) ID() string {
	return s.id
}

// Depth returns the number of currently open scopes, including the
// implicit function scope.
func (s *BlockStack) Depth() int {
	return len(s.elements)
}

// Top returns the innermost currently open scope.
func (s *BlockStack) Top() Element {
	if len(s.elements) == 0 {
		panic(errz.Contractf("block stack is empty"))
	}
	return s.elements[len(s.elements)-1]
}

// BeginBlock records entry into the block whose begin instruction is at
// pos.
func (s *BlockStack) BeginBlock(pos Pos) {
	end, ok := s.beginEnd[pos]
	if !ok {
		panic(errz.Nestingf("could not find end for block begin at %d", pos))
	}
	s.push(Block{Begin: pos, End: end})
}

// BeginLoop records entry into the loop whose begin instruction is at pos.
func (s *BlockStack) BeginLoop(pos Pos) {
	end, ok := s.beginEnd[pos]
	if !ok {
		panic(errz.Nestingf("could not find end for loop begin at %d", pos))
	}
	s.push(Loop{Begin: pos, End: end})
}

// BeginIf records entry into the if whose begin instruction is at pos.
// The index maps an if begin to either its else or, when there is no else
// branch, directly to its end. Probing the index a second time with the
// looked-up position tells the two apart: an else is itself begin-class
// and has an entry, an end does not.
func (s *BlockStack) BeginIf(pos Pos) {
	endOrElse, ok := s.beginEnd[pos]
	if !ok {
		panic(errz.Nestingf("could not find end/else for if begin at %d", pos))
	}
	if end, ok := s.beginEnd[endOrElse]; ok {
		beginElse := endOrElse
		s.push(If{BeginIf: pos, BeginElse: &beginElse, End: end})
	} else {
		s.push(If{BeginIf: pos, End: endOrElse})
	}
}

// Else records an else instruction: it closes the if-body on top of the
// stack and opens the else-body, which shares the same end. The popped If
// is returned since callers often need the original if begin.
func (s *BlockStack) Else() Element {
	if len(s.elements) == 0 {
		panic(errz.Contractf("expected if on block stack, but stack was empty"))
	}
	top := s.pop()
	ifScope, ok := top.(If)
	if !ok || ifScope.BeginElse == nil {
		panic(errz.Contractf("expected if with else on block stack, but got %#v", top))
	}
	s.push(Else{BeginElse: *ifScope.BeginElse, BeginIf: ifScope.BeginIf, End: ifScope.End})
	return ifScope
}

// End records an end instruction, popping and returning the scope it
// closes.
func (s *BlockStack) End() Element {
	if len(s.elements) == 0 {
		panic(errz.Contractf("could not end block, stack was empty"))
	}
	return s.pop()
}

func (s *BlockStack) push(e Element) {
	s.elements = append(s.elements, e)
	s.log.Debug().Int("depth", len(s.elements)).Interface("scope", e).Msg("scope opened")
}

func (s *BlockStack) pop() Element {
	e := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	s.log.Debug().Int("depth", len(s.elements)).Interface("scope", e).Msg("scope closed")
	return e
}
