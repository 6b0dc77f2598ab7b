package errz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ErrNesting, "invalid block nesting"},
		{ErrLabel, "invalid label"},
		{ErrContract, "contract violation"},
		{Kind(42), "violation"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}

func TestViolationError(t *testing.T) {
	v := Nestingf("could not end block at %d, begin stack was empty", 3)
	require.Equal(t, ErrNesting, v.Kind)
	require.EqualError(t, v, "invalid block nesting: could not end block at 3, begin stack was empty")

	v = Labelf("cannot find target block for label %d", 9)
	require.Equal(t, ErrLabel, v.Kind)
	require.EqualError(t, v, "invalid label: cannot find target block for label 9")

	v = Contractf("expected if on block stack, but stack was empty")
	require.Equal(t, ErrContract, v.Kind)
	require.EqualError(t, v, "contract violation: expected if on block stack, but stack was empty")
}
