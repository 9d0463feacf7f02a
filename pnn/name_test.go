package pnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		base     string
		state    notation.State
		side     notation.Side
		terminal bool
	}{
		{"KING", "KING", notation.Normal, notation.First, false},
		{"+queen", "queen", notation.Enhanced, notation.Second, false},
		{"-ROOK", "ROOK", notation.Diminished, notation.First, false},
		{"KING^", "KING", notation.Normal, notation.First, true},
		{"+king^", "king", notation.Enhanced, notation.Second, true},
		{"p", "p", notation.Normal, notation.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.True(t, Valid(tt.in))
			n, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.in, n.String())
			assert.Equal(t, tt.base, n.BaseName())
			assert.Equal(t, tt.state, n.State())
			assert.Equal(t, tt.side, n.Side())
			assert.Equal(t, tt.terminal, n.Terminal())
			assert.Equal(t, tt.side == notation.First, n.FirstPlayer())
			assert.Equal(t, tt.side == notation.Second, n.SecondPlayer())
			assert.Equal(t, tt.state == notation.Enhanced, n.Enhanced())
			assert.Equal(t, tt.state == notation.Diminished, n.Diminished())
			assert.Equal(t, tt.state == notation.Normal, n.Normal())
		})
	}
}

func TestRejects(t *testing.T) {
	for _, in := range []string{"", "King", "kING", "KING1", "K1NG", "++KING", "+-king", "KING^^", "^KING", " KING", "KING ", "KING'", "KING'^", "+", "^"} {
		t.Run(in, func(t *testing.T) {
			assert.False(t, Valid(in))
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, notation.IsFormatError(err))
			assert.Contains(t, err.Error(), "pnn")
		})
	}
}

func TestValidValue(t *testing.T) {
	assert.True(t, ValidValue("KING"))
	assert.False(t, ValidValue(nil))
	assert.False(t, ValidValue(3.5))
}

func TestEquality(t *testing.T) {
	king := MustParse("KING")
	assert.True(t, king.Equal(MustParse("KING")))
	for _, other := range []string{"king", "+KING", "KING^"} {
		assert.False(t, king.Equal(MustParse(other)), other)
		assert.NotEqual(t, king, MustParse(other), other)
	}

	set := map[Name]bool{king: true}
	assert.True(t, set[MustParse("KING")])
	assert.False(t, set[MustParse("king")])
}

func TestSameBaseName(t *testing.T) {
	king := MustParse("KING")
	assert.True(t, king.SameBaseName(MustParse("king")))
	assert.True(t, king.SameBaseName(MustParse("+king^")))
	assert.False(t, king.SameBaseName(MustParse("QUEEN")))
}

func TestTransformations(t *testing.T) {
	n := MustParse("+KING^")

	got, err := n.WithState(notation.Diminished)
	require.NoError(t, err)
	assert.Equal(t, "-KING^", got.String())

	got, err = n.WithState(notation.Normal)
	require.NoError(t, err)
	assert.Equal(t, "KING^", got.String())

	_, err = n.WithState(notation.State(5))
	assert.True(t, notation.IsArgumentError(err))

	assert.Equal(t, "+king^", n.Flip().String())
	assert.Equal(t, n, n.Flip().Flip())
	assert.Equal(t, "+KING", n.WithTerminal(false).String())
	assert.Equal(t, n, n.WithTerminal(false).WithTerminal(true))
	assert.Equal(t, "+KING^", n.String())
}

func TestZeroNameSideAgrees(t *testing.T) {
	var n Name
	assert.False(t, Valid(n.String()))
	assert.Equal(t, notation.First, n.Side())
	assert.True(t, n.FirstPlayer())
	assert.False(t, n.SecondPlayer())
}
