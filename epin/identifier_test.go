package epin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notation"
	"github.com/notation/pin"
)

func TestParse(t *testing.T) {
	id, err := Parse("+R'")
	require.NoError(t, err)
	assert.Equal(t, pin.R, id.Type())
	assert.Equal(t, notation.First, id.Side())
	assert.Equal(t, notation.Enhanced, id.State())
	assert.False(t, id.Native())
	assert.True(t, id.Derived())
	assert.Equal(t, "R", id.Letter())
	assert.Equal(t, "+", id.Prefix())
	assert.Equal(t, "'", id.Suffix())
	assert.Equal(t, "+R'", id.String())
	assert.Equal(t, pin.MustParse("+R"), id.PIN())
}

func TestNew(t *testing.T) {
	id, err := New(pin.P, notation.Second, notation.Diminished, true)
	require.NoError(t, err)
	assert.Equal(t, "-p", id.String())

	_, err = New(pin.Type('?'), notation.Second, notation.State(9), true)
	require.Error(t, err)
	assert.True(t, notation.IsArgumentError(err))
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "state")
}

func TestRejects(t *testing.T) {
	for _, in := range []string{"", "'", "''", "K''", "++K", "+-K", "KK", "K'K", "k^", "K^'", "K'^", " K", "K ", "+'", "'K"} {
		t.Run(in, func(t *testing.T) {
			assert.False(t, Valid(in))
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, notation.IsFormatError(err))
		})
	}
}

func TestEnumerateRoundTrip(t *testing.T) {
	ids := Enumerate()
	require.Len(t, ids, 26*2*3*2)

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		s := id.String()
		require.False(t, seen[s], s)
		seen[s] = true

		require.True(t, Valid(s), s)
		got, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, id, got)
		assert.Equal(t, s, got.String())
	}
	assert.Equal(t, "A", ids[0].String())
	assert.Equal(t, "A'", ids[1].String())
}

func TestCaseFollowsSide(t *testing.T) {
	for _, id := range Enumerate() {
		letter := id.Letter()[0]
		if id.FirstPlayer() {
			assert.True(t, letter >= 'A' && letter <= 'Z', id.String())
		} else {
			assert.True(t, letter >= 'a' && letter <= 'z', id.String())
		}
	}
}

func TestTransformations(t *testing.T) {
	k := MustParse("k'")

	assert.Equal(t, "+k'", k.Enhance().String())
	assert.Equal(t, k.Enhance(), k.Enhance().Enhance())
	assert.Equal(t, "-k'", k.Diminish().String())
	assert.Equal(t, k, k.Diminish().Undiminish())
	assert.Equal(t, k, k.Enhance().Unenhance())
	assert.Equal(t, k, k.Enhance().Normalize())
	assert.Equal(t, "K'", k.Flip().String())
	assert.Equal(t, k, k.Flip().Flip())
	assert.Equal(t, "k", k.Underive().String())
	assert.Equal(t, k, k.Derive())
	assert.Equal(t, k, k.Underive().Derive())
	assert.Equal(t, "k", k.WithDerivation(true).String())
	assert.Equal(t, "k'", k.String())
}

func TestWith(t *testing.T) {
	id := MustParse("+R'")

	got, err := id.WithType(pin.Q)
	require.NoError(t, err)
	assert.Equal(t, "+Q'", got.String())

	got, err = id.WithSide(notation.Second)
	require.NoError(t, err)
	assert.Equal(t, "+r'", got.String())

	got, err = id.WithState(notation.Normal)
	require.NoError(t, err)
	assert.Equal(t, "R'", got.String())

	got, err = id.WithType(pin.Type(200))
	assert.True(t, notation.IsArgumentError(err))
	assert.Equal(t, id, got)
}

func TestSame(t *testing.T) {
	a := MustParse("+R'")
	b := MustParse("r'")
	assert.True(t, a.SameType(b))
	assert.False(t, a.SameSide(b))
	assert.False(t, a.SameState(b))
	assert.True(t, a.SameStyle(b))
	assert.False(t, a.SameStyle(MustParse("R")))
	assert.False(t, a.Equal(a.Underive()))
	assert.True(t, a.Equal(MustNew(pin.R, notation.First, notation.Enhanced, false)))
}

func TestSecondSideDiminished(t *testing.T) {
	id := MustNew(pin.P, notation.Second, notation.Diminished, true)
	assert.Equal(t, "-p", id.String())
}

func TestZeroValueIsNotValid(t *testing.T) {
	var id Identifier
	assert.False(t, id.Type().Valid())
	assert.False(t, Valid(id.String()))
	assert.False(t, ValidValue(id))
}
