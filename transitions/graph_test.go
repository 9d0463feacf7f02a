package transitions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notation/epin"
)

func TestExplore(t *testing.T) {
	g := Explore(epin.MustParse("K"))
	require.Len(t, g.Nodes, 12)
	assert.Equal(t, epin.MustParse("K"), g.Nodes[0])
	assert.Equal(t, []string{
		"+K", "+K'", "+k", "+k'",
		"-K", "-K'", "-k", "-k'",
		"K", "K'", "k", "k'",
	}, g.Strings())

	// normal nodes have 4 outgoing edges, the others 5
	assert.Len(t, g.Edges, 4*(4+5+5))
	for _, e := range g.Edges {
		assert.NotEqual(t, e.From, e.To, e.Op)
		assert.True(t, e.From.SameType(e.To))
	}
}

func TestExploreFromAnySeed(t *testing.T) {
	a := Explore(epin.MustParse("-q'"))
	b := Explore(epin.MustParse("Q"))
	assert.Equal(t, a.Strings(), b.Strings())
}

func TestDOT(t *testing.T) {
	dot, err := Explore(epin.MustParse("+r")).DOT("G")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `"+r"`)
	assert.Contains(t, dot, `"-R'"`)
	assert.Contains(t, dot, "doublecircle")
	assert.Contains(t, dot, `label="unenhance"`)
}
