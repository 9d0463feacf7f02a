// Package transitions explores the transformations of a compact piece.
// Starting from a seed it follows every transformation until no new
// identifier appears, and can render the result as a Graphviz digraph.
package transitions

import (
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/notation/epin"
)

// Op is a named transformation of an identifier.
type Op struct {
	Name  string
	Apply func(epin.Identifier) epin.Identifier
}

// Ops are the transformations followed by Explore.
var Ops = []Op{
	{"enhance", epin.Identifier.Enhance},
	{"unenhance", epin.Identifier.Unenhance},
	{"diminish", epin.Identifier.Diminish},
	{"undiminish", epin.Identifier.Undiminish},
	{"normalize", epin.Identifier.Normalize},
	{"flip", epin.Identifier.Flip},
	{"derive", epin.Identifier.Derive},
	{"underive", epin.Identifier.Underive},
}

// Edge is one transformation that changes its source.
type Edge struct {
	From, To epin.Identifier
	Op       string
}

// Graph holds every identifier reachable from a seed. No-op
// transformations are not recorded as edges.
type Graph struct {
	Seed  epin.Identifier
	Nodes []epin.Identifier
	Edges []Edge
}

// Explore walks breadth first from seed.
func Explore(seed epin.Identifier) *Graph {
	g := &Graph{Seed: seed}
	seen := map[epin.Identifier]bool{seed: true}
	queue := []epin.Identifier{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		g.Nodes = append(g.Nodes, cur)
		for _, op := range Ops {
			next := op.Apply(cur)
			if next == cur {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: cur, To: next, Op: op.Name})
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return g
}

// Strings returns the node strings in sorted order.
func (g *Graph) Strings() []string {
	ss := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ss = append(ss, n.String())
	}
	slices.Sort(ss)
	return ss
}

// DOT renders g as a Graphviz digraph named name.
func (g *Graph) DOT(name string) (string, error) {
	out := gographviz.NewGraph()
	if err := out.SetName(name); err != nil {
		return "", errors.WithStack(err)
	}
	if err := out.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}
	for _, s := range g.Strings() {
		attrs := map[string]string{}
		if s == g.Seed.String() {
			attrs["shape"] = "doublecircle"
		}
		if err := out.AddNode(name, strconv.Quote(s), attrs); err != nil {
			return "", errors.Wrapf(err, "node %s", s)
		}
	}
	for _, e := range g.Edges {
		attrs := map[string]string{"label": strconv.Quote(e.Op)}
		if err := out.AddEdge(strconv.Quote(e.From.String()), strconv.Quote(e.To.String()), true, attrs); err != nil {
			return "", errors.Wrapf(err, "edge %s %s", e.Op, e.From)
		}
	}
	return out.String(), nil
}
