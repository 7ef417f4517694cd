// Package sonority models legal phoneme order inside a syllable as a weighted
// directed graph over position-tagged phonemes.
package sonority

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ieee0824/fakeword-go/internal/mathutil"
	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/syllable"
)

// DefaultMaxSteps bounds a single walk.
const DefaultMaxSteps = 64

// ErrUnknownNode is returned when a walk is rooted at an unregistered node.
var ErrUnknownNode = errors.New("sonority: unknown node")

// Graph is a weighted transition graph. It is safe for concurrent walks once
// construction has finished.
type Graph struct {
	// adjacency, each list sorted by destination
	nodes map[NodeID][]Edge

	// MaxSteps caps the transitions of one walk; <= 0 means DefaultMaxSteps.
	MaxSteps int
}

// New returns a graph holding only the start and stop nodes.
func New() *Graph {
	g := &Graph{nodes: make(map[NodeID][]Edge)}
	g.AddNode(StartNode)
	g.AddNode(StopNode)
	return g
}

// Build creates a graph from every syllable in the corpus.
func Build(c *lexicon.Corpus) *Graph {
	g := New()
	for s := range c.Syllables() {
		g.AddSyllable(s)
	}
	return g
}

// AddNode registers id. Registering twice is a no-op.
func (g *Graph) AddNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = nil
	}
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge records one observation of from→to. The edge is dropped when to is
// not registered, and nothing happens when from is not.
func (g *Graph) AddEdge(from, to NodeID) {
	g.addEdgeCount(from, to, 1)
}

func (g *Graph) addEdgeCount(from, to NodeID, n int) {
	edges, ok := g.nodes[from]
	if !ok || !g.HasNode(to) {
		return
	}
	i, found := slices.BinarySearchFunc(edges, to, func(e Edge, t NodeID) int { return e.To.Compare(t) })
	if found {
		edges[i].Count += n
		return
	}
	g.nodes[from] = slices.Insert(edges, i, Edge{To: to, Count: n})
}

// AddSyllable records the path Start → onset → nucleus → coda → Stop for s.
// It reports false, leaving the graph untouched, when s does not split.
func (g *Graph) AddSyllable(s syllable.Syllable) bool {
	onset, nucleus, coda, ok := s.Split()
	if !ok {
		return false
	}
	path := make([]NodeID, 0, len(s)+2)
	path = append(path, StartNode)
	for _, p := range onset {
		path = append(path, PhonemeNode(p, phoneme.Onset))
	}
	for _, p := range nucleus {
		path = append(path, PhonemeNode(p, phoneme.Nucleus))
	}
	for i, p := range coda {
		path = append(path, PhonemeNode(p, phoneme.Coda(i+1)))
	}
	path = append(path, StopNode)

	for _, id := range path {
		g.AddNode(id)
	}
	for i := 1; i < len(path); i++ {
		g.AddEdge(path[i-1], path[i])
	}
	return true
}

// Evaluate synthesizes a syllable by walking from the start node.
func (g *Graph) Evaluate(rng *rand.Rand) syllable.Syllable {
	return g.walk(StartNode, nil, g.MaxSteps, rng)
}

// EvaluateFrom synthesizes a syllable beginning with p. The walk is rooted at
// p in the nucleus when p is a vowel and in the onset otherwise.
func (g *Graph) EvaluateFrom(p phoneme.Phoneme, rng *rand.Rand) (syllable.Syllable, error) {
	return g.EvaluateFromSteps(p, g.MaxSteps, rng)
}

// EvaluateFromSteps is EvaluateFrom with the walk capped at maxSteps
// transitions instead of g.MaxSteps. It does not modify g.
func (g *Graph) EvaluateFromSteps(p phoneme.Phoneme, maxSteps int, rng *rand.Rand) (syllable.Syllable, error) {
	pos := phoneme.Onset
	if p.IsVowel() {
		pos = phoneme.Nucleus
	}
	root := PhonemeNode(p, pos)
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, root)
	}
	return g.walk(root, syllable.Syllable{p}, maxSteps, rng), nil
}

func (g *Graph) walk(cur NodeID, out syllable.Syllable, maxSteps int, rng *rand.Rand) syllable.Syllable {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	for step := 0; step < maxSteps; step++ {
		edges := g.nodes[cur]
		choices := make([]mathutil.Weighted[NodeID], len(edges))
		for i, e := range edges {
			choices[i] = mathutil.Weighted[NodeID]{Weight: e.Count, Item: e.To}
		}
		next, ok := mathutil.WeightedChoice(rng, choices)
		if !ok || !g.HasNode(next) || next.Data.Kind == KindStop {
			break
		}
		if next.Data.IsPhoneme() {
			out = append(out, next.Data.Phoneme)
		}
		cur = next
	}
	return out
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns every registered node, sorted.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, NodeID.Compare)
	return ids
}

// Edges returns a copy of the outgoing edges of id, sorted by destination.
func (g *Graph) Edges(id NodeID) []Edge {
	return slices.Clone(g.nodes[id])
}

// EdgeCount returns the observed count of from→to, zero when absent.
func (g *Graph) EdgeCount(from, to NodeID) int {
	edges := g.nodes[from]
	i, found := slices.BinarySearchFunc(edges, to, func(e Edge, t NodeID) int { return e.To.Compare(t) })
	if !found {
		return 0
	}
	return edges[i].Count
}
