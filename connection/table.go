// Package connection models how syllables chain into words: a table from a
// syllable's last phoneme to the first phoneme of the syllable that follows.
package connection

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ieee0824/fakeword-go/internal/mathutil"
	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/sonority"
	"github.com/ieee0824/fakeword-go/syllable"
)

// Policy selects how repeated observations of a boundary are stored.
type Policy uint8

const (
	// PolicyWeighted keeps one edge per distinct successor, each with its own
	// count, and samples successors by count.
	PolicyWeighted Policy = iota
	// PolicyFirstSuccessor keeps only the first successor seen for a boundary;
	// later observations of that boundary increment its count whatever their
	// successor was.
	PolicyFirstSuccessor
)

func (p Policy) String() string {
	switch p {
	case PolicyWeighted:
		return "weighted"
	case PolicyFirstSuccessor:
		return "first"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy resolves the names returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "weighted":
		return PolicyWeighted, nil
	case "first":
		return PolicyFirstSuccessor, nil
	}
	return 0, fmt.Errorf("connection: unknown policy %q", s)
}

// Edge is a successor with its observed count.
type Edge struct {
	To    sonority.NodeData
	Count int
}

// Table maps a boundary (the start marker or a syllable's last phoneme) to the
// boundary that follows it. It is read-only after construction.
type Table struct {
	policy Policy
	next   map[sonority.NodeData][]Edge // sorted by To
}

// New creates an empty table.
func New(policy Policy) *Table {
	return &Table{
		policy: policy,
		next:   make(map[sonority.NodeData][]Edge),
	}
}

// Build records the syllable boundaries of every multi-syllable corpus word.
func Build(c *lexicon.Corpus, policy Policy) *Table {
	t := New(policy)
	for _, e := range c.Entries {
		t.AddWord(e.Syllables)
	}
	return t
}

// AddWord records Start → first phoneme, each last → next first, and the
// final phoneme → Stop. Words with fewer than two syllables, or with an empty
// syllable, are ignored and reported as false.
func (t *Table) AddWord(syls []syllable.Syllable) bool {
	if len(syls) < 2 {
		return false
	}
	for _, s := range syls {
		if len(s) == 0 {
			return false
		}
	}
	first, _ := syls[0].First()
	t.Add(sonority.Start, sonority.PhonemeData(first))
	for i := 1; i < len(syls); i++ {
		last, _ := syls[i-1].Last()
		next, _ := syls[i].First()
		t.Add(sonority.PhonemeData(last), sonority.PhonemeData(next))
	}
	last, _ := syls[len(syls)-1].Last()
	t.Add(sonority.PhonemeData(last), sonority.Stop)
	return true
}

// Add records one observation of from → to under the table's policy.
func (t *Table) Add(from, to sonority.NodeData) {
	t.addCount(from, to, 1)
}

func (t *Table) addCount(from, to sonority.NodeData, n int) {
	edges := t.next[from]
	if t.policy == PolicyFirstSuccessor && len(edges) > 0 {
		edges[0].Count += n
		return
	}
	i, found := slices.BinarySearchFunc(edges, to, func(e Edge, d sonority.NodeData) int { return e.To.Compare(d) })
	if found {
		edges[i].Count += n
		return
	}
	t.next[from] = slices.Insert(edges, i, Edge{To: to, Count: n})
}

// Next returns the boundary following from, or Stop when none was recorded.
func (t *Table) Next(from sonority.NodeData, rng *rand.Rand) sonority.NodeData {
	edges := t.next[from]
	if len(edges) == 0 {
		return sonority.Stop
	}
	if t.policy == PolicyFirstSuccessor {
		return edges[0].To
	}
	choices := make([]mathutil.Weighted[sonority.NodeData], len(edges))
	for i, e := range edges {
		choices[i] = mathutil.Weighted[sonority.NodeData]{Weight: e.Count, Item: e.To}
	}
	to, ok := mathutil.WeightedChoice(rng, choices)
	if !ok {
		return sonority.Stop
	}
	return to
}

// Successors returns a copy of the recorded successors of from.
func (t *Table) Successors(from sonority.NodeData) []Edge {
	return slices.Clone(t.next[from])
}

// Sources returns every boundary with at least one successor, sorted.
func (t *Table) Sources() []sonority.NodeData {
	srcs := make([]sonority.NodeData, 0, len(t.next))
	for d := range t.next {
		srcs = append(srcs, d)
	}
	slices.SortFunc(srcs, sonority.NodeData.Compare)
	return srcs
}

// Len returns the number of source boundaries.
func (t *Table) Len() int { return len(t.next) }

// Policy returns the storage policy the table was built with.
func (t *Table) Policy() Policy { return t.policy }
