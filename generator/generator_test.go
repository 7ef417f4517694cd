package generator

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/fakeword-go/connection"
	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/sonority"
	"github.com/ieee0824/fakeword-go/syllable"
)

func corpus(words ...string) *lexicon.Corpus {
	entries := make([]lexicon.Entry, len(words))
	for i, w := range words {
		var syls []syllable.Syllable
		for _, s := range strings.Split(w, ".") {
			syls = append(syls, syllable.MustParse(s))
		}
		entries[i] = lexicon.Entry{Word: w, Syllables: syls}
	}
	return lexicon.NewCorpus(entries)
}

// A corpus whose boundaries form a cycle so words can grow without limit.
var loopCorpus = corpus(
	"K AE T.T IH K",
	"T IH K.K AE T",
	"B AH.T IH K",
)

func newGenerator(t *testing.T, c *lexicon.Corpus, cfg Config, seed uint64) *Generator {
	t.Helper()
	g, err := New(sonority.Build(c), connection.Build(c, connection.PolicyWeighted), cfg, rand.New(rand.NewPCG(seed, seed)))
	require.NoError(t, err)
	return g
}

func TestGenerateMaxZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLengthMax = 0
	g := newGenerator(t, loopCorpus, cfg, 1)
	for i := 0; i < 20; i++ {
		w, err := g.Generate()
		require.NoError(t, err)
		assert.Empty(t, w)
	}
}

func TestGenerateRespectsMax(t *testing.T) {
	cfg := Config{WordLengthDecay: 1, WordLengthBias: 100, WordLengthMax: 3}
	g := newGenerator(t, loopCorpus, cfg, 2)
	hitMax := false
	for i := 0; i < 100; i++ {
		w, err := g.Generate()
		require.NoError(t, err)
		require.LessOrEqual(t, len(w), 3)
		require.NotEmpty(t, w)
		if len(w) == 3 {
			hitMax = true
		}
		for _, s := range w {
			assert.True(t, s.Valid(), s.String())
		}
	}
	assert.True(t, hitMax, "an always-continue curve should reach the cap")
}

func TestGenerateZeroBiasSingleSyllable(t *testing.T) {
	cfg := Config{WordLengthDecay: 1.5, WordLengthBias: 0, WordLengthMax: 10}
	g := newGenerator(t, loopCorpus, cfg, 3)
	for i := 0; i < 50; i++ {
		w, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, w, 1)
	}
}

func TestGenerateStartToStop(t *testing.T) {
	c := corpus("HH AW S")
	g, err := New(sonority.Build(c), connection.New(connection.PolicyWeighted), DefaultConfig(), nil)
	require.NoError(t, err)
	w, err := g.Generate()
	require.NoError(t, err)
	assert.Empty(t, w)
	assert.Equal(t, "", w.String())
}

func TestGenerateStopsAtStopBoundary(t *testing.T) {
	// Every boundary leads to Stop after two syllables.
	c := corpus("HH AW S.B IH")
	cfg := Config{WordLengthDecay: 1, WordLengthBias: 100, WordLengthMax: 10}
	g := newGenerator(t, c, cfg, 4)
	for i := 0; i < 20; i++ {
		w, err := g.Generate()
		require.NoError(t, err)
		assert.Equal(t, "hows-bih", w.English())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newGenerator(t, loopCorpus, DefaultConfig(), 42)
	b := newGenerator(t, loopCorpus, DefaultConfig(), 42)
	for i := 0; i < 20; i++ {
		wa, err := a.Generate()
		require.NoError(t, err)
		wb, err := b.Generate()
		require.NoError(t, err)
		assert.Equal(t, wa.Arpabet(), wb.Arpabet())
	}
}

func TestGenerateUnknownBoundary(t *testing.T) {
	tbl := connection.New(connection.PolicyWeighted)
	tbl.Add(sonority.Start, sonority.PhonemeData(phoneme.ZH))
	g, err := New(sonority.Build(corpus("HH AW S")), tbl, DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = g.Generate()
	assert.ErrorIs(t, err, sonority.ErrUnknownNode)
}

func TestGenerateMaxWalkSteps(t *testing.T) {
	// K loops on itself in the onset, so only the step cap ends the walk.
	graph := sonority.New()
	k := sonority.PhonemeNode(phoneme.K, phoneme.Onset)
	graph.AddNode(k)
	graph.AddEdge(sonority.StartNode, k)
	graph.AddEdge(k, k)
	tbl := connection.New(connection.PolicyWeighted)
	tbl.Add(sonority.Start, sonority.PhonemeData(phoneme.K))
	tbl.Add(sonority.PhonemeData(phoneme.K), sonority.Stop)

	cfg := Config{WordLengthDecay: 1, WordLengthBias: 1, WordLengthMax: 1, MaxWalkSteps: 4}
	short, err := New(graph, tbl, cfg, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	cfg.MaxWalkSteps = 0
	long, err := New(graph, tbl, cfg, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	w, err := short.Generate()
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Len(t, w[0], 5)

	w, err = long.Generate()
	require.NoError(t, err)
	require.Len(t, w, 1)
	assert.Len(t, w[0], 1+sonority.DefaultMaxSteps)
	assert.Zero(t, graph.MaxSteps, "generators must not touch the shared graph")
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{WordLengthDecay: 0, WordLengthBias: 1, WordLengthMax: 1},
		{WordLengthDecay: 1, WordLengthBias: -1, WordLengthMax: 1},
		{WordLengthDecay: 1, WordLengthBias: 1, WordLengthMax: -1},
		{WordLengthDecay: 1, WordLengthBias: 1, WordLengthMax: 1, MaxWalkSteps: -1},
	}
	for _, cfg := range bad {
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
		_, err := New(sonority.New(), connection.New(connection.PolicyWeighted), cfg, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestContinuationProbability(t *testing.T) {
	g := newGenerator(t, loopCorpus, DefaultConfig(), 1)
	assert.InDelta(t, 1.5, g.ContinuationProbability(0), 1e-12)
	assert.InDelta(t, 1.0, g.ContinuationProbability(1), 1e-12)
	assert.InDelta(t, 2.0/3.0, g.ContinuationProbability(2), 1e-12)
}
