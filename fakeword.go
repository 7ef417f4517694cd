// Package fakeword generates pronounceable invented English words from a
// syllabified pronouncing dictionary and a word-frequency list.
package fakeword

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/ieee0824/fakeword-go/connection"
	"github.com/ieee0824/fakeword-go/generator"
	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/sonority"
	"github.com/ieee0824/fakeword-go/syllable"
)

// ErrNoNovelWord is returned when every attempt produced a word too close to
// a dictionary word.
var ErrNoNovelWord = errors.New("fakeword: no novel word found")

// DefaultMaxAttempts is the number of tries the novelty filter makes per word.
const DefaultMaxAttempts = 32

// Generator is the top-level word generator. It is not safe for concurrent
// use; give each goroutine its own via Fork.
type Generator struct {
	Corpus *lexicon.Corpus
	Graph  *sonority.Graph
	Table  *connection.Table

	GenCfg         generator.Config
	Policy         connection.Policy
	MaxWalkSteps   int // per-generator walk cap, 0 keeps the graph's setting
	MinNovelty     int // minimum phoneme edit distance to any corpus word, 0 = off
	MaxAttempts    int
	CacheDir       string // "" disables snapshots
	ForceRebuild   bool
	Workers        int
	FrequencyLimit int
	Logger         *slog.Logger

	rng *rand.Rand
	gen *generator.Generator
}

// Option configures a Generator.
type Option func(*Generator)

// WithGeneratorConfig sets the word-length parameters.
func WithGeneratorConfig(cfg generator.Config) Option {
	return func(g *Generator) {
		g.GenCfg = cfg
	}
}

// WithConnectionPolicy selects how the connection table stores successors.
func WithConnectionPolicy(p connection.Policy) Option {
	return func(g *Generator) {
		g.Policy = p
	}
}

// WithMaxWalkSteps caps a single syllable walk.
func WithMaxWalkSteps(n int) Option {
	return func(g *Generator) {
		g.MaxWalkSteps = n
	}
}

// WithNovelty rejects words within minDistance-1 phoneme edits of a corpus
// word, retrying up to maxAttempts times.
func WithNovelty(minDistance, maxAttempts int) Option {
	return func(g *Generator) {
		g.MinNovelty = minDistance
		g.MaxAttempts = maxAttempts
	}
}

// WithCacheDir enables model snapshots under dir.
func WithCacheDir(dir string) Option {
	return func(g *Generator) {
		g.CacheDir = dir
	}
}

// WithForceRebuild ignores existing snapshots and overwrites them.
func WithForceRebuild(force bool) Option {
	return func(g *Generator) {
		g.ForceRebuild = force
	}
}

// WithWorkers sets the dictionary parse parallelism, 0 = GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.Workers = n
	}
}

// WithFrequencyLimit sets how many frequency-list lines are read; 0 keeps
// the default and a negative limit reads the whole list.
func WithFrequencyLimit(n int) Option {
	return func(g *Generator) {
		g.FrequencyLimit = n
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.Logger = l
	}
}

// WithSeed makes generation deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = newRand(seed)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newGenerator(opts []Option) *Generator {
	g := &Generator{
		GenCfg:      generator.DefaultConfig(),
		Policy:      connection.PolicyWeighted,
		MaxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Logger == nil {
		g.Logger = slog.Default()
	}
	if g.rng == nil {
		g.rng = newRand(rand.Uint64())
	}
	if g.MaxAttempts <= 0 {
		g.MaxAttempts = DefaultMaxAttempts
	}
	return g
}

// New loads or builds the corpus and both models, then prepares a generator.
// With a cache directory each artefact is read from its snapshot when the
// snapshot is valid and rebuilt (and rewritten) otherwise.
func New(ctx context.Context, dictPath, freqPath string, opts ...Option) (*Generator, error) {
	g := newGenerator(opts)
	if err := g.loadModels(ctx, dictPath, freqPath); err != nil {
		return nil, err
	}
	if err := g.init(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromModels creates a Generator from pre-built models. corpus may be nil
// when the novelty filter is off.
func NewFromModels(corpus *lexicon.Corpus, graph *sonority.Graph, table *connection.Table, opts ...Option) (*Generator, error) {
	g := newGenerator(opts)
	g.Corpus = corpus
	g.Graph = graph
	g.Table = table
	if err := g.init(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) init() error {
	if g.MinNovelty > 0 && g.Corpus == nil {
		return errors.New("fakeword: novelty filter needs a corpus")
	}
	gen, err := generator.New(g.Graph, g.Table, g.generatorConfig(), g.rng)
	if err != nil {
		return err
	}
	g.gen = gen
	return nil
}

func (g *Generator) generatorConfig() generator.Config {
	cfg := g.GenCfg
	if g.MaxWalkSteps > 0 {
		cfg.MaxWalkSteps = g.MaxWalkSteps
	}
	return cfg
}

// Generate produces one word. With the novelty filter on, words too close to
// a corpus word are discarded and ErrNoNovelWord is returned after
// MaxAttempts rejections. An empty word is always accepted.
func (g *Generator) Generate() (syllable.Word, error) {
	if g.MinNovelty <= 0 {
		return g.gen.Generate()
	}
	for attempt := 0; attempt < g.MaxAttempts; attempt++ {
		w, err := g.gen.Generate()
		if err != nil {
			return nil, err
		}
		if len(w) == 0 {
			return w, nil
		}
		e, dist, found := g.Corpus.Nearest(w.Phonemes(), g.MinNovelty-1)
		if !found {
			return w, nil
		}
		g.Logger.Debug("rejected word", "word", w.English(), "near", e.Word, "distance", dist)
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrNoNovelWord, g.MaxAttempts)
}

// GenerateN produces n words.
func (g *Generator) GenerateN(n int) ([]syllable.Word, error) {
	words := make([]syllable.Word, 0, n)
	for i := 0; i < n; i++ {
		w, err := g.Generate()
		if err != nil {
			return words, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Fork returns a generator sharing g's read-only models with its own random
// source, for use on another goroutine.
func (g *Generator) Fork(seed uint64) (*Generator, error) {
	f := &Generator{
		Corpus:         g.Corpus,
		Graph:          g.Graph,
		Table:          g.Table,
		GenCfg:         g.GenCfg,
		Policy:         g.Policy,
		MaxWalkSteps:   g.MaxWalkSteps,
		MinNovelty:     g.MinNovelty,
		MaxAttempts:    g.MaxAttempts,
		CacheDir:       g.CacheDir,
		Workers:        g.Workers,
		FrequencyLimit: g.FrequencyLimit,
		Logger:         g.Logger,
		rng:            newRand(seed),
	}
	gen, err := generator.New(f.Graph, f.Table, f.generatorConfig(), f.rng)
	if err != nil {
		return nil, err
	}
	f.gen = gen
	return f, nil
}
