// Package generator assembles words from a sonority graph and a syllable
// connection table.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ieee0824/fakeword-go/connection"
	"github.com/ieee0824/fakeword-go/internal/mathutil"
	"github.com/ieee0824/fakeword-go/sonority"
	"github.com/ieee0824/fakeword-go/syllable"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("generator: invalid config")

// Config shapes word length.
type Config struct {
	// WordLengthDecay is the base of the per-syllable decay of the
	// continuation probability.
	WordLengthDecay float64
	// WordLengthBias scales the continuation probability.
	WordLengthBias float64
	// WordLengthMax is a hard cap on syllables per word.
	WordLengthMax int
	// MaxWalkSteps caps each syllable walk; 0 keeps the graph's cap.
	MaxWalkSteps int
}

// DefaultConfig returns the stock word-length settings.
func DefaultConfig() Config {
	return Config{
		WordLengthDecay: 1.5,
		WordLengthBias:  1.5,
		WordLengthMax:   10,
	}
}

// Validate checks the config.
func (c Config) Validate() error {
	if c.WordLengthDecay <= 0 {
		return fmt.Errorf("%w: word_length_decay must be positive, got %v", ErrInvalidConfig, c.WordLengthDecay)
	}
	if c.WordLengthBias < 0 {
		return fmt.Errorf("%w: word_length_bias must not be negative, got %v", ErrInvalidConfig, c.WordLengthBias)
	}
	if c.WordLengthMax < 0 {
		return fmt.Errorf("%w: word_length_max must not be negative, got %d", ErrInvalidConfig, c.WordLengthMax)
	}
	if c.MaxWalkSteps < 0 {
		return fmt.Errorf("%w: max_walk_steps must not be negative, got %d", ErrInvalidConfig, c.MaxWalkSteps)
	}
	return nil
}

// Generator produces words. It owns its random source and must not be shared
// between goroutines; the graph and table may be.
type Generator struct {
	graph *sonority.Graph
	table *connection.Table
	cfg   Config
	rng   *rand.Rand
}

// New creates a generator. The config is validated.
func New(graph *sonority.Graph, table *connection.Table, cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if graph == nil || table == nil {
		return nil, errors.New("generator: nil graph or table")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{graph: graph, table: table, cfg: cfg, rng: rng}, nil
}

// Config returns the generator's config.
func (g *Generator) Config() Config { return g.cfg }

// ContinuationProbability returns the chance of adding a syllable after the
// i-th (0-based) one.
func (g *Generator) ContinuationProbability(i int) float64 {
	return mathutil.ContinuationProbability(g.cfg.WordLengthDecay, g.cfg.WordLengthBias, i)
}

// Generate produces one word. The word is empty when the table maps Start
// straight to Stop or WordLengthMax is zero, and never has more than
// WordLengthMax syllables.
func (g *Generator) Generate() (syllable.Word, error) {
	var word syllable.Word
	boundary := g.table.Next(sonority.Start, g.rng)
	for len(word) < g.cfg.WordLengthMax && boundary.IsPhoneme() {
		steps := g.cfg.MaxWalkSteps
		if steps == 0 {
			steps = g.graph.MaxSteps
		}
		s, err := g.graph.EvaluateFromSteps(boundary.Phoneme, steps, g.rng)
		if err != nil {
			return nil, fmt.Errorf("syllable %d: %w", len(word), err)
		}
		word = append(word, s)

		last, _ := s.Last()
		boundary = g.table.Next(sonority.PhonemeData(last), g.rng)
		if !boundary.IsPhoneme() {
			break
		}
		if g.ContinuationProbability(len(word)-1) <= g.rng.Float64() {
			break
		}
	}
	return word, nil
}
