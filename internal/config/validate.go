package config

import (
	"fmt"
	"strings"
)

// Validate performs validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Corpus.DictionaryPath == "" {
		return fmt.Errorf("corpus.dictionary_path is required")
	}
	if c.Corpus.FrequencyPath == "" {
		return fmt.Errorf("corpus.frequency_path is required")
	}
	if c.Corpus.FrequencyLimit < 0 {
		return fmt.Errorf("corpus.frequency_limit must be >= 0 (got %d)", c.Corpus.FrequencyLimit)
	}
	if c.Corpus.Workers < 0 {
		return fmt.Errorf("corpus.workers must be >= 0 (got %d)", c.Corpus.Workers)
	}
	if !c.Cache.Disabled && c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required unless cache.disabled is set")
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.WordLengthDecay <= 0 {
		return fmt.Errorf("word_length_decay must be > 0 (got %v)", g.WordLengthDecay)
	}
	if g.WordLengthBias < 0 {
		return fmt.Errorf("word_length_bias must be >= 0 (got %v)", g.WordLengthBias)
	}
	if g.WordLengthMax < 0 {
		return fmt.Errorf("word_length_max must be >= 0 (got %d)", g.WordLengthMax)
	}
	if g.MaxWalkSteps <= 0 {
		return fmt.Errorf("max_walk_steps must be > 0 (got %d)", g.MaxWalkSteps)
	}
	switch g.ConnectionPolicy {
	case "weighted", "first":
	default:
		return fmt.Errorf("connection_policy must be weighted or first (got %q)", g.ConnectionPolicy)
	}
	if g.MinNovelty < 0 {
		return fmt.Errorf("min_novelty must be >= 0 (got %d)", g.MinNovelty)
	}
	if g.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", g.MaxAttempts)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
	return nil
}
