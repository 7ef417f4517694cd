package fakeword

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ieee0824/fakeword-go/connection"
	"github.com/ieee0824/fakeword-go/internal/snapshot"
	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/sonority"
)

// Snapshot kinds, one file each under the cache directory.
const (
	KindCorpus     = "corpus"
	KindSonority   = "sonority"
	KindConnection = "connection"
)

const snapshotVersion = 1

func (g *Generator) loadModels(ctx context.Context, dictPath, freqPath string) error {
	var store *snapshot.Store
	if g.CacheDir != "" {
		store = snapshot.NewStore(g.CacheDir)
	}

	corpus, corpusID, err := loadOrBuild(g, store, KindCorpus, uuid.Nil,
		lexicon.LoadCorpus,
		func() (*lexicon.Corpus, error) {
			opts := lexicon.Options{Workers: g.Workers, FrequencyLimit: g.FrequencyLimit}
			c, stats, err := lexicon.Load(ctx, dictPath, freqPath, opts)
			if err != nil {
				return nil, err
			}
			g.Logger.Info("parsed dictionary",
				"lines", stats.TotalLines,
				"words", stats.ParsedWords,
				"invalid", stats.InvalidWords,
				"variants", stats.VariantLines,
				"duplicates", stats.DuplicateWords,
			)
			return c, nil
		},
		(*lexicon.Corpus).Save,
	)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	g.Corpus = corpus

	// Children are only cached against a corpus snapshot they can name.
	childStore := store
	if store != nil && corpusID == uuid.Nil {
		g.Logger.Warn("corpus has no snapshot, not caching models")
		childStore = nil
	}

	graph, _, err := loadOrBuild(g, childStore, KindSonority, corpusID,
		sonority.Load,
		func() (*sonority.Graph, error) { return sonority.Build(corpus), nil },
		(*sonority.Graph).Save,
	)
	if err != nil {
		return fmt.Errorf("sonority graph: %w", err)
	}
	g.Graph = graph

	table, _, err := loadOrBuild(g, childStore, KindConnection, corpusID,
		func(r io.Reader) (*connection.Table, error) {
			t, err := connection.Load(r)
			if err != nil {
				return nil, err
			}
			if t.Policy() != g.Policy {
				return nil, fmt.Errorf("%w: policy %s, want %s", snapshot.ErrMismatch, t.Policy(), g.Policy)
			}
			return t, nil
		},
		func() (*connection.Table, error) { return connection.Build(corpus, g.Policy), nil },
		(*connection.Table).Save,
	)
	if err != nil {
		return fmt.Errorf("connection table: %w", err)
	}
	g.Table = table

	g.Logger.Info("models ready",
		"words", corpus.Len(),
		"nodes", graph.Len(),
		"boundaries", table.Len(),
		"policy", table.Policy().String(),
	)
	return nil
}

// loadOrBuild returns the artefact of kind from its snapshot when one exists
// and matches parent, and otherwise builds it and writes a fresh snapshot.
// Snapshot problems are logged, never returned; build errors are returned.
// The returned id is uuid.Nil when no snapshot backs the artefact.
func loadOrBuild[T any](
	g *Generator,
	store *snapshot.Store,
	kind string,
	parent uuid.UUID,
	load func(io.Reader) (T, error),
	build func() (T, error),
	save func(T, io.Writer) error,
) (T, uuid.UUID, error) {
	log := g.Logger.With("kind", kind)

	if store != nil && !g.ForceRebuild {
		var v T
		h, err := store.Load(kind, snapshotVersion, parent, func(r io.Reader) error {
			var err error
			v, err = load(r)
			return err
		})
		if err == nil {
			log.Debug("loaded snapshot", "id", h.ID, "created", h.Created)
			return v, h.ID, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no snapshot", "path", store.Path(kind))
		} else {
			log.Warn("discarding snapshot", "error", err)
		}
	}

	start := time.Now()
	log.Info("building")
	v, err := build()
	if err != nil {
		var zero T
		return zero, uuid.Nil, err
	}
	log.Info("built", "elapsed", time.Since(start))

	if store == nil {
		return v, uuid.Nil, nil
	}
	h, err := store.Save(kind, snapshotVersion, parent, func(w io.Writer) error { return save(v, w) })
	if err != nil {
		log.Warn("write snapshot failed", "error", err)
		return v, uuid.Nil, nil
	}
	log.Debug("wrote snapshot", "id", h.ID, "path", store.Path(kind))
	return v, h.ID, nil
}
