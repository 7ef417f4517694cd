// Package snapshot stores derived models on disk inside a versioned envelope.
// Each snapshot carries its own id and the id of the snapshot it was derived
// from, so a stale derivative is detected and rebuilt on its own.
package snapshot

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrMismatch is returned when a snapshot exists but does not match the
// requested kind, version or parent.
var ErrMismatch = errors.New("snapshot: mismatch")

// Header describes a stored snapshot.
type Header struct {
	Kind    string
	Version int
	ID      uuid.UUID
	Parent  uuid.UUID
	Created time.Time
}

type envelope struct {
	Header
	Payload []byte
}

// Store keeps one snapshot per kind in a directory.
type Store struct {
	Dir string
	now func() time.Time
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, now: time.Now}
}

// Path returns the file holding kind.
func (s *Store) Path(kind string) string {
	return filepath.Join(s.Dir, kind+".gob")
}

// Save encodes a snapshot of kind with save and writes it atomically.
// It returns the header of the new snapshot.
func (s *Store) Save(kind string, version int, parent uuid.UUID, save func(io.Writer) error) (Header, error) {
	var payload bytes.Buffer
	if err := save(&payload); err != nil {
		return Header{}, fmt.Errorf("snapshot %s: encode: %w", kind, err)
	}
	env := envelope{
		Header: Header{
			Kind:    kind,
			Version: version,
			ID:      uuid.New(),
			Parent:  parent,
			Created: s.now().UTC(),
		},
		Payload: payload.Bytes(),
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Header{}, fmt.Errorf("snapshot %s: %w", kind, err)
	}
	tmp, err := os.CreateTemp(s.Dir, kind+".*.tmp")
	if err != nil {
		return Header{}, fmt.Errorf("snapshot %s: %w", kind, err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(&env); err != nil {
		tmp.Close()
		return Header{}, fmt.Errorf("snapshot %s: write: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return Header{}, fmt.Errorf("snapshot %s: %w", kind, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(kind)); err != nil {
		return Header{}, fmt.Errorf("snapshot %s: %w", kind, err)
	}
	return env.Header, nil
}

// Load reads the snapshot of kind and hands its payload to load. It fails
// with ErrMismatch when the stored version or parent differ from the ones
// given; pass uuid.Nil as parent for root snapshots.
func (s *Store) Load(kind string, version int, parent uuid.UUID, load func(io.Reader) error) (Header, error) {
	f, err := os.Open(s.Path(kind))
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	var env envelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return Header{}, fmt.Errorf("snapshot %s: decode: %w", kind, err)
	}
	h := env.Header
	switch {
	case h.Kind != kind:
		return h, fmt.Errorf("%w: kind %q, want %q", ErrMismatch, h.Kind, kind)
	case h.Version != version:
		return h, fmt.Errorf("%w: %s version %d, want %d", ErrMismatch, kind, h.Version, version)
	case h.Parent != parent:
		return h, fmt.Errorf("%w: %s parent %s, want %s", ErrMismatch, kind, h.Parent, parent)
	}
	if err := load(bytes.NewReader(env.Payload)); err != nil {
		return h, fmt.Errorf("snapshot %s: payload: %w", kind, err)
	}
	return h, nil
}

// Remove deletes the snapshot of kind. A missing snapshot is not an error.
func (s *Store) Remove(kind string) error {
	err := os.Remove(s.Path(kind))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
