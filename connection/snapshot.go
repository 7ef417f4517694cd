package connection

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/sonority"
)

const tableVersion = 1

type serializedData struct {
	Kind    uint8
	Phoneme uint8
}

type serializedEdge struct {
	From, To serializedData
	Count    int
}

type serializedTable struct {
	Version int
	Policy  uint8
	Edges   []serializedEdge
}

func toSerializedData(d sonority.NodeData) serializedData {
	return serializedData{Kind: uint8(d.Kind), Phoneme: uint8(d.Phoneme)}
}

func (sd serializedData) nodeData() (sonority.NodeData, error) {
	switch kind := sonority.NodeKind(sd.Kind); kind {
	case sonority.KindStart:
		return sonority.Start, nil
	case sonority.KindStop:
		return sonority.Stop, nil
	case sonority.KindPhoneme:
		p := phoneme.Phoneme(sd.Phoneme)
		if !p.Valid() {
			return sonority.NodeData{}, fmt.Errorf("invalid phoneme %d", sd.Phoneme)
		}
		return sonority.PhonemeData(p), nil
	}
	return sonority.NodeData{}, fmt.Errorf("invalid node kind %d", sd.Kind)
}

// Save writes the table in gob format, sources and successors sorted.
func (t *Table) Save(w io.Writer) error {
	st := serializedTable{Version: tableVersion, Policy: uint8(t.policy)}
	for _, from := range t.Sources() {
		for _, e := range t.next[from] {
			st.Edges = append(st.Edges, serializedEdge{
				From:  toSerializedData(from),
				To:    toSerializedData(e.To),
				Count: e.Count,
			})
		}
	}
	return gob.NewEncoder(w).Encode(&st)
}

// Load reads a table written by Save.
func Load(r io.Reader) (*Table, error) {
	var st serializedTable
	if err := gob.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode connection table: %w", err)
	}
	if st.Version != tableVersion {
		return nil, fmt.Errorf("connection table version %d, want %d", st.Version, tableVersion)
	}
	policy := Policy(st.Policy)
	if policy != PolicyWeighted && policy != PolicyFirstSuccessor {
		return nil, fmt.Errorf("invalid policy %d", st.Policy)
	}

	t := New(policy)
	for i, se := range st.Edges {
		from, err := se.From.nodeData()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		to, err := se.To.nodeData()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if se.Count <= 0 {
			return nil, fmt.Errorf("edge %d: non-positive count %d", i, se.Count)
		}
		t.addCount(from, to, se.Count)
	}
	return t, nil
}
