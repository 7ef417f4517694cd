package sonority

import (
	"cmp"
	"fmt"

	"github.com/ieee0824/fakeword-go/phoneme"
)

// NodeKind distinguishes the start and stop markers from phoneme nodes.
type NodeKind uint8

const (
	KindStart NodeKind = iota
	KindPhoneme
	KindStop
)

// NodeData is the payload of a graph node: a marker or a phoneme.
type NodeData struct {
	Kind    NodeKind
	Phoneme phoneme.Phoneme // only meaningful for KindPhoneme
}

var (
	Start = NodeData{Kind: KindStart}
	Stop  = NodeData{Kind: KindStop}
)

// PhonemeData wraps p as node data.
func PhonemeData(p phoneme.Phoneme) NodeData {
	return NodeData{Kind: KindPhoneme, Phoneme: p}
}

// IsPhoneme reports whether d carries a phoneme.
func (d NodeData) IsPhoneme() bool { return d.Kind == KindPhoneme }

func (d NodeData) String() string {
	switch d.Kind {
	case KindStart:
		return "<start>"
	case KindStop:
		return "<stop>"
	}
	return d.Phoneme.String()
}

// Compare orders start before phonemes before stop.
func (d NodeData) Compare(o NodeData) int {
	if c := cmp.Compare(d.Kind, o.Kind); c != 0 {
		return c
	}
	if d.Kind != KindPhoneme {
		return 0
	}
	return cmp.Compare(d.Phoneme, o.Phoneme)
}

// NodeID identifies a vertex. The same phoneme at two positions is two nodes.
type NodeID struct {
	Data NodeData
	Pos  phoneme.Position
}

var (
	// StartNode is the root of every syllable walk.
	StartNode = NodeID{Data: Start, Pos: phoneme.Onset}
	// StopNode terminates every syllable path.
	StopNode = NodeID{Data: Stop, Pos: phoneme.Coda(0)}
)

// PhonemeNode returns the node for p at pos.
func PhonemeNode(p phoneme.Phoneme, pos phoneme.Position) NodeID {
	return NodeID{Data: PhonemeData(p), Pos: pos}
}

func (id NodeID) String() string {
	return fmt.Sprintf("%s@%s", id.Data, id.Pos)
}

// Compare orders by data, then position.
func (id NodeID) Compare(o NodeID) int {
	if c := id.Data.Compare(o.Data); c != 0 {
		return c
	}
	if id.Pos == o.Pos {
		return 0
	}
	if id.Pos.Less(o.Pos) {
		return -1
	}
	return 1
}

// Edge is an outgoing transition with its observed count.
type Edge struct {
	To    NodeID
	Count int
}
