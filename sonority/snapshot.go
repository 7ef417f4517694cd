package sonority

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/ieee0824/fakeword-go/phoneme"
)

const graphVersion = 1

type serializedNode struct {
	Kind    uint8
	Phoneme uint8
	Part    uint8
	Layer   int
}

type serializedEdge struct {
	From, To int
	Count    int
}

type serializedGraph struct {
	Version  int
	MaxSteps int
	Nodes    []serializedNode
	Edges    []serializedEdge
}

func toSerializedNode(id NodeID) serializedNode {
	return serializedNode{
		Kind:    uint8(id.Data.Kind),
		Phoneme: uint8(id.Data.Phoneme),
		Part:    uint8(id.Pos.Part),
		Layer:   id.Pos.Layer,
	}
}

func (sn serializedNode) nodeID() (NodeID, error) {
	kind := NodeKind(sn.Kind)
	if kind > KindStop {
		return NodeID{}, fmt.Errorf("invalid node kind %d", sn.Kind)
	}
	part := phoneme.Part(sn.Part)
	if part > phoneme.PartCoda || sn.Layer < 0 {
		return NodeID{}, fmt.Errorf("invalid position (%d, %d)", sn.Part, sn.Layer)
	}
	id := NodeID{Data: NodeData{Kind: kind}, Pos: phoneme.Position{Part: part, Layer: sn.Layer}}
	if kind == KindPhoneme {
		p := phoneme.Phoneme(sn.Phoneme)
		if !p.Valid() {
			return NodeID{}, fmt.Errorf("invalid phoneme %d", sn.Phoneme)
		}
		id.Data.Phoneme = p
	}
	return id, nil
}

// Save writes the graph in gob format. Nodes and edges are written sorted so
// equal graphs produce equal bytes.
func (g *Graph) Save(w io.Writer) error {
	ids := g.Nodes()
	index := make(map[NodeID]int, len(ids))
	sg := serializedGraph{
		Version:  graphVersion,
		MaxSteps: g.MaxSteps,
		Nodes:    make([]serializedNode, len(ids)),
	}
	for i, id := range ids {
		index[id] = i
		sg.Nodes[i] = toSerializedNode(id)
	}
	for i, id := range ids {
		for _, e := range g.nodes[id] {
			sg.Edges = append(sg.Edges, serializedEdge{From: i, To: index[e.To], Count: e.Count})
		}
	}
	return gob.NewEncoder(w).Encode(&sg)
}

// Load reads a graph written by Save.
func Load(r io.Reader) (*Graph, error) {
	var sg serializedGraph
	if err := gob.NewDecoder(r).Decode(&sg); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	if sg.Version != graphVersion {
		return nil, fmt.Errorf("graph version %d, want %d", sg.Version, graphVersion)
	}

	g := New()
	g.MaxSteps = sg.MaxSteps
	ids := make([]NodeID, len(sg.Nodes))
	for i, sn := range sg.Nodes {
		id, err := sn.nodeID()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		ids[i] = id
		g.AddNode(id)
	}
	for i, se := range sg.Edges {
		if se.From < 0 || se.From >= len(ids) || se.To < 0 || se.To >= len(ids) {
			return nil, fmt.Errorf("edge %d: node index out of range", i)
		}
		if se.Count <= 0 {
			return nil, fmt.Errorf("edge %d: non-positive count %d", i, se.Count)
		}
		g.addEdgeCount(ids[se.From], ids[se.To], se.Count)
	}
	return g, nil
}
