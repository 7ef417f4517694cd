package phoneme

import "fmt"

// Part is the structural slot of a phoneme inside a syllable.
type Part uint8

const (
	PartOnset Part = iota
	PartNucleus
	PartCoda
)

// Position tags a phoneme with its syllable part. Layer is the 1-based depth
// into a coda and is zero for onsets and nuclei.
type Position struct {
	Part  Part
	Layer int
}

var (
	Onset   = Position{Part: PartOnset}
	Nucleus = Position{Part: PartNucleus}
)

// Coda returns the position of the layer-th coda consonant.
func Coda(layer int) Position {
	return Position{Part: PartCoda, Layer: layer}
}

// Next returns the part that follows p. Codas have no successor.
func (p Position) Next() (Position, bool) {
	switch p.Part {
	case PartOnset:
		return Nucleus, true
	case PartNucleus:
		return Coda(1), true
	}
	return Position{}, false
}

func (p Position) String() string {
	switch p.Part {
	case PartOnset:
		return "onset"
	case PartNucleus:
		return "nucleus"
	case PartCoda:
		return fmt.Sprintf("coda%d", p.Layer)
	}
	return fmt.Sprintf("Position(%d,%d)", p.Part, p.Layer)
}

// Less orders positions by part, then layer.
func (p Position) Less(q Position) bool {
	if p.Part != q.Part {
		return p.Part < q.Part
	}
	return p.Layer < q.Layer
}
