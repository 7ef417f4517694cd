package syllable

import (
	"strings"

	"github.com/ieee0824/fakeword-go/phoneme"
)

// Word is an ordered syllable sequence.
type Word []Syllable

// English joins the syllable respellings with hyphens.
func (w Word) English() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.English()
	}
	return strings.Join(parts, "-")
}

// IPA joins the syllable transcriptions with spaces.
func (w Word) IPA() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.IPA()
	}
	return strings.Join(parts, " ")
}

// Arpabet joins the syllables' ARPAbet symbols with " . ".
func (w Word) Arpabet() string {
	parts := make([]string, len(w))
	for i, s := range w {
		parts[i] = s.String()
	}
	return strings.Join(parts, " . ")
}

// Phonemes flattens the word.
func (w Word) Phonemes() []phoneme.Phoneme {
	var ps []phoneme.Phoneme
	for _, s := range w {
		ps = append(ps, s...)
	}
	return ps
}


// String renders "respelling (ipa)"; an empty word renders as "".
func (w Word) String() string {
	if len(w) == 0 {
		return ""
	}
	return w.English() + " (" + w.IPA() + ")"
}
