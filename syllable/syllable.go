package syllable

import (
	"fmt"
	"strings"

	"github.com/ieee0824/fakeword-go/phoneme"
)

// Syllable is an ordered phoneme sequence.
type Syllable []phoneme.Phoneme

// Parse reads space-separated ARPAbet symbols, e.g. "HH AW1 S".
func Parse(arpabet string) (Syllable, error) {
	fields := strings.Fields(arpabet)
	s := make(Syllable, len(fields))
	for i, f := range fields {
		p, err := phoneme.Parse(f)
		if err != nil {
			return nil, err
		}
		s[i] = p
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and tables.
func MustParse(arpabet string) Syllable {
	s, err := Parse(arpabet)
	if err != nil {
		panic(fmt.Sprintf("syllable: MustParse(%q): %v", arpabet, err))
	}
	return s
}

// Split partitions the syllable into onset, nucleus and coda.
// ok is false when the nucleus is empty or a vowel follows a coda consonant.
func (s Syllable) Split() (onset, nucleus, coda []phoneme.Phoneme, ok bool) {
	i := 0
	for i < len(s) && s[i].IsConsonant() {
		i++
	}
	j := i
	for j < len(s) && s[j].IsVowel() {
		j++
	}
	if j == i {
		return nil, nil, nil, false
	}
	for _, p := range s[j:] {
		if p.IsVowel() {
			return nil, nil, nil, false
		}
	}
	return s[:i:i], s[i:j:j], s[j:], true
}

// Valid reports whether Split succeeds.
func (s Syllable) Valid() bool {
	_, _, _, ok := s.Split()
	return ok
}

// First returns the first phoneme.
func (s Syllable) First() (phoneme.Phoneme, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Last returns the last phoneme.
func (s Syllable) Last() (phoneme.Phoneme, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (s Syllable) Clone() Syllable {
	return append(Syllable(nil), s...)
}

// Equal reports whether s and o hold the same phonemes.
func (s Syllable) Equal(o Syllable) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// IPA concatenates the IPA symbols of every phoneme.
func (s Syllable) IPA() string {
	var b strings.Builder
	for _, p := range s {
		b.WriteString(p.IPA())
	}
	return b.String()
}

// English returns an approximate English respelling.
func (s Syllable) English() string {
	return Respell(s.IPA())
}

// String returns the ARPAbet symbols separated by spaces.
func (s Syllable) String() string {
	ss := make([]string, len(s))
	for i, p := range s {
		ss[i] = p.String()
	}
	return strings.Join(ss, " ")
}
