package phoneme

import (
	"errors"
	"fmt"
)

// Phoneme represents an English phoneme from the ARPAbet inventory.
type Phoneme uint8

const (
	// Vowels
	AA Phoneme = iota
	AE
	AH
	AO
	AW
	AX
	AXR
	AY
	EH
	ER
	EY
	IH
	IX
	IY
	OW
	OY
	UH
	UW
	UX

	// Consonants
	B
	CH
	D
	DH
	DX
	EL
	EM
	EN
	F
	G
	H
	JH
	K
	L
	M
	N
	NG
	NX
	P
	Q
	R
	S
	SH
	T
	TH
	V
	W
	WH
	Y
	Z
	ZH

	numPhonemes
)

// ErrUnknownSymbol is returned when a symbol does not name any phoneme.
var ErrUnknownSymbol = errors.New("unknown phoneme symbol")

var arpabet = [numPhonemes]string{
	AA: "AA", AE: "AE", AH: "AH", AO: "AO", AW: "AW", AX: "AX", AXR: "AXR",
	AY: "AY", EH: "EH", ER: "ER", EY: "EY", IH: "IH", IX: "IX", IY: "IY",
	OW: "OW", OY: "OY", UH: "UH", UW: "UW", UX: "UX",

	B: "B", CH: "CH", D: "D", DH: "DH", DX: "DX", EL: "EL", EM: "EM", EN: "EN",
	F: "F", G: "G", H: "H", JH: "JH", K: "K", L: "L", M: "M", N: "N", NG: "NG",
	NX: "NX", P: "P", Q: "Q", R: "R", S: "S", SH: "SH", T: "T", TH: "TH",
	V: "V", W: "W", WH: "WH", Y: "Y", Z: "Z", ZH: "ZH",
}

// ipa holds the broad IPA transcription of each phoneme.
// AX and AXR keep the (swapped) symbols of the source tables.
var ipa = [numPhonemes]string{
	AA: "ɑ", AE: "æ", AH: "ʌ", AO: "ɔ", AW: "aʊ", AX: "əɹ", AXR: "ə",
	AY: "aɪ", EH: "ɛ", ER: "ɛɹ", EY: "eɪ", IH: "ɪ", IX: "ɨ", IY: "i",
	OW: "oʊ", OY: "ɔɪ", UH: "ʊ", UW: "u", UX: "ʉ",

	B: "b", CH: "tʃ", D: "d", DH: "ð", DX: "ɾ", EL: "l̩", EM: "m̩", EN: "n̩",
	F: "f", G: "ɡ", H: "h", JH: "dʒ", K: "k", L: "l", M: "m", N: "n", NG: "ŋ",
	NX: "ɾ̃", P: "p", Q: "ʔ", R: "ɹ", S: "s", SH: "ʃ", T: "t", TH: "θ",
	V: "v", W: "w", WH: "ʍ", Y: "j", Z: "z", ZH: "ʒ",
}

// vowel marks the syllable nuclei. Syllabic consonants (EL, EM, EN) are
// classified as consonants.
var vowel = [numPhonemes]bool{
	AA: true, AE: true, AH: true, AO: true, AW: true, AX: true, AXR: true,
	AY: true, EH: true, ER: true, EY: true, IH: true, IX: true, IY: true,
	OW: true, OY: true, UH: true, UW: true, UX: true,
}

var (
	fromArpabet = make(map[string]Phoneme, numPhonemes+1)
	fromIPA     = make(map[string]Phoneme, numPhonemes)
)

func init() {
	for p := Phoneme(0); p < numPhonemes; p++ {
		if arpabet[p] == "" || ipa[p] == "" {
			panic(fmt.Sprintf("phoneme: variant %d is missing from a symbol table", p))
		}
		if _, dup := fromArpabet[arpabet[p]]; dup {
			panic(fmt.Sprintf("phoneme: duplicate ARPAbet symbol %q", arpabet[p]))
		}
		if _, dup := fromIPA[ipa[p]]; dup {
			panic(fmt.Sprintf("phoneme: duplicate IPA symbol %q", ipa[p]))
		}
		fromArpabet[arpabet[p]] = p
		fromIPA[ipa[p]] = p
	}
	// CMU writes /h/ as HH.
	fromArpabet["HH"] = H
}

// Parse resolves an ARPAbet symbol. A single trailing stress digit
// (0, 1 or 2) is ignored.
func Parse(symbol string) (Phoneme, error) {
	p, ok := fromArpabet[StripStress(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return p, nil
}

// ParseIPA resolves an IPA symbol as produced by Phoneme.IPA.
func ParseIPA(symbol string) (Phoneme, error) {
	p, ok := fromIPA[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return p, nil
}

// StripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet symbol.
func StripStress(symbol string) string {
	if len(symbol) == 0 {
		return symbol
	}
	last := symbol[len(symbol)-1]
	if last == '0' || last == '1' || last == '2' {
		return symbol[:len(symbol)-1]
	}
	return symbol
}

// Valid reports whether p is one of the enumerated phonemes.
func (p Phoneme) Valid() bool { return p < numPhonemes }

// String returns the ARPAbet symbol.
func (p Phoneme) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phoneme(%d)", uint8(p))
	}
	return arpabet[p]
}

// IPA returns the IPA symbol.
func (p Phoneme) IPA() string {
	if !p.Valid() {
		return ""
	}
	return ipa[p]
}

// IsVowel reports whether p can form a syllable nucleus.
func (p Phoneme) IsVowel() bool { return p.Valid() && vowel[p] }

// IsConsonant reports whether p is not a vowel.
func (p Phoneme) IsConsonant() bool { return p.Valid() && !vowel[p] }

// All returns the complete phoneme inventory in declaration order.
func All() []Phoneme {
	all := make([]Phoneme, numPhonemes)
	for i := range all {
		all[i] = Phoneme(i)
	}
	return all
}
