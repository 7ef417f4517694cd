package phoneme

import (
	"errors"
	"testing"
)

func TestTablesExhaustive(t *testing.T) {
	all := All()
	if len(all) != 50 {
		t.Fatalf("len(All) = %d, want 50", len(all))
	}
	for _, p := range all {
		if p.String() == "" || p.IPA() == "" {
			t.Errorf("%d has an empty symbol", p)
		}
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %s, want %s", p.String(), got, p)
		}
		got, err = ParseIPA(p.IPA())
		if err != nil {
			t.Fatalf("ParseIPA(%q) error: %v", p.IPA(), err)
		}
		if got != p {
			t.Errorf("ParseIPA(%q) = %s, want %s", p.IPA(), got, p)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		symbol string
		want   Phoneme
	}{
		{"AH0", AH},
		{"AW1", AW},
		{"IY2", IY},
		{"HH", H},
		{"H", H},
		{"NG", NG},
		{"AXR", AXR},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := Parse(tt.symbol)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, sym := range []string{"", "XX", "ah", "AH3"} {
		if _, err := Parse(sym); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownSymbol", sym, err)
		}
	}
}

func TestVowelClassification(t *testing.T) {
	vowels := 0
	for _, p := range All() {
		if p.IsVowel() == p.IsConsonant() {
			t.Errorf("%s is both or neither vowel and consonant", p)
		}
		if p.IsVowel() {
			vowels++
		}
	}
	if vowels != 19 {
		t.Errorf("vowels = %d, want 19", vowels)
	}
	if !UW.IsVowel() || S.IsVowel() || EL.IsVowel() {
		t.Error("unexpected vowel classification for UW, S or EL")
	}
}

func TestPositionNext(t *testing.T) {
	next, ok := Onset.Next()
	if !ok || next != Nucleus {
		t.Errorf("Onset.Next() = %v, %v", next, ok)
	}
	next, ok = Nucleus.Next()
	if !ok || next != Coda(1) {
		t.Errorf("Nucleus.Next() = %v, %v", next, ok)
	}
	if _, ok := Coda(3).Next(); ok {
		t.Error("Coda has no successor")
	}
	if Coda(2).String() != "coda2" {
		t.Errorf("Coda(2).String() = %q", Coda(2).String())
	}
	if !Onset.Less(Coda(1)) || !Coda(1).Less(Coda(2)) || Coda(2).Less(Nucleus) {
		t.Error("unexpected Position ordering")
	}
}
