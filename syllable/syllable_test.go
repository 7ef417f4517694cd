package syllable

import (
	"errors"
	"testing"

	"github.com/ieee0824/fakeword-go/phoneme"
)

func phonemeStr(ps []phoneme.Phoneme) string {
	return Syllable(ps).String()
}

func TestSplit(t *testing.T) {
	tests := []struct {
		arpabet              string
		onset, nucleus, coda string
		ok                   bool
	}{
		{"HH AW S", "H", "AW", "S", true},
		{"S T R AY K", "S T R", "AY", "K", true},
		{"AY", "", "AY", "", true},
		{"IY T", "", "IY", "T", true},
		{"S P R IH NG Z", "S P R", "IH", "NG Z", true},
		{"K IY AH N", "K", "IY AH", "N", true},
		{"S T", "", "", "", false},
		{"K AE T AH", "", "", "", false},
		{"", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.arpabet, func(t *testing.T) {
			s := MustParse(tt.arpabet)
			onset, nucleus, coda, ok := s.Split()
			if ok != tt.ok {
				t.Fatalf("Split(%q) ok = %v, want %v", tt.arpabet, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := phonemeStr(onset); got != tt.onset {
				t.Errorf("onset = %q, want %q", got, tt.onset)
			}
			if got := phonemeStr(nucleus); got != tt.nucleus {
				t.Errorf("nucleus = %q, want %q", got, tt.nucleus)
			}
			if got := phonemeStr(coda); got != tt.coda {
				t.Errorf("coda = %q, want %q", got, tt.coda)
			}
		})
	}
}

func TestSplitDoesNotAlias(t *testing.T) {
	s := MustParse("S T R AY K")
	onset, _, _, _ := s.Split()
	onset = append(onset, phoneme.Y)
	if s[3] != phoneme.AY {
		t.Errorf("appending to onset overwrote the nucleus: %s", s)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("HH XX S")
	if !errors.Is(err, phoneme.ErrUnknownSymbol) {
		t.Fatalf("Parse error = %v, want ErrUnknownSymbol", err)
	}
}

func TestFirstLast(t *testing.T) {
	s := MustParse("K AE T")
	if p, ok := s.First(); !ok || p != phoneme.K {
		t.Errorf("First = %s, %v", p, ok)
	}
	if p, ok := s.Last(); !ok || p != phoneme.T {
		t.Errorf("Last = %s, %v", p, ok)
	}
	if _, ok := Syllable(nil).Last(); ok {
		t.Error("Last on empty syllable should report false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := MustParse("K AE T")
	c := s.Clone()
	c[0] = phoneme.B
	if s[0] != phoneme.K {
		t.Error("Clone shares storage with the original")
	}
	if !s.Equal(MustParse("K AE1 T")) {
		t.Error("Equal should ignore stress markers after parsing")
	}
}

func TestIPA(t *testing.T) {
	if got := MustParse("HH AW S").IPA(); got != "haʊs" {
		t.Errorf("IPA = %q, want haʊs", got)
	}
}
