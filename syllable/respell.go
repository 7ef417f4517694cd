package syllable

import (
	"strings"
	"unicode/utf8"
)

// respellKey maps IPA fragments to English respellings.
// When several fragments match, the longest wins; equal lengths fall back to
// table order.
var respellKey = []struct {
	english string
	ipa     string
}{
	// r-coloured and gliding sequences
	{"ire", "aɪər"},
	{"oir", "ɔɪər"},
	{"our", "aʊər"},
	{"eer", "ɪər"},
	{"air", "ɛər"},
	{"ure", "jʊər"},
	{"ur", "ɜːr"},
	{"ew", "juː"},
	{"eye", "aɪ"},
	{"err", "ɛr"},
	{"irr", "ɪr"},
	{"urr", "ʌr"},
	{"uurr", "ʊr"},
	{"uhr", "ər"},
	{"oor", "ʊər"},
	{"or", "ɔːr"},
	{"orr", "ɒr"},
	{"oh", "oʊ"},
	{"oo", "uː"},
	{"ar", "ɑːr"},
	{"arr", "ær"},
	{"y", "aɪ"},
	{"ay", "eɪ"},
	{"ee", "iː"},
	{"aw", "ɔː"},
	{"ow", "aʊ"},
	{"oy", "ɔɪ"},
	{"ah", "ɑː"},
	{"ah", "ɑ"},
	{"ee", "i"},
	{"oo", "u"},
	{"aw", "ɔ"},
	{"uh", "ə"},

	// short vowels
	{"a", "æ"},
	{"o", "ɒ"},
	{"uu", "ʊ"},
	{"i", "ɪ"},
	{"u", "ʌ"},
	{"e", "ɛ"},

	// consonants
	{"j", "dʒ"},
	{"nk", "ŋk"},
	{"wh", "hw"},
	{"b", "b"},
	{"ch", "tʃ"},
	{"d", "d"},
	{"dh", "ð"},
	{"f", "f"},
	{"g", "ɡ"},
	{"h", "h"},
	{"k", "k"},
	{"kh", "x"},
	{"l", "l"},
	{"l", "ɫ"},
	{"m", "m"},
	{"n", "n"},
	{"ng", "ŋ"},
	{"p", "p"},
	{"r", "ɹ"},
	{"r", "r"},
	{"s", "s"},
	{"sh", "ʃ"},
	{"t", "t"},
	{"th", "θ"},
	{"v", "v"},
	{"w", "w"},
	{"y", "j"},
	{"z", "z"},
	{"zh", "ʒ"},
}

// syllableEnders respell a lone short vowel closing a syllable.
var syllableEnders = []struct {
	english string
	ipa     string
}{
	{"ih", "ɪ"},
	{"uh", "ʌ"},
	{"eh", "ɛ"},
}

// Respell converts an IPA string into an English-letter approximation.
// Fragments without a rule are copied through unchanged.
func Respell(ipa string) string {
	var b strings.Builder
	for len(ipa) > 0 {
		if end, ok := ender(ipa); ok {
			b.WriteString(end)
			break
		}
		if english, n := longestRule(ipa); n > 0 {
			b.WriteString(english)
			ipa = ipa[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(ipa)
		b.WriteString(ipa[:size])
		ipa = ipa[size:]
	}
	return b.String()
}

func ender(rest string) (string, bool) {
	for _, e := range syllableEnders {
		if rest == e.ipa {
			return e.english, true
		}
	}
	return "", false
}

func longestRule(rest string) (string, int) {
	english, best := "", 0
	for _, r := range respellKey {
		if len(r.ipa) > best && strings.HasPrefix(rest, r.ipa) {
			english, best = r.english, len(r.ipa)
		}
	}
	return english, best
}
