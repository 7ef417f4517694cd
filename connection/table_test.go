package connection

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/fakeword-go/lexicon"
	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/sonority"
	"github.com/ieee0824/fakeword-go/syllable"
)

func corpus(words ...string) *lexicon.Corpus {
	entries := make([]lexicon.Entry, len(words))
	for i, w := range words {
		var syls []syllable.Syllable
		for _, s := range strings.Split(w, ".") {
			syls = append(syls, syllable.MustParse(s))
		}
		entries[i] = lexicon.Entry{Word: w, Syllables: syls}
	}
	return lexicon.NewCorpus(entries)
}

var testCorpus = corpus(
	"HH AW S.B IH",
	"K AE T.B IH",
	"K AE T.K AH M",
	"D AO G", // monosyllabic, ignored
)

func ph(p phoneme.Phoneme) sonority.NodeData { return sonority.PhonemeData(p) }

func TestBuildWeighted(t *testing.T) {
	tbl := Build(testCorpus, PolicyWeighted)

	assert.Equal(t, []Edge{{ph(phoneme.H), 1}, {ph(phoneme.K), 2}}, tbl.Successors(sonority.Start))
	assert.Equal(t, []Edge{{ph(phoneme.B), 1}, {ph(phoneme.K), 1}}, tbl.Successors(ph(phoneme.T)))
	assert.Equal(t, []Edge{{ph(phoneme.B), 1}}, tbl.Successors(ph(phoneme.S)))
	assert.Equal(t, []Edge{{sonority.Stop, 2}}, tbl.Successors(ph(phoneme.IH)))
	assert.Equal(t, []Edge{{sonority.Stop, 1}}, tbl.Successors(ph(phoneme.M)))
	assert.Empty(t, tbl.Successors(ph(phoneme.G)), "monosyllabic words are not recorded")
	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, PolicyWeighted, tbl.Policy())
}

func TestBuildFirstSuccessor(t *testing.T) {
	tbl := Build(testCorpus, PolicyFirstSuccessor)

	assert.Equal(t, []Edge{{ph(phoneme.H), 3}}, tbl.Successors(sonority.Start))
	assert.Equal(t, []Edge{{ph(phoneme.B), 2}}, tbl.Successors(ph(phoneme.T)))

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		assert.Equal(t, ph(phoneme.H), tbl.Next(sonority.Start, rng))
	}
}

func TestNextWeighted(t *testing.T) {
	tbl := Build(testCorpus, PolicyWeighted)
	rng := rand.New(rand.NewPCG(3, 4))

	seen := map[sonority.NodeData]int{}
	for i := 0; i < 300; i++ {
		seen[tbl.Next(sonority.Start, rng)]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[ph(phoneme.K)], seen[ph(phoneme.H)])
}

func TestNextUnknownIsStop(t *testing.T) {
	tbl := New(PolicyWeighted)
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Equal(t, sonority.Stop, tbl.Next(sonority.Start, rng))
	assert.Equal(t, sonority.Stop, tbl.Next(ph(phoneme.ZH), rng))
}

func TestAddWordRejects(t *testing.T) {
	tbl := New(PolicyWeighted)
	assert.False(t, tbl.AddWord([]syllable.Syllable{syllable.MustParse("K AE T")}))
	assert.False(t, tbl.AddWord([]syllable.Syllable{syllable.MustParse("K AE"), nil}))
	assert.Zero(t, tbl.Len())
}

func TestSaveLoad(t *testing.T) {
	for _, policy := range []Policy{PolicyWeighted, PolicyFirstSuccessor} {
		t.Run(policy.String(), func(t *testing.T) {
			tbl := Build(testCorpus, policy)
			var buf bytes.Buffer
			require.NoError(t, tbl.Save(&buf))

			loaded, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, policy, loaded.Policy())
			require.Equal(t, tbl.Sources(), loaded.Sources())
			for _, src := range tbl.Sources() {
				assert.Equal(t, tbl.Successors(src), loaded.Successors(src), src.String())
			}
		})
	}
}

func TestLoadCorrupt(t *testing.T) {
	_, err := Load(strings.NewReader("garbage"))
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyWeighted, PolicyFirstSuccessor} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("random")
	assert.Error(t, err)
}
