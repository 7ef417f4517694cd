package lexicon

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/syllable"
)

func testDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := ParseDictionary(context.Background(), strings.NewReader(testDict), 2)
	require.NoError(t, err)
	return d
}

func TestOrder(t *testing.T) {
	d := testDictionary(t)
	c := d.Order([]string{"tiger", "missing", "cat", "tiger"})
	assert.Equal(t, []string{"tiger", "cat", "house", "housing", "zebra"}, c.Words())
	assert.Equal(t, 5, c.Len())

	e, ok := c.Lookup("housing")
	require.True(t, ok)
	assert.Equal(t, "housing", e.Word)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupFirstEntryWins(t *testing.T) {
	c := NewCorpus([]Entry{
		{Word: "kitten", Syllables: []syllable.Syllable{syllable.MustParse("K IH"), syllable.MustParse("T AH N")}},
		{Word: "kitten", Syllables: []syllable.Syllable{syllable.MustParse("K IH"), syllable.MustParse("T N")}},
	})
	e, ok := c.Lookup("kitten")
	require.True(t, ok)
	assert.Equal(t, "T AH N", e.Syllables[1].String())
}

func TestCorpusSaveLoad(t *testing.T) {
	c := testDictionary(t).Order([]string{"zebra"})

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	got, err := LoadCorpus(&buf)
	require.NoError(t, err)

	require.Equal(t, c.Words(), got.Words())
	for i := range c.Entries {
		assert.Equal(t, c.Entries[i].Syllables, got.Entries[i].Syllables)
	}
}

func TestLoadCorpusGarbage(t *testing.T) {
	_, err := LoadCorpus(strings.NewReader("not a gob stream"))
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	c := testDictionary(t).Order(nil)

	e, dist, ok := c.Nearest([]phoneme.Phoneme{phoneme.K, phoneme.AE, phoneme.T}, 2)
	require.True(t, ok)
	assert.Equal(t, "cat", e.Word)
	assert.Equal(t, 0, dist)

	// "mouse" is one substitution away from "house".
	e, dist, ok = c.Nearest([]phoneme.Phoneme{phoneme.M, phoneme.AW, phoneme.S}, 2)
	require.True(t, ok)
	assert.Equal(t, "house", e.Word)
	assert.Equal(t, 1, dist)

	_, _, ok = c.Nearest([]phoneme.Phoneme{phoneme.OY, phoneme.OY, phoneme.OY, phoneme.OY}, 1)
	assert.False(t, ok)
}
