package lexicon

import (
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/ieee0824/fakeword-go/phoneme"
	"github.com/ieee0824/fakeword-go/syllable"
)

// Corpus is the ordered list of syllabified words that models are built from.
// Frequency-ranked words come first, in rank order, followed by every other
// dictionary word in alphabetical order.
type Corpus struct {
	Entries []Entry

	once  sync.Once
	index map[string]int
}

// NewCorpus wraps entries in their given order.
func NewCorpus(entries []Entry) *Corpus {
	return &Corpus{Entries: entries}
}

// Order arranges the dictionary into a corpus using a frequency ranking.
// Ranked words missing from the dictionary are ignored.
func (d *Dictionary) Order(freq []string) *Corpus {
	entries := make([]Entry, 0, len(d.Entries))
	used := make(map[string]bool, len(freq))
	for _, w := range freq {
		if used[w] {
			continue
		}
		e, ok := d.Entries[w]
		if !ok {
			continue
		}
		used[w] = true
		entries = append(entries, e)
	}
	for _, w := range d.Words() {
		if !used[w] {
			entries = append(entries, d.Entries[w])
		}
	}
	return NewCorpus(entries)
}

// Options controls corpus loading.
type Options struct {
	Workers        int // dictionary parse goroutines, 0 = GOMAXPROCS
	FrequencyLimit int // frequency-list lines to read, 0 = DefaultFrequencyLimit, < 0 = all
}

// Load reads the dictionary and frequency list and orders them into a corpus.
func Load(ctx context.Context, dictPath, freqPath string, opts Options) (*Corpus, Stats, error) {
	limit := opts.FrequencyLimit
	if limit == 0 {
		limit = DefaultFrequencyLimit
	}
	d, err := LoadDictionaryFile(ctx, dictPath, opts.Workers)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("load dictionary %s: %w", dictPath, err)
	}
	freq, err := LoadFrequencyFile(freqPath, limit)
	if err != nil {
		return nil, d.Stats, fmt.Errorf("load frequency list %s: %w", freqPath, err)
	}
	return d.Order(freq), d.Stats, nil
}

// Len returns the number of words.
func (c *Corpus) Len() int { return len(c.Entries) }

// Words returns the words in corpus order.
func (c *Corpus) Words() []string {
	words := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		words[i] = e.Word
	}
	return words
}

// Lookup returns the entry for word.
func (c *Corpus) Lookup(word string) (Entry, bool) {
	c.once.Do(func() {
		c.index = make(map[string]int, len(c.Entries))
		for i, e := range c.Entries {
			if _, dup := c.index[e.Word]; !dup {
				c.index[e.Word] = i
			}
		}
	})
	i, ok := c.index[word]
	if !ok {
		return Entry{}, false
	}
	return c.Entries[i], true
}

// Nearest returns the entry whose flattened pronunciation is closest to ps,
// considering only entries within maxDist edits. Ties go to the earlier entry.
func (c *Corpus) Nearest(ps []phoneme.Phoneme, maxDist int) (Entry, int, bool) {
	best, bestDist := -1, maxDist+1
	var flat []phoneme.Phoneme
	for i, e := range c.Entries {
		flat = flatten(flat[:0], e.Syllables)
		// Length difference is a lower bound on edit distance.
		if d := len(flat) - len(ps); d >= bestDist || -d >= bestDist {
			continue
		}
		if d := PhonemeEditDistance(ps, flat); d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	if best < 0 {
		return Entry{}, 0, false
	}
	return c.Entries[best], bestDist, true
}

func flatten(dst []phoneme.Phoneme, syls []syllable.Syllable) []phoneme.Phoneme {
	for _, s := range syls {
		dst = append(dst, s...)
	}
	return dst
}

const corpusVersion = 1

type serializedCorpus struct {
	Version int
	Words   []string
	Prons   [][][]uint8
}

// Save writes the corpus in gob format.
func (c *Corpus) Save(w io.Writer) error {
	sc := serializedCorpus{
		Version: corpusVersion,
		Words:   make([]string, len(c.Entries)),
		Prons:   make([][][]uint8, len(c.Entries)),
	}
	for i, e := range c.Entries {
		sc.Words[i] = e.Word
		syls := make([][]uint8, len(e.Syllables))
		for j, s := range e.Syllables {
			b := make([]uint8, len(s))
			for k, p := range s {
				b[k] = uint8(p)
			}
			syls[j] = b
		}
		sc.Prons[i] = syls
	}
	return gob.NewEncoder(w).Encode(&sc)
}

// LoadCorpus reads a corpus written by Save.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	var sc serializedCorpus
	if err := gob.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if sc.Version != corpusVersion {
		return nil, fmt.Errorf("corpus version %d, want %d", sc.Version, corpusVersion)
	}
	if len(sc.Words) != len(sc.Prons) {
		return nil, fmt.Errorf("corpus has %d words but %d pronunciations", len(sc.Words), len(sc.Prons))
	}
	entries := make([]Entry, len(sc.Words))
	for i, w := range sc.Words {
		syls := make([]syllable.Syllable, len(sc.Prons[i]))
		for j, b := range sc.Prons[i] {
			s := make(syllable.Syllable, len(b))
			for k, v := range b {
				p := phoneme.Phoneme(v)
				if !p.Valid() {
					return nil, fmt.Errorf("word %q: invalid phoneme %d", w, v)
				}
				s[k] = p
			}
			syls[j] = s
		}
		entries[i] = Entry{Word: w, Syllables: syls}
	}
	return NewCorpus(entries), nil
}

// Syllables yields every syllable of every entry in corpus order.
func (c *Corpus) Syllables() iter.Seq[syllable.Syllable] {
	return func(yield func(syllable.Syllable) bool) {
		for _, e := range c.Entries {
			for _, s := range e.Syllables {
				if !yield(s) {
					return
				}
			}
		}
	}
}
