package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ieee0824/fakeword-go/syllable"
)

// Entry is a dictionary word with its syllabified pronunciation.
type Entry struct {
	Word      string
	Syllables []syllable.Syllable
}

// Stats counts what happened to each dictionary line.
type Stats struct {
	TotalLines     int
	CommentLines   int
	VariantLines   int
	ParsedWords    int
	InvalidWords   int // malformed line or a syllable that does not split
	DuplicateWords int
}

func (s *Stats) add(o Stats) {
	s.TotalLines += o.TotalLines
	s.CommentLines += o.CommentLines
	s.VariantLines += o.VariantLines
	s.ParsedWords += o.ParsedWords
	s.InvalidWords += o.InvalidWords
	s.DuplicateWords += o.DuplicateWords
}

// Dictionary holds word-to-pronunciation mappings.
type Dictionary struct {
	Entries map[string]Entry
	Stats   Stats
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string]Entry),
	}
}

// Lookup returns the entry for word.
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	e, ok := d.Entries[word]
	return e, ok
}

// Words returns all words in the dictionary, sorted.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

var (
	errComment = errors.New("comment line")
	errVariant = errors.New("variant pronunciation")
	errInvalid = errors.New("invalid entry")
)

var variantRE = regexp.MustCompile(`\(\d+\)$`)

// ParseDictionary reads a syllabified CMU-style dictionary.
// Format: WORD<two spaces>PH PH . PH PH ... where "." separates syllables and
// phonemes may carry a stress digit. When the pronunciation contains "/",
// only the syllabified part after it is used.
// Lines are parsed by up to workers goroutines (0 = GOMAXPROCS); an unknown
// phoneme symbol aborts the parse.
func ParseDictionary(ctx context.Context, r io.Reader, workers int) (*Dictionary, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunkSize := (len(lines) + workers - 1) / workers
	if chunkSize == 0 {
		chunkSize = 1
	}

	var chunks []*chunkResult
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(lines); start += chunkSize {
		end := min(start+chunkSize, len(lines))
		c := &chunkResult{entries: make(map[string]Entry)}
		chunks = append(chunks, c)
		g.Go(func() error {
			return c.parse(gctx, lines[start:end], start)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := NewDictionary()
	for _, c := range chunks {
		d.Stats.add(c.stats)
		for _, w := range c.order {
			if _, dup := d.Entries[w]; dup {
				d.Stats.DuplicateWords++
				d.Stats.ParsedWords--
				continue
			}
			d.Entries[w] = c.entries[w]
		}
	}
	return d, nil
}

// chunkResult is one worker's local view; chunks are merged in line order so
// the earliest occurrence of a word wins.
type chunkResult struct {
	entries map[string]Entry
	order   []string
	stats   Stats
}

func (c *chunkResult) parse(ctx context.Context, lines []string, offset int) error {
	for i, line := range lines {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		c.stats.TotalLines++
		word, syls, err := parseLine(line)
		switch {
		case errors.Is(err, errComment):
			c.stats.CommentLines++
			continue
		case errors.Is(err, errVariant):
			c.stats.VariantLines++
			continue
		case errors.Is(err, errInvalid):
			c.stats.InvalidWords++
			continue
		case err != nil:
			return fmt.Errorf("line %d: %w", offset+i+1, err)
		}
		if _, dup := c.entries[word]; dup {
			c.stats.DuplicateWords++
			continue
		}
		c.stats.ParsedWords++
		c.entries[word] = Entry{Word: word, Syllables: syls}
		c.order = append(c.order, word)
	}
	return nil
}

// parseLine parses a single dictionary line.
func parseLine(line string) (string, []syllable.Syllable, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";;;") {
		return "", nil, errComment
	}

	rawWord, pron, found := strings.Cut(trimmed, "  ")
	if !found {
		rawWord, pron, found = strings.Cut(trimmed, "\t")
	}
	if !found {
		return "", nil, errInvalid
	}
	rawWord = strings.TrimSpace(rawWord)
	if variantRE.MatchString(rawWord) {
		return "", nil, errVariant
	}
	if i := strings.LastIndex(pron, "/"); i >= 0 {
		pron = pron[i+1:]
	}

	var syls []syllable.Syllable
	for _, group := range strings.Split(pron, ".") {
		if strings.TrimSpace(group) == "" {
			continue
		}
		s, err := syllable.Parse(group)
		if err != nil {
			return "", nil, err
		}
		if !s.Valid() {
			return "", nil, errInvalid
		}
		syls = append(syls, s)
	}
	if rawWord == "" || len(syls) == 0 {
		return "", nil, errInvalid
	}
	return strings.ToLower(rawWord), syls, nil
}

// LoadDictionaryFile is a convenience wrapper that opens a file path.
func LoadDictionaryFile(ctx context.Context, path string, workers int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDictionary(ctx, f, workers)
}
