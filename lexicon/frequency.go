package lexicon

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// DefaultFrequencyLimit is the number of frequency-list lines read by default.
const DefaultFrequencyLimit = 60000

// LoadFrequencies reads a word-frequency list, most frequent first.
// Only the first tab-separated field of each line is used. Words are
// lower-cased and de-duplicated, keeping the first rank. At most limit lines
// are read; limit <= 0 reads everything.
func LoadFrequencies(r io.Reader, limit int) ([]string, error) {
	var words []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		if limit > 0 && n >= limit {
			break
		}
		n++
		field, _, _ := strings.Cut(scanner.Text(), "\t")
		w := strings.ToLower(strings.TrimSpace(field))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFrequencyFile is a convenience wrapper that opens a file path.
func LoadFrequencyFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFrequencies(f, limit)
}
