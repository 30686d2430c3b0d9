// internal/words/words.go
//
// Vocabulary management for the attempt endpoints.
//
// Responsibilities:
//   - Load a newline-delimited word file into an ordered, deduplicated Vocabulary.
//   - Fall back to the small embedded lists in assets when no file is configured.
//   - Group vocabularies per word length (Set).
//
// Constraints:
//   • Every word of a Vocabulary has the same length.
//   • Words are lowercased and trimmed; empty lines are skipped.
//   • A Vocabulary is read-only once built and safe to share between requests.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle-api/assets"
)

var (
	ErrEmptyVocabulary = errors.New("words: vocabulary is empty")
	ErrMixedLengths    = errors.New("words: vocabulary mixes word lengths")
)

// Vocabulary is an immutable ordered list of distinct lowercase words sharing one length.
type Vocabulary struct {
	words  []string
	set    map[string]struct{}
	length int
}

// New builds a Vocabulary from words, keeping the first occurrence of duplicates.
func New(list []string) (*Vocabulary, error) {
	list = lo.Uniq(list)
	if len(list) == 0 {
		return nil, ErrEmptyVocabulary
	}
	length := utf8.RuneCountInString(list[0])
	for _, w := range list[1:] {
		if utf8.RuneCountInString(w) != length {
			return nil, fmt.Errorf("%w: %q is not %d letters long", ErrMixedLengths, w, length)
		}
	}
	return &Vocabulary{
		words:  list,
		set:    lo.SliceToMap(list, func(w string) (string, struct{}) { return w, struct{}{} }),
		length: length,
	}, nil
}

// Words returns a copy of the words in file order.
func (v *Vocabulary) Words() []string { return append([]string(nil), v.words...) }

// Len reports how many words the vocabulary holds.
func (v *Vocabulary) Len() int { return len(v.words) }

// At returns the i-th word.
func (v *Vocabulary) At(i int) string { return v.words[i] }

// WordLength is the length shared by every word.
func (v *Vocabulary) WordLength() int { return v.length }

// Contains reports whether w (already normalized) is part of the vocabulary.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[w]
	return ok
}

// Load reads a word file, one word per line.
// Errors opening or reading the file are returned as-is (wrapped with the path).
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlefile %s: %w", path, err)
	}
	defer f.Close()

	list, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read wordlefile %s: %w", path, err)
	}
	return New(list)
}

// Embedded returns the built-in vocabulary for length (6, 7 or 8).
func Embedded(length int) (*Vocabulary, error) {
	f, err := assets.WordList(length)
	if err != nil {
		return nil, fmt.Errorf("embedded word list for %d letters: %w", length, err)
	}
	defer f.Close()

	list, err := readLines(f)
	if err != nil {
		return nil, err
	}
	return New(list)
}

// readLines splits r on line breaks, trimming and lowercasing each line
// and dropping the empty ones.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Set holds one Vocabulary per word length.
type Set struct {
	byLength map[int]*Vocabulary
}

// NewSet indexes vocabularies by their word length. A later vocabulary
// with the same length replaces an earlier one.
func NewSet(vocabs ...*Vocabulary) *Set {
	s := &Set{byLength: make(map[int]*Vocabulary, len(vocabs))}
	for _, v := range vocabs {
		s.byLength[v.WordLength()] = v
	}
	return s
}

// Get returns the vocabulary for length, if any.
func (s *Set) Get(length int) (*Vocabulary, bool) {
	v, ok := s.byLength[length]
	return v, ok
}

// Lengths lists the supported word lengths in ascending order.
func (s *Set) Lengths() []int {
	out := lo.Keys(s.byLength)
	sort.Ints(out)
	return out
}
