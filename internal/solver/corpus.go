// apps/go-solver/internal/solver/corpus.go
//
// Corpus and CandidateSet.
//   - Corpus is the immutable table of (word, weight) pairs loaded once at startup.
//   - CandidateSet references a Corpus and marks the live words with a bitset.
//     It only ever shrinks: Filter builds a new set and the Driver swaps it in.
//
// Probabilities are always taken relative to the live set so they sum to 1 over it.
// When every live word has weight 0 the set falls back to uniform probabilities.

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Entry is a corpus word with its frequency-derived weight.
type Entry struct {
	Word   string
	Weight float64
}

// Corpus is an immutable, ordered table of candidate words.
type Corpus struct {
	entries []Entry
	index   map[string]int
}

// NewCorpus validates entries and builds a Corpus.
// Words are lowercased; duplicates and negative weights are rejected.
func NewCorpus(entries []Entry) (*Corpus, error) {
	c := &Corpus{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		w, err := game.NormalizeWord(e.Word)
		if err != nil {
			return nil, fmt.Errorf("corpus entry %d: %w", len(c.entries), err)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("corpus entry %q: negative weight %v", w, e.Weight)
		}
		if _, dup := c.index[w]; dup {
			return nil, fmt.Errorf("corpus entry %q: %w", w, errDuplicateWord)
		}
		c.index[w] = len(c.entries)
		c.entries = append(c.entries, Entry{Word: w, Weight: e.Weight})
	}
	return c, nil
}

var errDuplicateWord = errors.New("duplicate word")

// Len returns the number of words in the corpus.
func (c *Corpus) Len() int { return len(c.entries) }

// Word returns the i-th word in load order.
func (c *Corpus) Word(i int) string { return c.entries[i].Word }

// Weight returns the i-th word's weight.
func (c *Corpus) Weight(i int) float64 { return c.entries[i].Weight }

// Lookup returns the index of w, if present.
func (c *Corpus) Lookup(w string) (int, bool) {
	i, ok := c.index[strings.ToLower(w)]
	return i, ok
}

// Contains reports whether w is a corpus word.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.Lookup(w)
	return ok
}

// Words returns all corpus words in load order.
func (c *Corpus) Words() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Word
	}
	return out
}

// CandidateSet is the live hypothesis space for the secret word.
type CandidateSet struct {
	corpus  *Corpus
	members *bitset.BitSet
	count   int
	total   float64
}

// NewCandidateSet returns a set holding every corpus word.
func NewCandidateSet(c *Corpus) *CandidateSet {
	members := bitset.New(uint(c.Len()))
	var total float64
	for i := 0; i < c.Len(); i++ {
		members.Set(uint(i))
		total += c.Weight(i)
	}
	return &CandidateSet{corpus: c, members: members, count: c.Len(), total: total}
}

// newCandidateSet wraps an already-built membership bitset.
func newCandidateSet(c *Corpus, members *bitset.BitSet) *CandidateSet {
	s := &CandidateSet{corpus: c, members: members, count: int(members.Count())}
	s.each(func(i int) { s.total += c.Weight(i) })
	return s
}

// Corpus returns the corpus the set refers to.
func (s *CandidateSet) Corpus() *Corpus { return s.corpus }

// Len returns the number of live candidates.
func (s *CandidateSet) Len() int { return s.count }

// Contains reports whether w is a live candidate.
func (s *CandidateSet) Contains(w string) bool {
	i, ok := s.corpus.Lookup(w)
	return ok && s.members.Test(uint(i))
}

// Words returns the live candidates in corpus order.
func (s *CandidateSet) Words() []string {
	out := make([]string, 0, s.count)
	s.each(func(i int) { out = append(out, s.corpus.Word(i)) })
	return out
}

// TotalWeight is the sum of the live candidates' weights.
func (s *CandidateSet) TotalWeight() float64 { return s.total }

// Probability returns w's normalized weight within the set, 0 if w is not live.
func (s *CandidateSet) Probability(w string) float64 {
	i, ok := s.corpus.Lookup(w)
	if !ok || !s.members.Test(uint(i)) {
		return 0
	}
	return s.weight(i) / s.mass()
}

// Equal reports whether both sets hold the same members of the same corpus.
func (s *CandidateSet) Equal(o *CandidateSet) bool {
	return s.corpus == o.corpus && s.members.Equal(o.members)
}

// weight is the effective weight of corpus index i, uniform when the set has no mass.
func (s *CandidateSet) weight(i int) float64 {
	if s.total == 0 {
		return 1
	}
	return s.corpus.Weight(i)
}

// mass is the denominator for probabilities within the set.
func (s *CandidateSet) mass() float64 {
	if s.total == 0 {
		return float64(s.count)
	}
	return s.total
}

// each calls fn with every live corpus index in ascending order.
func (s *CandidateSet) each(fn func(i int)) {
	for i, ok := s.members.NextSet(0); ok; i, ok = s.members.NextSet(i + 1) {
		fn(int(i))
	}
}
