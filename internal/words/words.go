// apps/go-solver/internal/words/words.go
//
// Loads the word data the solver runs on.
//
// Responsibilities:
//   - Load the dictionary ("word count" per line) from a configured file or the embedded default.
//   - Load the list of previously used answers the same way.
//   - Build the immutable solver.Corpus from the dictionary.
//
// File format:
//   • One entry per line; blank lines and lines starting with '#' are ignored.
//   • "word count": count is a non-negative integer occurrence count used as the weight.
//   • A line holding only a word gets weight 1.
//   • Words that are not 5 letters a–z are skipped; duplicates have their counts summed.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// LoadCorpus reads the dictionary at path, or the embedded one if path is empty.
func LoadCorpus(path string) (*solver.Corpus, error) {
	rc, err := open(path, assets.Dictionary)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, err := ParseDictionary(rc)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", describe(path), err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary %s: no words", describe(path))
	}
	return solver.NewCorpus(entries)
}

// LoadAnswers reads the answer list at path, or the embedded one if path is empty.
func LoadAnswers(path string) ([]string, error) {
	rc, err := open(path, assets.Answers)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := ParseAnswers(rc)
	if err != nil {
		return nil, fmt.Errorf("answers %s: %w", describe(path), err)
	}
	return out, nil
}

// ParseDictionary parses "word count" lines into corpus entries in first-seen order.
func ParseDictionary(r io.Reader) ([]solver.Entry, error) {
	var out []solver.Entry
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		w := strings.ToLower(fields[0])
		if !game.IsWord(w) {
			continue
		}

		weight := 1.0
		switch len(fields) {
		case 1:
		case 2:
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad count %q", line, fields[1])
			}
			weight = float64(n)
		default:
			return nil, fmt.Errorf("line %d: want \"word count\", got %q", line, sc.Text())
		}

		if i, ok := seen[w]; ok {
			out[i].Weight += weight
			continue
		}
		seen[w] = len(out)
		out = append(out, solver.Entry{Word: w, Weight: weight})
	}
	return out, sc.Err()
}

// ParseAnswers reads one word per line, lowercased, keeping valid 5-letter words.
func ParseAnswers(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(strings.ToLower(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if game.IsWord(s) {
			out = append(out, s)
		}
	}
	return out, sc.Err()
}

func open(path string, embedded func() (io.ReadCloser, error)) (io.ReadCloser, error) {
	if path == "" {
		return embedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func describe(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
