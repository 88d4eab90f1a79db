// apps/go-solver/internal/solver/scorer.go
//
// Expected-information scoring of guesses.
//
// For a guess g over a candidate set, every candidate is treated as the secret
// and bucketed by Encode(g, candidate). With P(pattern) the weight share of a
// bucket, the entropy of g is -Σ P·log2 P. Under the weighted strategy the
// final value is Probability(g) · entropy, so guesses that can themselves win
// are preferred; the entropy strategy uses the entropy alone.
//
// Ranking order (RankAll):
//   1. higher Value
//   2. higher Entropy
//   3. lexicographically smaller Word
//
// RankAll fans the guess pool out over a fixed errgroup worker pool. Workers
// only read the corpus and candidate set and write to their own result slots;
// the final sort makes the ranking independent of scheduling order.

package solver

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// GuessPool selects which words are considered as guesses.
type GuessPool string

const (
	// PoolCandidates only suggests words that can still be the answer.
	PoolCandidates GuessPool = "candidates"
	// PoolCorpus suggests any corpus word, scored against the live candidates.
	PoolCorpus GuessPool = "corpus"
)

// ParseGuessPool validates a pool name.
func ParseGuessPool(s string) (GuessPool, error) {
	switch GuessPool(s) {
	case PoolCandidates, PoolCorpus:
		return GuessPool(s), nil
	case "":
		return PoolCandidates, nil
	}
	return "", fmt.Errorf("unknown guess pool %q (want %q or %q)", s, PoolCandidates, PoolCorpus)
}

// Strategy selects how a guess's Value is derived from its entropy.
type Strategy string

const (
	// StrategyWeighted values a guess at Probability · Entropy.
	StrategyWeighted Strategy = "weighted"
	// StrategyEntropy values a guess at its Entropy alone.
	StrategyEntropy Strategy = "entropy"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyWeighted, StrategyEntropy:
		return Strategy(s), nil
	case "":
		return StrategyWeighted, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyWeighted, StrategyEntropy)
}

// Score is the evaluation of one guess against a candidate set.
type Score struct {
	Word        string  `json:"word"`
	Value       float64 `json:"value"`       // Probability * Entropy, or Entropy
	Entropy     float64 `json:"entropy"`     // expected information in bits
	Probability float64 `json:"probability"` // Pw of the guess within the set
}

// Less reports whether a ranks ahead of b.
func Less(a, b Score) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if a.Entropy != b.Entropy {
		return a.Entropy > b.Entropy
	}
	return a.Word < b.Word
}

// Entropy returns the expected information, in bits, of guessing guess
// against set. Empty buckets contribute nothing; an empty set or a guess that
// is not a five-letter word yields 0.
func Entropy(set *CandidateSet, guess string) float64 {
	guess, err := game.NormalizeWord(guess)
	if err != nil || set.Len() == 0 {
		return 0
	}
	return entropy(set, guess)
}

// entropy expects a normalized guess.
func entropy(set *CandidateSet, guess string) float64 {
	var buckets [game.NumPatterns]float64
	set.each(func(i int) {
		buckets[game.Encode(guess, set.corpus.Word(i))] += set.weight(i)
	})

	mass := set.mass()
	h := 0.0
	for _, w := range buckets {
		if w == 0 {
			continue
		}
		p := w / mass
		h -= p * math.Log2(p)
	}
	if h < 0 {
		// rounding when a single bucket holds all the mass
		h = 0
	}
	return h
}

// ScoreGuess evaluates guess against set with the weighted strategy.
// Words that are not five letters a-z score zero under their given spelling.
func ScoreGuess(set *CandidateSet, guess string) Score {
	w, err := game.NormalizeWord(guess)
	if err != nil {
		return Score{Word: guess}
	}
	var h float64
	if set.Len() > 0 {
		h = entropy(set, w)
	}
	pw := set.Probability(w)
	return Score{Word: w, Value: pw * h, Entropy: h, Probability: pw}
}

// Scorer ranks guess pools against candidate sets.
type Scorer struct {
	pool     GuessPool
	strategy Strategy
	workers  int
	log      zerolog.Logger
}

// NewScorer builds a Scorer. An empty pool or strategy takes the default;
// a non-positive workers uses runtime.NumCPU().
func NewScorer(pool GuessPool, strategy Strategy, workers int, logger zerolog.Logger) *Scorer {
	if pool == "" {
		pool = PoolCandidates
	}
	if strategy == "" {
		strategy = StrategyWeighted
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scorer{pool: pool, strategy: strategy, workers: workers, log: logger}
}

// Pool returns the configured guess pool.
func (s *Scorer) Pool() GuessPool { return s.pool }

// Strategy returns the configured scoring strategy.
func (s *Scorer) Strategy() Strategy { return s.strategy }

// Score evaluates guess against set under the scorer's strategy.
func (s *Scorer) Score(set *CandidateSet, guess string) Score {
	sc := ScoreGuess(set, guess)
	if s.strategy == StrategyEntropy {
		sc.Value = sc.Entropy
	}
	return sc
}

// guesses returns the words to score for set.
func (s *Scorer) guesses(set *CandidateSet) []string {
	if s.pool == PoolCorpus {
		return set.corpus.Words()
	}
	return set.Words()
}

// RankAll scores every word of the guess pool against set and returns them
// best first. The result is deterministic for a given set and pool.
func (s *Scorer) RankAll(ctx context.Context, set *CandidateSet) ([]Score, error) {
	if set.Len() == 0 {
		return nil, ErrExhausted
	}
	guesses := s.guesses(set)
	out := make([]Score, len(guesses))

	chunk := (len(guesses) + s.workers - 1) / s.workers
	if chunk < 1 {
		chunk = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for lo := 0; lo < len(guesses); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(guesses))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = s.Score(set, guesses[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("rank guesses: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })

	s.log.Debug().
		Int("guesses", len(guesses)).
		Int("candidates", set.Len()).
		Str("pool", string(s.pool)).
		Str("strategy", string(s.strategy)).
		Str("best", out[0].Word).
		Float64("value", out[0].Value).
		Msg("ranked guesses")
	return out, nil
}

// Best returns the top-ranked guess for set.
func (s *Scorer) Best(ctx context.Context, set *CandidateSet) (Score, error) {
	ranked, err := s.RankAll(ctx, set)
	if err != nil {
		return Score{}, err
	}
	return ranked[0], nil
}
