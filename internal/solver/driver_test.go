package solver

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func newTestDriver(t *testing.T, c *Corpus, opening string) *Driver {
	t.Helper()
	return NewDriver(c, Options{
		Scorer:       NewScorer(PoolCandidates, StrategyWeighted, 2, zerolog.Nop()),
		OpeningGuess: opening,
		Logger:       zerolog.Nop(),
	})
}

func TestDriverDocumentedScenario(t *testing.T) {
	ctx := context.Background()
	d := newTestDriver(t, exampleCorpus(t), "")
	require.Equal(t, StateAwaitingGuess, d.State())

	best, err := d.Recommend(ctx)
	require.NoError(t, err)
	assert.Equal(t, "depot", best.Word)
	assert.Equal(t, StateAwaitingFeedback, d.State())
	assert.Equal(t, "depot", d.Pending())

	// the player typed a different word than the recommendation
	out, err := d.Submit("event mwwwc")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingGuess, out.State)
	assert.Equal(t, 2, out.Remaining)
	assert.Equal(t, []string{"depot", "least"}, d.Candidates().Words())
	assert.Equal(t, []GuessRecord{{Guess: "event", Pattern: mustPattern(t, "mwwwc")}}, d.History())

	best, err = d.Recommend(ctx)
	require.NoError(t, err)
	assert.Equal(t, "depot", best.Word)

	out, err = d.Feedback("depot", game.Encode("depot", "least"))
	require.NoError(t, err)
	assert.Equal(t, StateSolved, out.State)
	assert.Equal(t, "least", out.Answer)
	assert.Equal(t, "least", d.Answer())
}

func TestDriverInvalidFeedbackKeepsState(t *testing.T) {
	d := newTestDriver(t, exampleCorpus(t), "")
	_, err := d.Recommend(context.Background())
	require.NoError(t, err)
	before := d.Candidates()

	out, err := d.Submit("event wwwww")
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.Equal(t, StateAwaitingFeedback, out.State)
	assert.Equal(t, 4, out.Remaining)
	assert.Same(t, before, d.Candidates())
	assert.Empty(t, d.History())
}

func TestDriverInvalidInputKeepsState(t *testing.T) {
	d := newTestDriver(t, exampleCorpus(t), "")

	for _, line := range []string{"", "event", "event mwwwc extra", "even mwwwc", "event mwwwx", "event mwww", "3vent mwwwc"} {
		_, err := d.Submit(line)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q", line)
		assert.Equal(t, StateAwaitingGuess, d.State())
		assert.Equal(t, 4, d.Candidates().Len())
	}
}

func TestDriverPatternOnlyUsesPendingGuess(t *testing.T) {
	d := newTestDriver(t, exampleCorpus(t), "event")

	best, err := d.Recommend(context.Background())
	require.NoError(t, err)
	require.Equal(t, "event", best.Word)

	out, err := d.Submit("MWWWC")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Remaining)
	assert.Empty(t, d.Pending())
}

func TestDriverOpeningGuess(t *testing.T) {
	d := newTestDriver(t, exampleCorpus(t), "Tares")
	best, err := d.Recommend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tares", best.Word)
	assert.InDelta(t, 1.5, best.Entropy, 1e-12)

	// an opening outside the corpus falls back to ranking
	d = newTestDriver(t, exampleCorpus(t), "crane")
	best, err = d.Recommend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "depot", best.Word)
}

func TestDriverAllCorrectSolves(t *testing.T) {
	d := newTestDriver(t, exampleCorpus(t), "")

	out, err := d.Submit("tares ccccc")
	require.NoError(t, err)
	assert.Equal(t, StateSolved, out.State)
	assert.Equal(t, "tares", out.Answer)
	assert.Equal(t, 1, out.Remaining)

	_, err = d.Recommend(context.Background())
	assert.ErrorIs(t, err, ErrSessionOver)
	_, err = d.Submit("tares ccccc")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestDriverSingleWordCorpusIsSolved(t *testing.T) {
	d := newTestDriver(t, equalCorpus(t, "depot"), "")
	assert.Equal(t, StateSolved, d.State())
	assert.Equal(t, "depot", d.Answer())
}

func TestDriverEmptyCorpusIsExhausted(t *testing.T) {
	empty, err := NewCorpus(nil)
	require.NoError(t, err)
	d := newTestDriver(t, empty, "")
	assert.Equal(t, StateExhausted, d.State())

	_, err = d.Recommend(context.Background())
	assert.ErrorIs(t, err, ErrSessionOver)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_feedback", StateAwaitingFeedback.String())
	assert.Equal(t, "state(42)", State(42).String())
	assert.True(t, StateSolved.Terminal())
	assert.False(t, StateFiltering.Terminal())
}

func TestPlaySolvesEveryCorpusWord(t *testing.T) {
	c := equalCorpus(t, "depot", "least", "tares", "event", "speed", "abide", "crane", "geese", "eerie", "tepid")
	for _, secret := range c.Words() {
		g, err := game.New(secret, 6)
		require.NoError(t, err)

		rounds, ok, err := Play(context.Background(), newTestDriver(t, c, "tares"), g)
		require.NoError(t, err, secret)
		assert.True(t, ok, secret)
		assert.LessOrEqual(t, rounds, 6, secret)
		assert.Equal(t, secret, g.Guesses[len(g.Guesses)-1])
	}
}

func TestPlaySecretOutsideCorpus(t *testing.T) {
	g, err := game.New("zzzzz", 6)
	require.NoError(t, err)

	_, ok, err := Play(context.Background(), newTestDriver(t, exampleCorpus(t), ""), g)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}

func TestPlayLastCandidateIsNotTheAnswer(t *testing.T) {
	c := equalCorpus(t, "aaaab", "bbbbc", "ccccd")
	g, err := game.New("ddddd", 6)
	require.NoError(t, err)

	d := newTestDriver(t, c, "aaaab")
	rounds, ok, err := Play(context.Background(), d, g)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.False(t, ok)
	assert.Equal(t, 2, rounds)
	assert.Equal(t, []string{"aaaab", "ccccd"}, g.Guesses)
	assert.Equal(t, "ccccd", d.Answer())
}
