package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func TestNewCorpus(t *testing.T) {
	c, err := NewCorpus([]Entry{{"DEPOT", 3}, {"least", 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"depot", "least"}, c.Words())

	i, ok := c.Lookup("Depot")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 3.0, c.Weight(i))
	assert.False(t, c.Contains("tares"))
}

func TestNewCorpusRejects(t *testing.T) {
	_, err := NewCorpus([]Entry{{"dep", 1}})
	assert.ErrorIs(t, err, game.ErrInvalidWord)

	_, err = NewCorpus([]Entry{{"depot", -1}})
	assert.ErrorContains(t, err, "negative weight")

	_, err = NewCorpus([]Entry{{"depot", 1}, {"DEPOT", 2}})
	assert.ErrorIs(t, err, errDuplicateWord)
}

func TestCandidateSetProbabilities(t *testing.T) {
	c, err := NewCorpus([]Entry{{"depot", 3}, {"least", 1}, {"tares", 0}})
	require.NoError(t, err)
	s := NewCandidateSet(c)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4.0, s.TotalWeight())
	assert.InDelta(t, 0.75, s.Probability("depot"), 1e-12)
	assert.InDelta(t, 0.25, s.Probability("least"), 1e-12)
	assert.Zero(t, s.Probability("tares"))
	assert.Zero(t, s.Probability("event"))
}

func TestCandidateSetProbabilitiesFollowLiveSet(t *testing.T) {
	c, err := NewCorpus([]Entry{{"depot", 3}, {"least", 1}, {"tares", 4}, {"event", 2}})
	require.NoError(t, err)
	s := NewCandidateSet(c)

	narrowed, err := Filter(s, "event", game.Encode("event", "depot"))
	require.NoError(t, err)
	require.Equal(t, []string{"depot", "least"}, narrowed.Words())

	sum := 0.0
	for _, w := range narrowed.Words() {
		sum += narrowed.Probability(w)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.75, narrowed.Probability("depot"), 1e-12)
}

func TestCandidateSetZeroWeightsAreUniform(t *testing.T) {
	c, err := NewCorpus([]Entry{{"depot", 0}, {"least", 0}})
	require.NoError(t, err)
	s := NewCandidateSet(c)

	assert.InDelta(t, 0.5, s.Probability("depot"), 1e-12)
	assert.InDelta(t, 1.0, Entropy(s, "depot"), 1e-12)
}
