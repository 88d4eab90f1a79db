package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func testCorpus(t *testing.T) *solver.Corpus {
	t.Helper()
	c, err := solver.NewCorpus([]solver.Entry{
		{Word: "depot", Weight: 1},
		{Word: "least", Weight: 1},
		{Word: "tares", Weight: 1},
		{Word: "event", Weight: 1},
	})
	require.NoError(t, err)
	return c
}

func testDriver(t *testing.T) *solver.Driver {
	return solver.NewDriver(testCorpus(t), solver.Options{
		Scorer:       solver.NewScorer(solver.PoolCandidates, solver.StrategyWeighted, 2, zerolog.Nop()),
		OpeningGuess: "tares",
		Logger:       zerolog.Nop(),
	})
}

func TestRunSolve(t *testing.T) {
	in := strings.NewReader("?\nbogus line here\nmwwmw\nccccc\n")
	var out bytes.Buffer

	d := testDriver(t)
	require.NoError(t, runSolve(context.Background(), d, in, &out))

	got := out.String()
	assert.Contains(t, got, "suggest tares")
	assert.Contains(t, got, "depot least tares event")
	assert.Contains(t, got, "invalid input:")
	assert.Contains(t, got, "2 candidates remain")
	assert.Contains(t, got, "suggest depot")
	assert.Contains(t, got, "solved: depot (2 guesses reported)")
	assert.Equal(t, solver.StateSolved, d.State())
}

func TestRunSolveRejectsImpossibleFeedback(t *testing.T) {
	in := strings.NewReader("tares ccccw\nq\n")
	var out bytes.Buffer

	d := testDriver(t)
	require.NoError(t, runSolve(context.Background(), d, in, &out))

	assert.Contains(t, out.String(), "no remaining word fits that feedback")
	assert.Equal(t, 4, d.Candidates().Len())
	assert.Empty(t, d.History())
}

func TestRunSolveEOF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSolve(context.Background(), testDriver(t), strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "suggest tares")
	assert.NotContains(t, out.String(), "solved")
}

func TestRunPlay(t *testing.T) {
	g, err := game.New("event", 6)
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, runPlay(context.Background(), testDriver(t), g, &out))
	assert.Equal(t, "tares mwwmw\ndepot wmwwc\nevent ccccc\nguessed \"event\" in 3\n", out.String())
}

func TestRunRank(t *testing.T) {
	sc := solver.NewScorer(solver.PoolCandidates, solver.StrategyWeighted, 2, zerolog.Nop())
	set := solver.NewCandidateSet(testCorpus(t))

	var out bytes.Buffer
	require.NoError(t, runRank(context.Background(), sc, set, []string{"tares", "mwwmw"}, 1, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 candidates", lines[0])
	assert.Contains(t, lines[2], "depot")

	err := runRank(context.Background(), sc, set, []string{"tares", "cwmx"}, 1, &out)
	assert.ErrorIs(t, err, solver.ErrInvalidInput)

	err = runRank(context.Background(), sc, set, []string{"tares", "ccccw"}, 1, &out)
	assert.ErrorIs(t, err, solver.ErrInvalidFeedback)
}

// execute runs the root command with a clean environment and the test dictionary.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"SOLVER_CONFIG", "LOG_LEVEL", "WORDS_DICTIONARY_FILE", "WORDS_ANSWERS_FILE",
		"SOLVER_OPENING", "SOLVER_GUESS_POOL", "SOLVER_STRATEGY", "SOLVER_WORKERS", "SOLVER_MAX_ROUNDS", "SOLVER_DB"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	dict := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(dict, []byte("depot 1\nleast 1\ntares 1\nevent 1\n"), 0o644))
	answers := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(answers, []byte("depot\nevent\n"), 0o644))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--dictionary", dict, "--answers", answers, "--log-level", "warn"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRootRank(t *testing.T) {
	out, err := execute(t, "rank", "--top", "2", "tares", "mwwmw")
	require.NoError(t, err)
	assert.Contains(t, out, "2 candidates")
	assert.Contains(t, out, "depot")

	_, err = execute(t, "rank", "tares")
	assert.ErrorIs(t, err, solver.ErrInvalidInput)
}

func TestRootPlay(t *testing.T) {
	out, err := execute(t, "play", "--answer", "event", "--opening", "tares")
	require.NoError(t, err)
	assert.Contains(t, out, "guessed \"event\" in 3")
}

func TestRootBench(t *testing.T) {
	db := filepath.Join(t.TempDir(), "bench.db")
	out, err := execute(t, "bench", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "guessed 'depot' in 2")
	assert.Contains(t, out, "average score")
	assert.Contains(t, out, "best runs:")
	assert.Contains(t, out, "hardest answers:")
	assert.Contains(t, out, "strategy=weighted")

	out, err = execute(t, "--strategy", "entropy", "bench", "--db", db, "--max", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy=entropy")
}

func TestRootRejectsBadSettings(t *testing.T) {
	_, err := execute(t, "--pool", "everything", "rank")
	assert.Error(t, err)

	_, err = execute(t, "--strategy", "minimax", "rank")
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestRootWorkersZeroIsAuto(t *testing.T) {
	out, err := execute(t, "--workers", "0", "rank", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "4 candidates")
}
