package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the resolved configuration and logger for every subcommand.
type app struct {
	cfgPath string
	cfg     config.Config
	log     zerolog.Logger

	// flag overrides; applied only when the flag was set
	logLevel   string
	dictionary string
	answers    string
	pool       string
	strategy   string
	opening    string
	workers    int
	rounds     int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "wordle-solver",
		Short:        "Recommend Wordle guesses by expected information",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (default $SOLVER_CONFIG)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.dictionary, "dictionary", "", "dictionary file with \"word count\" lines (default embedded)")
	pf.StringVar(&a.answers, "answers", "", "previous answers file (default embedded)")
	pf.StringVar(&a.pool, "pool", "", "guess pool: candidates or corpus")
	pf.StringVar(&a.strategy, "strategy", "", "scoring strategy: weighted or entropy")
	pf.StringVar(&a.opening, "opening", "", "first guess to use without ranking")
	pf.IntVar(&a.workers, "workers", 0, "ranking workers (0 = one per CPU)")
	pf.IntVar(&a.rounds, "rounds", 0, "maximum rounds for simulated games")

	root.AddCommand(newSolveCmd(a), newPlayCmd(a), newBenchCmd(a), newRankCmd(a))
	return root
}

// setup resolves config (defaults → file → env → flags) and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f.Changed("dictionary") {
		cfg.DictionaryFile = a.dictionary
	}
	if f.Changed("answers") {
		cfg.AnswersFile = a.answers
	}
	if f.Changed("pool") {
		cfg.GuessPool = a.pool
	}
	if f.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if f.Changed("opening") {
		cfg.OpeningGuess = a.opening
	}
	if f.Changed("workers") {
		cfg.Workers = a.workers
	}
	if f.Changed("rounds") {
		cfg.MaxRounds = a.rounds
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	log.Logger = a.log
	return nil
}

func (a *app) corpus() (*solver.Corpus, error) {
	c, err := words.LoadCorpus(a.cfg.DictionaryFile)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("words", c.Len()).Msg("corpus loaded")
	return c, nil
}

func (a *app) scorer() *solver.Scorer {
	return solver.NewScorer(a.cfg.Pool(), a.cfg.ScoringStrategy(), a.cfg.Workers, a.log)
}

func (a *app) driver(c *solver.Corpus) *solver.Driver {
	return solver.NewDriver(c, solver.Options{
		Scorer:       a.scorer(),
		OpeningGuess: a.cfg.OpeningGuess,
		Logger:       a.log,
	})
}
