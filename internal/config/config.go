// apps/go-solver/internal/config/config.go
//
// Solver configuration.
//
// Load order (later wins):
//   1. Default()
//   2. YAML file (path from --config or SOLVER_CONFIG)
//   3. Environment variables (a .env file is loaded by main via godotenv)
//   4. Command-line flags (applied by the cobra commands)
//
// Environment variables:
//   LOG_LEVEL, WORDS_DICTIONARY_FILE, WORDS_ANSWERS_FILE, SOLVER_OPENING,
//   SOLVER_GUESS_POOL, SOLVER_STRATEGY, SOLVER_WORKERS, SOLVER_MAX_ROUNDS, SOLVER_DB, DAILY_SALT

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Config holds every tunable of the solver commands.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	DictionaryFile string `yaml:"dictionary_file"` // empty = embedded dictionary
	AnswersFile    string `yaml:"answers_file"`    // empty = embedded answers
	OpeningGuess   string `yaml:"opening_guess"`   // empty = rank on turn one
	GuessPool      string `yaml:"guess_pool"`      // "candidates" | "corpus"
	Strategy       string `yaml:"strategy"`        // "weighted" | "entropy"
	Workers        int    `yaml:"workers"`         // 0 = one per CPU
	MaxRounds      int    `yaml:"max_rounds"`
	DBPath         string `yaml:"db_path"` // empty = bench results are not stored
	DailySalt      string `yaml:"daily_salt"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		OpeningGuess: "tares",
		GuessPool:    string(solver.PoolCandidates),
		Strategy:     string(solver.StrategyWeighted),
		Workers:      runtime.NumCPU(),
		MaxRounds:    game.DefaultRounds,
		DailySalt:    "local_dev_salt",
	}
}

// Load builds a Config from defaults, the optional YAML file at path, and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("SOLVER_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.DictionaryFile = getEnv("WORDS_DICTIONARY_FILE", c.DictionaryFile)
	c.AnswersFile = getEnv("WORDS_ANSWERS_FILE", c.AnswersFile)
	c.OpeningGuess = getEnv("SOLVER_OPENING", c.OpeningGuess)
	c.GuessPool = getEnv("SOLVER_GUESS_POOL", c.GuessPool)
	c.Strategy = getEnv("SOLVER_STRATEGY", c.Strategy)
	c.DBPath = getEnv("SOLVER_DB", c.DBPath)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)

	var err error
	if c.Workers, err = getEnvInt("SOLVER_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.MaxRounds, err = getEnvInt("SOLVER_MAX_ROUNDS", c.MaxRounds); err != nil {
		return err
	}
	return nil
}

// Validate checks the configuration for values the solver cannot run with.
func (c Config) Validate() error {
	var errs []error
	if _, err := solver.ParseGuessPool(c.GuessPool); err != nil {
		errs = append(errs, err)
	}
	if _, err := solver.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.MaxRounds <= 0 {
		errs = append(errs, fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds))
	}
	if c.OpeningGuess != "" {
		if _, err := game.NormalizeWord(c.OpeningGuess); err != nil {
			errs = append(errs, fmt.Errorf("opening_guess: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Pool returns the validated guess pool.
func (c Config) Pool() solver.GuessPool {
	p, err := solver.ParseGuessPool(c.GuessPool)
	if err != nil {
		return solver.PoolCandidates
	}
	return p
}

// ScoringStrategy returns the validated scoring strategy.
func (c Config) ScoringStrategy() solver.Strategy {
	st, err := solver.ParseStrategy(c.Strategy)
	if err != nil {
		return solver.StrategyWeighted
	}
	return st
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
