package bench

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Run describes the solver settings a Summary was produced with.
type Run struct {
	StartedAt  time.Time
	GuessPool  string
	Strategy   string
	Opening    string
	CorpusSize int
}

// RunRow is a stored run with its aggregate numbers.
type RunRow struct {
	ID        int64   `json:"id"`
	StartedAt string  `json:"startedAt"`
	GuessPool string  `json:"guessPool"`
	Strategy  string  `json:"strategy"`
	Opening   string  `json:"opening"`
	Games     int     `json:"games"`
	Solved    int     `json:"solved"`
	Average   float64 `json:"average"`
	ElapsedMs int64   `json:"elapsedMs"`
}

// AnswerRow is the historical difficulty of one answer across runs.
type AnswerRow struct {
	Answer    string  `json:"answer"`
	Games     int     `json:"games"`
	Failures  int     `json:"failures"`
	AvgRounds float64 `json:"avgRounds"`
}

// Store persists benchmark runs.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// SaveRun inserts a run and all its results in one transaction and returns the run id.
func (s *Store) SaveRun(ctx context.Context, run Run, sum Summary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO bench_runs
            (started_at, guess_pool, strategy, opening, corpus_size, games, solved, total_rounds, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.GuessPool, run.Strategy, run.Opening, run.CorpusSize,
		sum.Games, sum.Solved, sum.TotalRounds, sum.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT OR IGNORE INTO bench_results (run_id, answer, rounds, solved, guesses)
        VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, r := range sum.Results {
		if _, err := stmt.ExecContext(ctx, id, r.Answer, r.Rounds, r.Solved, strings.Join(r.Guesses, " ")); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

// BestRuns returns runs ordered by average rounds, best first.
// Runs without a solved game sort last. Default limit is 10.
func (s *Store) BestRuns(ctx context.Context, limit int) ([]RunRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, started_at, guess_pool, strategy, opening, games, solved,
               CASE WHEN solved > 0 THEN CAST(total_rounds AS REAL) / solved ELSE 0 END AS avg,
               elapsed_ms
        FROM bench_runs
        ORDER BY solved = 0 ASC, avg ASC, started_at ASC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunRow, 0, limit)
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.GuessPool, &r.Strategy, &r.Opening, &r.Games, &r.Solved, &r.Average, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// HardestAnswers returns answers ordered by failures, then average rounds, worst first.
func (s *Store) HardestAnswers(ctx context.Context, limit int) ([]AnswerRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT answer, COUNT(1), SUM(CASE WHEN solved THEN 0 ELSE 1 END), AVG(rounds)
        FROM bench_results
        GROUP BY answer
        ORDER BY 3 DESC, 4 DESC, answer ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnswerRow
	for rows.Next() {
		var r AnswerRow
		if err := rows.Scan(&r.Answer, &r.Games, &r.Failures, &r.AvgRounds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
