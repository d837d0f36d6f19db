// Package historystore persists completed benchmark runs to SQLite so a
// caller can query score trends across runs. It is an optional sink: the
// core evaluate_many path never writes here, and scoring never reads
// from it. Only cmd/reasoning-bench's --history flag touches this
// package.
package historystore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"reasoning-bench/internal/types"
)

// Store manages persistent storage of BenchmarkResult runs.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp INTEGER NOT NULL,
	difficulty TEXT NOT NULL,
	episodes_per_game INTEGER NOT NULL,
	solver_desc TEXT NOT NULL,
	top_line_score REAL NOT NULL,
	overall_solve_rate REAL NOT NULL,
	coverage REAL NOT NULL,
	total_episodes INTEGER NOT NULL,
	result TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS family_scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL,
	family TEXT NOT NULL,
	score REAL NOT NULL,
	evaluated_count INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES benchmark_runs(id)
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON benchmark_runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_family_scores_run ON family_scores(run_id);
CREATE INDEX IF NOT EXISTS idx_family_scores_family ON family_scores(family);
`

// Open creates or attaches to the SQLite database at dbPath and ensures
// its schema exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one completed BenchmarkResult as a new run.
func (s *Store) Append(result types.BenchmarkResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	res, err := tx.Exec(`
		INSERT INTO benchmark_runs (
			timestamp, difficulty, episodes_per_game, solver_desc,
			top_line_score, overall_solve_rate, coverage, total_episodes, result
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		result.Timestamp.Unix(),
		string(result.Difficulty),
		result.EpisodesPerGame,
		result.SolverDesc,
		result.TopLineScore(),
		result.OverallSolveRate(),
		result.Coverage(),
		result.TotalEpisodes(),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted run id: %w", err)
	}

	for _, f := range result.Families {
		if _, err := tx.Exec(`
			INSERT INTO family_scores (run_id, family, score, evaluated_count)
			VALUES (?, ?, ?, ?)
		`, runID, string(f.Family), f.Score(), f.EvaluatedCount()); err != nil {
			return fmt.Errorf("insert family score for %s: %w", f.Family, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TrendPoint is one run's family score, ordered oldest first.
type TrendPoint struct {
	Timestamp int64   `json:"timestamp"`
	Score     float64 `json:"score"`
}

// GetTrend returns up to limit most recent family scores for family,
// ordered oldest to newest so callers can plot them directly.
func (s *Store) GetTrend(family types.FamilyID, limit int) ([]TrendPoint, error) {
	rows, err := s.db.Query(`
		SELECT r.timestamp, f.score
		FROM family_scores f
		JOIN benchmark_runs r ON r.id = f.run_id
		WHERE f.family = ?
		ORDER BY r.timestamp DESC
		LIMIT ?
	`, string(family), limit)
	if err != nil {
		return nil, fmt.Errorf("query trend: %w", err)
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Timestamp, &p.Score); err != nil {
			return nil, fmt.Errorf("scan trend row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trend rows: %w", err)
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

// GetLatest returns the stored run with the latest result timestamp, or
// nil if the store is empty.
func (s *Store) GetLatest() (*types.BenchmarkResult, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT result FROM benchmark_runs ORDER BY timestamp DESC LIMIT 1
	`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}

	var result types.BenchmarkResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &result, nil
}
