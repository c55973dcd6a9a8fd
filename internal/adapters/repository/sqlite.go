// Package repository defines the battle store interface and errors.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// Default sqlite configuration constants.
const (
	defaultBusyTimeout  = 5 * time.Second
	defaultMaxOpenConns = 1 // single writer keeps sqlite happy under load
)

// SQLiteStore implements Store on top of a sqlite database file.
type SQLiteStore struct {
	db           *sql.DB
	busyTimeout  time.Duration
	maxOpenConns int
}

// NewSQLiteStore opens (or creates) the database at path and initializes
// the schema. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		busyTimeout:  defaultBusyTimeout,
		maxOpenConns: defaultMaxOpenConns,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(s.maxOpenConns)
	s.db = db

	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", s.busyTimeout.Milliseconds())); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS models (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		provider TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		capabilities TEXT NOT NULL DEFAULT '[]',
		performance_score REAL NOT NULL DEFAULT 0,
		total_votes INTEGER NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		win_rate REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		image_url TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_models_wins ON models(wins);

	CREATE TABLE IF NOT EXISTS votes (
		id TEXT PRIMARY KEY,
		winner_id TEXT NOT NULL,
		loser_id TEXT NOT NULL,
		voter_ip TEXT NOT NULL DEFAULT '',
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_votes_winner ON votes(winner_id);
	CREATE INDEX IF NOT EXISTS idx_votes_loser ON votes(loser_id);

	CREATE TABLE IF NOT EXISTS status_checks (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Seed implements Store.Seed. The delete and the inserts run in one
// transaction, so a reachable store either fully reseeds or not at all.
func (s *SQLiteStore) Seed(ctx context.Context, seeds []model.Seed) (int, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStorageLatency("seed", float64(time.Since(start).Milliseconds()))
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		metrics.RecordStorageError("seed")
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM models`); err != nil {
		metrics.RecordStorageError("seed")
		return 0, fmt.Errorf("clear models: %w", err)
	}

	const insert = `
	INSERT INTO models (id, name, provider, description, capabilities,
		performance_score, total_votes, wins, losses, win_rate, created_at, image_url)
	VALUES (?, ?, ?, ?, ?, ?, 0, 0, 0, 0, ?, ?)
	`
	for _, seed := range seeds {
		caps, err := json.Marshal(seed.Capabilities)
		if err != nil {
			return 0, fmt.Errorf("marshal capabilities: %w", err)
		}
		_, err = tx.ExecContext(ctx, insert,
			uuid.NewString(),
			seed.Name,
			seed.Provider,
			seed.Description,
			string(caps),
			seed.PerformanceScore,
			time.Now().UTC(),
			seed.ImageURL,
		)
		if err != nil {
			metrics.RecordStorageError("seed")
			return 0, fmt.Errorf("insert model %q: %w", seed.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordStorageError("seed")
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return len(seeds), nil
}

const modelColumns = `id, name, provider, description, capabilities,
	performance_score, total_votes, wins, losses, win_rate, created_at, image_url`

func scanModel(row interface{ Scan(...any) error }) (model.Model, error) {
	var m model.Model
	var caps string
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Provider,
		&m.Description,
		&caps,
		&m.PerformanceScore,
		&m.TotalVotes,
		&m.Wins,
		&m.Losses,
		&m.WinRate,
		&m.CreatedAt,
		&m.ImageURL,
	)
	if err != nil {
		return model.Model{}, err
	}
	if err := json.Unmarshal([]byte(caps), &m.Capabilities); err != nil {
		return model.Model{}, fmt.Errorf("unmarshal capabilities: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) queryModels(ctx context.Context, query string) ([]model.Model, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := make([]model.Model, 0)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

// ListModels implements Store.ListModels.
func (s *SQLiteStore) ListModels(ctx context.Context) ([]model.Model, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStorageLatency("list_models", float64(time.Since(start).Milliseconds()))
	}()

	models, err := s.queryModels(ctx, `SELECT `+modelColumns+` FROM models`)
	if err != nil {
		metrics.RecordStorageError("list_models")
		return nil, fmt.Errorf("list models: %w", err)
	}
	return models, nil
}

// GetModel implements Store.GetModel.
func (s *SQLiteStore) GetModel(ctx context.Context, id string) (model.Model, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+modelColumns+` FROM models WHERE id = ?`, id)
	m, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Model{}, ErrNotFound
	}
	if err != nil {
		metrics.RecordStorageError("get_model")
		return model.Model{}, fmt.Errorf("get model: %w", err)
	}
	return m, nil
}

// IncrementStats implements Store.IncrementStats. The counter bump and the
// win_rate recompute happen in a single UPDATE, so concurrent votes on the
// same model cannot produce a stale rate. All right-hand expressions read
// the pre-update row, hence the explicit "+ 1" terms.
func (s *SQLiteStore) IncrementStats(ctx context.Context, id string, won bool) error {
	start := time.Now()
	defer func() {
		metrics.RecordStorageLatency("increment_stats", float64(time.Since(start).Milliseconds()))
	}()

	winInc, lossInc := 0, 1
	if won {
		winInc, lossInc = 1, 0
	}
	const update = `
	UPDATE models SET
		wins = wins + ?,
		losses = losses + ?,
		win_rate = ROUND((wins + ?) * 100.0 / (total_votes + 1), 1),
		total_votes = total_votes + 1
	WHERE id = ?
	`
	// A zero-row update (unknown id) is deliberately not an error.
	if _, err := s.db.ExecContext(ctx, update, winInc, lossInc, winInc, id); err != nil {
		metrics.RecordStorageError("increment_stats")
		return fmt.Errorf("increment stats: %w", err)
	}
	return nil
}

// SetWinRate implements Store.SetWinRate.
func (s *SQLiteStore) SetWinRate(ctx context.Context, id string, rate float64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE models SET win_rate = ? WHERE id = ?`, rate, id); err != nil {
		metrics.RecordStorageError("set_win_rate")
		return fmt.Errorf("set win rate: %w", err)
	}
	return nil
}

// Leaderboard implements Store.Leaderboard.
func (s *SQLiteStore) Leaderboard(ctx context.Context) ([]model.Model, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStorageLatency("leaderboard", float64(time.Since(start).Milliseconds()))
	}()

	models, err := s.queryModels(ctx, `SELECT `+modelColumns+` FROM models ORDER BY wins DESC, win_rate DESC`)
	if err != nil {
		metrics.RecordStorageError("leaderboard")
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return models, nil
}

// TopByWins implements Store.TopByWins.
func (s *SQLiteStore) TopByWins(ctx context.Context) (model.Model, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+modelColumns+` FROM models ORDER BY wins DESC LIMIT 1`)
	m, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Model{}, ErrNotFound
	}
	if err != nil {
		metrics.RecordStorageError("top_by_wins")
		return model.Model{}, fmt.Errorf("top by wins: %w", err)
	}
	return m, nil
}

// CountModels implements Store.CountModels.
func (s *SQLiteStore) CountModels(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM models`).Scan(&n); err != nil {
		metrics.RecordStorageError("count_models")
		return 0, fmt.Errorf("count models: %w", err)
	}
	return n, nil
}

// AppendVote implements Store.AppendVote.
func (s *SQLiteStore) AppendVote(ctx context.Context, v model.Vote) error {
	start := time.Now()
	defer func() {
		metrics.RecordStorageLatency("append_vote", float64(time.Since(start).Milliseconds()))
	}()

	const insert = `
	INSERT INTO votes (id, winner_id, loser_id, voter_ip, timestamp)
	VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, insert, v.ID, v.WinnerID, v.LoserID, v.VoterIP, v.Timestamp); err != nil {
		metrics.RecordStorageError("append_vote")
		return fmt.Errorf("append vote: %w", err)
	}
	return nil
}

// CountVotes implements Store.CountVotes.
func (s *SQLiteStore) CountVotes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n); err != nil {
		metrics.RecordStorageError("count_votes")
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return n, nil
}

// ClearVotes implements Store.ClearVotes.
func (s *SQLiteStore) ClearVotes(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM votes`); err != nil {
		metrics.RecordStorageError("clear_votes")
		return fmt.Errorf("clear votes: %w", err)
	}
	return nil
}

// AppendStatus implements Store.AppendStatus.
func (s *SQLiteStore) AppendStatus(ctx context.Context, sc model.StatusCheck) error {
	const insert = `INSERT INTO status_checks (id, client_name, timestamp) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, insert, sc.ID, sc.ClientName, sc.Timestamp); err != nil {
		metrics.RecordStorageError("append_status")
		return fmt.Errorf("append status: %w", err)
	}
	return nil
}

// ListStatus implements Store.ListStatus.
func (s *SQLiteStore) ListStatus(ctx context.Context, limit int) ([]model.StatusCheck, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		metrics.RecordStorageError("list_status")
		return nil, fmt.Errorf("list status: %w", err)
	}
	defer rows.Close()

	checks := make([]model.StatusCheck, 0)
	for rows.Next() {
		var sc model.StatusCheck
		if err := rows.Scan(&sc.ID, &sc.ClientName, &sc.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		checks = append(checks, sc)
	}
	return checks, rows.Err()
}
