package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunResult is one finished (won or abandoned) run.
type RunResult struct {
	ID        string // UUID, assigned by SaveRun when empty
	GameID    string
	Score     int
	Won       bool
	Pops      int
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunResult) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: run has no game id")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, won, pops, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.Won, r.Pops, r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, game_id, score, won, pops, duration_ms, created_at`

// TopRuns returns the best runs for a game: wins first, fastest win first,
// then the highest scores.
func (s *Store) TopRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY won DESC,
		          CASE WHEN won = 1 THEN duration_ms ELSE 0 END ASC,
		          score DESC,
		          rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns returns the latest runs for a game, newest first. An empty
// gameID lists every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunResult, error) {
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var r RunResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Won, &r.Pops, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	RunsCount   int
	Wins        int
	HighScore   int
	AvgScore    float64
	TotalPops   int64
	BestWinTime time.Duration // Zero when the game was never won
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var bestMS sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(pops), 0),
		        MIN(CASE WHEN won = 1 THEN duration_ms END)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalPops, &bestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if bestMS.Valid {
		stats.BestWinTime = time.Duration(bestMS.Int64) * time.Millisecond
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
