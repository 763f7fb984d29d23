package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned by RunByID for unknown IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is one walked maze: enough to regenerate it (seed and size) and how it went.
type Run struct {
	ID        string
	GameID    string
	Seed      int64
	Width     int
	Height    int
	PathLen   int
	Steps     int
	Ticks     int
	Solved    bool
	CreatedAt time.Time
}

const runColumns = `id, game_id, seed, width, height, path_len, steps, ticks, solved, created_at`

// SaveRun stores a run. An empty ID is replaced with a new UUID; the stored ID is returned.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", r.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, width, height, path_len, steps, ticks, solved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Seed, r.Width, r.Height, r.PathLen, r.Steps, r.Ticks, r.Solved,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs, newest first. A non-positive limit means 20.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY seq DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID looks up a run. Unknown IDs return ErrRunNotFound.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.GameID, &r.Seed, &r.Width, &r.Height,
		&r.PathLen, &r.Steps, &r.Ticks, &r.Solved, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
