// Package storage provides SQLite-based persistence for puzzle progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// LevelStat is the best recorded result for one level of a pack.
type LevelStat struct {
	PackID     string
	LevelIndex int
	BestMoves  int
	BestTime   time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_stats (
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			best_moves INTEGER NOT NULL,
			best_time_ms INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (pack_id, level_index)
		);

		CREATE TABLE IF NOT EXISTS pack_progress (
			pack_id TEXT PRIMARY KEY,
			levels_completed INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordResult stores a completed level's result. An existing record is only
// ever improved: best moves and best time are tracked independently, so a
// faster-but-longer solve can improve the time while keeping the move record.
func (s *Store) RecordResult(packID string, levelIndex, moves int, elapsed time.Duration) error {
	ms := elapsed.Milliseconds()
	_, err := s.db.Exec(
		`INSERT INTO level_stats (pack_id, level_index, best_moves, best_time_ms)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(pack_id, level_index) DO UPDATE SET
			best_moves = MIN(best_moves, excluded.best_moves),
			best_time_ms = MIN(best_time_ms, excluded.best_time_ms),
			updated_at = CURRENT_TIMESTAMP`,
		packID, levelIndex, moves, ms,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// BestForLevel returns the best recorded result for a level.
// found is false when the level has never been completed.
func (s *Store) BestForLevel(packID string, levelIndex int) (stat LevelStat, found bool, err error) {
	var ms int64
	err = s.db.QueryRow(
		`SELECT best_moves, best_time_ms FROM level_stats
		 WHERE pack_id = ? AND level_index = ?`,
		packID, levelIndex,
	).Scan(&stat.BestMoves, &ms)
	if err == sql.ErrNoRows {
		return LevelStat{}, false, nil
	}
	if err != nil {
		return LevelStat{}, false, fmt.Errorf("storage: cannot query level stat: %w", err)
	}
	stat.PackID = packID
	stat.LevelIndex = levelIndex
	stat.BestTime = time.Duration(ms) * time.Millisecond
	return stat, true, nil
}

// PackStats returns the recorded results for a pack, ordered by level index.
func (s *Store) PackStats(packID string) ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_index, best_moves, best_time_ms FROM level_stats
		 WHERE pack_id = ?
		 ORDER BY level_index`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		st := LevelStat{PackID: packID}
		var ms int64
		if err := rows.Scan(&st.LevelIndex, &st.BestMoves, &ms); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.BestTime = time.Duration(ms) * time.Millisecond
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Progress returns the number of completed levels for a pack.
// Returns 0 for a pack that has never been played.
func (s *Store) Progress(packID string) (int, error) {
	var n sql.NullInt64
	err := s.db.QueryRow(
		"SELECT levels_completed FROM pack_progress WHERE pack_id = ?",
		packID,
	).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	if !n.Valid {
		return 0, nil
	}
	return int(n.Int64), nil
}

// SetProgress records that levelsCompleted levels of the pack are done.
// Progress only ever advances; a lower value is ignored.
func (s *Store) SetProgress(packID string, levelsCompleted int) error {
	_, err := s.db.Exec(
		`INSERT INTO pack_progress (pack_id, levels_completed)
		 VALUES (?, ?)
		 ON CONFLICT(pack_id) DO UPDATE SET
			levels_completed = MAX(levels_completed, excluded.levels_completed)`,
		packID, levelsCompleted,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set progress: %w", err)
	}
	return nil
}

// ClearPack deletes all recorded stats and progress for a pack.
func (s *Store) ClearPack(packID string) error {
	if _, err := s.db.Exec("DELETE FROM level_stats WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear stats: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM pack_progress WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}
