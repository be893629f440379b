// Package scoreboard keeps finished-game scores in SQLite.
package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/tatianab/dungeon-mini/internal/scoreboard/migrations"
	_ "modernc.org/sqlite"
)

// Entry is one recorded score.
type Entry struct {
	Player     string
	Score      int
	RecordedAt time.Time
}

// Store persists scores in a SQLite file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the scoreboard at path and migrates it.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("scoreboard path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("create scoreboard dir: %w", err)
	}

	db, err := sql.Open("sqlite", cleanPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordScore appends a score for player.
func (s *Store) RecordScore(ctx context.Context, player string, score int) error {
	player = strings.TrimSpace(player)
	if player == "" {
		return fmt.Errorf("player name is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (player, score, recorded_at) VALUES (?, ?, ?)`,
		player, score, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// ListScores returns up to limit scores, best first; equal scores keep the order they were recorded in.
func (s *Store) ListScores(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, score, recorded_at FROM scores
		 ORDER BY score DESC, recorded_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e  Entry
			ms int64
		)
		if err := rows.Scan(&e.Player, &e.Score, &ms); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		e.RecordedAt = time.UnixMilli(ms).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return entries, nil
}
