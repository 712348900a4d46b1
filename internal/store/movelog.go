// store/movelog.go
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Event kinds recorded in the log.
const (
	EventMove   = "move"
	EventRemove = "remove"
	EventReset  = "reset"
)

// Entry is one recorded board mutation.
type Entry struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	FromSquare string    `json:"from_square,omitempty"`
	ToSquare   string    `json:"to_square,omitempty"`
	Piece      string    `json:"piece,omitempty"`
	Color      string    `json:"color,omitempty"`
	Captured   string    `json:"captured,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MoveLog persists board mutations to SQLite so the move history survives
// inspection across requests. All writes happen under the service's board
// lock, so MoveLog itself needs no extra locking.
type MoveLog struct {
	db *sql.DB
}

func NewMoveLog(path string) (*MoveLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open move log: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		from_square TEXT NOT NULL DEFAULT '',
		to_square TEXT NOT NULL DEFAULT '',
		piece TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		captured TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}

	return &MoveLog{db: db}, nil
}

func (ml *MoveLog) Close() error {
	return ml.db.Close()
}

func (ml *MoveLog) RecordMove(from, to, piece, color, captured string) error {
	_, err := ml.db.Exec(
		`INSERT INTO events (kind, from_square, to_square, piece, color, captured) VALUES (?, ?, ?, ?, ?, ?)`,
		EventMove, from, to, piece, color, captured,
	)
	return err
}

func (ml *MoveLog) RecordRemove(square, piece, color string) error {
	_, err := ml.db.Exec(
		`INSERT INTO events (kind, from_square, piece, color) VALUES (?, ?, ?, ?)`,
		EventRemove, square, piece, color,
	)
	return err
}

func (ml *MoveLog) RecordReset() error {
	_, err := ml.db.Exec(`INSERT INTO events (kind) VALUES (?)`, EventReset)
	return err
}

// Recent returns the newest entries, most recent first.
func (ml *MoveLog) Recent(limit int) ([]Entry, error) {
	rows, err := ml.db.Query(
		`SELECT id, kind, from_square, to_square, piece, color, captured, created_at
		 FROM events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.FromSquare, &e.ToSquare, &e.Piece, &e.Color, &e.Captured, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
