// Package eventstore persists user calendar events in a SQLite
// database so they survive restarts and can be edited over the REST
// surface.
package eventstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/skywheel/almanac/pkg/events"
)

// ErrNotFound is returned when no event has the requested ID.
var ErrNotFound = errors.New("event not found")

// Store is a SQLite-backed event collection. Safe for concurrent use;
// database/sql serializes access to the single connection pool.
type Store struct {
	db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		start_month INTEGER NOT NULL,
		start_day   INTEGER NOT NULL,
		end_month   INTEGER,
		end_day     INTEGER,
		color       TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL
	)
`

// Open opens or creates the event database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping event database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create validates and inserts an event, assigning it a new ID.
func (s *Store) Create(e events.Event) (events.Event, error) {
	e.ID = uuid.New().String()
	if err := e.Validate(); err != nil {
		return events.Event{}, err
	}

	endMonth, endDay := endColumns(e)
	_, err := s.db.Exec(`
		INSERT INTO events (id, name, start_month, start_day, end_month, end_day, color, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Start.Month, e.Start.Day, endMonth, endDay, e.Color, string(e.Type),
	)
	if err != nil {
		return events.Event{}, fmt.Errorf("failed to insert event: %w", err)
	}
	return e, nil
}

// Get returns one event by ID.
func (s *Store) Get(id string) (events.Event, error) {
	row := s.db.QueryRow(`
		SELECT id, name, start_month, start_day, end_month, end_day, color, type
		FROM events WHERE id = ?`, id)

	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return events.Event{}, fmt.Errorf("failed to load event: %w", err)
	}
	return e, nil
}

// List returns all events ordered by start date.
func (s *Store) List() ([]events.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, name, start_month, start_day, end_month, end_day, color, type
		FROM events ORDER BY start_month, start_day, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var all []events.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		all = append(all, e)
	}
	return all, rows.Err()
}

// ActiveOn returns the events covering a calendar date, in list order.
func (s *Store) ActiveOn(month, day int) ([]events.Event, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var active []events.Event
	for _, e := range all {
		if e.ActiveOn(month, day) {
			active = append(active, e)
		}
	}
	return active, nil
}

// Update validates and replaces the stored event with the same ID.
func (s *Store) Update(e events.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	endMonth, endDay := endColumns(e)
	res, err := s.db.Exec(`
		UPDATE events
		SET name = ?, start_month = ?, start_day = ?, end_month = ?, end_day = ?, color = ?, type = ?
		WHERE id = ?`,
		e.Name, e.Start.Month, e.Start.Day, endMonth, endDay, e.Color, string(e.Type), e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	return nil
}

// Delete removes an event by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func endColumns(e events.Event) (sql.NullInt64, sql.NullInt64) {
	if e.End == nil {
		return sql.NullInt64{}, sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(e.End.Month), Valid: true},
		sql.NullInt64{Int64: int64(e.End.Day), Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (events.Event, error) {
	var e events.Event
	var typ string
	var endMonth, endDay sql.NullInt64

	err := row.Scan(&e.ID, &e.Name, &e.Start.Month, &e.Start.Day, &endMonth, &endDay, &e.Color, &typ)
	if err != nil {
		return events.Event{}, err
	}

	e.Type = events.Type(typ)
	if endMonth.Valid && endDay.Valid {
		e.End = &events.MonthDay{Month: int(endMonth.Int64), Day: int(endDay.Int64)}
	}
	return e, nil
}
