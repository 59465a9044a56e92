package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hueshift/hueshift/internal/theme"
)

// Theme library errors.
var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrThemeExists   = errors.New("theme already exists")
)

// Format identifies a stored theme representation.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatPalette  Format = "palette"
	FormatWidget   Format = "widget"
)

// Record is one library row: a named theme in one format with its JSON
// payload.
type Record struct {
	ID        string
	Name      string
	Format    Format
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository handles theme library persistence.
type Repository struct {
	db *DB
}

// NewRepository creates a Repository on an open database.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Put inserts or updates a record, keyed by (format, name). Missing IDs
// and timestamps are filled in.
func (r *Repository) Put(ctx context.Context, rec *Record) error {
	if rec.Name == "" {
		return fmt.Errorf("theme name is required")
	}
	if rec.Format == "" {
		return fmt.Errorf("theme format is required")
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := r.db.sql.ExecContext(ctx, `
INSERT INTO themes (id, name, format, payload, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (format, name) DO UPDATE SET
    payload = excluded.payload,
    updated_at = excluded.updated_at`,
		rec.ID, rec.Name, string(rec.Format), string(rec.Payload), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to store theme %q: %w", rec.Name, err)
	}
	return nil
}

// Get returns the record for a (format, name) pair.
func (r *Repository) Get(ctx context.Context, format Format, name string) (*Record, error) {
	row := r.db.sql.QueryRowContext(ctx, `
SELECT id, name, format, payload, created_at, updated_at
FROM themes WHERE format = ? AND name = ?`, string(format), name)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrThemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %q: %w", name, err)
	}
	return rec, nil
}

// List returns all records of one format ordered by name.
func (r *Repository) List(ctx context.Context, format Format) ([]*Record, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
SELECT id, name, format, payload, created_at, updated_at
FROM themes WHERE format = ? ORDER BY name`, string(format))
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan theme row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate theme rows: %w", err)
	}
	return out, nil
}

// Delete removes a record. Returns ErrThemeNotFound when nothing matched.
func (r *Repository) Delete(ctx context.Context, format Format, name string) error {
	res, err := r.db.sql.ExecContext(ctx,
		`DELETE FROM themes WHERE format = ? AND name = ?`, string(format), name)
	if err != nil {
		return fmt.Errorf("failed to delete theme %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

// Duplicate copies a record under a new name. Returns ErrThemeExists when
// the target name is already taken.
func (r *Repository) Duplicate(ctx context.Context, format Format, name, newName string) error {
	src, err := r.Get(ctx, format, name)
	if err != nil {
		return err
	}
	if _, err := r.Get(ctx, format, newName); err == nil {
		return ErrThemeExists
	} else if !errors.Is(err, ErrThemeNotFound) {
		return err
	}

	dup := &Record{Name: newName, Format: format, Payload: renamePayload(src.Payload, newName)}
	return r.Put(ctx, dup)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var format, payload string
	if err := row.Scan(&rec.ID, &rec.Name, &format, &payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Format = Format(format)
	rec.Payload = []byte(payload)
	return &rec, nil
}

// renamePayload rewrites the "name" key of a JSON payload so duplicated
// themes stay self-describing. Payloads without a name pass through.
func renamePayload(payload []byte, newName string) []byte {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		return payload
	}
	if _, ok := obj["name"]; !ok {
		return payload
	}
	nameJSON, err := json.Marshal(newName)
	if err != nil {
		return payload
	}
	obj["name"] = nameJSON
	out, err := json.Marshal(obj)
	if err != nil {
		return payload
	}
	return out
}

// SaveTerminalTheme stores a terminal theme under its name.
func (r *Repository) SaveTerminalTheme(ctx context.Context, t theme.TerminalTheme) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal terminal theme: %w", err)
	}
	return r.Put(ctx, &Record{Name: t.Name, Format: FormatTerminal, Payload: payload})
}

// TerminalTheme loads one terminal theme by name.
func (r *Repository) TerminalTheme(ctx context.Context, name string) (theme.TerminalTheme, error) {
	rec, err := r.Get(ctx, FormatTerminal, name)
	if err != nil {
		return theme.TerminalTheme{}, err
	}
	var t theme.TerminalTheme
	if err := json.Unmarshal(rec.Payload, &t); err != nil {
		return theme.TerminalTheme{}, fmt.Errorf("failed to unmarshal theme %q: %w", name, err)
	}
	return t, nil
}

// TerminalThemes loads every terminal theme keyed by name.
func (r *Repository) TerminalThemes(ctx context.Context) (map[string]theme.TerminalTheme, error) {
	recs, err := r.List(ctx, FormatTerminal)
	if err != nil {
		return nil, err
	}
	out := make(map[string]theme.TerminalTheme, len(recs))
	for _, rec := range recs {
		var t theme.TerminalTheme
		if err := json.Unmarshal(rec.Payload, &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal theme %q: %w", rec.Name, err)
		}
		out[rec.Name] = t
	}
	return out, nil
}

// SaveWidgetTheme stores a widget theme under its name.
func (r *Repository) SaveWidgetTheme(ctx context.Context, w *theme.WidgetTheme) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal widget theme: %w", err)
	}
	return r.Put(ctx, &Record{Name: w.Name, Format: FormatWidget, Payload: payload})
}

// WidgetTheme loads one widget theme by name.
func (r *Repository) WidgetTheme(ctx context.Context, name string) (*theme.WidgetTheme, error) {
	rec, err := r.Get(ctx, FormatWidget, name)
	if err != nil {
		return nil, err
	}
	var w theme.WidgetTheme
	if err := json.Unmarshal(rec.Payload, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal widget theme %q: %w", name, err)
	}
	return &w, nil
}
