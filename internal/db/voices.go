package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// Voice is a row of the voices table.
type Voice struct {
	ID               string
	Name             string
	Label            string
	Type             string
	Pitch            float64
	Rate             float64
	BrowserVoiceName sql.NullString
	Audio            []byte
	CreatedAt        int64
}

const voiceColumns = `id, name, label, type, pitch, rate, browser_voice_name, audio, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanVoice(row scanner) (Voice, error) {
	var v Voice
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Label,
		&v.Type,
		&v.Pitch,
		&v.Rate,
		&v.BrowserVoiceName,
		&v.Audio,
		&v.CreatedAt,
	)
	return v, err
}

// UpsertVoice inserts v or replaces the row with the same id.
func (q *Queries) UpsertVoice(ctx context.Context, v Voice) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO voices (`+voiceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			label = excluded.label,
			type = excluded.type,
			pitch = excluded.pitch,
			rate = excluded.rate,
			browser_voice_name = excluded.browser_voice_name,
			audio = excluded.audio,
			created_at = excluded.created_at`,
		v.ID, v.Name, v.Label, v.Type, v.Pitch, v.Rate, v.BrowserVoiceName, v.Audio, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert voice %s: %w", v.ID, err)
	}
	return nil
}

// GetVoice returns the voice with id, or ErrNotFound.
func (q *Queries) GetVoice(ctx context.Context, id string) (Voice, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+voiceColumns+` FROM voices WHERE id = ?`, id)
	v, err := scanVoice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Voice{}, fmt.Errorf("voice %s: %w", id, ErrNotFound)
		}
		return Voice{}, fmt.Errorf("get voice %s: %w", id, err)
	}
	return v, nil
}

// ListVoices returns every stored voice, oldest first.
func (q *Queries) ListVoices(ctx context.Context) ([]Voice, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+voiceColumns+` FROM voices ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	defer rows.Close()

	voices := []Voice{}
	for rows.Next() {
		v, err := scanVoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voice: %w", err)
		}
		voices = append(voices, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate voices: %w", err)
	}
	return voices, nil
}

// DeleteVoice removes the voice with id, or returns ErrNotFound.
func (q *Queries) DeleteVoice(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM voices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete voice %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete voice %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("voice %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountVoices returns the number of stored voices.
func (q *Queries) CountVoices(ctx context.Context) (int64, error) {
	var n int64
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM voices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count voices: %w", err)
	}
	return n, nil
}
