package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/rallyref/internal/preset"
)

// ErrNotFound is returned when a preset ID does not exist.
var ErrNotFound = errors.New("preset not found")

// ListPresets returns every preset in insertion order.
func (s *Store) ListPresets(ctx context.Context) ([]preset.Preset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, player1, player2
		FROM presets
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	presets := []preset.Preset{}
	for rows.Next() {
		var p preset.Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Player1, &p.Player2); err != nil {
			return nil, fmt.Errorf("list presets: scan: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return presets, nil
}

// GetPreset returns the preset with the given ID or ErrNotFound.
func (s *Store) GetPreset(ctx context.Context, id string) (preset.Preset, error) {
	var p preset.Preset
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, player1, player2 FROM presets WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Player1, &p.Player2)
	if errors.Is(err, sql.ErrNoRows) {
		return preset.Preset{}, fmt.Errorf("get preset %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return preset.Preset{}, fmt.Errorf("get preset %s: %w", id, err)
	}
	return p, nil
}

// InsertPresets appends presets in order within a single transaction.
// Either every preset is stored or none is.
func (s *Store) InsertPresets(ctx context.Context, presets []preset.Preset) error {
	if len(presets) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert presets: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var maxSeq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM presets`).Scan(&maxSeq); err != nil {
		return fmt.Errorf("insert presets: max seq: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO presets (id, seq, name, player1, player2)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert presets: prepare: %w", err)
	}
	defer stmt.Close()

	for i, p := range presets {
		if _, err := stmt.ExecContext(ctx, p.ID, maxSeq+int64(i)+1, p.Name, p.Player1, p.Player2); err != nil {
			return fmt.Errorf("insert presets: row %d (%s): %w", i+1, p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert presets: commit: %w", err)
	}
	return nil
}

// DeletePreset removes a preset. It reports whether a row was removed.
func (s *Store) DeletePreset(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete preset: rows affected: %w", err)
	}
	return n > 0, nil
}

// ClearPresets removes every preset and returns how many were removed.
func (s *Store) ClearPresets(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets`)
	if err != nil {
		return 0, fmt.Errorf("clear presets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear presets: rows affected: %w", err)
	}
	return n, nil
}
