// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/nicer-face/db"
	"github.com/danielhkuo/nicer-face/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDuplicateTrial  = errors.New("trial already recorded")
	ErrFaceNotFound    = errors.New("face has no stats row")
)

// Store is the persistence layer for sessions, trials and face stats.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSession inserts a new, uncompleted session.
func (s *Store) CreateSession(ctx context.Context, id string, createdAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, created_at)
		VALUES ($1, $2)
	`, id, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession returns ErrSessionNotFound for an unknown id.
func (s *Store) GetSession(ctx context.Context, id string) (models.Session, error) {
	var sess models.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, completed_at, agreement_score
		FROM sessions
		WHERE id = $1
	`, id).Scan(&sess.ID, &sess.CreatedAt, &sess.CompletedAt, &sess.AgreementScore)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	return sess, nil
}

// RecordTrial appends the trial and applies both stat increments in one
// transaction. Either all three writes land or none do.
func (s *Store) RecordTrial(ctx context.Context, trial models.Trial) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1)
	`, trial.SessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return ErrSessionNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trials (id, session_id, trial_number, left_face, right_face, selected_face, response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, trial.ID, trial.SessionID, trial.TrialNumber, trial.LeftFace, trial.RightFace,
		trial.SelectedFace, trial.ResponseTimeMs, trial.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateTrial
		}
		return fmt.Errorf("failed to insert trial: %w", err)
	}

	for _, u := range faceUpdates(trial) {
		if err := bumpFace(ctx, tx, u.query, u.faceID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trial: %w", err)
	}
	return nil
}

const (
	selectedFaceUpdate = `
		UPDATE face_stats
		SET times_shown = times_shown + 1, times_selected = times_selected + 1
		WHERE face_id = $1
	`
	rejectedFaceUpdate = `
		UPDATE face_stats
		SET times_shown = times_shown + 1
		WHERE face_id = $1
	`
)

type faceUpdate struct {
	faceID string
	query  string
}

// faceUpdates lists the two stats updates of a trial in face_id order.
// Every transaction locks face_stats rows in the same order, so two trials
// over the same pair cannot deadlock on PostgreSQL.
func faceUpdates(trial models.Trial) []faceUpdate {
	selected := faceUpdate{faceID: trial.SelectedFace, query: selectedFaceUpdate}
	rejected := faceUpdate{faceID: trial.RejectedFace(), query: rejectedFaceUpdate}
	if rejected.faceID < selected.faceID {
		return []faceUpdate{rejected, selected}
	}
	return []faceUpdate{selected, rejected}
}

func bumpFace(ctx context.Context, tx *sql.Tx, query, faceID string) error {
	res, err := tx.ExecContext(ctx, query, faceID)
	if err != nil {
		return fmt.Errorf("failed to update stats for %s: %w", faceID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("%w: %s", ErrFaceNotFound, faceID)
	}
	return nil
}

// ListTrials returns a session's trials ordered by trial number.
func (s *Store) ListTrials(ctx context.Context, sessionID string) ([]models.Trial, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, trial_number, left_face, right_face, selected_face, response_time_ms, created_at
		FROM trials
		WHERE session_id = $1
		ORDER BY trial_number
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trials: %w", err)
	}
	defer rows.Close()

	trials := []models.Trial{}
	for rows.Next() {
		var tr models.Trial
		if err := rows.Scan(&tr.ID, &tr.SessionID, &tr.TrialNumber, &tr.LeftFace, &tr.RightFace,
			&tr.SelectedFace, &tr.ResponseTimeMs, &tr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trial: %w", err)
		}
		trials = append(trials, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trials: %w", err)
	}
	return trials, nil
}

// SessionSelections returns the selected face of each trial in trial order.
func (s *Store) SessionSelections(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT selected_face
		FROM trials
		WHERE session_id = $1
		ORDER BY trial_number
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	var selections []string
	for rows.Next() {
		var face string
		if err := rows.Scan(&face); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections = append(selections, face)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selections: %w", err)
	}
	return selections, nil
}

// CompleteSession sets completed_at and agreement_score, overwriting any
// earlier completion.
func (s *Store) CompleteSession(ctx context.Context, id string, score int, completedAt time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET completed_at = $1, agreement_score = $2
		WHERE id = $3
	`, completedAt, score, id)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CountCompletedSessions counts sessions that have been completed at least once.
func (s *Store) CountCompletedSessions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sessions WHERE completed_at IS NOT NULL
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Leaderboard returns completed, scored sessions, best score first. Ties go
// to whoever finished earlier.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, completed_at, agreement_score
		FROM sessions
		WHERE completed_at IS NOT NULL AND agreement_score IS NOT NULL
		ORDER BY agreement_score DESC, completed_at ASC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(&sess.ID, &sess.CreatedAt, &sess.CompletedAt, &sess.AgreementScore); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}
	return sessions, nil
}
