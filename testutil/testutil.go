// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/nicer-face/cliparse"
	"github.com/danielhkuo/nicer-face/db"
	"github.com/danielhkuo/nicer-face/faces"
	"github.com/danielhkuo/nicer-face/ids"
)

// TestDBURL is an in-memory SQLite database. Each pool gets its own copy.
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh database with the full schema and a seeded
// default catalog. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedFaceStats(context.Background(), conn, faces.Default()); err != nil {
		t.Fatalf("Failed to seed face stats: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		FaceCount:    faces.DefaultSize,
		CORSOrigin:   "*",
	}
}

// CreateTestSession inserts a session and returns its ID.
// A non-nil score also marks it completed.
func CreateTestSession(t *testing.T, conn *sql.DB, score *int) string {
	t.Helper()

	sessionID := ids.NewSessionID()
	now := time.Now().UTC()

	var completedAt *time.Time
	if score != nil {
		completedAt = &now
	}

	_, err := conn.Exec(`
		INSERT INTO sessions (id, created_at, completed_at, agreement_score)
		VALUES ($1, $2, $3, $4)
	`, sessionID, now, completedAt, score)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return sessionID
}

// SetFaceStats overwrites the counters of one face.
func SetFaceStats(t *testing.T, conn *sql.DB, faceID string, shown, selected int64) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE face_stats SET times_shown = $1, times_selected = $2 WHERE face_id = $3
	`, shown, selected, faceID)
	if err != nil {
		t.Fatalf("Failed to set face stats: %v", err)
	}
}

// GetFaceStats reads the counters of one face.
func GetFaceStats(t *testing.T, conn *sql.DB, faceID string) (shown, selected int64) {
	t.Helper()

	err := conn.QueryRow(`
		SELECT times_shown, times_selected FROM face_stats WHERE face_id = $1
	`, faceID).Scan(&shown, &selected)
	if err != nil {
		t.Fatalf("Failed to read face stats: %v", err)
	}
	return shown, selected
}

// CountTrials counts the trials stored for a session.
func CountTrials(t *testing.T, conn *sql.DB, sessionID string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM trials WHERE session_id = $1", sessionID).Scan(&count); err != nil {
		t.Fatalf("Failed to count trials: %v", err)
	}
	return count
}

// IntPtr is a shorthand for optional integer fields.
func IntPtr(v int) *int { return &v }

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
