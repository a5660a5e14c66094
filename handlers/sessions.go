// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/nicer-face/db"
	"github.com/danielhkuo/nicer-face/ids"
	"github.com/danielhkuo/nicer-face/middleware"
	"github.com/danielhkuo/nicer-face/models"
	"github.com/danielhkuo/nicer-face/pairing"
	"github.com/danielhkuo/nicer-face/scoring"
	"github.com/danielhkuo/nicer-face/store"
)

// sessionIDAttempts bounds retries when a fresh session ID is already taken.
const sessionIDAttempts = 3

type SessionHandler struct {
	store     *store.Store
	generator *pairing.Generator
	newID     func() string
}

func NewSessionHandler(st *store.Store, gen *pairing.Generator) *SessionHandler {
	return &SessionHandler{store: st, generator: gen, newID: ids.NewSessionID}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	var err error
	for attempt := 1; attempt <= sessionIDAttempts; attempt++ {
		sessionID = h.newID()
		err = h.store.CreateSession(r.Context(), sessionID, time.Now().UTC())
		if err == nil || !db.IsUniqueViolation(err) {
			break
		}
		slog.Warn("session ID collision", "session_id", sessionID, "attempt", attempt)
	}
	if err != nil {
		internalError(w, r, "failed to create session", err)
		return
	}

	trials := h.generator.Generate()

	slog.Info("session created", "session_id", sessionID, "trials", len(trials))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:   sessionID,
		Trials:      trials,
		TotalTrials: len(trials),
	})
}

// CompleteSession handles POST /sessions/{id}/complete
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}
	ctx := r.Context()

	if _, err := h.store.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
			return
		}
		internalError(w, r, "failed to load session", err)
		return
	}

	selections, err := h.store.SessionSelections(ctx, sessionID)
	if err != nil {
		internalError(w, r, "failed to load selections", err)
		return
	}

	stats, err := h.store.FaceStats(ctx)
	if err != nil {
		internalError(w, r, "failed to load face stats", err)
		return
	}

	score := scoring.AgreementScore(selections, scoring.NewIndex(stats))

	// Completing again recomputes and overwrites the score.
	err = h.store.CompleteSession(ctx, sessionID, score, time.Now().UTC())
	if errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		internalError(w, r, "failed to complete session", err)
		return
	}

	slog.Info("session completed",
		"session_id", sessionID,
		"trials", len(selections),
		"agreement_score", score,
	)

	middleware.JSONResponse(w, http.StatusOK, models.CompleteSessionResponse{
		SessionID:      sessionID,
		AgreementScore: score,
		Completed:      true,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess, err := h.store.GetSession(r.Context(), sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		internalError(w, r, "failed to load session", err)
		return
	}

	trials, err := h.store.ListTrials(r.Context(), sessionID)
	if err != nil {
		internalError(w, r, "failed to load trials", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionWithTrials{
		Session: sess,
		Trials:  trials,
	})
}

// internalError logs err and answers with a generic 500.
func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, middleware.InternalErrorMessage)
}
