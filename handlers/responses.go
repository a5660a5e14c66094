// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/nicer-face/faces"
	"github.com/danielhkuo/nicer-face/ids"
	"github.com/danielhkuo/nicer-face/middleware"
	"github.com/danielhkuo/nicer-face/models"
	"github.com/danielhkuo/nicer-face/store"
)

type ResponseHandler struct {
	store   *store.Store
	catalog *faces.Catalog
}

func NewResponseHandler(st *store.Store, catalog *faces.Catalog) *ResponseHandler {
	return &ResponseHandler{store: st, catalog: catalog}
}

// RecordResponse handles POST /responses
func (h *ResponseHandler) RecordResponse(w http.ResponseWriter, r *http.Request) {
	var req models.RecordResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := h.validate(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	trial := models.Trial{
		ID:             ids.NewTrialID(),
		SessionID:      req.SessionID,
		TrialNumber:    *req.TrialNumber,
		LeftFace:       req.LeftFace,
		RightFace:      req.RightFace,
		SelectedFace:   req.SelectedFace,
		ResponseTimeMs: req.ResponseTimeMs,
		CreatedAt:      time.Now().UTC(),
	}

	err := h.store.RecordTrial(r.Context(), trial)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	case errors.Is(err, store.ErrDuplicateTrial):
		middleware.ErrorResponse(w, http.StatusConflict, "Trial already recorded")
		return
	case err != nil:
		internalError(w, r, "failed to record trial", err)
		return
	}

	slog.Info("trial recorded",
		"session_id", trial.SessionID,
		"trial_number", trial.TrialNumber,
		"selected_face", trial.SelectedFace,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RecordResponseResponse{Success: true})
}

// validate returns the first problem with req, or "" when it can be stored.
func (h *ResponseHandler) validate(req models.RecordResponseRequest) string {
	if req.SessionID == "" || req.TrialNumber == nil ||
		req.LeftFace == "" || req.RightFace == "" || req.SelectedFace == "" {
		return "Missing required fields"
	}
	if *req.TrialNumber < 1 {
		return "trial_number must be at least 1"
	}
	if req.LeftFace == req.RightFace {
		return "left_face and right_face must differ"
	}
	if !h.catalog.Contains(req.LeftFace) || !h.catalog.Contains(req.RightFace) {
		return "Unknown face"
	}
	if req.SelectedFace != req.LeftFace && req.SelectedFace != req.RightFace {
		return "selected_face must be left_face or right_face"
	}
	if req.ResponseTimeMs != nil && *req.ResponseTimeMs < 0 {
		return "response_time_ms must not be negative"
	}
	return ""
}
