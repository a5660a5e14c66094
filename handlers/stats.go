// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/nicer-face/middleware"
	"github.com/danielhkuo/nicer-face/models"
	"github.com/danielhkuo/nicer-face/scoring"
	"github.com/danielhkuo/nicer-face/store"
)

type StatsHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st, now: time.Now}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.RankedFaceStats(r.Context())
	if err != nil {
		internalError(w, r, "failed to load face stats", err)
		return
	}

	total, err := h.store.CountCompletedSessions(r.Context())
	if err != nil {
		internalError(w, r, "failed to count sessions", err)
		return
	}

	views := make([]models.FaceStatView, len(stats))
	for i, s := range stats {
		views[i] = models.FaceStatView{
			FaceID:        s.FaceID,
			TimesShown:    s.TimesShown,
			TimesSelected: s.TimesSelected,
			NicenessPct:   scoring.NicenessPct(s),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Faces:         views,
		TotalSessions: total,
	})
}

// GetLeaderboard handles GET /leaderboard?limit=N
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := models.LeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > models.LeaderboardLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"limit must be between 1 and "+strconv.Itoa(models.LeaderboardLimit))
			return
		}
		limit = n
	}

	sessions, err := h.store.Leaderboard(r.Context(), limit)
	if err != nil {
		internalError(w, r, "failed to load leaderboard", err)
		return
	}

	now := h.now()
	entries := make([]models.LeaderboardEntry, 0, len(sessions))
	for _, s := range sessions {
		// The query only returns rows with both fields set.
		entries = append(entries, models.LeaderboardEntry{
			ID:             s.ID,
			AgreementScore: *s.AgreementScore,
			CompletedAt:    *s.CompletedAt,
			CompletedAgo:   humanize.RelTime(*s.CompletedAt, now, "ago", "from now"),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{Entries: entries})
}

// Health handles GET /health
func (h *StatsHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Message:   "Nicer Face API is running",
	})
}
