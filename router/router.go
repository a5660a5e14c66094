// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/nicer-face/cliparse"
	"github.com/danielhkuo/nicer-face/faces"
	"github.com/danielhkuo/nicer-face/handlers"
	"github.com/danielhkuo/nicer-face/middleware"
	"github.com/danielhkuo/nicer-face/pairing"
	"github.com/danielhkuo/nicer-face/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, catalog *faces.Catalog) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Initialize handlers
	st := store.New(db)
	sessionHandler := handlers.NewSessionHandler(st, pairing.NewGenerator(catalog, nil))
	responseHandler := handlers.NewResponseHandler(st, catalog)
	statsHandler := handlers.NewStatsHandler(st)

	routes := func(r chi.Router) {
		r.Get("/health", statsHandler.Health)

		// Session lifecycle
		r.Post("/sessions", middleware.WithLogging(sessionHandler.CreateSession))
		r.Post("/sessions/{id}/complete", middleware.WithLogging(sessionHandler.CompleteSession))
		r.Get("/sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
		r.Post("/responses", middleware.WithLogging(responseHandler.RecordResponse))

		// Aggregates
		r.Get("/stats", middleware.WithLogging(statsHandler.GetStats))
		r.Get("/leaderboard", middleware.WithLogging(statsHandler.GetLeaderboard))
	}

	r.Route("/api", routes)
	r.Group(routes)

	return r
}
