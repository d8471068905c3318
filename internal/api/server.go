// Package api provides the HTTP server for Waybook.
// It exposes the leveling engine to the mobile shell as a small REST API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waybook-app/waybook/internal/app/leveling"
	"github.com/waybook-app/waybook/internal/health"
)

// Server is the Waybook HTTP API server.
type Server struct {
	leveling       *leveling.Service
	checker        *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(svc *leveling.Service, checker *health.Checker) *Server {
	return &Server{leveling: svc, checker: checker}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})
	r.Get("/health/details", s.handleHealthDetails)

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "Waybook is running",
		})
	})

	// Leveling engine endpoints
	r.Route("/api/leveling", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/xp", s.handleAddXP)
		r.Post("/awards/trip", s.handleAwardTrip)
		r.Post("/awards/photos", s.handleAwardPhotos)
		r.Get("/missions", s.handleMissions)
		r.Post("/missions/{id}/progress", s.handleMissionProgress)
		r.Get("/stats", s.handleStats)
		r.Get("/streak", s.handleStreak)
		r.Post("/streak/tick", s.handleStreakTick)
		r.Get("/levelup", s.handlePendingLevelup)
		r.Delete("/levelup", s.handleClearLevelup)
		r.Get("/summary", s.handleSummary)
		r.Post("/reset", s.handleReset)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleHealthDetails reports the latest health check statuses.
func (s *Server) handleHealthDetails(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	if !s.checker.Healthy() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"healthy": s.checker.Healthy(),
		"checks":  s.checker.Statuses(),
	})
}

// corsMiddleware allows the mobile shell's webviews to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
