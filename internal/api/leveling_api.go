package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/waybook-app/waybook/internal/app/leveling"
)

// ─── Leveling REST API (/api/leveling/*) ────────────────────────────────────
// Thin JSON wrappers over the leveling service. The service itself degrades
// to safe defaults on storage failures, so handlers rarely need error paths.

// stateResponse bundles the XP record with its derived level progress.
type stateResponse struct {
	XP       int64 `json:"xp"`
	Level    int   `json:"level"`
	Progress any   `json:"progress"`
}

func (s *Server) stateResponseNow() stateResponse {
	st := s.leveling.State()
	return stateResponse{
		XP:       st.XP,
		Level:    leveling.LevelForXP(st.XP),
		Progress: leveling.XPToNextLevel(st.XP),
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stateResponseNow())
}

func (s *Server) handleAddXP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	s.leveling.AddXP(req.Amount)
	writeJSON(w, http.StatusOK, s.stateResponseNow())
}

func (s *Server) handleAwardTrip(w http.ResponseWriter, r *http.Request) {
	s.leveling.AwardTripCreated()
	writeJSON(w, http.StatusOK, s.stateResponseNow())
}

func (s *Server) handleAwardPhotos(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	s.leveling.AwardPhotosAdded(req.Count)
	writeJSON(w, http.StatusOK, s.stateResponseNow())
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.leveling.Missions())
}

func (s *Server) handleMissionProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta *int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	delta := 1
	if req.Delta != nil {
		delta = *req.Delta
	}

	id := chi.URLParam(r, "id")
	list := s.leveling.ProgressMission(id, delta)
	if list == nil {
		writeError(w, http.StatusNotFound, "unknown mission: "+id)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.leveling.Stats())
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.leveling.Streak())
}

func (s *Server) handleStreakTick(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.leveling.TickStreak(time.Now()))
}

func (s *Server) handlePendingLevelup(w http.ResponseWriter, r *http.Request) {
	p := s.leveling.PendingLevelup()
	if p == nil {
		writeJSON(w, http.StatusOK, map[string]any{"pending": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pending": p})
}

func (s *Server) handleClearLevelup(w http.ResponseWriter, r *http.Request) {
	s.leveling.ClearPendingLevelup()
	w.WriteHeader(http.StatusNoContent)
}

// handleSummary returns everything the missions screen needs in one call.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	missions := s.leveling.Missions() // ticks streak, runs ladders
	writeJSON(w, http.StatusOK, map[string]any{
		"state":    s.stateResponseNow(),
		"streak":   s.leveling.Streak(),
		"stats":    s.leveling.Stats(),
		"missions": missions,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.leveling.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, "reset: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponseNow())
}
