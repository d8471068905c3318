package leveling

import (
	"encoding/json"
	"log"
	"time"

	"github.com/waybook-app/waybook/internal/domain"
	"github.com/waybook-app/waybook/internal/infra/metrics"
)

// XPPerTripCreated is granted when the editor finishes creating a trip.
const XPPerTripCreated = 50

// Service is the leveling engine. It owns every leveling/mission/streak key
// in the store; trip records are read-only input.
//
// Storage and parse failures never escape to callers: reads degrade to empty
// defaults and writes are best-effort, per the UI contract that gamification
// state must never break a screen.
type Service struct {
	store domain.Store

	// rewards maps ladder key → threshold → XP reward. Computed once in
	// NewService from the ladder budgets; immutable afterwards.
	rewards map[string]map[int]int64
}

// NewService creates a leveling service over the given store.
func NewService(store domain.Store) *Service {
	rewards := make(map[string]map[int]int64, len(ladders))
	for _, l := range ladders {
		rewards[l.Key] = buildProgressiveRewards(l.Thresholds, l.TotalXP)
	}
	return &Service{store: store, rewards: rewards}
}

// ─── XP State ───────────────────────────────────────────────────────────────

// State returns the persisted XP record. Missing or corrupt data reads as a
// fresh zero state.
func (s *Service) State() domain.LevelingState {
	raw, err := s.store.Get(stateKey)
	if err != nil || raw == "" {
		return domain.LevelingState{}
	}

	// Older app versions persisted xp as a float; sanitize on the way in.
	var aux struct {
		XP float64 `json:"xp"`
	}
	if err := json.Unmarshal([]byte(raw), &aux); err != nil {
		return domain.LevelingState{}
	}
	return domain.LevelingState{XP: sanitizeXP(aux.XP)}
}

// AddXP is the single mutation point for XP. It adds delta to the stored
// total (clamping the result at 0), persists, and — when the addition crosses
// a level boundary — records a pending level-up for the UI. A zero delta is a
// no-op. Returns the resulting state.
func (s *Service) AddXP(delta int64) domain.LevelingState {
	cur := s.State()
	if delta == 0 {
		return cur
	}

	before := LevelForXP(cur.XP)
	next := domain.LevelingState{XP: clampXP(cur.XP + delta)}
	s.save(stateKey, next)

	if delta > 0 {
		metrics.XPGranted.Add(float64(delta))
	}

	if after := LevelForXP(next.XP); after > before {
		s.save(pendingKey, domain.PendingLevelup{
			Level:     after,
			CreatedAt: time.Now().UnixMilli(),
		})
		metrics.LevelUps.Inc()
	}
	return next
}

// AwardTripCreated grants the fixed XP for creating a trip.
func (s *Service) AwardTripCreated() domain.LevelingState {
	return s.AddXP(XPPerTripCreated)
}

// AwardPhotosAdded grants 1 XP per photo. Non-positive counts are a no-op.
func (s *Service) AwardPhotosAdded(count int) domain.LevelingState {
	if count <= 0 {
		return s.State()
	}
	return s.AddXP(int64(count))
}

// Reset clears the XP record, assembled missions, ladder stages, and any
// pending level-up in a single multi-key removal. Trip records and the
// streak survive.
func (s *Service) Reset() error {
	return s.store.Delete(stateKey, missionsKey, stagesKey, pendingKey)
}

// ─── Pending Level-Up ───────────────────────────────────────────────────────

// PendingLevelup returns the unacknowledged level-up, or nil when absent,
// corrupt, or out of range.
func (s *Service) PendingLevelup() *domain.PendingLevelup {
	raw, err := s.store.Get(pendingKey)
	if err != nil || raw == "" {
		return nil
	}
	var p domain.PendingLevelup
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	if p.Level < 1 || p.Level > MaxLevel {
		return nil
	}
	return &p
}

// ClearPendingLevelup acknowledges the level-up notification.
func (s *Service) ClearPendingLevelup() {
	if err := s.store.Delete(pendingKey); err != nil {
		log.Printf("[leveling] clear pending levelup: %v", err)
	}
}

// save marshals v and writes it under key, best-effort.
func (s *Service) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[leveling] marshal %s: %v", key, err)
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		log.Printf("[leveling] save %s: %v", key, err)
	}
}
