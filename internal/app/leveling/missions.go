package leveling

import (
	"encoding/json"
	"time"

	"github.com/waybook-app/waybook/internal/domain"
	"github.com/waybook-app/waybook/internal/infra/metrics"
)

// Missions assembles the current mission list: one active tier per ladder
// plus the fixed one-off missions. Ticks the streak and runs the ladder
// engine first, so the list (and any newly earned XP) reflects the latest
// persisted trips. The assembled list is persisted for the UI and for
// one-off progress recovery on the next rebuild.
func (s *Service) Missions() []domain.Mission {
	return s.MissionsAt(time.Now())
}

// MissionsAt is Missions with an explicit clock, for tests.
func (s *Service) MissionsAt(now time.Time) []domain.Mission {
	s.TickStreak(now)
	s.UpdateLadders()

	// Ladder progress is always recomputed from stats; only one-off progress
	// carries over from the previously persisted list.
	prev := s.loadMissions()

	stats := s.Stats()
	stages := s.loadStages()

	out := make([]domain.Mission, 0, len(ladders)+len(oneOffMissions))
	for _, lad := range ladders {
		// A maxed ladder parks at its hardest tier rather than disappearing.
		stage := stages[lad.Key].StageIndex
		if stage > len(lad.Thresholds)-1 {
			stage = len(lad.Thresholds) - 1
		}
		target := lad.Thresholds[stage]

		progress := s.ladderMetric(lad.Key, stats)
		if progress > target {
			progress = target
		}

		out = append(out, domain.Mission{
			ID:          "ladder_" + lad.Key,
			Title:       lad.Title(target),
			RewardXP:    s.RewardFor(lad.Key, target),
			MaxProgress: target,
			Progress:    progress,
		})
	}

	for _, o := range oneOffMissions {
		progress := 0
		if m, ok := prev[o.ID]; ok && m.Progress > 0 {
			progress = 1
		}
		out = append(out, domain.Mission{
			ID:          o.ID,
			Title:       o.Title,
			RewardXP:    o.RewardXP,
			MaxProgress: 1,
			Progress:    progress,
		})
	}

	s.save(missionsKey, out)
	return out
}

// ProgressMission advances a mission by delta, clamped into
// [0, MaxProgress]. Crossing from incomplete to complete grants the
// mission's reward exactly once. Returns the updated list, or nil when the
// id is unknown.
func (s *Service) ProgressMission(id string, delta int) []domain.Mission {
	list := s.Missions()
	for i := range list {
		if list[i].ID != id {
			continue
		}

		was := list[i].Progress
		next := was + delta
		if next < 0 {
			next = 0
		}
		if next > list[i].MaxProgress {
			next = list[i].MaxProgress
		}
		list[i].Progress = next

		if was < list[i].MaxProgress && next >= list[i].MaxProgress {
			s.AddXP(list[i].RewardXP)
			metrics.MissionsCompleted.WithLabelValues(id).Inc()
		}

		s.save(missionsKey, list)
		return list
	}
	return nil
}

// loadMissions returns the previously persisted list keyed by mission id.
func (s *Service) loadMissions() map[string]domain.Mission {
	out := make(map[string]domain.Mission)

	raw, err := s.store.Get(missionsKey)
	if err != nil || raw == "" {
		return out
	}
	var list []domain.Mission
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return out
	}
	for _, m := range list {
		out[m.ID] = m
	}
	return out
}
