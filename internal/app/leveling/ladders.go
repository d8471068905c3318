package leveling

import (
	"encoding/json"

	"github.com/waybook-app/waybook/internal/domain"
	"github.com/waybook-app/waybook/internal/infra/metrics"
)

// UpdateLadders reconciles every ladder's credited stage against freshly
// computed statistics, granting the tier reward for each newly crossed
// threshold. The stored stage index is the sole record of what has been
// credited and only ever moves forward, so calling this on every screen
// focus is safe: with unchanged stats it is a pure no-op.
//
// Returns the number of tiers crossed in this pass.
func (s *Service) UpdateLadders() int {
	stats := s.Stats()
	stages := s.loadStages()

	crossed := 0
	for _, lad := range ladders {
		// achieve_level reads XP at evaluation time, so rewards granted by
		// the ladders before it in this same pass already count toward it.
		metric := s.ladderMetric(lad.Key, stats)

		idx := stages[lad.Key].StageIndex
		for idx < len(lad.Thresholds) && metric >= lad.Thresholds[idx] {
			s.AddXP(s.RewardFor(lad.Key, lad.Thresholds[idx]))
			metrics.LadderAdvances.WithLabelValues(lad.Key).Inc()
			idx++
			crossed++
		}
		stages[lad.Key] = domain.MissionStage{StageIndex: idx}
	}

	if crossed > 0 {
		s.save(stagesKey, stages)
	}
	return crossed
}

// ladderMetric returns the statistic a ladder measures.
func (s *Service) ladderMetric(key string, stats domain.AppStats) int {
	switch key {
	case LadderCreateTrips:
		return stats.TripCount
	case LadderAddPhotos:
		return stats.PhotoCount
	case LadderAddCaptions:
		return stats.CaptionCount
	case LadderOpenStreak:
		return stats.CurrentStreak
	case LadderVisitCountries:
		return stats.CountryCount
	case LadderAchieveLevel:
		return LevelForXP(s.State().XP)
	}
	return 0
}

// loadStages reads the persisted stage cursors, treating anything malformed
// as absent. Decoded cursors are clamped into [0, len(thresholds)] so a
// corrupt record can never index outside a ladder's threshold table.
func (s *Service) loadStages() domain.MissionStages {
	raw, err := s.store.Get(stagesKey)
	if err != nil || raw == "" {
		return domain.MissionStages{}
	}
	var stages domain.MissionStages
	if err := json.Unmarshal([]byte(raw), &stages); err != nil || stages == nil {
		return domain.MissionStages{}
	}
	for _, lad := range ladders {
		st, ok := stages[lad.Key]
		if !ok {
			continue
		}
		if st.StageIndex < 0 {
			st.StageIndex = 0
		}
		if st.StageIndex > len(lad.Thresholds) {
			st.StageIndex = len(lad.Thresholds)
		}
		stages[lad.Key] = st
	}
	return stages
}
