package leveling

import (
	"encoding/json"
	"strings"

	"github.com/waybook-app/waybook/internal/domain"
)

// Stats scans every persisted trip record and derives the counters the
// mission ladders feed on. Corrupt records are skipped; a failed scan
// degrades to zeros rather than aborting.
func (s *Service) Stats() domain.AppStats {
	stats := domain.AppStats{
		CurrentStreak: s.loadStreak().Current,
	}

	keys, err := s.store.Keys()
	if err != nil {
		return stats
	}

	var tripKeys []string
	for _, k := range keys {
		if strings.HasPrefix(k, domain.TripKeyPrefix) {
			tripKeys = append(tripKeys, k)
		}
	}

	records, err := s.store.GetMulti(tripKeys)
	if err != nil {
		return stats
	}

	countries := make(map[string]struct{})
	for _, raw := range records {
		var trip domain.Trip
		if err := json.Unmarshal([]byte(raw), &trip); err != nil {
			continue
		}
		// Only fully-formed records count as trips, but photos, captions,
		// and countries accumulate from any parseable record.
		if trip.ID != "" && trip.Title != "" {
			stats.TripCount++
		}

		// Prefer the editor's cached photo total when present; captions are
		// always counted from the day entries so they stay accurate even
		// when the cache short-circuits the photo walk.
		photos := 0
		for _, day := range trip.Days {
			photos += len(day.Memories)
			for _, m := range day.Memories {
				if strings.TrimSpace(m.Caption) != "" {
					stats.CaptionCount++
				}
			}
		}
		if trip.TotalPhotos != nil && *trip.TotalPhotos >= 0 {
			photos = *trip.TotalPhotos
		}
		stats.PhotoCount += photos

		if c := strings.TrimSpace(trip.Country); c != "" {
			countries[c] = struct{}{}
		}
	}
	stats.CountryCount = len(countries)

	return stats
}
