package leveling

import (
	"encoding/json"
	"time"

	"github.com/waybook-app/waybook/internal/domain"
	"github.com/waybook-app/waybook/internal/infra/metrics"
)

// dayFormat is the calendar-day granularity of the streak: a date-only
// string in the device's local time.
const dayFormat = "2006-01-02"

// TickStreak records an app open for the calendar day of now. Idempotent per
// day: a second tick on the same day returns the stored values unchanged.
// Exactly one elapsed day extends the streak; any other gap resets it to 1.
// Best is the running maximum of Current.
func (s *Service) TickStreak(now time.Time) domain.Streak {
	streak := s.loadStreak()
	today := now.Format(dayFormat)

	if streak.Last == today {
		return streak // already ticked today
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	if streak.Last == yesterday {
		streak.Current++
	} else {
		streak.Current = 1
	}
	if streak.Current > streak.Best {
		streak.Best = streak.Current
	}
	streak.Last = today

	s.save(streakKey, streak)
	metrics.StreakDays.Set(float64(streak.Current))
	return streak
}

// Streak returns the persisted streak without ticking it.
func (s *Service) Streak() domain.Streak {
	return s.loadStreak()
}

func (s *Service) loadStreak() domain.Streak {
	raw, err := s.store.Get(streakKey)
	if err != nil || raw == "" {
		return domain.Streak{}
	}
	var streak domain.Streak
	if err := json.Unmarshal([]byte(raw), &streak); err != nil {
		return domain.Streak{}
	}
	return streak
}
