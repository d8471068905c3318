// Package metrics provides Prometheus metrics for the Waybook leveling
// engine: XP flow, level-ups, mission completions, and streak length.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Leveling ───────────────────────────────────────────────────────────────

// XPGranted tracks total XP granted through AddXP.
var XPGranted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "waybook",
	Name:      "xp_granted_total",
	Help:      "Total XP granted.",
})

// LevelUps tracks level boundary crossings.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "waybook",
	Name:      "level_ups_total",
	Help:      "Total level-ups recorded.",
})

// ─── Missions ───────────────────────────────────────────────────────────────

// LadderAdvances tracks ladder tiers crossed, by ladder key.
var LadderAdvances = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "waybook",
	Name:      "ladder_advances_total",
	Help:      "Total mission ladder tiers crossed.",
}, []string{"ladder"})

// MissionsCompleted tracks mission completions, by mission id.
var MissionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "waybook",
	Name:      "missions_completed_total",
	Help:      "Total missions completed via progress updates.",
}, []string{"mission"})

// ─── Streak ─────────────────────────────────────────────────────────────────

// StreakDays tracks the current daily-open streak length.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "waybook",
	Name:      "streak_days_current",
	Help:      "Current daily open streak in days.",
})
