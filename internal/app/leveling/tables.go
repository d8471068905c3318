// Package leveling implements the Waybook gamification engine.
// Cumulative-XP levels, progressively-thresholded mission ladders derived
// from persisted trip data, and a daily open streak — all over a flat
// key-value store.
// Design rule: every obtainable XP point is budgeted; the grand total of all
// ladder rewards plus one-off missions is exactly TotalXP.
package leveling

import "fmt"

// TotalXP is the global XP ceiling the whole reward system is budgeted
// against. It is also the threshold for the final level.
const TotalXP = 10000

// MaxLevel is the highest reachable level.
const MaxLevel = 10

// levelThresholds[i] is the cumulative XP at which level i+1 unlocks.
var levelThresholds = []int64{0, 200, 500, 1000, 1600, 2400, 3400, 5000, 8000, 10000}

// ─── Persisted Keys ─────────────────────────────────────────────────────────
// Stable on-disk schema shared with the mobile shell. Do not rename.

const (
	stateKey    = "leveling_v1_state"
	missionsKey = "missions_v2_state"
	stagesKey   = "mission_stages_v1"
	pendingKey  = "pending_levelup_v1"
	streakKey   = "app_streak_v1"
)

// StateKey exposes the XP record key for health checks and tooling.
const StateKey = stateKey

// ─── Mission Ladders ────────────────────────────────────────────────────────

// Ladder keys.
const (
	LadderCreateTrips    = "create_trips"
	LadderAddPhotos      = "add_photos"
	LadderAddCaptions    = "add_captions"
	LadderOpenStreak     = "open_streak"
	LadderVisitCountries = "visit_countries"
	LadderAchieveLevel   = "achieve_level"
)

// Ladder defines one mission ladder: ascending thresholds, a title rule, and
// a fixed XP budget distributed across the thresholds by
// buildProgressiveRewards.
type Ladder struct {
	Key        string
	Thresholds []int
	TotalXP    int64
	Title      func(target int) string
}

// ladders is the full ladder catalog in evaluation order. achieve_level runs
// last so that rewards granted by the other ladders in the same pass are
// already reflected in the level it measures.
var ladders = []Ladder{
	{
		Key:        LadderCreateTrips,
		Thresholds: []int{1, 3, 5, 10, 20, 35, 50},
		TotalXP:    1800,
		Title: func(target int) string {
			if target == 1 {
				return "Create your first trip"
			}
			return fmt.Sprintf("Create %d trips", target)
		},
	},
	{
		Key:        LadderAddPhotos,
		Thresholds: []int{5, 25, 100, 250, 500, 1000, 2500},
		TotalXP:    2000,
		Title: func(target int) string {
			return fmt.Sprintf("Add %d photos to your trips", target)
		},
	},
	{
		Key:        LadderAddCaptions,
		Thresholds: []int{1, 10, 50, 150, 400, 1000},
		TotalXP:    1500,
		Title: func(target int) string {
			if target == 1 {
				return "Write your first caption"
			}
			return fmt.Sprintf("Write %d captions", target)
		},
	},
	{
		Key:        LadderOpenStreak,
		Thresholds: []int{3, 7, 14, 30, 60, 100},
		TotalXP:    1500,
		Title: func(target int) string {
			return fmt.Sprintf("Open Waybook %d days in a row", target)
		},
	},
	{
		Key:        LadderVisitCountries,
		Thresholds: []int{1, 3, 5, 10, 20, 30},
		TotalXP:    1480,
		Title: func(target int) string {
			if target == 1 {
				return "Journal your first country"
			}
			return fmt.Sprintf("Journal trips in %d countries", target)
		},
	},
	{
		Key:        LadderAchieveLevel,
		Thresholds: []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
		TotalXP:    1500,
		Title: func(target int) string {
			return fmt.Sprintf("Reach level %d", target)
		},
	},
}

// LadderTotals maps ladder key to its fixed XP budget.
var LadderTotals = func() map[string]int64 {
	m := make(map[string]int64, len(ladders))
	for _, l := range ladders {
		m[l.Key] = l.TotalXP
	}
	return m
}()

// Ladders returns the ladder catalog (for display and tests).
func Ladders() []Ladder {
	return ladders
}

// ─── One-Off Missions ───────────────────────────────────────────────────────

// oneOff is a fixed single-completion mission whose progress is driven by the
// UI (share dialog, profile editor, minigame) rather than by trip stats.
type oneOff struct {
	ID       string
	Title    string
	RewardXP int64
}

// Mission ids are part of the stored schema; play_trippin predates the
// Waybook rename and stays as-is.
var oneOffMissions = []oneOff{
	{ID: "share_app", Title: "Share Waybook with a friend", RewardXP: 100},
	{ID: "add_profile_picture", Title: "Add a profile picture", RewardXP: 40},
	{ID: "play_trippin", Title: "Play a round of Trippin'", RewardXP: 80},
}
