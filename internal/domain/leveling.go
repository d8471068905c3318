// Package domain holds Waybook's core types.
// The leveling engine drives the travel journal's gamification loop:
// XP, levels, mission ladders, one-off missions, and the daily open streak.
package domain

// ─── Leveling Types ─────────────────────────────────────────────────────────

// LevelingState is the single persisted XP record.
// XP is a non-negative cumulative counter; it is never decremented below 0.
type LevelingState struct {
	XP int64 `json:"xp"`
}

// LevelProgress describes the position of an XP total within the level curve.
type LevelProgress struct {
	CurrentLevel   int   `json:"currentLevel"`
	CurrentLevelXP int64 `json:"currentLevelXp"`
	NextLevelXP    int64 `json:"nextLevelXp"`
	Remaining      int64 `json:"remaining"`
}

// PendingLevelup is the single-slot level-up notification.
// Written when AddXP crosses a level boundary, cleared by the UI once shown.
type PendingLevelup struct {
	Level     int   `json:"level"`
	CreatedAt int64 `json:"createdAt"` // epoch milliseconds
}

// ─── Mission Types ──────────────────────────────────────────────────────────

// Mission is the user-facing view of one mission: the current tier of a
// ladder, or a fixed one-off. Progress for ladder missions is derived from
// trip statistics; one-off progress is externally driven.
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	RewardXP    int64  `json:"rewardXp"`
	MaxProgress int    `json:"maxProgress"`
	Progress    int    `json:"progress"`
}

// MissionStage records how far a ladder has been credited.
type MissionStage struct {
	StageIndex int `json:"stageIndex"`
}

// MissionStages maps ladder key to credited stage.
type MissionStages map[string]MissionStage

// ─── Streak Types ───────────────────────────────────────────────────────────

// Streak tracks consecutive calendar days the app was opened.
// Last is a date-only string ("2006-01-02") in the device's local time.
type Streak struct {
	Current int    `json:"current"`
	Best    int    `json:"best"`
	Last    string `json:"last"`
}

// ─── Statistics ─────────────────────────────────────────────────────────────

// AppStats is a snapshot of counters derived from the persisted trip records,
// fed to the mission ladder engine.
type AppStats struct {
	TripCount     int `json:"tripCount"`
	PhotoCount    int `json:"photoCount"`
	CaptionCount  int `json:"captionCount"`
	CountryCount  int `json:"countryCount"`
	CurrentStreak int `json:"currentStreak"`
}
