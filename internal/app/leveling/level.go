package leveling

import (
	"math"

	"github.com/waybook-app/waybook/internal/domain"
)

// LevelForXP returns the level for a given XP amount: the highest level whose
// threshold is at or below xp. LevelForXP(0) is 1; anything at or beyond the
// final threshold is MaxLevel, never higher.
func LevelForXP(xp int64) int {
	xp = clampXP(xp)
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPToNextLevel returns the position of an XP total within the level curve.
// At MaxLevel the next-level target repeats the final threshold and
// Remaining is 0.
func XPToNextLevel(xp int64) domain.LevelProgress {
	xp = clampXP(xp)
	level := LevelForXP(xp)

	p := domain.LevelProgress{
		CurrentLevel:   level,
		CurrentLevelXP: MinXPForLevel(level),
		NextLevelXP:    XPTargetForLevel(level),
	}
	if r := p.NextLevelXP - xp; r > 0 {
		p.Remaining = r
	}
	return p
}

// MinXPForLevel returns the cumulative XP threshold that unlocks a level.
func MinXPForLevel(level int) int64 {
	return levelThresholds[clampLevel(level)-1]
}

// XPTargetForLevel returns the cumulative XP needed for the next level.
// At MaxLevel there is no further progression; the final threshold repeats.
func XPTargetForLevel(level int) int64 {
	level = clampLevel(level)
	if level >= MaxLevel {
		return levelThresholds[MaxLevel-1]
	}
	return levelThresholds[level]
}

// XPSpanForLevel returns the XP width of a level (0 at MaxLevel).
func XPSpanForLevel(level int) int64 {
	return XPTargetForLevel(level) - MinXPForLevel(level)
}

// clampXP coerces any XP input to a safe non-negative value.
func clampXP(xp int64) int64 {
	if xp < 0 {
		return 0
	}
	return xp
}

// clampLevel coerces a level into [1, MaxLevel].
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// sanitizeXP coerces a decoded JSON number into a usable XP value: fractional
// values are floored, negatives and non-finite values become 0. Persisted
// state written by older app versions may carry floats.
func sanitizeXP(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int64(math.Floor(f))
}
