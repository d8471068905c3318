package leveling_test

import (
	"testing"

	"github.com/waybook-app/waybook/internal/app/leveling"
)

func TestLevelForXP_Boundaries(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{199, 1},
		{200, 2},
		{499, 2},
		{500, 3},
		{9999, 9},
		{10000, 10},
		{10001, 10}, // clamped at MaxLevel
		{-50, 1},    // negative coerced
	}

	for _, tt := range tests {
		if got := leveling.LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	prev := 0
	for xp := int64(0); xp <= leveling.TotalXP+500; xp += 37 {
		level := leveling.LevelForXP(xp)
		if level < prev {
			t.Fatalf("level regressed at xp=%d: %d -> %d", xp, prev, level)
		}
		prev = level
	}
}

func TestXPToNextLevel(t *testing.T) {
	p := leveling.XPToNextLevel(210)
	if p.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", p.CurrentLevel)
	}
	if p.CurrentLevelXP != 200 {
		t.Errorf("CurrentLevelXP = %d, want 200", p.CurrentLevelXP)
	}
	if p.NextLevelXP != 500 {
		t.Errorf("NextLevelXP = %d, want 500", p.NextLevelXP)
	}
	if p.Remaining != 290 {
		t.Errorf("Remaining = %d, want 290", p.Remaining)
	}
}

func TestXPToNextLevel_Maxed(t *testing.T) {
	for _, xp := range []int64{10000, 12345} {
		p := leveling.XPToNextLevel(xp)
		if p.CurrentLevel != leveling.MaxLevel {
			t.Errorf("xp=%d: CurrentLevel = %d, want %d", xp, p.CurrentLevel, leveling.MaxLevel)
		}
		if p.Remaining != 0 {
			t.Errorf("xp=%d: Remaining = %d, want 0 at max level", xp, p.Remaining)
		}
		if p.NextLevelXP != 10000 {
			t.Errorf("xp=%d: NextLevelXP = %d, want final threshold repeated", xp, p.NextLevelXP)
		}
	}
}

func TestXPSpanForLevel(t *testing.T) {
	if span := leveling.XPSpanForLevel(1); span != 200 {
		t.Errorf("span(1) = %d, want 200", span)
	}
	if span := leveling.XPSpanForLevel(9); span != 2000 {
		t.Errorf("span(9) = %d, want 2000", span)
	}
	if span := leveling.XPSpanForLevel(leveling.MaxLevel); span != 0 {
		t.Errorf("span(max) = %d, want 0", span)
	}
}

func TestLevelLookupsClampRange(t *testing.T) {
	if got := leveling.MinXPForLevel(0); got != 0 {
		t.Errorf("MinXPForLevel(0) = %d, want 0", got)
	}
	if got := leveling.MinXPForLevel(99); got != 10000 {
		t.Errorf("MinXPForLevel(99) = %d, want 10000", got)
	}
	if got := leveling.XPTargetForLevel(-3); got != 200 {
		t.Errorf("XPTargetForLevel(-3) = %d, want 200", got)
	}
}
