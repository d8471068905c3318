package leveling

import "math"

// buildProgressiveRewards distributes a ladder's XP budget across its
// thresholds, favoring later (harder) tiers: the tier at position i carries
// weight (i+1)^1.4. Each share is rounded to the nearest integer with a floor
// of 1 XP, then rounding drift is corrected so the rewards sum to exactly
// total: shortfall is added to the hardest tiers first (walking backward),
// overshoot is removed from the easiest tiers first (walking forward), never
// taking any reward below 1.
func buildProgressiveRewards(thresholds []int, total int64) map[int]int64 {
	rewards := make(map[int]int64, len(thresholds))
	if len(thresholds) == 0 {
		return rewards
	}

	weights := make([]float64, len(thresholds))
	var weightSum float64
	for i := range thresholds {
		weights[i] = math.Pow(float64(i+1), 1.4)
		weightSum += weights[i]
	}

	shares := make([]int64, len(thresholds))
	var sum int64
	for i := range thresholds {
		share := int64(math.Round(weights[i] / weightSum * float64(total)))
		if share < 1 {
			share = 1
		}
		shares[i] = share
		sum += share
	}

	diff := total - sum
	for diff > 0 {
		for i := len(shares) - 1; i >= 0 && diff > 0; i-- {
			shares[i]++
			diff--
		}
	}
	for diff < 0 {
		reduced := false
		for i := 0; i < len(shares) && diff < 0; i++ {
			if shares[i] > 1 {
				shares[i]--
				diff++
				reduced = true
			}
		}
		if !reduced {
			break // budget smaller than 1 XP per tier — floor wins
		}
	}

	for i, t := range thresholds {
		rewards[t] = shares[i]
	}
	return rewards
}

// RewardFor returns the XP reward for reaching a threshold on a ladder, or 0
// for an unknown ladder or threshold. Reward maps are computed once at
// service construction; lookups here are pure reads of that immutable table.
func (s *Service) RewardFor(ladderKey string, threshold int) int64 {
	return s.rewards[ladderKey][threshold]
}
