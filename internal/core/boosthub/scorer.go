package boosthub

import (
	"sort"
	"time"

	"github.com/playmixer/boosthub/internal/adapters/store/model"
)

// WaitingTier maps hours since a booster's latest assignment to a fairness
// bonus. Tiers are matched highest threshold first.
type WaitingTier struct {
	MinHours float64
	Bonus    float64
}

// ScoreWeights is the tunable scoring policy of the auto-assign selector.
// The control flow of the selection never depends on the values here.
type ScoreWeights struct {
	WaitingTiers       []WaitingTier
	CompletionPoints   float64
	CompletionCap      float64
	RatingFactor       float64
	SpeedBasePoints    float64
	SpeedBaselineHours float64
	SpeedSlope         float64
	SlotPoints         float64
	SlotCap            float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		CompletionPoints:   2,
		CompletionCap:      30,
		RatingFactor:       5,
		SpeedBasePoints:    20,
		SpeedBaselineHours: 12,
		SpeedSlope:         0.5,
		WaitingTiers: []WaitingTier{
			{MinHours: 24, Bonus: 15},
			{MinHours: 12, Bonus: 10},
			{MinHours: 6, Bonus: 5},
		},
		SlotPoints: 3,
		SlotCap:    10,
	}
}

// maxWaitingBonus is granted to boosters with no assignment history so
// newcomers are never starved.
func (w ScoreWeights) maxWaitingBonus() float64 {
	max := 0.0
	for _, tier := range w.WaitingTiers {
		if tier.Bonus > max {
			max = tier.Bonus
		}
	}
	return max
}

func (w ScoreWeights) waitingBonus(lastAssignedAt *time.Time, now time.Time) float64 {
	if lastAssignedAt == nil {
		return w.maxWaitingBonus()
	}
	hours := now.Sub(*lastAssignedAt).Hours()
	best := 0.0
	for _, tier := range w.WaitingTiers {
		if hours >= tier.MinHours && tier.Bonus > best {
			best = tier.Bonus
		}
	}
	return best
}

// boosterScore computes the weighted performance score of one candidate.
// Pure function of the snapshot, no store access.
func boosterScore(stats model.BoosterStats, w ScoreWeights, now time.Time) float64 {
	score := 0.0

	volume := float64(stats.Booster.CompletedOrders) * w.CompletionPoints
	if volume > w.CompletionCap {
		volume = w.CompletionCap
	}
	score += volume

	score += stats.Booster.Rating * w.RatingFactor

	speed := w.SpeedBasePoints - (stats.AvgCompletionHours-w.SpeedBaselineHours)*w.SpeedSlope
	if speed < 0 {
		speed = 0
	}
	score += speed

	score += w.waitingBonus(stats.LastAssignedAt, now)

	slots := float64(stats.AvailableSlots()) * w.SlotPoints
	if slots > w.SlotCap {
		slots = w.SlotCap
	}
	score += slots

	return score
}

// selectOptimalBooster picks the best eligible booster from a snapshot, or
// nil when none qualifies. Boosters at capacity are excluded outright.
// Equal scores resolve to the lowest booster id, so the result is
// deterministic for a given snapshot.
func selectOptimalBooster(candidates []model.BoosterStats, w ScoreWeights, now time.Time) *model.BoosterStats {
	eligible := make([]model.BoosterStats, 0, len(candidates))
	for _, c := range candidates {
		if c.ActiveOrders >= c.Booster.MaxOrders {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return nil
	}

	scores := make(map[uint]float64, len(eligible))
	for _, c := range eligible {
		scores[c.Booster.ID] = boosterScore(c, w, now)
	}
	sort.Slice(eligible, func(i, j int) bool {
		si, sj := scores[eligible[i].Booster.ID], scores[eligible[j].Booster.ID]
		if si != sj {
			return si > sj
		}
		return eligible[i].Booster.ID < eligible[j].Booster.ID
	})

	best := eligible[0]
	return &best
}
