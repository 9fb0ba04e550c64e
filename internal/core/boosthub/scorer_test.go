package boosthub

import (
	"testing"
	"time"

	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"github.com/stretchr/testify/assert"
)

func booster(id uint, completed int, rating float64, maxOrders int) model.User {
	return model.User{
		ID:              id,
		Role:            model.RoleBooster,
		IsAvailable:     true,
		MaxOrders:       maxOrders,
		CompletedOrders: completed,
		Rating:          rating,
	}
}

func hoursAgo(now time.Time, h float64) *time.Time {
	t := now.Add(-time.Duration(h * float64(time.Hour)))
	return &t
}

func TestBoosterScore(t *testing.T) {
	now := time.Now()
	weights := DefaultScoreWeights()

	tests := []struct {
		name  string
		stats model.BoosterStats
		score float64
	}{
		{
			// volume 30 (capped), rating 24, speed 14 (24h default),
			// waiting 15 (never assigned), slots 9.
			name: "veteran fresh booster",
			stats: model.BoosterStats{
				Booster:            booster(1, 15, 4.8, 3),
				ActiveOrders:       0,
				AvgCompletionHours: 24,
			},
			score: 92,
		},
		{
			// volume 4, rating 15, speed 14, waiting 0 (just assigned),
			// slots 3.
			name: "busy newcomer",
			stats: model.BoosterStats{
				Booster:            booster(2, 2, 3.0, 3),
				ActiveOrders:       2,
				AvgCompletionHours: 24,
				LastAssignedAt:     hoursAgo(now, 1),
			},
			score: 36,
		},
		{
			// speed floors at zero for very slow boosters.
			name: "slow booster",
			stats: model.BoosterStats{
				Booster:            booster(3, 0, 0, 1),
				ActiveOrders:       0,
				AvgCompletionHours: 100,
				LastAssignedAt:     hoursAgo(now, 1),
			},
			score: 3,
		},
		{
			// faster than baseline earns above the base points.
			name: "fast booster",
			stats: model.BoosterStats{
				Booster:            booster(4, 0, 0, 1),
				ActiveOrders:       0,
				AvgCompletionHours: 6,
				LastAssignedAt:     hoursAgo(now, 1),
			},
			score: 26,
		},
		{
			// slot bonus caps at 10 however much capacity is free.
			name: "huge capacity",
			stats: model.BoosterStats{
				Booster:            booster(5, 0, 0, 10),
				ActiveOrders:       0,
				AvgCompletionHours: 12,
				LastAssignedAt:     hoursAgo(now, 1),
			},
			score: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.score, boosterScore(tt.stats, weights, now), 1e-9)
		})
	}
}

func TestWaitingBonus(t *testing.T) {
	now := time.Now()
	weights := DefaultScoreWeights()

	tests := []struct {
		name           string
		lastAssignedAt *time.Time
		bonus          float64
	}{
		{name: "never assigned", lastAssignedAt: nil, bonus: 15},
		{name: "over a day", lastAssignedAt: hoursAgo(now, 25), bonus: 15},
		{name: "half a day", lastAssignedAt: hoursAgo(now, 13), bonus: 10},
		{name: "six hours", lastAssignedAt: hoursAgo(now, 7), bonus: 5},
		{name: "just assigned", lastAssignedAt: hoursAgo(now, 1), bonus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.bonus, weights.waitingBonus(tt.lastAssignedAt, now), 1e-9)
		})
	}
}

func TestSelectOptimalBooster(t *testing.T) {
	now := time.Now()
	weights := DefaultScoreWeights()

	veteran := model.BoosterStats{
		Booster:            booster(1, 15, 4.8, 3),
		AvgCompletionHours: 24,
	}
	newcomer := model.BoosterStats{
		Booster:            booster(2, 2, 3.0, 3),
		ActiveOrders:       2,
		AvgCompletionHours: 24,
		LastAssignedAt:     hoursAgo(now, 1),
	}

	t.Run("best candidate wins", func(t *testing.T) {
		got := selectOptimalBooster([]model.BoosterStats{newcomer, veteran}, weights, now)
		assert.NotNil(t, got)
		assert.Equal(t, uint(1), got.Booster.ID)
	})

	t.Run("deterministic on repeated invocation", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			got := selectOptimalBooster([]model.BoosterStats{newcomer, veteran}, weights, now)
			assert.Equal(t, uint(1), got.Booster.ID)
		}
	})

	t.Run("boosters at capacity are excluded", func(t *testing.T) {
		full := veteran
		full.ActiveOrders = full.Booster.MaxOrders
		got := selectOptimalBooster([]model.BoosterStats{full, newcomer}, weights, now)
		assert.NotNil(t, got)
		assert.Equal(t, uint(2), got.Booster.ID)
	})

	t.Run("empty pool yields no candidate", func(t *testing.T) {
		assert.Nil(t, selectOptimalBooster(nil, weights, now))

		full := newcomer
		full.ActiveOrders = full.Booster.MaxOrders
		assert.Nil(t, selectOptimalBooster([]model.BoosterStats{full}, weights, now))
	})

	t.Run("ties resolve to lowest booster id", func(t *testing.T) {
		twinA := model.BoosterStats{Booster: booster(7, 5, 4.0, 3), AvgCompletionHours: 24}
		twinB := model.BoosterStats{Booster: booster(3, 5, 4.0, 3), AvgCompletionHours: 24}
		got := selectOptimalBooster([]model.BoosterStats{twinA, twinB}, weights, now)
		assert.Equal(t, uint(3), got.Booster.ID)
	})

	t.Run("higher rating never lowers the pick", func(t *testing.T) {
		better := newcomer
		better.Booster.ID = 9
		better.Booster.Rating = 4.9
		got := selectOptimalBooster([]model.BoosterStats{newcomer, better}, weights, now)
		assert.Equal(t, uint(9), got.Booster.ID)
	})
}
