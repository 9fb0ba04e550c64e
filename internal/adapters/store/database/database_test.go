package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playmixer/boosthub/internal/adapters/store/errstore"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupStore(ctx context.Context, t *testing.T) *Store {
	t.Helper()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("boosthub"),
		postgres.WithUsername("boosthub"),
		postgres.WithPassword("boosthub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := New(ctx, &Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.CloseDB() })

	return s
}

func seedUser(t *testing.T, s *Store, role model.Role, maxOrders int) model.User {
	t.Helper()
	user := model.User{
		Login:        uuid.NewString(),
		PasswordHash: "hash",
		Role:         role,
		MaxOrders:    maxOrders,
	}
	require.NoError(t, s.db.Create(&user).Error)
	return user
}

func seedOrder(t *testing.T, s *Store, customerID uint, status model.OrderStatus,
	payment model.PaymentStatus, price float64) model.Order {
	t.Helper()
	order := model.Order{
		Number:        uuid.NewString(),
		CustomerID:    customerID,
		Game:          "dota2",
		CurrentRank:   "Guardian",
		TargetRank:    "Archon",
		Status:        status,
		PaymentStatus: payment,
		Price:         price,
	}
	if status != model.OrderStatePending {
		now := time.Now()
		order.PaidAt = &now
	}
	require.NoError(t, s.db.Create(&order).Error)
	return order
}

func TestAssignOrder(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := setupStore(ctx, t)
	customer := seedUser(t, s, model.RoleCustomer, 3)

	t.Run("assigns booster and computes earnings", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 3)
		order := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 550)

		got, err := s.AssignOrder(ctx, order.ID, booster.ID, 0.70)
		require.NoError(t, err)
		require.NotNil(t, got.BoosterID)
		assert.Equal(t, booster.ID, *got.BoosterID)
		assert.Equal(t, model.OrderStateAssigned, got.Status)
		assert.InDelta(t, 385.0, got.BoosterEarnings, 0.001)
		assert.NotNil(t, got.AssignedAt)
	})

	t.Run("claimed order reported as claimed, not unavailable", func(t *testing.T) {
		winner := seedUser(t, s, model.RoleBooster, 3)
		loser := seedUser(t, s, model.RoleBooster, 3)
		order := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)

		_, err := s.AssignOrder(ctx, order.ID, winner.ID, 0.70)
		require.NoError(t, err)

		// the order is no longer PAID either; booster_id must win the ladder
		_, err = s.AssignOrder(ctx, order.ID, loser.ID, 0.70)
		assert.ErrorIs(t, err, errstore.ErrOrderClaimed)
	})

	t.Run("unpaid order is not available", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 3)
		order := seedOrder(t, s, customer.ID, model.OrderStatePending, model.PaymentStatePending, 100)

		_, err := s.AssignOrder(ctx, order.ID, booster.ID, 0.70)
		assert.ErrorIs(t, err, errstore.ErrOrderNotAvailable)
	})

	t.Run("paid status without settled payment", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 3)
		order := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStatePending, 100)

		_, err := s.AssignOrder(ctx, order.ID, booster.ID, 0.70)
		assert.ErrorIs(t, err, errstore.ErrPaymentNotComplete)
	})

	t.Run("unknown order", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 3)

		_, err := s.AssignOrder(ctx, 99999, booster.ID, 0.70)
		assert.ErrorIs(t, err, errstore.ErrNotFoundData)
	})

	t.Run("unknown booster", func(t *testing.T) {
		order := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)

		_, err := s.AssignOrder(ctx, order.ID, 99999, 0.70)
		assert.ErrorIs(t, err, errstore.ErrNotFoundData)
	})

	t.Run("booster at capacity is rejected", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 1)
		first := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)
		second := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)

		_, err := s.AssignOrder(ctx, first.ID, booster.ID, 0.70)
		require.NoError(t, err)

		_, err = s.AssignOrder(ctx, second.ID, booster.ID, 0.70)
		var capErr *errstore.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 1, capErr.Limit)
		assert.Contains(t, err.Error(), "(1)")

		// the rejected order must stay open for other boosters
		got, err := s.GetOrderByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Nil(t, got.BoosterID)
		assert.Equal(t, model.OrderStatePaid, got.Status)
	})

	t.Run("completing an order frees a capacity slot", func(t *testing.T) {
		booster := seedUser(t, s, model.RoleBooster, 1)
		first := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)
		second := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 100)

		_, err := s.AssignOrder(ctx, first.ID, booster.ID, 0.70)
		require.NoError(t, err)
		_, err = s.StartOrder(ctx, first.ID, booster.ID)
		require.NoError(t, err)
		_, err = s.CompleteOrder(ctx, first.ID, booster.ID)
		require.NoError(t, err)

		got, err := s.AssignOrder(ctx, second.ID, booster.ID, 0.70)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStateAssigned, got.Status)
	})
}

func TestAssignOrderConcurrentClaims(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := setupStore(ctx, t)
	customer := seedUser(t, s, model.RoleCustomer, 3)
	order := seedOrder(t, s, customer.ID, model.OrderStatePaid, model.PaymentStateSucceeded, 550)

	boosters := []model.User{
		seedUser(t, s, model.RoleBooster, 3),
		seedUser(t, s, model.RoleBooster, 3),
	}

	errs := make([]error, len(boosters))
	var wg sync.WaitGroup
	for i, booster := range boosters {
		wg.Add(1)
		go func(i int, boosterID uint) {
			defer wg.Done()
			_, errs[i] = s.AssignOrder(ctx, order.ID, boosterID, 0.70)
		}(i, booster.ID)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, errstore.ErrOrderClaimed):
			lost++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	got, err := s.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BoosterID)
	assert.Equal(t, model.OrderStateAssigned, got.Status)
	assert.InDelta(t, 385.0, got.BoosterEarnings, 0.001)
}
