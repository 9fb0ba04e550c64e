package store

import (
	"context"
	"fmt"

	"github.com/playmixer/boosthub/internal/adapters/store/database"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, login, hashPassword string, role model.Role) error
	GetUserByLogin(ctx context.Context, login string) (model.User, error)
	GetUserByID(ctx context.Context, userID uint) (model.User, error)
	CreateOrder(ctx context.Context, order *model.Order) (model.Order, error)
	GetOrderByID(ctx context.Context, orderID uint) (model.Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID uint) ([]*model.Order, error)
	GetOrdersByBooster(ctx context.Context, boosterID uint) ([]*model.Order, error)
	GetAvailableOrders(ctx context.Context) ([]*model.Order, error)
	ConfirmOrderPayment(ctx context.Context, number string, succeeded bool) (model.Order, error)
	AssignOrder(ctx context.Context, orderID, boosterID uint, payoutShare float64) (model.Order, error)
	StartOrder(ctx context.Context, orderID, boosterID uint) (model.Order, error)
	SetOrderProgress(ctx context.Context, orderID, boosterID uint, progress int) (model.Order, error)
	CompleteOrder(ctx context.Context, orderID, boosterID uint) (model.Order, error)
	CancelOrder(ctx context.Context, orderID uint) (model.Order, error)
	GetBoosterStats(ctx context.Context, boosterID uint) (model.BoosterStats, error)
	GetAvailableBoosterStats(ctx context.Context) ([]model.BoosterStats, error)
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
