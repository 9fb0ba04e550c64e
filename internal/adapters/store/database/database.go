package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/playmixer/boosthub/internal/adapters/store/errstore"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultAvgCompletionHours substitutes for boosters with no completed
// order history yet.
const defaultAvgCompletionHours = 24

var activeStatuses = []model.OrderStatus{
	model.OrderStateAssigned,
	model.OrderStateInProgress,
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Order{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func (s *Store) RegisterUser(ctx context.Context, login, hashPassword string, role model.Role) error {
	user := model.User{
		Login:        login,
		PasswordHash: hashPassword,
		Role:         role,
	}
	result := s.db.WithContext(ctx).Create(&user)
	if err := result.Error; err != nil {
		var sqlError *pgconn.PgError
		if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
			return errstore.ErrLoginNotUnique
		}
		return fmt.Errorf("failed save user: %w", result.Error)
	}

	return nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Login: login}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uint) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("failed get user: %w", err)
	}

	return user, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *model.Order) (model.Order, error) {
	tx := s.db.WithContext(ctx)
	if err := tx.Create(order).Error; err != nil {
		var sqlError *pgconn.PgError
		if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
			return *order, fmt.Errorf("order number collision: %w", err)
		}
		return *order, fmt.Errorf("failed create order: %w", err)
	}

	return s.GetOrderByID(ctx, order.ID)
}

func (s *Store) GetOrderByID(ctx context.Context, orderID uint) (model.Order, error) {
	tx := s.db.WithContext(ctx)
	order := model.Order{}
	if err := tx.Preload("Customer").Preload("Booster").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx)
	if err := tx.Where(&model.Order{CustomerID: customerID}).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, errstore.ErrNotFoundData
	}

	return orders, nil
}

func (s *Store) GetOrdersByBooster(ctx context.Context, boosterID uint) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx)
	if err := tx.Where("booster_id = ?", boosterID).
		Order("assigned_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, errstore.ErrNotFoundData
	}

	return orders, nil
}

// GetAvailableOrders lists orders open for claiming, oldest paid first.
func (s *Store) GetAvailableOrders(ctx context.Context) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx)
	if err := tx.Where("status = ? AND booster_id IS NULL AND payment_status = ?",
		model.OrderStatePaid, model.PaymentStateSucceeded).
		Order("paid_at asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get available orders: %w", err)
	}

	return orders, nil
}

func (s *Store) ConfirmOrderPayment(ctx context.Context, number string, succeeded bool) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&model.Order{Number: number}).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}
		if order.Status != model.OrderStatePending {
			return errstore.ErrOrderNotAvailable
		}
		if !succeeded {
			order.PaymentStatus = model.PaymentStateFailed
		} else {
			now := time.Now()
			order.PaymentStatus = model.PaymentStateSucceeded
			order.Status = model.OrderStatePaid
			order.PaidAt = &now
		}
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	return s.GetOrderByID(ctx, order.ID)
}

// AssignOrder attaches a booster to an order. All preconditions are
// re-evaluated inside the transaction against a row locked FOR UPDATE, so
// concurrent claims on the same order serialize and the loser observes the
// winner's booster_id. Both the admin/auto path and the booster claim path
// go through here.
func (s *Store) AssignOrder(ctx context.Context, orderID, boosterID uint, payoutShare float64) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}
		if order.BoosterID != nil {
			return errstore.ErrOrderClaimed
		}
		if order.Status != model.OrderStatePaid {
			return errstore.ErrOrderNotAvailable
		}
		if order.PaymentStatus != model.PaymentStateSucceeded {
			return errstore.ErrPaymentNotComplete
		}

		booster := model.User{}
		if err := tx.First(&booster, boosterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select booster: %w", err)
		}

		var active int64
		if err := tx.Model(&model.Order{}).
			Where("booster_id = ? AND status IN ?", booster.ID, activeStatuses).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed count active orders: %w", err)
		}
		if active >= int64(booster.MaxOrders) {
			return &errstore.CapacityError{Limit: booster.MaxOrders}
		}

		now := time.Now()
		order.BoosterID = &booster.ID
		order.BoosterEarnings = order.Price * payoutShare
		order.Status = model.OrderStateAssigned
		order.AssignedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		return order, err
	}

	return s.GetOrderByID(ctx, order.ID)
}

func (s *Store) StartOrder(ctx context.Context, orderID, boosterID uint) (model.Order, error) {
	return s.updateByBooster(ctx, orderID, boosterID, model.OrderStateAssigned,
		func(order *model.Order) {
			now := time.Now()
			order.Status = model.OrderStateInProgress
			order.StartedAt = &now
		})
}

func (s *Store) SetOrderProgress(ctx context.Context, orderID, boosterID uint, progress int) (model.Order, error) {
	return s.updateByBooster(ctx, orderID, boosterID, model.OrderStateInProgress,
		func(order *model.Order) {
			order.Progress = progress
		})
}

func (s *Store) CompleteOrder(ctx context.Context, orderID, boosterID uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOrderForBooster(tx, &order, orderID, boosterID, model.OrderStateInProgress); err != nil {
			return err
		}
		now := time.Now()
		order.Status = model.OrderStateCompleted
		order.Progress = 100
		order.CompletedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}
		if err := tx.Model(&model.User{}).Where("id = ?", boosterID).
			Update("completed_orders", gorm.Expr("completed_orders + 1")).Error; err != nil {
			return fmt.Errorf("failed update booster counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	return s.GetOrderByID(ctx, order.ID)
}

func (s *Store) CancelOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}
		if order.Status != model.OrderStatePending && order.Status != model.OrderStatePaid {
			return errstore.ErrOrderNotCancelable
		}
		order.Status = model.OrderStateCancelled
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	return s.GetOrderByID(ctx, order.ID)
}

func (s *Store) GetBoosterStats(ctx context.Context, boosterID uint) (model.BoosterStats, error) {
	stats := model.BoosterStats{}
	tx := s.db.WithContext(ctx)
	booster := model.User{}
	if err := tx.First(&booster, boosterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, errstore.ErrNotFoundData
		}
		return stats, fmt.Errorf("failed get booster: %w", err)
	}

	return s.boosterStats(tx, booster)
}

// GetAvailableBoosterStats snapshots every available booster with the
// derived metrics the scorer consumes.
func (s *Store) GetAvailableBoosterStats(ctx context.Context) ([]model.BoosterStats, error) {
	tx := s.db.WithContext(ctx)
	boosters := []model.User{}
	if err := tx.Where(&model.User{Role: model.RoleBooster, IsAvailable: true}).
		Order("id asc").Find(&boosters).Error; err != nil {
		return nil, fmt.Errorf("failed get boosters: %w", err)
	}

	stats := make([]model.BoosterStats, 0, len(boosters))
	for _, booster := range boosters {
		st, err := s.boosterStats(tx, booster)
		if err != nil {
			return nil, fmt.Errorf("failed stats for booster `%d`: %w", booster.ID, err)
		}
		stats = append(stats, st)
	}

	return stats, nil
}

func (s *Store) boosterStats(tx *gorm.DB, booster model.User) (model.BoosterStats, error) {
	stats := model.BoosterStats{Booster: booster}

	var active int64
	if err := tx.Model(&model.Order{}).
		Where("booster_id = ? AND status IN ?", booster.ID, activeStatuses).
		Count(&active).Error; err != nil {
		return stats, fmt.Errorf("failed count active orders: %w", err)
	}
	stats.ActiveOrders = int(active)

	var avg sql.NullFloat64
	if err := tx.Model(&model.Order{}).
		Select("AVG(EXTRACT(EPOCH FROM (completed_at - assigned_at)) / 3600)").
		Where("booster_id = ? AND status = ? AND completed_at IS NOT NULL AND assigned_at IS NOT NULL",
			booster.ID, model.OrderStateCompleted).
		Scan(&avg).Error; err != nil {
		return stats, fmt.Errorf("failed avg completion time: %w", err)
	}
	if avg.Valid {
		stats.AvgCompletionHours = avg.Float64
	} else {
		stats.AvgCompletionHours = defaultAvgCompletionHours
	}

	var last sql.NullTime
	if err := tx.Model(&model.Order{}).
		Select("MAX(assigned_at)").
		Where("booster_id = ? AND status IN ?", booster.ID, activeStatuses).
		Scan(&last).Error; err != nil {
		return stats, fmt.Errorf("failed last assignment time: %w", err)
	}
	if last.Valid {
		lastAt := last.Time
		stats.LastAssignedAt = &lastAt
	}

	return stats, nil
}

func (s *Store) updateByBooster(
	ctx context.Context,
	orderID, boosterID uint,
	wantStatus model.OrderStatus,
	mutate func(*model.Order),
) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOrderForBooster(tx, &order, orderID, boosterID, wantStatus); err != nil {
			return err
		}
		mutate(&order)
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	return s.GetOrderByID(ctx, order.ID)
}

func lockOrderForBooster(tx *gorm.DB, order *model.Order, orderID, boosterID uint, wantStatus model.OrderStatus) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errstore.ErrNotFoundData
		}
		return fmt.Errorf("failed select order: %w", err)
	}
	if order.BoosterID == nil || *order.BoosterID != boosterID {
		return errstore.ErrNotOrderBooster
	}
	if order.Status != wantStatus {
		return errstore.ErrOrderNotAvailable
	}
	return nil
}
