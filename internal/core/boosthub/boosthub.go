package boosthub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playmixer/boosthub/internal/adapters/store/errstore"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// BoosterPayoutShare is the platform economics constant: the booster keeps
// 70% of the order price.
const BoosterPayoutShare = 0.70

const notifyTimeout = time.Second * 10

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

// Notifier delivers assignment events. Delivery is best-effort, a failure
// never affects a committed assignment.
type Notifier interface {
	BoosterAssigned(ctx context.Context, orderID, customerID, boosterID uint) error
}

type Config struct {
	SweepSpec    string `env:"ASSIGN_SWEEP_SPEC" envDefault:"@every 1m"`
	SweepEnabled bool   `env:"ASSIGN_SWEEP_ENABLED" envDefault:"true"`
}

type Boosthub struct {
	log      *zap.Logger
	cfg      *Config
	store    Store
	notifier Notifier
	cron     *cron.Cron
	weights  ScoreWeights
	wg       *sync.WaitGroup
}

type option func(*Boosthub)

func Logger(log *zap.Logger) option {
	return func(b *Boosthub) {
		if log != nil {
			b.log = log
		}
	}
}

func SetNotifier(n Notifier) option {
	return func(b *Boosthub) {
		b.notifier = n
	}
}

func SetScoreWeights(w ScoreWeights) option {
	return func(b *Boosthub) {
		b.weights = w
	}
}

func New(ctx context.Context, cfg *Config, store Store, options ...option) *Boosthub {
	b := &Boosthub{
		log:     zap.NewNop(),
		cfg:     cfg,
		store:   store,
		weights: DefaultScoreWeights(),
		wg:      &sync.WaitGroup{},
	}

	for _, opt := range options {
		opt(b)
	}

	if b.cfg.SweepEnabled {
		b.cron = cron.New()
		_, err := b.cron.AddFunc(b.cfg.SweepSpec, func() {
			b.assignSweep(ctx)
		})
		if err != nil {
			b.log.Error("failed schedule assign sweep", zap.String("spec", b.cfg.SweepSpec), zap.Error(err))
		} else {
			b.cron.Start()
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				<-ctx.Done()
				<-b.cron.Stop().Done()
			}()
		}
	}

	return b
}

func (b *Boosthub) Register(ctx context.Context, login, password string, role model.Role) error {
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}

	if err := validateRole(role); err != nil {
		return fmt.Errorf("role invalidate: %w", err)
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	err = b.store.RegisterUser(ctx, login, hashPass, role)
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (b *Boosthub) Authorization(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateLogin(login); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}

	user, err = b.store.GetUserByLogin(ctx, login)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	return user, nil
}

func (b *Boosthub) CreateOrder(ctx context.Context, customerID uint, game, currentRank, targetRank, currency string, price float64) (model.Order, error) {
	var order model.Order
	if game == "" || currentRank == "" || targetRank == "" || price <= 0 {
		return order, ErrOrderNotValid
	}
	if currency == "" {
		currency = "USD"
	}

	order = model.Order{
		Number:      uuid.NewString(),
		Game:        game,
		CurrentRank: currentRank,
		TargetRank:  targetRank,
		Currency:    currency,
		Price:       price,
		Status:      model.OrderStatePending,
		CustomerID:  customerID,
	}
	created, err := b.store.CreateOrder(ctx, &order)
	if err != nil {
		return created, fmt.Errorf("failed create order: %w", err)
	}

	return created, nil
}

// ConfirmPayment is the payment collaborator callback. A succeeded payment
// moves the order PENDING -> PAID and opens it for assignment.
func (b *Boosthub) ConfirmPayment(ctx context.Context, number string, succeeded bool) (model.Order, error) {
	order, err := b.store.ConfirmOrderPayment(ctx, number, succeeded)
	if err != nil {
		return order, fmt.Errorf("failed confirm payment: %w", err)
	}

	return order, nil
}

func (b *Boosthub) GetCustomerOrders(ctx context.Context, customerID uint) ([]*model.Order, error) {
	orders, err := b.store.GetOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders by customer: %w", err)
	}
	return orders, nil
}

func (b *Boosthub) GetBoosterOrders(ctx context.Context, boosterID uint) ([]*model.Order, error) {
	orders, err := b.store.GetOrdersByBooster(ctx, boosterID)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders by booster: %w", err)
	}
	return orders, nil
}

// ListAvailableOrders returns the claimable queue for a booster, oldest
// paid first. Visibility order is fairness only, claiming itself is first
// transaction to commit wins.
func (b *Boosthub) ListAvailableOrders(ctx context.Context, actorID uint) ([]*model.Order, error) {
	if err := b.requireRole(ctx, actorID, model.RoleBooster); err != nil {
		return nil, err
	}

	orders, err := b.store.GetAvailableOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting available orders: %w", err)
	}
	return orders, nil
}

// AssignOrder is the push path: an admin attaches a booster to a paid order,
// either explicitly or through the scorer. The final capacity and
// still-unclaimed checks run inside the store transaction, identical to the
// claim path.
func (b *Boosthub) AssignOrder(ctx context.Context, actorID, orderID, boosterID uint, autoAssign bool) (model.Order, error) {
	var order model.Order
	if err := b.requireRole(ctx, actorID, model.RoleAdmin); err != nil {
		return order, err
	}

	if autoAssign {
		candidateID, err := b.autoSelectBooster(ctx)
		if err != nil {
			return order, err
		}
		boosterID = candidateID
	} else {
		stats, err := b.store.GetBoosterStats(ctx, boosterID)
		if err != nil {
			if errors.Is(err, errstore.ErrNotFoundData) {
				return order, ErrBoosterNotFound
			}
			return order, fmt.Errorf("failed getting booster stats: %w", err)
		}
		if stats.Booster.Role != model.RoleBooster {
			return order, ErrBoosterNotFound
		}
		if !stats.Booster.IsAvailable {
			return order, ErrBoosterNotServing
		}
	}

	order, err := b.store.AssignOrder(ctx, orderID, boosterID, BoosterPayoutShare)
	if err != nil {
		return order, fmt.Errorf("failed assign order: %w", err)
	}

	b.notifyAssigned(order)

	return order, nil
}

// ClaimOrder is the pull path: the acting booster takes an unassigned paid
// order. Every precondition beyond the role check is re-evaluated inside
// the store transaction so concurrent claims cannot double-assign.
func (b *Boosthub) ClaimOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	var order model.Order
	if err := b.requireRole(ctx, actorID, model.RoleBooster); err != nil {
		return order, err
	}

	order, err := b.store.AssignOrder(ctx, orderID, actorID, BoosterPayoutShare)
	if err != nil {
		return order, fmt.Errorf("failed claim order: %w", err)
	}

	b.notifyAssigned(order)

	return order, nil
}

func (b *Boosthub) StartOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	order, err := b.store.StartOrder(ctx, orderID, actorID)
	if err != nil {
		return order, fmt.Errorf("failed start order: %w", err)
	}
	return order, nil
}

func (b *Boosthub) SetOrderProgress(ctx context.Context, actorID, orderID uint, progress int) (model.Order, error) {
	var order model.Order
	if progress < 0 || progress > 100 {
		return order, ErrProgressNotValid
	}
	order, err := b.store.SetOrderProgress(ctx, orderID, actorID, progress)
	if err != nil {
		return order, fmt.Errorf("failed set order progress: %w", err)
	}
	return order, nil
}

func (b *Boosthub) CompleteOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	order, err := b.store.CompleteOrder(ctx, orderID, actorID)
	if err != nil {
		return order, fmt.Errorf("failed complete order: %w", err)
	}
	return order, nil
}

// CancelOrder is allowed to the order's customer or an admin, and only
// before a booster is attached.
func (b *Boosthub) CancelOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	var order model.Order
	actor, err := b.store.GetUserByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting user `%d`: %w", actorID, err)
	}

	order, err = b.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed getting order: %w", err)
	}
	if actor.Role != model.RoleAdmin && order.CustomerID != actorID {
		return order, ErrPermissionDenied
	}

	order, err = b.store.CancelOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed cancel order: %w", err)
	}
	return order, nil
}

func (b *Boosthub) requireRole(ctx context.Context, userID uint, role model.Role) error {
	user, err := b.store.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed getting user `%d`: %w", userID, err)
	}
	if user.Role != role {
		return ErrPermissionDenied
	}
	return nil
}

func (b *Boosthub) autoSelectBooster(ctx context.Context) (uint, error) {
	stats, err := b.store.GetAvailableBoosterStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed getting booster stats: %w", err)
	}
	candidate := selectOptimalBooster(stats, b.weights, time.Now())
	if candidate == nil {
		return 0, ErrNoCandidate
	}
	return candidate.Booster.ID, nil
}

// notifyAssigned fires the assignment notification without blocking the
// caller. Errors are logged and swallowed, a notification outage must not
// undo a committed assignment.
func (b *Boosthub) notifyAssigned(order model.Order) {
	if b.notifier == nil || order.BoosterID == nil {
		return
	}
	boosterID := *order.BoosterID
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := b.notifier.BoosterAssigned(ctx, order.ID, order.CustomerID, boosterID); err != nil {
			b.log.Error("failed notify booster assigned",
				zap.Uint("orderID", order.ID),
				zap.Uint("boosterID", boosterID),
				zap.Error(err),
			)
		}
	}()
}

// assignSweep auto-assigns any orders sitting in the paid queue. Stops at
// the first no-candidate result since the pool will not change within the
// sweep.
func (b *Boosthub) assignSweep(ctx context.Context) {
	orders, err := b.store.GetAvailableOrders(ctx)
	if err != nil {
		b.log.Error("sweep failed getting available orders", zap.Error(err))
		return
	}
	for _, order := range orders {
		boosterID, err := b.autoSelectBooster(ctx)
		if err != nil {
			if errors.Is(err, ErrNoCandidate) {
				b.log.Debug("sweep stopped, no eligible booster")
				return
			}
			b.log.Error("sweep failed selecting booster", zap.Error(err))
			return
		}
		assigned, err := b.store.AssignOrder(ctx, order.ID, boosterID, BoosterPayoutShare)
		if err != nil {
			if errors.Is(err, errstore.ErrOrderClaimed) || errors.Is(err, errstore.ErrOrderNotAvailable) {
				continue
			}
			b.log.Error("sweep failed assigning order", zap.Uint("orderID", order.ID), zap.Error(err))
			continue
		}
		b.log.Info("sweep assigned order",
			zap.Uint("orderID", assigned.ID),
			zap.Uint("boosterID", boosterID),
		)
		b.notifyAssigned(assigned)
	}
}

func (b *Boosthub) Wait() {
	b.wg.Wait()
}
