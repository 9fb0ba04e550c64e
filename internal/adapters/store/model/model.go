package model

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleBooster  Role = "BOOSTER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Login           string `gorm:"unique"`
	PasswordHash    string
	Role            Role `gorm:"default:CUSTOMER"`
	ID              uint `gorm:"primarykey"`
	MaxOrders       int  `gorm:"default:3"`
	CompletedOrders int
	Rating          float64 `gorm:"default:5"`
	IsAvailable     bool    `gorm:"default:true"`
}

type OrderStatus string

const (
	OrderStatePending    OrderStatus = "PENDING"
	OrderStatePaid       OrderStatus = "PAID"
	OrderStateAssigned   OrderStatus = "ASSIGNED"
	OrderStateInProgress OrderStatus = "IN_PROGRESS"
	OrderStateCompleted  OrderStatus = "COMPLETED"
	OrderStateCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatePending   PaymentStatus = "PENDING"
	PaymentStateSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStateFailed    PaymentStatus = "FAILED"
)

type Order struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	AssignedAt      *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	Number          string `gorm:"unique"`
	Game            string
	CurrentRank     string
	TargetRank      string
	Currency        string        `gorm:"default:USD"`
	Status          OrderStatus   `gorm:"default:PENDING;index:idx_orders_booster_status,priority:2"`
	PaymentStatus   PaymentStatus `gorm:"default:PENDING"`
	Customer        User
	Booster         *User
	BoosterID       *uint `gorm:"index:idx_orders_booster_status,priority:1"`
	ID              uint  `gorm:"primarykey"`
	CustomerID      uint  `gorm:"index"`
	Progress        int
	Price           float64
	BoosterEarnings float64
}

// ActiveOrder reports whether the order occupies a booster capacity slot.
func (o *Order) ActiveOrder() bool {
	return o.Status == OrderStateAssigned || o.Status == OrderStateInProgress
}

// BoosterStats is a scoring snapshot of one booster, derived from the
// orders table rather than stored.
type BoosterStats struct {
	LastAssignedAt     *time.Time
	Booster            User
	ActiveOrders       int
	AvgCompletionHours float64
}

// AvailableSlots returns remaining concurrent capacity, never negative.
func (s *BoosterStats) AvailableSlots() int {
	slots := s.Booster.MaxOrders - s.ActiveOrders
	if slots < 0 {
		return 0
	}
	return slots
}
