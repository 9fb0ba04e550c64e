package errstore

import (
	"errors"
	"fmt"
)

var (
	ErrNotFoundData       = errors.New("data not found")
	ErrLoginNotUnique     = errors.New("login already exists")
	ErrOrderClaimed       = errors.New("order already claimed by another booster")
	ErrOrderNotAvailable  = errors.New("order is not available for claiming")
	ErrPaymentNotComplete = errors.New("payment not completed")
	ErrNotOrderBooster    = errors.New("order is assigned to another booster")
	ErrOrderNotCancelable = errors.New("order cannot be cancelled")
)

// CapacityError is returned when a booster is at its concurrent order limit.
// It carries the configured limit so callers can show it to the user.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("maximum active orders limit reached (%d)", e.Limit)
}
