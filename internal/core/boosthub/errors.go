package boosthub

import "errors"

var (
	ErrLoginNotValid     = errors.New("login not valid")
	ErrPasswordNotValid  = errors.New("password not valid")
	ErrRoleNotValid      = errors.New("role not valid")
	ErrPasswordNotEquale = errors.New("password not equal")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNoCandidate       = errors.New("no eligible booster found")
	ErrBoosterNotFound   = errors.New("booster not found")
	ErrBoosterNotServing = errors.New("booster is not accepting orders")
	ErrProgressNotValid  = errors.New("progress must be between 0 and 100")
	ErrOrderNotValid     = errors.New("order not valid")
)
