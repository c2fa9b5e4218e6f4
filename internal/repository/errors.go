package repository

import "errors"

var (
	ErrOrderAlreadyAssigned  = errors.New("order is already assigned to a driver")
	ErrOrderNotPending       = errors.New("order is not open for assignment")
	ErrDriverUnavailable     = errors.New("driver is not available")
	ErrOrderNotAssigned      = errors.New("order is not assigned to this driver")
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
	ErrStaleRecord           = errors.New("record was modified concurrently")
	ErrInsufficientBalance   = errors.New("wallet balance is insufficient")
	ErrInvalidTransition     = errors.New("withdrawal status transition is not allowed")
)
