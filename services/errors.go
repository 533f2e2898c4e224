package services

import "errors"

var (
	// ErrNotFound covers missing patients, wards, orders, food types.
	ErrNotFound = errors.New("not found")

	// Precondition failures abort order creation before any mutation.
	ErrNoFoodType      = errors.New("patient has no assigned food type")
	ErrNoMenuOfTheDay  = errors.New("no menu of the day for food type")
	ErrDuplicateWard   = errors.New("ward name already taken")
	ErrInvalidPassword = errors.New("invalid ward name or password")
)

// IsPrecondition reports whether err is one of the order-creation
// preconditions the caller must resolve before retrying.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoFoodType) || errors.Is(err, ErrNoMenuOfTheDay)
}
