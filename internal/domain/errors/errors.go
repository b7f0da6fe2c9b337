package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfStock         = errors.New("out of stock")
	ErrRewardUnavailable  = errors.New("reward unavailable")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidReward      = errors.New("invalid reward")
	ErrNotCancellable     = errors.New("exchange not cancellable")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
