package model

import "time"

// ExchangeStatus describes the lifecycle of an exchange record.
type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "PENDING"
	ExchangeStatusApproved  ExchangeStatus = "APPROVED"
	ExchangeStatusDelivered ExchangeStatus = "DELIVERED"
	ExchangeStatusCancelled ExchangeStatus = "CANCELLED"
	ExchangeStatusRejected  ExchangeStatus = "REJECTED"
)

// CanTransition reports whether an exchange may move from its current status
// to the target one. Refund-bearing terminal states are reachable only from
// PENDING.
func (s ExchangeStatus) CanTransition(to ExchangeStatus) bool {
	switch s {
	case ExchangeStatusPending:
		return to == ExchangeStatusApproved || to == ExchangeStatusRejected || to == ExchangeStatusCancelled
	case ExchangeStatusApproved:
		return to == ExchangeStatusDelivered
	}
	return false
}

// Refunds reports whether entering the status re-credits points and restores stock.
func (s ExchangeStatus) Refunds() bool {
	return s == ExchangeStatusCancelled || s == ExchangeStatusRejected
}

// Exchange records a redemption of reward units for points.
type Exchange struct {
	ID              string
	UserID          int64
	RewardID        string
	Quantity        int64
	PointsSpent     int64
	Status          ExchangeStatus
	DeliveryAddress string
	Notes           string
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ExchangeResult carries the outcome of a successful exchange back to the caller.
type ExchangeResult struct {
	Exchange        *Exchange
	RemainingPoints int64
	Replayed        bool
}
