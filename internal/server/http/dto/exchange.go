package dto

import "time"

// ExchangeRequest describes a redemption payload.
type ExchangeRequest struct {
	RewardID        string `json:"reward_id"`
	Quantity        int64  `json:"quantity"`
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
	IdempotencyKey  string `json:"idempotency_key"`
}

// ExchangeResponse carries the outcome of an exchange back to the client.
type ExchangeResponse struct {
	ID              string    `json:"id"`
	RewardID        string    `json:"reward_id"`
	Quantity        int64     `json:"quantity"`
	PointsSpent     int64     `json:"points_spent"`
	RemainingPoints int64     `json:"remaining_points"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExchangeHistoryItem describes one past exchange record.
type ExchangeHistoryItem struct {
	ID              string    `json:"id"`
	RewardID        string    `json:"reward_id"`
	Quantity        int64     `json:"quantity"`
	PointsSpent     int64     `json:"points_spent"`
	Status          string    `json:"status"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExchangeStatusRequest carries an administrative status transition.
type ExchangeStatusRequest struct {
	Status string `json:"status"`
}
