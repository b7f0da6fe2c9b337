package dto

import "time"

// RewardResponse describes one catalog entry.
type RewardResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	PointsCost  int64      `json:"points_cost"`
	Stock       int64      `json:"stock"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RewardListResponse is one filtered catalog page. Total counts the filtered
// set, not the whole catalog.
type RewardListResponse struct {
	Rewards  []RewardResponse `json:"rewards"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// RewardUpsertRequest carries administrator create/update payloads.
type RewardUpsertRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PointsCost  int64      `json:"points_cost"`
	Stock       int64      `json:"stock"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidUntil  *time.Time `json:"valid_until"`
	ImageURL    string     `json:"image_url"`
}
