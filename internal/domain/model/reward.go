package model

import "time"

// RewardCategory classifies redeemable rewards.
type RewardCategory string

const (
	RewardCategoryVoucher  RewardCategory = "VOUCHER"
	RewardCategoryGift     RewardCategory = "GIFT"
	RewardCategoryDiscount RewardCategory = "DISCOUNT"
	RewardCategoryService  RewardCategory = "SERVICE"
	RewardCategoryOther    RewardCategory = "OTHER"
)

// ValidRewardCategory reports whether the value belongs to the closed category set.
func ValidRewardCategory(c RewardCategory) bool {
	switch c {
	case RewardCategoryVoucher, RewardCategoryGift, RewardCategoryDiscount, RewardCategoryService, RewardCategoryOther:
		return true
	}
	return false
}

// RewardStatus describes catalog availability of a reward.
type RewardStatus string

const (
	RewardStatusActive     RewardStatus = "ACTIVE"
	RewardStatusInactive   RewardStatus = "INACTIVE"
	RewardStatusOutOfStock RewardStatus = "OUT_OF_STOCK"
	RewardStatusExpired    RewardStatus = "EXPIRED"
)

// ValidRewardStatus reports whether the value belongs to the closed status set.
func ValidRewardStatus(s RewardStatus) bool {
	switch s {
	case RewardStatusActive, RewardStatusInactive, RewardStatusOutOfStock, RewardStatusExpired:
		return true
	}
	return false
}

// Reward is a catalog entry redeemable for GreenPoints.
type Reward struct {
	ID          string
	Name        string
	Description string
	PointsCost  int64
	Stock       int64
	Category    RewardCategory
	Status      RewardStatus
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Available reports whether the reward is active and inside its validity
// window, regardless of stock.
func (r *Reward) Available(now time.Time) bool {
	if r.Status != RewardStatusActive {
		return false
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return false
	}
	return true
}

// Exchangeable reports whether the reward can be redeemed at the given moment.
func (r *Reward) Exchangeable(now time.Time) bool {
	return r.Available(now) && r.Stock > 0
}
