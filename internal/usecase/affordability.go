package usecase

import "github.com/greenloop/greenpoints/internal/domain/model"

// CanAfford reports whether the balance covers quantity units of the reward.
func CanAfford(points *model.PointsSummary, reward *model.Reward, quantity int64) bool {
	if quantity < 1 || reward.PointsCost <= 0 {
		return false
	}
	return points.Current >= reward.PointsCost*quantity
}

// MaxQuantity returns the largest quantity bounded by both stock and balance:
// min(stock, floor(current / pointsCost)).
func MaxQuantity(points *model.PointsSummary, reward *model.Reward) int64 {
	if reward.PointsCost <= 0 || reward.Stock <= 0 {
		return 0
	}
	byPoints := points.Current / reward.PointsCost
	if reward.Stock < byPoints {
		return reward.Stock
	}
	return byPoints
}
