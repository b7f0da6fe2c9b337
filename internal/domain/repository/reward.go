package repository

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

// RewardRepository describes persistence operations for the reward catalog.
type RewardRepository interface {
	Create(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	GetByID(ctx context.Context, id string) (*model.Reward, error)
	List(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error)
	Update(ctx context.Context, reward *model.Reward) error
	Delete(ctx context.Context, id string) error
	SelectBatchForMaintenance(ctx context.Context, limit int) ([]model.Reward, error)
	UpdateStatus(ctx context.Context, id string, status model.RewardStatus) error
}
