package usecase

import (
	"context"
	"strings"

	"github.com/greenloop/greenpoints/internal/adapter/cache"
	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/domain/repository"
)

// CatalogUseCase manages the reward catalog.
type CatalogUseCase struct {
	rewards repository.RewardRepository
	cache   cache.CatalogCache
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(rewards repository.RewardRepository, c cache.CatalogCache) *CatalogUseCase {
	return &CatalogUseCase{rewards: rewards, cache: c}
}

// List returns one filtered catalog page, served from cache when possible.
func (u *CatalogUseCase) List(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error) {
	filter = filter.Normalize()
	if page, ok := u.cache.GetList(ctx, filter); ok {
		return page, nil
	}

	page, err := u.rewards.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	u.cache.SetList(ctx, filter, page)
	return page, nil
}

// Get fetches one reward by id.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Reward, error) {
	return u.rewards.GetByID(ctx, id)
}

// Create adds a reward to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	created, err := u.rewards.Create(ctx, reward)
	if err != nil {
		return nil, err
	}
	u.cache.Invalidate(ctx)
	return created, nil
}

// Update replaces a reward's attributes.
func (u *CatalogUseCase) Update(ctx context.Context, reward *model.Reward) error {
	if reward.ID == "" {
		return domainErrors.ErrInvalidReward
	}
	if err := validateReward(reward); err != nil {
		return err
	}
	if err := u.rewards.Update(ctx, reward); err != nil {
		return err
	}
	u.cache.Invalidate(ctx)
	return nil
}

// Delete removes a reward from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if err := u.rewards.Delete(ctx, id); err != nil {
		return err
	}
	u.cache.Invalidate(ctx)
	return nil
}

// SelectBatchForMaintenance returns rewards whose status no longer matches
// their stock or validity window.
func (u *CatalogUseCase) SelectBatchForMaintenance(ctx context.Context, limit int) ([]model.Reward, error) {
	return u.rewards.SelectBatchForMaintenance(ctx, limit)
}

// UpdateStatus persists a status flip decided by the catalog sweeper.
func (u *CatalogUseCase) UpdateStatus(ctx context.Context, id string, status model.RewardStatus) error {
	if err := u.rewards.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	u.cache.Invalidate(ctx)
	return nil
}

func validateReward(reward *model.Reward) error {
	if strings.TrimSpace(reward.Name) == "" {
		return domainErrors.ErrInvalidReward
	}
	if reward.PointsCost <= 0 || reward.Stock < 0 {
		return domainErrors.ErrInvalidReward
	}
	if !model.ValidRewardCategory(reward.Category) {
		return domainErrors.ErrInvalidReward
	}
	// An omitted status means the caller did not pick one.
	if reward.Status == "" {
		reward.Status = model.RewardStatusActive
	}
	if !model.ValidRewardStatus(reward.Status) {
		return domainErrors.ErrInvalidReward
	}
	if reward.ValidFrom != nil && reward.ValidUntil != nil && reward.ValidUntil.Before(*reward.ValidFrom) {
		return domainErrors.ErrInvalidReward
	}
	return nil
}
