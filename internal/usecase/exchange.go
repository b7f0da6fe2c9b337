package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenloop/greenpoints/internal/adapter/cache"
	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/domain/repository"
)

// ExchangeRequest carries everything needed to redeem a reward.
type ExchangeRequest struct {
	RewardID        string
	Quantity        int64
	DeliveryAddress string
	Notes           string
	IdempotencyKey  string
}

// ExchangeUseCase orchestrates reward redemption and its lifecycle.
type ExchangeUseCase struct {
	exchanges repository.ExchangeRepository
	cache     cache.CatalogCache
}

// NewExchangeUseCase constructs ExchangeUseCase.
func NewExchangeUseCase(exchanges repository.ExchangeRepository, c cache.CatalogCache) *ExchangeUseCase {
	return &ExchangeUseCase{exchanges: exchanges, cache: c}
}

// Exchange validates the request and performs the atomic debit/stock/record
// transaction. Validation failures never reach storage.
func (u *ExchangeUseCase) Exchange(ctx context.Context, userID int64, req ExchangeRequest) (*model.ExchangeResult, error) {
	if req.RewardID == "" {
		return nil, domainErrors.ErrInvalidReward
	}
	if req.Quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	result, err := u.exchanges.Exchange(ctx, userID, req.RewardID, req.Quantity, req.DeliveryAddress, req.Notes, key)
	if err != nil {
		return nil, err
	}
	if !result.Replayed {
		// Stock changed; cached catalog pages are stale.
		u.cache.Invalidate(ctx)
	}
	return result, nil
}

// Cancel moves an owned PENDING exchange to CANCELLED, refunding points and
// restoring stock.
func (u *ExchangeUseCase) Cancel(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	exchange, err := u.exchanges.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exchange.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}

	updated, err := u.exchanges.UpdateStatus(ctx, id, model.ExchangeStatusCancelled)
	if err != nil {
		return nil, err
	}
	u.cache.Invalidate(ctx)
	return updated, nil
}

// History returns the user's exchanges, newest first.
func (u *ExchangeUseCase) History(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error) {
	return u.exchanges.ListByUser(ctx, userID, page, size)
}

// Get fetches one exchange owned by the user.
func (u *ExchangeUseCase) Get(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	exchange, err := u.exchanges.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exchange.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return exchange, nil
}

// UpdateStatus applies an administrative lifecycle transition.
func (u *ExchangeUseCase) UpdateStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error) {
	switch to {
	case model.ExchangeStatusApproved, model.ExchangeStatusRejected, model.ExchangeStatusDelivered:
	default:
		return nil, domainErrors.ErrInvalidTransition
	}

	updated, err := u.exchanges.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}
	if to.Refunds() {
		u.cache.Invalidate(ctx)
	}
	return updated, nil
}
