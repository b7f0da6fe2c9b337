package test

import (
	"context"
	"sync"
	"time"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	RoleFn         func(context.Context, int64) (model.UserRole, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserRole returns the configured role, member by default.
func (s AuthFacadeStub) UserRole(ctx context.Context, id int64) (model.UserRole, error) {
	if s.RoleFn != nil {
		return s.RoleFn(ctx, id)
	}
	return model.UserRoleMember, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	RewardsFn      func(context.Context, model.RewardFilter) (*model.RewardPage, error)
	RewardFn       func(context.Context, string) (*model.Reward, error)
	CreateRewardFn func(context.Context, *model.Reward) (*model.Reward, error)
	UpdateRewardFn func(context.Context, *model.Reward) error
	DeleteRewardFn func(context.Context, string) error
}

// Rewards returns the configured page or a single default reward.
func (s CatalogFacadeStub) Rewards(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error) {
	if s.RewardsFn != nil {
		return s.RewardsFn(ctx, filter)
	}
	return &model.RewardPage{Rewards: []model.Reward{{ID: "r-1", Name: "tote bag"}}, Total: 1}, nil
}

// Reward returns the configured reward.
func (s CatalogFacadeStub) Reward(ctx context.Context, id string) (*model.Reward, error) {
	if s.RewardFn != nil {
		return s.RewardFn(ctx, id)
	}
	return &model.Reward{ID: id, Name: "tote bag", PointsCost: 100, Stock: 5}, nil
}

// CreateReward echoes the reward back with an id.
func (s CatalogFacadeStub) CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.CreateRewardFn != nil {
		return s.CreateRewardFn(ctx, reward)
	}
	created := *reward
	created.ID = "r-1"
	return &created, nil
}

// UpdateReward delegates to the override when present.
func (s CatalogFacadeStub) UpdateReward(ctx context.Context, reward *model.Reward) error {
	if s.UpdateRewardFn != nil {
		return s.UpdateRewardFn(ctx, reward)
	}
	return nil
}

// DeleteReward delegates to the override when present.
func (s CatalogFacadeStub) DeleteReward(ctx context.Context, id string) error {
	if s.DeleteRewardFn != nil {
		return s.DeleteRewardFn(ctx, id)
	}
	return nil
}

// LedgerFacadeStub simulates points ledger operations.
type LedgerFacadeStub struct {
	BalanceFn func(context.Context, int64) (*model.PointsSummary, error)
	CreditFn  func(context.Context, int64, int64) error
}

// Balance returns stored summary or default data.
func (s LedgerFacadeStub) Balance(ctx context.Context, userID int64) (*model.PointsSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.PointsSummary{Current: 250, TotalEarned: 300, TotalSpent: 50}, nil
}

// CreditPoints executes configured credit handler.
func (s LedgerFacadeStub) CreditPoints(ctx context.Context, userID, amount int64) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount)
	}
	return nil
}

// ExchangeFacadeStub simulates exchange operations.
type ExchangeFacadeStub struct {
	ExchangeFn     func(context.Context, int64, usecase.ExchangeRequest) (*model.ExchangeResult, error)
	CancelFn       func(context.Context, int64, string) (*model.Exchange, error)
	HistoryFn      func(context.Context, int64, int, int) ([]model.Exchange, error)
	GetFn          func(context.Context, int64, string) (*model.Exchange, error)
	UpdateStatusFn func(context.Context, string, model.ExchangeStatus) (*model.Exchange, error)
}

// ExchangeReward delegates to the override or returns a default result.
func (s ExchangeFacadeStub) ExchangeReward(ctx context.Context, userID int64, req usecase.ExchangeRequest) (*model.ExchangeResult, error) {
	if s.ExchangeFn != nil {
		return s.ExchangeFn(ctx, userID, req)
	}
	return &model.ExchangeResult{
		Exchange:        &model.Exchange{ID: "e-1", UserID: userID, RewardID: req.RewardID, Quantity: req.Quantity, PointsSpent: 100, Status: model.ExchangeStatusPending},
		RemainingPoints: 150,
	}, nil
}

// CancelExchange delegates to the override or returns a cancelled record.
func (s ExchangeFacadeStub) CancelExchange(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, id)
	}
	return &model.Exchange{ID: id, UserID: userID, Status: model.ExchangeStatusCancelled}, nil
}

// ExchangeHistory returns preconfigured history.
func (s ExchangeFacadeStub) ExchangeHistory(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID, page, size)
	}
	return []model.Exchange{{ID: "e-1", UserID: userID, Status: model.ExchangeStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

// ExchangeByID returns the configured exchange.
func (s ExchangeFacadeStub) ExchangeByID(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.Exchange{ID: id, UserID: userID, Status: model.ExchangeStatusPending}, nil
}

// UpdateExchangeStatus delegates to the override.
func (s ExchangeFacadeStub) UpdateExchangeStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, to)
	}
	return &model.Exchange{ID: id, Status: to}, nil
}

// RewardsFacadeStub aggregates facade dependencies for HTTP layer tests.
type RewardsFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	LedgerFacadeStub
	ExchangeFacadeStub
}

// RewardStatusUpdate stores information about UpdateRewardStatus invocations.
type RewardStatusUpdate struct {
	RewardID string
	Status   model.RewardStatus
}

// SweeperFacadeStub mimics sweeper interactions with the rewards facade.
type SweeperFacadeStub struct {
	Batches        [][]model.Reward
	BatchFn        func(context.Context, int) ([]model.Reward, error)
	UpdateFn       func(context.Context, string, model.RewardStatus) error
	Updates        []RewardStatusUpdate
	mu             sync.Mutex
	batchCallCount int
}

// Lock exposes internal mutex for external synchronization.
func (s *SweeperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweeperFacadeStub) Unlock() { s.mu.Unlock() }

// RewardsForMaintenance returns batches from the configured queue.
func (s *SweeperFacadeStub) RewardsForMaintenance(ctx context.Context, limit int) ([]model.Reward, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	s.mu.Lock()
	call := s.batchCallCount
	s.batchCallCount++
	s.mu.Unlock()
	if call < len(s.Batches) {
		return s.Batches[call], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// UpdateRewardStatus records update requests.
func (s *SweeperFacadeStub) UpdateRewardStatus(ctx context.Context, id string, status model.RewardStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, RewardStatusUpdate{RewardID: id, Status: status})
	return nil
}
