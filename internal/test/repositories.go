package test

import (
	"context"
	"sync"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/domain/repository"
)

// UserRepositoryStub overrides user persistence behaviour per test.
type UserRepositoryStub struct {
	CreateFn     func(context.Context, string, string) (*model.User, error)
	GetByLoginFn func(context.Context, string) (*model.User, error)
	GetByIDFn    func(context.Context, int64) (*model.User, error)
}

func (s UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, login, passwordHash)
	}
	return &model.User{ID: 1, Login: login, PasswordHash: passwordHash, Role: model.UserRoleMember}, nil
}

func (s UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.GetByLoginFn != nil {
		return s.GetByLoginFn(ctx, login)
	}
	return &model.User{ID: 1, Login: login, PasswordHash: "hash:secret", Role: model.UserRoleMember}, nil
}

func (s UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.User{ID: id, Login: "user", Role: model.UserRoleMember}, nil
}

// RewardRepositoryStub overrides catalog persistence behaviour per test.
type RewardRepositoryStub struct {
	CreateFn       func(context.Context, *model.Reward) (*model.Reward, error)
	GetByIDFn      func(context.Context, string) (*model.Reward, error)
	ListFn         func(context.Context, model.RewardFilter) (*model.RewardPage, error)
	UpdateFn       func(context.Context, *model.Reward) error
	DeleteFn       func(context.Context, string) error
	BatchFn        func(context.Context, int) ([]model.Reward, error)
	UpdateStatusFn func(context.Context, string, model.RewardStatus) error
}

func (s RewardRepositoryStub) Create(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, reward)
	}
	created := *reward
	created.ID = "r-1"
	return &created, nil
}

func (s RewardRepositoryStub) GetByID(ctx context.Context, id string) (*model.Reward, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Reward{ID: id, Name: "tote bag", PointsCost: 100, Stock: 5, Status: model.RewardStatusActive}, nil
}

func (s RewardRepositoryStub) List(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return &model.RewardPage{}, nil
}

func (s RewardRepositoryStub) Update(ctx context.Context, reward *model.Reward) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, reward)
	}
	return nil
}

func (s RewardRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s RewardRepositoryStub) SelectBatchForMaintenance(ctx context.Context, limit int) ([]model.Reward, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	return nil, nil
}

func (s RewardRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.RewardStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

// PointsRepositoryStub overrides ledger persistence behaviour per test.
type PointsRepositoryStub struct {
	GetSummaryFn func(context.Context, int64) (*model.PointsSummary, error)
	CreditFn     func(context.Context, int64, int64) error
}

func (s PointsRepositoryStub) GetSummary(ctx context.Context, userID int64) (*model.PointsSummary, error) {
	if s.GetSummaryFn != nil {
		return s.GetSummaryFn(ctx, userID)
	}
	return &model.PointsSummary{Current: 250, TotalEarned: 300, TotalSpent: 50}, nil
}

func (s PointsRepositoryStub) Credit(ctx context.Context, userID, amount int64) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount)
	}
	return nil
}

// ExchangeRepositoryStub overrides exchange persistence behaviour per test.
type ExchangeRepositoryStub struct {
	ExchangeFn     func(context.Context, int64, string, int64, string, string, string) (*model.ExchangeResult, error)
	GetByIDFn      func(context.Context, string) (*model.Exchange, error)
	ListByUserFn   func(context.Context, int64, int, int) ([]model.Exchange, error)
	UpdateStatusFn func(context.Context, string, model.ExchangeStatus) (*model.Exchange, error)
}

func (s ExchangeRepositoryStub) Exchange(ctx context.Context, userID int64, rewardID string, quantity int64, address, notes, idempotencyKey string) (*model.ExchangeResult, error) {
	if s.ExchangeFn != nil {
		return s.ExchangeFn(ctx, userID, rewardID, quantity, address, notes, idempotencyKey)
	}
	return &model.ExchangeResult{
		Exchange: &model.Exchange{
			ID:             "e-1",
			UserID:         userID,
			RewardID:       rewardID,
			Quantity:       quantity,
			PointsSpent:    100 * quantity,
			Status:         model.ExchangeStatusPending,
			IdempotencyKey: idempotencyKey,
		},
		RemainingPoints: 150,
	}, nil
}

func (s ExchangeRepositoryStub) GetByID(ctx context.Context, id string) (*model.Exchange, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Exchange{ID: id, UserID: 1, Status: model.ExchangeStatusPending}, nil
}

func (s ExchangeRepositoryStub) ListByUser(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, page, size)
	}
	return nil, nil
}

func (s ExchangeRepositoryStub) UpdateStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, to)
	}
	return &model.Exchange{ID: id, Status: to}, nil
}

// CatalogCacheStub records cache traffic and serves configured pages.
type CatalogCacheStub struct {
	Page        *model.RewardPage
	GetFn       func(context.Context, model.RewardFilter) (*model.RewardPage, bool)
	mu          sync.Mutex
	sets        int
	invalidates int
}

func (s *CatalogCacheStub) GetList(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, bool) {
	if s.GetFn != nil {
		return s.GetFn(ctx, filter)
	}
	if s.Page != nil {
		return s.Page, true
	}
	return nil, false
}

func (s *CatalogCacheStub) SetList(ctx context.Context, filter model.RewardFilter, page *model.RewardPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
}

func (s *CatalogCacheStub) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidates++
}

// Sets reports how many pages were stored.
func (s *CatalogCacheStub) Sets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// Invalidations reports how many times the cache was flushed.
func (s *CatalogCacheStub) Invalidations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidates
}

var _ repository.UserRepository = UserRepositoryStub{}
var _ repository.RewardRepository = RewardRepositoryStub{}
var _ repository.PointsRepository = PointsRepositoryStub{}
var _ repository.ExchangeRepository = ExchangeRepositoryStub{}
