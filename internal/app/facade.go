package app

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/usecase"
)

// RewardsFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer and the catalog sweeper.
type RewardsFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	ledger    *usecase.LedgerUseCase
	exchanges *usecase.ExchangeUseCase
}

func NewRewardsFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, ledger *usecase.LedgerUseCase, exchanges *usecase.ExchangeUseCase) *RewardsFacade {
	return &RewardsFacade{auth: auth, catalog: catalog, ledger: ledger, exchanges: exchanges}
}

func (f *RewardsFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *RewardsFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *RewardsFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *RewardsFacade) UserRole(ctx context.Context, id int64) (model.UserRole, error) {
	return f.auth.Role(ctx, id)
}

func (f *RewardsFacade) Rewards(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error) {
	return f.catalog.List(ctx, filter)
}

func (f *RewardsFacade) Reward(ctx context.Context, id string) (*model.Reward, error) {
	return f.catalog.Get(ctx, id)
}

func (f *RewardsFacade) CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error) {
	return f.catalog.Create(ctx, reward)
}

func (f *RewardsFacade) UpdateReward(ctx context.Context, reward *model.Reward) error {
	return f.catalog.Update(ctx, reward)
}

func (f *RewardsFacade) DeleteReward(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *RewardsFacade) RewardsForMaintenance(ctx context.Context, limit int) ([]model.Reward, error) {
	return f.catalog.SelectBatchForMaintenance(ctx, limit)
}

func (f *RewardsFacade) UpdateRewardStatus(ctx context.Context, id string, status model.RewardStatus) error {
	return f.catalog.UpdateStatus(ctx, id, status)
}

func (f *RewardsFacade) Balance(ctx context.Context, userID int64) (*model.PointsSummary, error) {
	return f.ledger.Summary(ctx, userID)
}

func (f *RewardsFacade) CreditPoints(ctx context.Context, userID, amount int64) error {
	return f.ledger.Credit(ctx, userID, amount)
}

func (f *RewardsFacade) ExchangeReward(ctx context.Context, userID int64, req usecase.ExchangeRequest) (*model.ExchangeResult, error) {
	return f.exchanges.Exchange(ctx, userID, req)
}

func (f *RewardsFacade) CancelExchange(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	return f.exchanges.Cancel(ctx, userID, id)
}

func (f *RewardsFacade) ExchangeHistory(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error) {
	return f.exchanges.History(ctx, userID, page, size)
}

func (f *RewardsFacade) ExchangeByID(ctx context.Context, userID int64, id string) (*model.Exchange, error) {
	return f.exchanges.Get(ctx, userID, id)
}

func (f *RewardsFacade) UpdateExchangeStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error) {
	return f.exchanges.UpdateStatus(ctx, id, to)
}
