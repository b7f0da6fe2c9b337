package handlers

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserRole(ctx context.Context, id int64) (model.UserRole, error)
}

// CatalogFacade exposes reward catalog operations via HTTP.
type CatalogFacade interface {
	Rewards(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, error)
	Reward(ctx context.Context, id string) (*model.Reward, error)
	CreateReward(ctx context.Context, reward *model.Reward) (*model.Reward, error)
	UpdateReward(ctx context.Context, reward *model.Reward) error
	DeleteReward(ctx context.Context, id string) error
}

// LedgerFacade provides points ledger operations.
type LedgerFacade interface {
	Balance(ctx context.Context, userID int64) (*model.PointsSummary, error)
	CreditPoints(ctx context.Context, userID, amount int64) error
}

// ExchangeFacade provides reward exchange operations.
type ExchangeFacade interface {
	ExchangeReward(ctx context.Context, userID int64, req usecase.ExchangeRequest) (*model.ExchangeResult, error)
	CancelExchange(ctx context.Context, userID int64, id string) (*model.Exchange, error)
	ExchangeHistory(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error)
	ExchangeByID(ctx context.Context, userID int64, id string) (*model.Exchange, error)
	UpdateExchangeStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error)
}

// RewardsFacade aggregates the full set of operations used across handlers.
type RewardsFacade interface {
	AuthFacade
	CatalogFacade
	LedgerFacade
	ExchangeFacade
}
