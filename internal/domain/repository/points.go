package repository

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

// PointsRepository manages per-user GreenPoints ledgers.
type PointsRepository interface {
	GetSummary(ctx context.Context, userID int64) (*model.PointsSummary, error)
	Credit(ctx context.Context, userID int64, amount int64) error
}
