package usecase

import (
	"context"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/domain/repository"
)

// LedgerUseCase manages operations with the GreenPoints ledger.
type LedgerUseCase struct {
	points repository.PointsRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(points repository.PointsRepository) *LedgerUseCase {
	return &LedgerUseCase{points: points}
}

// Summary returns the user's points snapshot.
func (u *LedgerUseCase) Summary(ctx context.Context, userID int64) (*model.PointsSummary, error) {
	return u.points.GetSummary(ctx, userID)
}

// Credit awards points to a user. The earning activity itself lives outside
// this service; this is the entry point it calls.
func (u *LedgerUseCase) Credit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.points.Credit(ctx, userID, amount)
}
