package repository

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

// ExchangeRepository persists exchange records and performs the atomic
// debit/stock transaction described by the exchange contract.
type ExchangeRepository interface {
	// Exchange creates a PENDING record, decrements reward stock and debits
	// the user's points in a single transaction. A record with the same
	// idempotency key is returned unchanged with Replayed set.
	Exchange(ctx context.Context, userID int64, rewardID string, quantity int64, address, notes, idempotencyKey string) (*model.ExchangeResult, error)

	GetByID(ctx context.Context, id string) (*model.Exchange, error)
	ListByUser(ctx context.Context, userID int64, page, size int) ([]model.Exchange, error)

	// UpdateStatus applies a lifecycle transition; refunding statuses
	// re-credit points and restore stock in the same transaction.
	UpdateStatus(ctx context.Context, id string, to model.ExchangeStatus) (*model.Exchange, error)
}
