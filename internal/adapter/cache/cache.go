package cache

import (
	"context"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

// CatalogCache stores reward catalog pages keyed by their filter. A miss is
// never an error; implementations degrade to pass-through on failures.
type CatalogCache interface {
	GetList(ctx context.Context, filter model.RewardFilter) (*model.RewardPage, bool)
	SetList(ctx context.Context, filter model.RewardFilter, page *model.RewardPage)
	// Invalidate discards all cached pages. Called after any catalog or
	// stock mutation.
	Invalidate(ctx context.Context)
}

// Noop disables caching. Used when no redis address is configured.
type Noop struct{}

func (Noop) GetList(context.Context, model.RewardFilter) (*model.RewardPage, bool) { return nil, false }

func (Noop) SetList(context.Context, model.RewardFilter, *model.RewardPage) {}

func (Noop) Invalidate(context.Context) {}
