package cache

import (
	"context"
	"testing"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

func TestFilterKeyStable(t *testing.T) {
	filter := model.RewardFilter{
		Category: model.RewardCategoryGift,
		Search:   "Bag",
		Page:     2,
		PageSize: 10,
		SortBy:   model.RewardSortName,
	}

	first := FilterKey(filter)
	second := FilterKey(filter)
	if first != second {
		t.Errorf("FilterKey not stable: %q vs %q", first, second)
	}
	if len(first) != 16 {
		t.Errorf("FilterKey length = %d, want 16", len(first))
	}
}

func TestFilterKeyCaseInsensitiveSearch(t *testing.T) {
	a := FilterKey(model.RewardFilter{Search: "BAG"})
	b := FilterKey(model.RewardFilter{Search: "bag"})
	if a != b {
		t.Error("search term casing must not change the cache key")
	}
}

func TestFilterKeyNormalizesBeforeHashing(t *testing.T) {
	zero := FilterKey(model.RewardFilter{})
	normalized := FilterKey(model.RewardFilter{Page: 1, PageSize: 20, SortBy: model.RewardSortCreatedAt, Descending: true})
	if zero != normalized {
		t.Error("zero filter and its normalized form must share one key")
	}
}

func TestFilterKeyDistinguishesFilters(t *testing.T) {
	base := FilterKey(model.RewardFilter{Category: model.RewardCategoryGift})
	tests := []model.RewardFilter{
		{Category: model.RewardCategoryVoucher},
		{Category: model.RewardCategoryGift, Search: "bag"},
		{Category: model.RewardCategoryGift, MinPoints: 10},
		{Category: model.RewardCategoryGift, Page: 2},
	}
	for _, filter := range tests {
		if FilterKey(filter) == base {
			t.Errorf("filter %+v collides with base key", filter)
		}
	}
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var c Noop

	if page, ok := c.GetList(ctx, model.RewardFilter{}); ok || page != nil {
		t.Error("Noop.GetList must always miss")
	}

	// Writes and invalidations are discarded without error.
	c.SetList(ctx, model.RewardFilter{}, &model.RewardPage{Total: 1})
	c.Invalidate(ctx)

	if _, ok := c.GetList(ctx, model.RewardFilter{}); ok {
		t.Error("Noop.GetList must miss after SetList")
	}
}
