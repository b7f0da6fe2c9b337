package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/test"
	"github.com/greenloop/greenpoints/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDesiredStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		reward   model.Reward
		want     model.RewardStatus
		wantFlip bool
	}{
		{
			name:     "active reward in shape",
			reward:   model.Reward{Status: model.RewardStatusActive, Stock: 5},
			wantFlip: false,
		},
		{
			name:     "active reward expired",
			reward:   model.Reward{Status: model.RewardStatusActive, Stock: 5, ValidUntil: &past},
			want:     model.RewardStatusExpired,
			wantFlip: true,
		},
		{
			name:     "active reward depleted",
			reward:   model.Reward{Status: model.RewardStatusActive, Stock: 0},
			want:     model.RewardStatusOutOfStock,
			wantFlip: true,
		},
		{
			name:     "out of stock replenished",
			reward:   model.Reward{Status: model.RewardStatusOutOfStock, Stock: 3},
			want:     model.RewardStatusActive,
			wantFlip: true,
		},
		{
			name:     "out of stock expired",
			reward:   model.Reward{Status: model.RewardStatusOutOfStock, Stock: 0, ValidUntil: &past},
			want:     model.RewardStatusExpired,
			wantFlip: true,
		},
		{
			name:     "out of stock still empty",
			reward:   model.Reward{Status: model.RewardStatusOutOfStock, Stock: 0, ValidUntil: &future},
			wantFlip: false,
		},
		{
			name:     "inactive rewards are left alone",
			reward:   model.Reward{Status: model.RewardStatusInactive, Stock: 0, ValidUntil: &past},
			wantFlip: false,
		},
		{
			name:     "expired rewards stay expired",
			reward:   model.Reward{Status: model.RewardStatusExpired, Stock: 5},
			wantFlip: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flip := worker.DesiredStatus(tt.reward, now)
			if flip != tt.wantFlip {
				t.Fatalf("DesiredStatus() flip = %v, want %v", flip, tt.wantFlip)
			}
			if flip && got != tt.want {
				t.Errorf("DesiredStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCatalogSweeperReconcilesBatch(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	facade := &test.SweeperFacadeStub{
		Batches: [][]model.Reward{
			{
				{ID: "r-1", Status: model.RewardStatusActive, Stock: 0},
				{ID: "r-2", Status: model.RewardStatusActive, Stock: 5, ValidUntil: &past},
				{ID: "r-3", Status: model.RewardStatusActive, Stock: 5},
			},
		},
	}

	sweeper := worker.NewCatalogSweeper(facade, 5*time.Millisecond, 10, 2, discardLogger())
	sweeper.Start(context.Background())

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		done := len(facade.Updates) >= 2
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for status updates")
		case <-time.After(5 * time.Millisecond):
		}
	}
	sweeper.Stop()

	facade.Lock()
	defer facade.Unlock()

	got := map[string]model.RewardStatus{}
	for _, u := range facade.Updates {
		got[u.RewardID] = u.Status
	}
	if got["r-1"] != model.RewardStatusOutOfStock {
		t.Errorf("r-1 status = %s, want %s", got["r-1"], model.RewardStatusOutOfStock)
	}
	if got["r-2"] != model.RewardStatusExpired {
		t.Errorf("r-2 status = %s, want %s", got["r-2"], model.RewardStatusExpired)
	}
	if _, ok := got["r-3"]; ok {
		t.Error("r-3 needs no flip and must not be updated")
	}
}

func TestCatalogSweeperStopIsIdempotent(t *testing.T) {
	sweeper := worker.NewCatalogSweeper(&test.SweeperFacadeStub{}, time.Hour, 1, 1, discardLogger())
	sweeper.Start(context.Background())
	sweeper.Stop()
	sweeper.Stop()
}
