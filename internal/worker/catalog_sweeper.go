package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/greenloop/greenpoints/internal/domain/model"
)

// CatalogFacade exposes the subset of application functionality required by the sweeper.
type CatalogFacade interface {
	RewardsForMaintenance(ctx context.Context, limit int) ([]model.Reward, error)
	UpdateRewardStatus(ctx context.Context, id string, status model.RewardStatus) error
}

// CatalogSweeper periodically reconciles reward statuses with their stock and
// validity window using a small worker pool.
type CatalogSweeper struct {
	facade        CatalogFacade
	sweepInterval time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	jobs   chan model.Reward
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCatalogSweeper constructs the sweeper worker pool.
func NewCatalogSweeper(facade CatalogFacade, sweepInterval time.Duration, batchSize, workers int, logger *slog.Logger) *CatalogSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CatalogSweeper{
		facade:        facade,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan model.Reward, batchSize),
	}
}

// Start launches background processing.
func (s *CatalogSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *CatalogSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CatalogSweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *CatalogSweeper) fetchAndDispatch(ctx context.Context) {
	rewards, err := s.facade.RewardsForMaintenance(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch rewards for maintenance failed", slog.String("error", err.Error()))
		return
	}
	for _, reward := range rewards {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- reward:
		}
	}
}

func (s *CatalogSweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case reward, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleReward(ctx, reward)
		}
	}
}

func (s *CatalogSweeper) handleReward(ctx context.Context, reward model.Reward) {
	status, ok := DesiredStatus(reward, time.Now())
	if !ok {
		return
	}
	if err := s.facade.UpdateRewardStatus(ctx, reward.ID, status); err != nil {
		s.logger.Error("update reward status failed",
			slog.String("reward", reward.ID),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Info("reward status reconciled",
		slog.String("reward", reward.ID),
		slog.String("from", string(reward.Status)),
		slog.String("to", string(status)))
}

// DesiredStatus decides the status a reward should carry given its stock and
// validity window. The second return reports whether a flip is needed.
func DesiredStatus(reward model.Reward, now time.Time) (model.RewardStatus, bool) {
	expired := reward.ValidUntil != nil && now.After(*reward.ValidUntil)

	switch reward.Status {
	case model.RewardStatusActive:
		if expired {
			return model.RewardStatusExpired, true
		}
		if reward.Stock == 0 {
			return model.RewardStatusOutOfStock, true
		}
	case model.RewardStatusOutOfStock:
		if expired {
			return model.RewardStatusExpired, true
		}
		if reward.Stock > 0 {
			return model.RewardStatusActive, true
		}
	}
	return "", false
}
