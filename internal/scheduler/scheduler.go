package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lapseSweeper interface {
	ExpireLapsed(ctx context.Context) ([]*domain.Request, error)
}

// Scheduler periodically closes requests whose start time passed before
// anyone was booked.
type Scheduler struct {
	requestService lapseSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	requestService lapseSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		requestService: requestService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	lapsed, err := s.requestService.ExpireLapsed(ctx)
	if err != nil {
		s.logger.Error("failed to expire lapsed requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range lapsed {
		s.logger.Info("request lapsed",
			logger.String("request_id", r.ID),
			logger.String("parent_id", r.ParentID),
			logger.String("datetime_start", r.Start.Format(time.RFC3339)),
		)
	}
}
