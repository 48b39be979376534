package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"mentionwatch/internal/domain"
)

// Collector gathers a month's observations from every source.
type Collector interface {
	Collect(ctx context.Context, month domain.Month) ([]domain.CollectStats, error)
}

// Ranker computes the comprehensive ranking for a month.
type Ranker interface {
	Compute(ctx context.Context, month domain.Month) (*domain.RankingResult, error)
}

// Scheduler runs the monthly pipeline on a cron spec: collect the
// previous month's mentions, then compute and snapshot its ranking.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	collector Collector
	ranker    Ranker
	logger    *slog.Logger
	nowFn     func() time.Time
}

func NewScheduler(spec string, collector Collector, ranker Ranker, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		spec:      spec,
		collector: collector,
		ranker:    ranker,
		logger:    logger.With("component", "scheduler"),
		nowFn:     time.Now,
	}
}

// Start registers the job and runs the cron loop until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() { s.runPipeline(ctx) })
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec)

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("scheduler stopped")

	return ctx.Err()
}

func (s *Scheduler) runPipeline(ctx context.Context) {
	// Scheduled runs always target the last completed month.
	month := domain.MonthOf(s.nowFn()).Prev()

	runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	s.logger.Info("running monthly pipeline", "month", month.String())

	if _, err := s.collector.Collect(runCtx, month); err != nil {
		s.logger.Error("scheduled collection failed", "month", month.String(), "error", err)
		return
	}

	if _, err := s.ranker.Compute(runCtx, month); err != nil {
		s.logger.Error("scheduled ranking failed", "month", month.String(), "error", err)
	}
}
