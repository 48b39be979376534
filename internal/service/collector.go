package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mentionwatch/internal/domain"
	"mentionwatch/internal/metrics"
)

// CollectorService gathers one month of mention counts for every active
// company from every source and persists them. The two sources are
// queried concurrently; within a source, companies are fetched
// sequentially behind the source's own rate limiter.
type CollectorService struct {
	sources   []MentionSource
	companies CompanyStore
	mentions  MentionStore
	txManager TransactionManager
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	nowFn     func() time.Time
}

func NewCollectorService(
	sources []MentionSource,
	companies CompanyStore,
	mentions MentionStore,
	txManager TransactionManager,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CollectorService {
	return &CollectorService{
		sources:   sources,
		companies: companies,
		mentions:  mentions,
		txManager: txManager,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "collector"),
		nowFn:     time.Now,
	}
}

type sourceRun struct {
	observations []domain.MentionObservation
	stats        domain.CollectStats
}

// Collect fetches and stores both sources' observations for the month.
// A failed fetch for one company becomes an absent observation, not a
// failed run; each source's rows are written in one transaction.
func (s *CollectorService) Collect(ctx context.Context, month domain.Month) ([]domain.CollectStats, error) {
	if month.After(domain.MonthOf(s.nowFn())) {
		return nil, fmt.Errorf("%w: %s is in the future", domain.ErrInvalidMonth, month)
	}

	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	s.logger.Info("starting collection",
		"month", month.String(),
		"companies", len(companies),
		"sources", len(s.sources),
	)

	runs := make([]sourceRun, len(s.sources))
	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src MentionSource) {
			defer wg.Done()
			runs[i] = s.collectSource(ctx, src, companies, month)
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	allStats := make([]domain.CollectStats, 0, len(runs))
	for _, run := range runs {
		stats := run.stats
		if err := s.persist(ctx, run.observations); err != nil {
			s.logger.Error("failed to persist observations",
				"source", stats.Source,
				"error", err,
			)
			stats.Errors += len(run.observations)
			if s.metrics != nil {
				s.metrics.CollectRunsTotal.WithLabelValues(string(stats.Source), "error").Inc()
			}
		} else if s.metrics != nil {
			s.metrics.CollectRunsTotal.WithLabelValues(string(stats.Source), "success").Inc()
		}

		s.logger.Info("collection finished",
			"source", stats.Source,
			"fetched", stats.Fetched,
			"absent", stats.Absent,
			"errors", stats.Errors,
			"duration", stats.Duration,
		)
		allStats = append(allStats, stats)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMentionsCollected(ctx, month, allStats); err != nil {
			s.logger.Error("failed to publish collection event", "error", err)
		}
	}

	return allStats, nil
}

func (s *CollectorService) collectSource(
	ctx context.Context,
	src MentionSource,
	companies []domain.Company,
	month domain.Month,
) sourceRun {
	started := time.Now()
	run := sourceRun{
		stats: domain.CollectStats{
			Source: src.Source(),
			Month:  month.String(),
		},
	}

	for _, company := range companies {
		if ctx.Err() != nil {
			break
		}

		count, err := src.FetchMentionCount(ctx, company.CleanedName, month)
		switch {
		case err == nil:
			v := count
			run.observations = append(run.observations, domain.MentionObservation{
				CompanyID: company.ID,
				Source:    src.Source(),
				Month:     month,
				Count:     &v,
			})
			run.stats.Fetched++
			s.observeFetch(src.Source(), "ok")
		case errors.Is(err, domain.ErrNoData):
			run.stats.Absent++
			s.observeFetch(src.Source(), "no_data")
		default:
			// Transient failure: recorded as absent for this month,
			// never fatal for the run.
			s.logger.Warn("mention fetch failed",
				"source", src.Source(),
				"company", company.CleanedName,
				"month", month.String(),
				"error", err,
			)
			run.stats.Errors++
			s.observeFetch(src.Source(), "error")
		}
	}

	run.stats.Duration = time.Since(started)
	return run
}

func (s *CollectorService) persist(ctx context.Context, observations []domain.MentionObservation) error {
	if len(observations) == 0 {
		return nil
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, obs := range observations {
			if err := s.mentions.Upsert(txCtx, obs); err != nil {
				return fmt.Errorf("upsert observation for company %d: %w", obs.CompanyID, err)
			}
		}
		return nil
	})
}

func (s *CollectorService) observeFetch(src domain.Source, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.SourceFetchesTotal.WithLabelValues(string(src), outcome).Inc()
}
