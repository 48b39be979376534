package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mentionwatch/internal/domain"
	"mentionwatch/internal/metrics"
	"mentionwatch/internal/ranking"
)

// RankingService computes the comprehensive ranking for a month: both
// sources' observations are ranked independently, combined into one
// final rank, snapshotted for history, and annotated with deltas
// against the previous month's snapshots.
type RankingService struct {
	companies CompanyStore
	mentions  MentionStore
	snapshots SnapshotStore
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	nowFn     func() time.Time
}

func NewRankingService(
	companies CompanyStore,
	mentions MentionStore,
	snapshots SnapshotStore,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *RankingService {
	return &RankingService{
		companies: companies,
		mentions:  mentions,
		snapshots: snapshots,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "ranking"),
		nowFn:     time.Now,
	}
}

// Compute produces the comprehensive ranking for one month. A source
// with no usable data contributes an all-absent observation set instead
// of failing the computation; the result's Available map tells the
// caller which sources had data.
func (s *RankingService) Compute(ctx context.Context, month domain.Month) (*domain.RankingResult, error) {
	if month.After(domain.MonthOf(s.nowFn())) {
		return nil, fmt.Errorf("%w: %s is in the future", domain.ErrInvalidMonth, month)
	}

	started := time.Now()

	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		s.observeComputation("error", started)
		return nil, fmt.Errorf("list companies: %w", err)
	}

	counts := s.fetchCounts(ctx, month)

	ranks := make(map[domain.Source]map[int64]int, len(domain.Sources))
	available := make(map[domain.Source]bool, len(domain.Sources))
	for _, src := range domain.Sources {
		ranks[src] = ranking.SourceRanks(observations(companies, src, month, counts[src]))
		available[src] = len(counts[src]) > 0
	}

	combined := ranking.Combine(month, ranks[domain.SourceGDELT], ranks[domain.SourceNewsAPI])

	s.writeSnapshots(ctx, month, combined)

	previous, err := s.snapshots.GetMonth(ctx, month.Prev())
	if err != nil {
		// Missing history degrades to nil deltas, same as a company
		// with no snapshot.
		s.logger.Error("failed to load previous snapshots", "month", month.Prev().String(), "error", err)
		previous = nil
	}

	names := make(map[int64]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.CleanedName
	}

	entries := make([]domain.RankingEntry, 0, len(combined))
	for _, c := range combined {
		entry := domain.RankingEntry{
			CompanyID:     c.CompanyID,
			CompanyName:   names[c.CompanyID],
			GDELTRank:     ranks[domain.SourceGDELT][c.CompanyID],
			NewsAPIRank:   ranks[domain.SourceNewsAPI][c.CompanyID],
			CombinedScore: c.CombinedScore,
			FinalRank:     c.FinalRank,
		}
		if count, ok := counts[domain.SourceGDELT][c.CompanyID]; ok {
			v := count
			entry.GDELTMentions = &v
		}
		if count, ok := counts[domain.SourceNewsAPI][c.CompanyID]; ok {
			v := count
			entry.NewsAPIMentions = &v
		}
		if prev, ok := previous[c.CompanyID]; ok {
			p := prev
			entry.PreviousRank = &p
			entry.RankChange, entry.Direction = ranking.Delta(&p, c.FinalRank)
		}
		entries = append(entries, entry)
	}

	result := &domain.RankingResult{
		Month:     month,
		Available: available,
		Entries:   entries,
	}

	s.observeComputation("success", started)
	s.logger.Info("computed comprehensive ranking",
		"month", month.String(),
		"companies", len(entries),
		"gdelt_available", available[domain.SourceGDELT],
		"newsapi_available", available[domain.SourceNewsAPI],
		"duration", time.Since(started),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishRankingComputed(ctx, result); err != nil {
			s.logger.Error("failed to publish ranking event", "error", err)
		}
	}

	return result, nil
}

// fetchCounts loads both sources' stored observation sets concurrently.
// The two reads are independent; a failed read degrades that source to
// all-absent rather than failing the computation.
func (s *RankingService) fetchCounts(ctx context.Context, month domain.Month) map[domain.Source]map[int64]int {
	var mu sync.Mutex
	var wg sync.WaitGroup

	counts := make(map[domain.Source]map[int64]int, len(domain.Sources))
	for _, src := range domain.Sources {
		wg.Add(1)
		go func(src domain.Source) {
			defer wg.Done()
			c, err := s.mentions.CountsForMonth(ctx, src, month)
			if err != nil {
				s.logger.Error("failed to load mention counts",
					"source", src,
					"month", month.String(),
					"error", err,
				)
				c = nil
			}
			mu.Lock()
			counts[src] = c
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	return counts
}

// writeSnapshots persists this month's final ranks. Writes are
// best-effort and write-once: failures are logged, existing snapshots
// stay untouched, and nothing is written once the caller has gone away.
func (s *RankingService) writeSnapshots(ctx context.Context, month domain.Month, combined []domain.CombinedRanking) {
	for _, c := range combined {
		if ctx.Err() != nil {
			return
		}
		if err := s.snapshots.PutIfAbsent(ctx, c.CompanyID, month, c.FinalRank); err != nil {
			s.logger.Error("failed to write rank snapshot",
				"company_id", c.CompanyID,
				"month", month.String(),
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.SnapshotWritesTotal.WithLabelValues("error").Inc()
			}
			continue
		}
		if s.metrics != nil {
			s.metrics.SnapshotWritesTotal.WithLabelValues("ok").Inc()
		}
	}
}

// Stats reports per-source coverage for a month.
func (s *RankingService) Stats(ctx context.Context, month domain.Month) (*domain.CoverageStats, error) {
	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	stats := &domain.CoverageStats{
		Month:          month,
		TotalCompanies: len(companies),
		WithData:       make(map[domain.Source]int, len(domain.Sources)),
		CoverageRate:   make(map[domain.Source]float64, len(domain.Sources)),
	}

	for _, src := range domain.Sources {
		n, err := s.mentions.CountWithData(ctx, src, month)
		if err != nil {
			return nil, fmt.Errorf("count %s coverage: %w", src, err)
		}
		stats.WithData[src] = n
		if len(companies) > 0 {
			stats.CoverageRate[src] = float64(n) / float64(len(companies)) * 100
		}
	}

	return stats, nil
}

func (s *RankingService) observeComputation(status string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RankingComputationsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		s.metrics.RankingDurationSeconds.Observe(time.Since(started).Seconds())
	}
}

// observations builds one source's observation set over the tracked
// companies: a stored count is present, a missing row is absent.
func observations(companies []domain.Company, src domain.Source, month domain.Month, counts map[int64]int) []domain.MentionObservation {
	obs := make([]domain.MentionObservation, 0, len(companies))
	for _, c := range companies {
		o := domain.MentionObservation{
			CompanyID: c.ID,
			Source:    src,
			Month:     month,
		}
		if count, ok := counts[c.ID]; ok {
			v := count
			o.Count = &v
		}
		obs = append(obs, o)
	}
	return obs
}
