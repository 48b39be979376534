package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"mentionwatch/internal/config"
	"mentionwatch/internal/domain"
)

const datetimeLayout = "20060102150405"

// Source queries the GDELT DOC 2.0 API for monthly mention volume.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg config.SourceConfig, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("source", domain.SourceGDELT),
	}
}

func (s *Source) Source() domain.Source {
	return domain.SourceGDELT
}

// FetchMentionCount returns the number of articles GDELT saw for the
// company in the given month, summed over the timeline volume series.
// An empty timeline yields domain.ErrNoData.
func (s *Source) FetchMentionCount(ctx context.Context, companyName string, month domain.Month) (int, error) {
	start, end := month.Bounds()

	params := url.Values{}
	params.Set("query", fmt.Sprintf("%q", companyName))
	params.Set("mode", "timelinevolinfo")
	params.Set("format", "json")
	params.Set("startdatetime", start.Format(datetimeLayout))
	params.Set("enddatetime", end.Add(-time.Second).Format(datetimeLayout))
	params.Set("maxrecords", "250")

	resp, err := s.fetch(ctx, s.baseURL+"?"+params.Encode())
	if err != nil {
		return 0, err
	}

	if len(resp.Timeline) == 0 {
		return 0, domain.ErrNoData
	}

	total := 0
	for _, series := range resp.Timeline {
		for _, point := range series.Data {
			total += int(point.Value)
		}
	}

	return total, nil
}

func (s *Source) fetch(ctx context.Context, url string) (*timelineResponse, error) {
	var resp *timelineResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err = s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err = s.doRequest(ctx, url)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*timelineResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MentionWatch/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var tr timelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &tr, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
