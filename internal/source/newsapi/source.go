package newsapi

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

// Source queries the NewsAPI /v2/everything endpoint. The monthly
// mention count is the totalResults figure for an exact-phrase query
// over the month's date range.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
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
		apiKey:         cfg.APIKey,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("source", domain.SourceNewsAPI),
	}
}

func (s *Source) Source() domain.Source {
	return domain.SourceNewsAPI
}

func (s *Source) FetchMentionCount(ctx context.Context, companyName string, month domain.Month) (int, error) {
	start, end := month.Bounds()

	params := url.Values{}
	// Quoted for exact-phrase matching, otherwise short startup names
	// match unrelated articles.
	params.Set("q", fmt.Sprintf("%q", companyName))
	params.Set("from", start.Format("2006-01-02"))
	params.Set("to", end.AddDate(0, 0, -1).Format("2006-01-02"))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", "1")

	resp, err := s.fetch(ctx, s.baseURL+"?"+params.Encode())
	if err != nil {
		return 0, err
	}

	if resp.Status != "ok" {
		return 0, fmt.Errorf("newsapi error %s: %s", resp.Code, resp.Message)
	}

	return resp.TotalResults, nil
}

func (s *Source) fetch(ctx context.Context, url string) (*everythingResponse, error) {
	var resp *everythingResponse
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

func (s *Source) doRequest(ctx context.Context, url string) (*everythingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MentionWatch/1.0")
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited: %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var er everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &er, nil
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
