package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"mentionwatch/internal/domain"
)

// MentionSource fetches one external dataset's mention count for a
// company and month. Implementations are rate-limited and retried
// internally; any returned error is treated as an absent observation
// by the caller.
type MentionSource interface {
	Source() domain.Source
	FetchMentionCount(ctx context.Context, companyName string, month domain.Month) (int, error)
}

type CompanyStore interface {
	ListActive(ctx context.Context) ([]domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	CreateBatch(ctx context.Context, companies []domain.Company) (int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type MentionStore interface {
	Upsert(ctx context.Context, obs domain.MentionObservation) error
	CountsForMonth(ctx context.Context, source domain.Source, month domain.Month) (map[int64]int, error)
	CountWithData(ctx context.Context, source domain.Source, month domain.Month) (int, error)
}

// SnapshotStore is the append-only rank history. PutIfAbsent never
// overwrites an existing (company, month) row.
type SnapshotStore interface {
	GetMonth(ctx context.Context, month domain.Month) (map[int64]int, error)
	PutIfAbsent(ctx context.Context, companyID int64, month domain.Month, finalRank int) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishRankingComputed(ctx context.Context, result *domain.RankingResult) error
	PublishMentionsCollected(ctx context.Context, month domain.Month, stats []domain.CollectStats) error
	Close() error
}

// SpreadsheetParser extracts the curated company list from an uploaded
// workbook.
type SpreadsheetParser interface {
	Companies(data []byte) ([]domain.Company, error)
}

// CompetitorSource provides the curated competitor sheet and the
// per-company investor listing.
type CompetitorSource interface {
	Profiles() ([]domain.CompetitorProfile, error)
	InvestorNames() (map[string]string, error)
}

// VCMatcher reports whether an investor listing mentions any of the
// configured famous VC names.
type VCMatcher interface {
	Match(investors string) bool
}
