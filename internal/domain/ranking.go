package domain

import "time"

// Direction labels the sign of a month-over-month rank change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// CombinedRanking is a company's derived position for one month:
// the sum of its two source ranks and the dense rank of that sum.
type CombinedRanking struct {
	CompanyID     int64
	Month         Month
	CombinedScore int
	FinalRank     int
}

// RankSnapshot is the append-only history record of a final rank.
// Written once per (company, month), never mutated afterwards.
type RankSnapshot struct {
	CompanyID int64     `db:"company_id"`
	Month     string    `db:"year_month"`
	FinalRank int       `db:"final_rank"`
	CreatedAt time.Time `db:"created_at"`
}

// RankingEntry is one row of the comprehensive ranking payload.
// Mention counts are nil when the source had no usable data for the
// company; the delta fields are nil when the company has no history.
type RankingEntry struct {
	CompanyID       int64      `json:"company_id"`
	CompanyName     string     `json:"company_name"`
	GDELTMentions   *int       `json:"gdelt_mentions"`
	GDELTRank       int        `json:"gdelt_rank"`
	NewsAPIMentions *int       `json:"newsapi_mentions"`
	NewsAPIRank     int        `json:"newsapi_rank"`
	CombinedScore   int        `json:"combined_score"`
	FinalRank       int        `json:"final_rank"`
	PreviousRank    *int       `json:"previous_rank"`
	RankChange      *int       `json:"rank_change"`
	Direction       *Direction `json:"rank_change_direction"`
}

// RankingResult is the full output of one comprehensive ranking
// computation. Available flags which sources contributed any data,
// so a total source outage is visible to the caller instead of
// failing the request.
type RankingResult struct {
	Month     Month           `json:"-"`
	Available map[Source]bool `json:"sources_available"`
	Entries   []RankingEntry  `json:"results"`
}

// CoverageStats summarizes how many tracked companies each source had
// data for in one month.
type CoverageStats struct {
	Month          Month              `json:"-"`
	TotalCompanies int                `json:"total_companies"`
	WithData       map[Source]int     `json:"companies_with_data"`
	CoverageRate   map[Source]float64 `json:"coverage_rate"`
}

// MoMEntry is one company's month-over-month mention comparison for a
// single source.
type MoMEntry struct {
	CompanyID        int64   `json:"company_id"`
	CompanyName      string  `json:"company_name"`
	CurrentMentions  int     `json:"current_mentions"`
	PreviousMentions int     `json:"previous_mentions"`
	ChangePercent    float64 `json:"change_percentage"`
}

// CollectStats summarizes one collection run for a single source.
type CollectStats struct {
	Source   Source        `json:"source"`
	Month    string        `json:"month"`
	Fetched  int           `json:"fetched"`
	Absent   int           `json:"absent"`
	Errors   int           `json:"errors"`
	Duration time.Duration `json:"-"`
}
