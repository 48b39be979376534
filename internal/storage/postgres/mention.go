package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mentionwatch/internal/domain"
)

type MentionStore struct {
	db *sqlx.DB
}

func NewMentionStore(db *sqlx.DB) *MentionStore {
	return &MentionStore{db: db}
}

// Upsert writes one present observation. Absent observations are stored
// as no row at all, so callers only pass observations with a count.
func (s *MentionStore) Upsert(ctx context.Context, obs domain.MentionObservation) error {
	if !obs.Present() {
		return fmt.Errorf("upsert mention: absent observation for company %d", obs.CompanyID)
	}

	query := `
		INSERT INTO monthly_mentions (company_id, source, year_month, mention_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, source, year_month) DO UPDATE SET
			mention_count = EXCLUDED.mention_count,
			updated_at = now()`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		obs.CompanyID,
		obs.Source,
		obs.Month.String(),
		*obs.Count,
	)
	if err != nil {
		return fmt.Errorf("upsert mention: %w", err)
	}
	return nil
}

// CountsForMonth returns mention counts per company for one source and
// month. Companies without a row have no usable data for that source.
func (s *MentionStore) CountsForMonth(ctx context.Context, source domain.Source, month domain.Month) (map[int64]int, error) {
	query := `
		SELECT company_id, mention_count
		FROM monthly_mentions
		WHERE source = $1 AND year_month = $2`

	rows, err := s.db.QueryContext(ctx, query, source, month.String())
	if err != nil {
		return nil, fmt.Errorf("counts for %s %s: %w", source, month, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var companyID int64
		var count int
		if err := rows.Scan(&companyID, &count); err != nil {
			return nil, err
		}
		counts[companyID] = count
	}

	return counts, rows.Err()
}

// CountWithData reports how many companies had a positive mention count
// for one source and month.
func (s *MentionStore) CountWithData(ctx context.Context, source domain.Source, month domain.Month) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM monthly_mentions
		WHERE source = $1 AND year_month = $2 AND mention_count > 0`

	var count int
	if err := s.db.GetContext(ctx, &count, query, source, month.String()); err != nil {
		return 0, fmt.Errorf("count with data: %w", err)
	}
	return count, nil
}
