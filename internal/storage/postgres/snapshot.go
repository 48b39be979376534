package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mentionwatch/internal/domain"
)

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// GetMonth returns every company's snapshotted final rank for a month.
func (s *SnapshotStore) GetMonth(ctx context.Context, month domain.Month) (map[int64]int, error) {
	query := `
		SELECT company_id, final_rank
		FROM rank_snapshots
		WHERE year_month = $1`

	rows, err := s.db.QueryContext(ctx, query, month.String())
	if err != nil {
		return nil, fmt.Errorf("get snapshots for %s: %w", month, err)
	}
	defer rows.Close()

	ranks := make(map[int64]int)
	for rows.Next() {
		var companyID int64
		var rank int
		if err := rows.Scan(&companyID, &rank); err != nil {
			return nil, err
		}
		ranks[companyID] = rank
	}

	return ranks, rows.Err()
}

// PutIfAbsent records a company's final rank for the month unless a
// snapshot for that (company, month) already exists. History stays
// append-only: recomputations in the same month are a no-op here even
// when they produce a different rank.
func (s *SnapshotStore) PutIfAbsent(ctx context.Context, companyID int64, month domain.Month, finalRank int) error {
	query := `
		INSERT INTO rank_snapshots (company_id, year_month, final_rank)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, year_month) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query, companyID, month.String(), finalRank)
	if err != nil {
		return fmt.Errorf("put snapshot for company %d %s: %w", companyID, month, err)
	}
	return nil
}
