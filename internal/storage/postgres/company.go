package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mentionwatch/internal/domain"
)

type CompanyStore struct {
	db *sqlx.DB
}

func NewCompanyStore(db *sqlx.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func (s *CompanyStore) ListActive(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT id, name, cleaned_name, status, created_at, updated_at
		FROM companies
		WHERE status = $1
		ORDER BY id`

	var companies []domain.Company
	if err := s.db.SelectContext(ctx, &companies, query, domain.StatusActive); err != nil {
		return nil, fmt.Errorf("list active companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT id, name, cleaned_name, status, created_at, updated_at
		FROM companies
		ORDER BY id`

	var companies []domain.Company
	if err := s.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyStore) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `
		SELECT id, name, cleaned_name, status, created_at, updated_at
		FROM companies
		WHERE id = $1`

	var company domain.Company
	err := s.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get company %d: %w", id, err)
	}
	return &company, nil
}

// CreateBatch inserts companies that are not yet tracked, keyed by
// cleaned name, and reports how many rows were actually inserted.
func (s *CompanyStore) CreateBatch(ctx context.Context, companies []domain.Company) (int, error) {
	if len(companies) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO companies (name, cleaned_name, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (cleaned_name) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	inserted := 0
	for _, c := range companies {
		status := c.Status
		if status == "" {
			status = domain.StatusActive
		}
		res, err := exec.ExecContext(ctx, query, c.Name, c.CleanedName, status)
		if err != nil {
			return inserted, fmt.Errorf("insert company %q: %w", c.CleanedName, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	return inserted, nil
}

func (s *CompanyStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE companies
		SET status = $2, updated_at = now()
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update company %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (s *CompanyStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
