package service

import (
	"context"
	"fmt"
	"log/slog"
)

// ImportResult summarizes one spreadsheet import.
type ImportResult struct {
	Parsed   int `json:"parsed"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ImportService turns an uploaded workbook into tracked companies.
// Already-tracked companies (by cleaned name) are left untouched.
type ImportService struct {
	parser    SpreadsheetParser
	companies CompanyStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewImportService(
	parser SpreadsheetParser,
	companies CompanyStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *ImportService {
	return &ImportService{
		parser:    parser,
		companies: companies,
		txManager: txManager,
		logger:    logger.With("component", "importer"),
	}
}

func (s *ImportService) ImportCompanies(ctx context.Context, data []byte) (*ImportResult, error) {
	companies, err := s.parser.Companies(data)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}

	inserted := 0
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		n, err := s.companies.CreateBatch(txCtx, companies)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert companies: %w", err)
	}

	result := &ImportResult{
		Parsed:   len(companies),
		Inserted: inserted,
		Skipped:  len(companies) - inserted,
	}

	s.logger.Info("imported companies",
		"parsed", result.Parsed,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)

	return result, nil
}
