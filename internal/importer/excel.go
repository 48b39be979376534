// Package importer parses the curated research workbook: the cleaned
// company list used for tracking, and the competitor/investor sheets
// served by the competitor endpoints.
package importer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mentionwatch/internal/config"
	"mentionwatch/internal/domain"
)

// Column indices of the competitor sheet (0-based).
const (
	colRank         = 0
	colCompany      = 1
	colCoreBusiness = 2
	colIndustry     = 3
	colCompetitors  = 4
)

// Parser extracts company names from an uploaded workbook.
type Parser struct {
	sheet string
}

func NewParser(cfg config.SpreadsheetConfig) *Parser {
	return &Parser{sheet: cfg.CompaniesSheet}
}

// Companies reads the cleaned company names from the first column of
// the configured sheet, skipping the header row and deduplicating
// while preserving order.
func (p *Parser) Companies(data []byte) ([]domain.Company, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(p.sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", p.sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var companies []domain.Company
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		companies = append(companies, domain.Company{
			Name:        name,
			CleanedName: name,
			Status:      domain.StatusActive,
		})
	}

	return companies, nil
}

// Directory reads the on-disk research workbook that backs the
// competitor endpoints. The workbook is reopened per call; it is a
// small, manually maintained file and callers are read-only.
type Directory struct {
	path             string
	competitorsSheet string
	investorsSheet   string
}

func NewDirectory(cfg config.SpreadsheetConfig) *Directory {
	return &Directory{
		path:             cfg.Path,
		competitorsSheet: cfg.CompetitorsSheet,
		investorsSheet:   cfg.InvestorsSheet,
	}
}

func (d *Directory) Profiles() ([]domain.CompetitorProfile, error) {
	f, err := excelize.OpenFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(d.competitorsSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", d.competitorsSheet, err)
	}

	var profiles []domain.CompetitorProfile
	for i, row := range rows {
		if i == 0 || len(row) <= colCompany {
			continue
		}

		company := strings.TrimSpace(cell(row, colCompany))
		if company == "" {
			continue
		}

		rank, _ := strconv.Atoi(strings.TrimSpace(cell(row, colRank)))

		profile := domain.CompetitorProfile{
			Rank:         rank,
			Company:      company,
			CoreBusiness: strings.TrimSpace(cell(row, colCoreBusiness)),
			Industry:     strings.TrimSpace(cell(row, colIndustry)),
		}

		for _, name := range strings.Split(cell(row, colCompetitors), ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			profile.Competitors = append(profile.Competitors, domain.Competitor{Name: name})
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// InvestorNames maps normalized company names to their investor
// listing. Columns are located by header name since the sheet's layout
// has shifted between workbook revisions.
func (d *Directory) InvestorNames() (map[string]string, error) {
	f, err := excelize.OpenFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(d.investorsSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", d.investorsSheet, err)
	}
	if len(rows) == 0 {
		return map[string]string{}, nil
	}

	companyCol, investorCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(strings.ToLower(header)) {
		case "company":
			companyCol = i
		case "investor names":
			investorCol = i
		}
	}
	if companyCol < 0 || investorCol < 0 {
		return nil, fmt.Errorf("sheet %q: missing Company or Investor Names column", d.investorsSheet)
	}

	investors := make(map[string]string)
	for _, row := range rows[1:] {
		company := strings.TrimSpace(cell(row, companyCol))
		if company == "" {
			continue
		}
		key := strings.ToLower(strings.Join(strings.Fields(company), " "))
		investors[key] = strings.TrimSpace(cell(row, investorCol))
	}

	return investors, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
