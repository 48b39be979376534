package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mentionwatch/internal/domain"
)

// CompetitorService overlays the curated competitor sheet with live
// tracking data: competitors that are themselves tracked companies are
// flagged as overlaps and annotated with their investors, and listings
// backed by a famous VC are highlighted.
type CompetitorService struct {
	source    CompetitorSource
	companies CompanyStore
	vcMatcher VCMatcher
	logger    *slog.Logger
}

func NewCompetitorService(
	source CompetitorSource,
	companies CompanyStore,
	vcMatcher VCMatcher,
	logger *slog.Logger,
) *CompetitorService {
	return &CompetitorService{
		source:    source,
		companies: companies,
		vcMatcher: vcMatcher,
		logger:    logger.With("component", "competitors"),
	}
}

func (s *CompetitorService) Profiles(ctx context.Context) ([]domain.CompetitorProfile, error) {
	profiles, err := s.source.Profiles()
	if err != nil {
		return nil, fmt.Errorf("load competitor profiles: %w", err)
	}

	investors, err := s.source.InvestorNames()
	if err != nil {
		return nil, fmt.Errorf("load investor names: %w", err)
	}

	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	tracked := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		tracked[normalizeName(c.CleanedName)] = struct{}{}
	}

	for pi := range profiles {
		for ci := range profiles[pi].Competitors {
			comp := &profiles[pi].Competitors[ci]
			key := normalizeName(comp.Name)
			if _, ok := tracked[key]; !ok {
				continue
			}
			comp.Overlap = true
			comp.InvestorNames = investors[key]
			if s.vcMatcher != nil && comp.InvestorNames != "" {
				comp.FamousVC = s.vcMatcher.Match(comp.InvestorNames)
			}
		}
	}

	return profiles, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
