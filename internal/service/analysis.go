package service

import (
	"context"
	"fmt"
	"sort"

	"mentionwatch/internal/domain"
)

// momCapPercent stands in for an undefined growth rate when a company
// had zero mentions last month and a positive count this month.
const momCapPercent = 999.0

// MonthOverMonth compares each active company's mention count for one
// source against the previous month. Companies without a stored row
// count as zero here; the comparison is about volume trend, not the
// ranking's absent semantics.
func (s *RankingService) MonthOverMonth(ctx context.Context, source domain.Source, month domain.Month) ([]domain.MoMEntry, error) {
	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	current, err := s.mentions.CountsForMonth(ctx, source, month)
	if err != nil {
		return nil, fmt.Errorf("current month counts: %w", err)
	}
	previous, err := s.mentions.CountsForMonth(ctx, source, month.Prev())
	if err != nil {
		return nil, fmt.Errorf("previous month counts: %w", err)
	}

	entries := make([]domain.MoMEntry, 0, len(companies))
	for _, company := range companies {
		cur := current[company.ID]
		prev := previous[company.ID]

		var change float64
		switch {
		case prev == 0 && cur == 0:
			change = 0
		case prev == 0:
			change = momCapPercent
		default:
			change = float64(cur-prev) / float64(prev) * 100
		}

		entries = append(entries, domain.MoMEntry{
			CompanyID:        company.ID,
			CompanyName:      company.CleanedName,
			CurrentMentions:  cur,
			PreviousMentions: prev,
			ChangePercent:    change,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CurrentMentions != entries[j].CurrentMentions {
			return entries[i].CurrentMentions > entries[j].CurrentMentions
		}
		return entries[i].CompanyID < entries[j].CompanyID
	})

	return entries, nil
}
