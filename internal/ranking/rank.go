// Package ranking implements the comprehensive ranking core: dense
// per-source ranking of monthly mention counts, combination of the two
// source ranks into a final rank, and month-over-month delta computation.
package ranking

import (
	"sort"

	"mentionwatch/internal/domain"
)

// SourceRanks ranks every company of one source's monthly observations.
//
// Companies with a present mention count are sorted by count descending
// and assigned dense ranks starting at 1: equal counts share a rank and
// the next distinct count continues at the previous rank plus one.
// Every company with an absent observation receives the single rank K+1,
// where K is the number of distinct present counts. With no present
// observations at all K is 0, so everyone ties at rank 1.
func SourceRanks(observations []domain.MentionObservation) map[int64]int {
	ranks := make(map[int64]int, len(observations))

	var present []domain.MentionObservation
	var absent []int64
	for _, obs := range observations {
		if obs.Present() {
			present = append(present, obs)
		} else {
			absent = append(absent, obs.CompanyID)
		}
	}

	sort.Slice(present, func(i, j int) bool {
		if *present[i].Count != *present[j].Count {
			return *present[i].Count > *present[j].Count
		}
		return present[i].CompanyID < present[j].CompanyID
	})

	distinct := 0
	prevCount := 0
	for _, obs := range present {
		if distinct == 0 || *obs.Count != prevCount {
			distinct++
			prevCount = *obs.Count
		}
		ranks[obs.CompanyID] = distinct
	}

	for _, id := range absent {
		ranks[id] = distinct + 1
	}

	return ranks
}

// Combine merges the two per-source rank maps into combined rankings for
// the given month. Both maps cover the same company universe, so the
// combined score is always the plain sum of the two ranks. The final
// rank is the dense rank of the combined score ascending. Entries come
// back sorted by final rank, ties by company id.
func Combine(month domain.Month, gdelt, newsapi map[int64]int) []domain.CombinedRanking {
	combined := make([]domain.CombinedRanking, 0, len(gdelt))
	for id, gr := range gdelt {
		nr, ok := newsapi[id]
		if !ok {
			// Per-source ranking is total over the company universe,
			// so this only happens on mismatched inputs.
			nr = len(newsapi) + 1
		}
		combined = append(combined, domain.CombinedRanking{
			CompanyID:     id,
			Month:         month,
			CombinedScore: gr + nr,
		})
	}
	for id, nr := range newsapi {
		if _, ok := gdelt[id]; !ok {
			combined = append(combined, domain.CombinedRanking{
				CompanyID:     id,
				Month:         month,
				CombinedScore: len(gdelt) + 1 + nr,
			})
		}
	}

	sort.Slice(combined, func(i, j int) bool {
		if combined[i].CombinedScore != combined[j].CombinedScore {
			return combined[i].CombinedScore < combined[j].CombinedScore
		}
		return combined[i].CompanyID < combined[j].CompanyID
	})

	rank := 0
	prevScore := 0
	for i := range combined {
		if rank == 0 || combined[i].CombinedScore != prevScore {
			rank++
			prevScore = combined[i].CombinedScore
		}
		combined[i].FinalRank = rank
	}

	return combined
}

// Delta compares a company's current final rank against its previous
// month's snapshot. With no snapshot both results are nil: a company new
// to the ranking must not be reported as unchanged. Otherwise the change
// is previous minus current, so a positive value means the rank improved.
func Delta(previous *int, current int) (change *int, direction *domain.Direction) {
	if previous == nil {
		return nil, nil
	}

	c := *previous - current
	d := domain.DirectionSame
	switch {
	case c > 0:
		d = domain.DirectionUp
	case c < 0:
		d = domain.DirectionDown
	}
	return &c, &d
}
