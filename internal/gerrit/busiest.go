package gerrit

import (
	"sort"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// BusiestDay returns the submission date with the most filtered changes.
// Ties go to the earliest date. The second return is false when no change
// is in scope.
func (s *Service) BusiestDay() (entities.BusiestDay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, c := range s.filtered {
		counts[c.Submitted.Format(entities.DateLayout)]++
	}
	if len(counts) == 0 {
		return entities.BusiestDay{}, false
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best := entities.BusiestDay{Date: dates[0], Count: counts[dates[0]]}
	for _, d := range dates[1:] {
		if counts[d] > best.Count {
			best = entities.BusiestDay{Date: d, Count: counts[d]}
		}
	}
	return best, true
}
