package gerrit

import (
	"sort"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// Contributors returns the leaderboard over the filtered changes: +1
// commit per owned change, +1 review per approved change unless the owner
// approved their own (self-review exclusion). Rows are ranked by
// commits+reviews descending and carry the team name resolved through the
// directory.
func (s *Service) Contributors() []entities.ContributorEntry {
	s.mu.RLock()
	entries := s.tally()
	s.mu.RUnlock()

	for i := range entries {
		if team, ok := s.directory.TeamOf(entries[i].Person); ok {
			entries[i].TeamName = team.Name
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total() > entries[j].Total()
	})
	return entries
}

// ContributorCount returns the number of distinct contributors in scope.
func (s *Service) ContributorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tally())
}

// tally accumulates per-username commit and review credit over the
// filtered changes, in first-credit order. Callers must hold at least the
// read lock.
func (s *Service) tally() []entities.ContributorEntry {
	index := make(map[string]int)
	var entries []entities.ContributorEntry

	credit := func(p entities.Person) *entities.ContributorEntry {
		i, ok := index[p.Username]
		if !ok {
			i = len(entries)
			index[p.Username] = i
			entries = append(entries, entities.ContributorEntry{Person: p})
		}
		return &entries[i]
	}

	for _, c := range s.filtered {
		credit(c.Owner).Commits++
		if c.CodeReview != nil && !c.SelfReviewed() {
			credit(*c.CodeReview).Reviews++
		}
	}
	return entries
}
