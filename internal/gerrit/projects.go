package gerrit

import (
	"sort"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// Projects reports per-project commit and contributor counts, most active
// project first. It runs over the date-only scoped list: a project stays
// visible in its own report even while the allow-list excludes it from the
// person and team views.
func (s *Service) Projects() []entities.ProjectEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type group struct {
		commits      int
		contributors map[string]bool
	}
	groups := make(map[string]*group)
	var order []string

	for _, c := range s.dateScoped {
		g, ok := groups[c.Project]
		if !ok {
			g = &group{contributors: make(map[string]bool)}
			groups[c.Project] = g
			order = append(order, c.Project)
		}
		g.commits++
		if c.Owner.Username != "" {
			g.contributors[c.Owner.Username] = true
		}
		if reviewer := c.Reviewer(); reviewer != "" && !c.SelfReviewed() {
			g.contributors[reviewer] = true
		}
	}

	entries := make([]entities.ProjectEntry, 0, len(order))
	for _, project := range order {
		g := groups[project]
		entries = append(entries, entities.ProjectEntry{
			Project:      project,
			Commits:      g.commits,
			Contributors: len(g.contributors),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Commits > entries[j].Commits
	})
	return entries
}
