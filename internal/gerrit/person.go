package gerrit

import (
	"fmt"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// PersonData aggregates one person's daily contributions over the filter
// window, plus averages across the given team for comparison. A person
// absent from the filtered data yields an all-zero series. A team with no
// active members cannot produce an average and is rejected.
func (s *Service) PersonData(person entities.Person, team entities.Team) (entities.PersonAnalytics, error) {
	teamSize := team.ActiveSize()
	if teamSize == 0 {
		return entities.PersonAnalytics{}, fmt.Errorf("%w: team %q has no active members", entities.ErrEmptyCohort, team.Name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	days, index := s.buckets()
	buckets := make([]entities.ContributionDay, len(days))
	for i, d := range days {
		buckets[i] = entities.ContributionDay{Date: d}
	}

	var commitsFromTeam, reviewsFromTeam int
	for _, c := range s.filtered {
		if team.HasMember(c.Owner.Username) {
			commitsFromTeam++
		}
		if reviewer := c.Reviewer(); reviewer != "" && team.HasMember(reviewer) {
			reviewsFromTeam++
		}

		owned := c.Owner.Username == person.Username
		reviewed := c.Reviewer() == person.Username
		if !owned && !reviewed {
			continue
		}
		i, ok := index[c.Submitted.Format(entities.DateLayout)]
		if !ok {
			continue
		}
		if owned {
			buckets[i].Commits++
		}
		// reviews of own changes earn no credit
		if reviewed && !owned {
			buckets[i].Reviews++
		}
	}

	result := entities.PersonAnalytics{
		Person:         person,
		Days:           buckets,
		AvgTeamCommits: commitsFromTeam / teamSize,
		AvgTeamReviews: reviewsFromTeam / teamSize,
	}
	for _, d := range buckets {
		result.Commits += d.Commits
		result.Reviews += d.Reviews
	}
	result.Contributions = result.Commits + result.Reviews
	return result, nil
}

// buckets builds the dense day-key range of the current window in
// chronological order, with an index from key to position. Callers must
// hold at least the read lock.
func (s *Service) buckets() ([]string, map[string]int) {
	if s.filter.NumberOfDays <= 0 {
		return nil, nil
	}

	days := make([]string, 0, s.filter.NumberOfDays)
	index := make(map[string]int, s.filter.NumberOfDays)
	end := time.Date(s.asOf.Year(), s.asOf.Month(), s.asOf.Day(), 0, 0, 0, 0, s.asOf.Location())
	for dt := windowStart(s.asOf, s.filter.NumberOfDays); !dt.After(end); dt = dt.AddDate(0, 0, 1) {
		key := dt.Format(entities.DateLayout)
		index[key] = len(days)
		days = append(days, key)
	}
	return days, index
}
