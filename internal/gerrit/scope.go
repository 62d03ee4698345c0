package gerrit

import (
	"strings"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// windowStart returns the first instant of the filter window: midnight of
// the day numberOfDays-1 days before asOf, so the window always spans
// numberOfDays calendar days ending today.
func windowStart(asOf time.Time, numberOfDays int) time.Time {
	day := asOf.AddDate(0, 0, -(numberOfDays - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// inDateScope applies only the time-window test. A zero-day window admits
// nothing; this is a legal empty scope, not an error.
func (s *Service) inDateScope(c entities.Change) bool {
	if s.filter.NumberOfDays <= 0 {
		return false
	}
	start := windowStart(s.asOf, s.filter.NumberOfDays)
	return !c.Submitted.Before(start) && !c.Submitted.After(s.asOf)
}

// inProjectScope applies the project allow-list. A single entry ending in
// "*" matches by prefix; any other list requires exact membership. An
// empty list matches nothing.
func (s *Service) inProjectScope(c entities.Change) bool {
	projects := s.filter.Projects
	if len(projects) == 1 && strings.HasSuffix(projects[0], "*") {
		return strings.HasPrefix(c.Project, strings.TrimSuffix(projects[0], "*"))
	}
	for _, p := range projects {
		if p == c.Project {
			return true
		}
	}
	return false
}
