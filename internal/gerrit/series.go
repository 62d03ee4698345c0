package gerrit

import (
	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// TeamData builds one commit time series per team member over the filter
// window, in member order.
func (s *Service) TeamData(team entities.Team) []entities.PersonSeries {
	return s.Series(team.Members)
}

// Series builds one commit time series per cohort member. Only owned
// changes count; review activity is excluded from this view. An empty
// cohort defaults to all current contributors. In summarize mode each
// series is the running total in date order, otherwise the raw daily
// counts.
func (s *Service) Series(cohort []entities.Person) []entities.PersonSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(cohort) == 0 {
		for _, e := range s.tally() {
			cohort = append(cohort, e.Person)
		}
	}

	days, index := s.buckets()
	series := make([]entities.PersonSeries, 0, len(cohort))
	byUsername := make(map[string]int, len(cohort))
	for _, person := range cohort {
		points := make([]entities.SeriesPoint, len(days))
		for i, d := range days {
			points[i] = entities.SeriesPoint{Date: d}
		}
		byUsername[person.Username] = len(series)
		series = append(series, entities.PersonSeries{Person: person, Points: points})
	}

	for _, c := range s.filtered {
		i, ok := byUsername[c.Owner.Username]
		if !ok {
			continue
		}
		if j, ok := index[c.Submitted.Format(entities.DateLayout)]; ok {
			series[i].Points[j].Count++
		}
	}

	if s.filter.SummarizeCommits {
		for i := range series {
			running := 0
			for j := range series[i].Points {
				running += series[i].Points[j].Count
				series[i].Points[j].Count = running
			}
		}
	}
	return series
}
