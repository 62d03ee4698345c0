// Package entities contains core business entities.
package entities

// DateLayout is the day-bucket key format used by every report.
const DateLayout = "2006-01-02"

// ProjectEntry is one row of the project report.
type ProjectEntry struct {
	Project      string `json:"project"`
	Commits      int    `json:"commits"`
	Contributors int    `json:"contributors"`
}

// ContributorEntry is one row of the contributor leaderboard.
type ContributorEntry struct {
	Person   Person `json:"person"`
	TeamName string `json:"team_name,omitempty"`
	Commits  int    `json:"commits"`
	Reviews  int    `json:"reviews"`
}

// Total is the leaderboard ranking key.
func (e ContributorEntry) Total() int {
	return e.Commits + e.Reviews
}

// ContributionDay is one bucket of a person's daily activity.
type ContributionDay struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
	Reviews int    `json:"reviews"`
}

// PersonAnalytics aggregates one person's activity over the filter window,
// with averages over the person's team for comparison.
type PersonAnalytics struct {
	Person         Person            `json:"person"`
	Days           []ContributionDay `json:"days"`
	Commits        int               `json:"commits"`
	Reviews        int               `json:"reviews"`
	Contributions  int               `json:"contributions"`
	AvgTeamCommits int               `json:"avg_team_commits"`
	AvgTeamReviews int               `json:"avg_team_reviews"`
}

// SeriesPoint is one point of a per-person commit time series. Count is a
// daily total, or a running total in summarize mode.
type SeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PersonSeries is one person's commit time series in chronological order.
type PersonSeries struct {
	Person Person        `json:"person"`
	Points []SeriesPoint `json:"points"`
}

// BusiestDay names the date with the most submitted changes in scope.
type BusiestDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
