package gerrit

import (
	"testing"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestProjectsReport(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour), reviewedBy("b")),
		change("c", "p1", day(-1)),
		change("a", "p2", day(-2), reviewedBy("a")),
	}
	s := newTestService(t, nil, changes, allProjects())

	report := s.Projects()
	require.Equal(t, []entities.ProjectEntry{
		{Project: "p1", Commits: 2, Contributors: 3},
		{Project: "p2", Commits: 1, Contributors: 1},
	}, report)
}

func TestProjectsReportIgnoresProjectFilter(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour)),
		change("b", "p2", day(-1)),
	}
	s := newTestService(t, nil, changes, entities.Filter{NumberOfDays: 30, Projects: []string{"p1"}})

	// p2 is filtered out of person and team views but stays in its own report
	require.Equal(t, 1, s.CommitCount())
	report := s.Projects()
	require.Len(t, report, 2)

	total := 0
	for _, entry := range report {
		total += entry.Commits
	}
	require.Equal(t, 2, total)
}

func TestProjectsReportStableOnTies(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour)),
		change("a", "p2", day(-1)),
	}
	s := newTestService(t, nil, changes, allProjects())

	report := s.Projects()
	require.Equal(t, "p1", report[0].Project)
	require.Equal(t, "p2", report[1].Project)
}

func TestContributorsLeaderboard(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour), reviewedBy("b")),
	}
	s := newTestService(t, nil, changes, entities.Filter{NumberOfDays: 365, Projects: []string{"p1"}})

	board := s.Contributors()
	require.Len(t, board, 2)
	require.Equal(t, "a", board[0].Person.Username)
	require.Equal(t, 1, board[0].Commits)
	require.Zero(t, board[0].Reviews)
	require.Equal(t, "b", board[1].Person.Username)
	require.Zero(t, board[1].Commits)
	require.Equal(t, 1, board[1].Reviews)

	report := s.Projects()
	require.Equal(t, []entities.ProjectEntry{{Project: "p1", Commits: 1, Contributors: 2}}, report)
}

func TestContributorsSelfReviewExcluded(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour), reviewedBy("a")),
	}
	s := newTestService(t, nil, changes, allProjects())

	board := s.Contributors()
	require.Len(t, board, 1)
	require.Equal(t, 1, board[0].Commits)
	require.Zero(t, board[0].Reviews)
}

func TestContributorsRankedByTotal(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour)),
		change("b", "p1", day(-1), reviewedBy("c")),
		change("b", "p1", day(-2), reviewedBy("c")),
		change("c", "p1", day(-3)),
	}
	s := newTestService(t, nil, changes, allProjects())

	board := s.Contributors()
	// c: 1 commit + 2 reviews; b: 2 commits; a: 1 commit
	require.Equal(t, "c", board[0].Person.Username)
	require.Equal(t, 3, board[0].Total())
	require.Equal(t, "b", board[1].Person.Username)
	require.Equal(t, "a", board[2].Person.Username)
}

func TestContributorsCarryTeamName(t *testing.T) {
	teams := []entities.Team{
		{Name: "core", Members: []entities.Person{person("a")}},
	}
	changes := []entities.Change{
		change("a", "p1", testNow.Add(-time.Hour)),
		change("b", "p1", day(-1)),
	}
	s := newTestService(t, teams, changes, allProjects())

	board := s.Contributors()
	require.Equal(t, "core", board[0].TeamName)
	require.Empty(t, board[1].TeamName)
}

func TestBusiestDay(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", day(-1)),
		change("b", "p1", day(-1).Add(time.Hour)),
		change("c", "p1", testNow.Add(-time.Hour)),
	}
	s := newTestService(t, nil, changes, allProjects())

	busiest, ok := s.BusiestDay()
	require.True(t, ok)
	require.Equal(t, entities.BusiestDay{Date: dayKey(-1), Count: 2}, busiest)
}

func TestBusiestDayTieGoesToEarliestDate(t *testing.T) {
	changes := []entities.Change{
		change("a", "p1", day(-3)),
		change("b", "p1", day(-1)),
	}
	s := newTestService(t, nil, changes, allProjects())

	busiest, ok := s.BusiestDay()
	require.True(t, ok)
	require.Equal(t, dayKey(-3), busiest.Date)
}

func TestBusiestDayEmptyScope(t *testing.T) {
	s := newTestService(t, nil, nil, allProjects())

	_, ok := s.BusiestDay()
	require.False(t, ok)
}
