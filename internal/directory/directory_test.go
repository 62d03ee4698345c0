package directory

import (
	"testing"

	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"github.com/stretchr/testify/require"
)

func testTeams() []entities.Team {
	return []entities.Team{
		{Name: "core", Members: []entities.Person{
			{Username: "alice", Name: "Alice"},
			{Username: "bob", Name: "Bob"},
		}},
		{Name: "tools", Members: []entities.Person{
			{Username: "carol", Name: "Carol"},
		}},
	}
}

func TestTeamOf(t *testing.T) {
	dir := New(testTeams())

	team, ok := dir.TeamOf(entities.Person{Username: "carol"})
	require.True(t, ok)
	require.Equal(t, "tools", team.Name)

	_, ok = dir.TeamOf(entities.Person{Username: "nobody"})
	require.False(t, ok)
}

func TestPersonLookup(t *testing.T) {
	dir := New(testTeams())

	person, team, ok := dir.Person("bob")
	require.True(t, ok)
	require.Equal(t, "Bob", person.Name)
	require.Equal(t, "core", team.Name)

	_, _, ok = dir.Person("nobody")
	require.False(t, ok)
}

func TestTeamsProjection(t *testing.T) {
	dir := New(testTeams())

	contributors := []entities.ContributorEntry{
		{Person: entities.Person{Username: "alice"}, Commits: 3},
		{Person: entities.Person{Username: "carol"}, Reviews: 1},
		{Person: entities.Person{Username: "stranger"}, Commits: 1},
	}

	teams := dir.Teams(contributors)
	require.Len(t, teams, 2)
	require.Equal(t, "core", teams[0].Name)
	require.Len(t, teams[0].Members, 1)
	require.Equal(t, "alice", teams[0].Members[0].Username)
	require.Len(t, teams[1].Members, 1)
	require.Equal(t, "carol", teams[1].Members[0].Username)
}
