// Package directory resolves team membership from the team master data.
// It owns no contribution data; the engine treats it as a pure lookup.
package directory

import (
	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// Service answers team-membership questions against a static team list
// loaded at startup.
type Service struct {
	teams []entities.Team
}

// New creates a directory over the loaded team master data.
func New(teams []entities.Team) *Service {
	return &Service{teams: teams}
}

// TeamOf returns the first team the person belongs to.
func (s *Service) TeamOf(person entities.Person) (entities.Team, bool) {
	for _, t := range s.teams {
		if t.HasMember(person.Username) {
			return t, true
		}
	}
	return entities.Team{}, false
}

// Person looks up a known person by username, together with their team.
func (s *Service) Person(username string) (entities.Person, entities.Team, bool) {
	for _, t := range s.teams {
		for _, m := range t.Members {
			if m.Username == username {
				return m, t, true
			}
		}
	}
	return entities.Person{}, entities.Team{}, false
}

// Team returns a team by name.
func (s *Service) Team(name string) (entities.Team, bool) {
	for _, t := range s.teams {
		if t.Name == name {
			return t, true
		}
	}
	return entities.Team{}, false
}

// Teams projects all known teams onto a contributor set: every team is
// returned, with members restricted to those present among the
// contributors.
func (s *Service) Teams(contributors []entities.ContributorEntry) []entities.Team {
	present := make(map[string]bool, len(contributors))
	for _, c := range contributors {
		present[c.Person.Username] = true
	}

	teams := make([]entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		projected := entities.Team{Name: t.Name}
		for _, m := range t.Members {
			if present[m.Username] {
				projected.Members = append(projected.Members, m)
			}
		}
		teams = append(teams, projected)
	}
	return teams
}
