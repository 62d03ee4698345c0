package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

const teamsQuery = `
SELECT t.name, p.username, p.name, p.end_date
FROM teams t
JOIN team_members tm ON tm.team_name = t.name
JOIN persons p ON p.username = tm.username
ORDER BY t.name, p.username`

// Teams fetches the team master data with members.
func (p *Postgres) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	rows, err := p.db.Query(ctx, teamsQuery)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	byName := make(map[string]*entities.Team)
	var order []string
	for rows.Next() {
		var (
			teamName string
			member   entities.Person
			endDate  *time.Time
		)
		if err := rows.Scan(&teamName, &member.Username, &member.Name, &endDate); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		member.EndDate = endDate

		team, ok := byName[teamName]
		if !ok {
			team = &entities.Team{Name: teamName}
			byName[teamName] = team
			order = append(order, teamName)
		}
		team.Members = append(team.Members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	teams := make([]entities.Team, 0, len(order))
	for _, name := range order {
		teams = append(teams, *byName[name])
	}
	p.log.Infow("teams loaded", "count", len(teams))
	return teams, nil
}
