package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// Reviewer columns come back NULL for unapproved changes; the join keeps
// the change, the scan keeps CodeReview nil. Ordering by submission time
// descending is part of the source contract.
const changesQuery = `
SELECT c.id, c.project, c.branch, c.change_id, c.status,
       o.username, o.name, o.end_date,
       s.username, s.name, s.end_date,
       r.username, r.name, r.end_date,
       c.created, c.updated, c.submitted,
       c.insertions, c.deletions, c.unresolved_comments
FROM changes c
JOIN persons o ON o.username = c.owner_username
JOIN persons s ON s.username = c.submitter_username
LEFT JOIN persons r ON r.username = c.reviewer_username
ORDER BY c.submitted DESC`

// Changes fetches the full normalized change list.
func (p *Postgres) Changes(ctx context.Context) ([]entities.Change, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	rows, err := p.db.Query(ctx, changesQuery)
	if err != nil {
		return nil, fmt.Errorf("query changes: %w", err)
	}
	defer rows.Close()

	var changes []entities.Change
	for rows.Next() {
		var (
			c                      entities.Change
			ownerEnd, submitterEnd *time.Time
			revUsername, revName   *string
			revEnd                 *time.Time
		)
		if err := rows.Scan(
			&c.ID, &c.Project, &c.Branch, &c.ChangeID, &c.Status,
			&c.Owner.Username, &c.Owner.Name, &ownerEnd,
			&c.Submitter.Username, &c.Submitter.Name, &submitterEnd,
			&revUsername, &revName, &revEnd,
			&c.Created, &c.Updated, &c.Submitted,
			&c.Insertions, &c.Deletions, &c.UnresolvedComments,
		); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		c.Owner.EndDate = ownerEnd
		c.Submitter.EndDate = submitterEnd
		if revUsername != nil {
			reviewer := entities.Person{Username: *revUsername, EndDate: revEnd}
			if revName != nil {
				reviewer.Name = *revName
			}
			c.CodeReview = &reviewer
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate changes: %w", err)
	}

	p.log.Infow("changes loaded", "count", len(changes))
	return changes, nil
}
