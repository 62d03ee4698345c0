package file

import (
	"fmt"
	"sort"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"
)

// timestampLayout is the fixed textual format of the Gerrit export.
const timestampLayout = "2006-01-02 15:04:05.000"

// normalizeChanges turns raw export records into canonical changes sorted
// by submission time descending. Any unparsable timestamp rejects the
// whole ingestion: a record without a valid date cannot be bucketed, and
// silently dropping it would skew every report.
func normalizeChanges(raw []rawChange) ([]entities.Change, error) {
	changes := make([]entities.Change, 0, len(raw))
	for i, r := range raw {
		c, err := normalizeChange(r)
		if err != nil {
			return nil, fmt.Errorf("change %d (change_id %s): %w", i, r.ChangeID, err)
		}
		changes = append(changes, c)
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Submitted.After(changes[j].Submitted)
	})
	return changes, nil
}

func normalizeChange(r rawChange) (entities.Change, error) {
	created, err := parseTimestamp("created", r.Created)
	if err != nil {
		return entities.Change{}, err
	}
	updated, err := parseTimestamp("updated", r.Updated)
	if err != nil {
		return entities.Change{}, err
	}
	submitted, err := parseTimestamp("submitted", r.Submitted)
	if err != nil {
		return entities.Change{}, err
	}

	c := entities.Change{
		ID:                 r.ID,
		Project:            r.Project,
		Branch:             r.Branch,
		ChangeID:           r.ChangeID,
		Status:             r.Status,
		Owner:              normalizePerson(r.Owner),
		Submitter:          normalizePerson(r.Submitter),
		Created:            created,
		Updated:            updated,
		Submitted:          submitted,
		Insertions:         r.Insertions,
		Deletions:          r.Deletions,
		UnresolvedComments: r.UnresolvedComments,
	}

	// The Code-Review approver is the canonical reviewer. An unapproved
	// change stays unreviewed; the submitter is never used as a fallback.
	if a := r.Labels.CodeReview.Approved; a != nil {
		reviewer := normalizePerson(*a)
		c.CodeReview = &reviewer
	}
	return c, nil
}

func normalizePerson(r rawPerson) entities.Person {
	p := entities.Person{Username: r.Username, Name: r.Name}
	if r.EndDate != "" {
		if end, err := time.Parse(entities.DateLayout, r.EndDate); err == nil {
			p.EndDate = &end
		}
	}
	return p
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", entities.ErrMalformedTimestamp, field, value)
	}
	return t, nil
}
