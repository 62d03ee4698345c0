// Package entities contains core business entities.
package entities

import "time"

// Change is a normalized code-review event. CodeReview is the approver
// recorded under the Code-Review label, nil when the change was never
// approved. Submitted is the authoritative timestamp for all date bucketing.
type Change struct {
	ID                 int
	Project            string
	Branch             string
	ChangeID           string
	Status             string
	Owner              Person
	Submitter          Person
	CodeReview         *Person
	Created            time.Time
	Updated            time.Time
	Submitted          time.Time
	Insertions         int
	Deletions          int
	UnresolvedComments int
}

// Reviewer returns the approving reviewer username, or "" when the change
// is unreviewed.
func (c Change) Reviewer() string {
	if c.CodeReview == nil {
		return ""
	}
	return c.CodeReview.Username
}

// SelfReviewed reports whether the owner approved their own change.
// Such approvals never earn review credit.
func (c Change) SelfReviewed() bool {
	return c.CodeReview != nil && c.CodeReview.Username == c.Owner.Username
}
