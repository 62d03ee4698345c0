package file

import (
	"testing"
	"time"

	"github.com/mike-goetz/gerrit-charts/internal/entities"

	"github.com/stretchr/testify/require"
)

func rawChangeFixture() rawChange {
	return rawChange{
		ID:        1,
		Project:   "gerald/core",
		Branch:    "master",
		ChangeID:  "Iaaa111",
		Status:    "MERGED",
		Owner:     rawPerson{Username: "alice", Name: "Alice"},
		Submitter: rawPerson{Username: "carol", Name: "Carol"},
		Created:   "2023-01-01 09:00:00.000",
		Updated:   "2023-01-02 10:30:00.500",
		Submitted: "2023-01-02 10:30:00.500",
	}
}

func TestNormalizeChangeResolvesReviewerFromLabel(t *testing.T) {
	raw := rawChangeFixture()
	raw.Labels.CodeReview.Approved = &rawPerson{Username: "bob", Name: "Bob"}

	c, err := normalizeChange(raw)
	require.NoError(t, err)
	require.Equal(t, "alice", c.Owner.Username)
	require.NotNil(t, c.CodeReview)
	require.Equal(t, "bob", c.CodeReview.Username)
	require.Equal(t,
		time.Date(2023, 1, 2, 10, 30, 0, 500_000_000, time.UTC),
		c.Submitted,
	)
}

func TestNormalizeChangeWithoutApprovalHasNoReviewer(t *testing.T) {
	c, err := normalizeChange(rawChangeFixture())
	require.NoError(t, err)
	// the submitter is never used as a reviewer fallback
	require.Nil(t, c.CodeReview)
	require.Empty(t, c.Reviewer())
}

func TestNormalizeChangesRejectsMalformedTimestamp(t *testing.T) {
	good := rawChangeFixture()
	bad := rawChangeFixture()
	bad.ChangeID = "Ibad999"
	bad.Submitted = "02.01.2023 10:30"

	_, err := normalizeChanges([]rawChange{good, bad})
	require.ErrorIs(t, err, entities.ErrMalformedTimestamp)
	require.ErrorContains(t, err, "Ibad999")
}

func TestNormalizeChangesSortsBySubmittedDescending(t *testing.T) {
	older := rawChangeFixture()
	newer := rawChangeFixture()
	newer.ID = 2
	newer.Submitted = "2023-03-01 08:00:00.000"

	changes, err := normalizeChanges([]rawChange{older, newer})
	require.NoError(t, err)
	require.Equal(t, 2, changes[0].ID)
	require.Equal(t, 1, changes[1].ID)
}

func TestNormalizePersonEndDate(t *testing.T) {
	p := normalizePerson(rawPerson{Username: "dave", Name: "Dave", EndDate: "2022-11-30"})
	require.NotNil(t, p.EndDate)
	require.False(t, p.Active())

	active := normalizePerson(rawPerson{Username: "alice", Name: "Alice"})
	require.Nil(t, active.EndDate)
	require.True(t, active.Active())
}
