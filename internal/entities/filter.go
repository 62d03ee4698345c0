// Package entities contains core business entities.
package entities

import "fmt"

// Filter scopes every derived view. It is an immutable value: updates
// replace the whole filter, partial updates are read-merge-write at the
// caller.
type Filter struct {
	NumberOfDays     int      `json:"number_of_days"`
	Projects         []string `json:"projects"`
	SummarizeCommits bool     `json:"summarize_commits"`
}

// Validate rejects impossible filter states. A zero-day window is legal
// and yields an empty scope.
func (f Filter) Validate() error {
	if f.NumberOfDays < 0 {
		return fmt.Errorf("%w: number_of_days must not be negative", ErrInvalidFilter)
	}
	return nil
}
