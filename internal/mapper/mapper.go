// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/mike-goetz/gerrit-charts/internal/entities"
	"github.com/mike-goetz/gerrit-charts/internal/transport/http/dto"
)

// MergeFilter applies a partial filter update onto the current filter.
// Absent fields keep their current value; the caller validates the result.
func MergeFilter(current entities.Filter, req dto.FilterRequest) entities.Filter {
	merged := current
	if req.NumberOfDays != nil {
		merged.NumberOfDays = *req.NumberOfDays
	}
	if req.Projects != nil {
		merged.Projects = *req.Projects
	}
	if req.SummarizeCommits != nil {
		merged.SummarizeCommits = *req.SummarizeCommits
	}
	return merged
}

// ToSummary builds the dashboard headline response.
func ToSummary(commits, contributors int, filter entities.Filter) dto.Summary {
	return dto.Summary{
		Commits:      commits,
		Contributors: contributors,
		Filter:       filter,
	}
}
