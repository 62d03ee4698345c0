// Package dto contains transport request and response shapes.
package dto

import "github.com/mike-goetz/gerrit-charts/internal/entities"

// Error codes returned in ErrorResponse.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidFilter   = "INVALID_FILTER"
	CodeNotFound        = "NOT_FOUND"
	CodeEmptyCohort     = "EMPTY_COHORT"
	CodeInternal        = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FilterRequest is a partial filter update: absent fields keep their
// current value.
type FilterRequest struct {
	NumberOfDays     *int      `json:"number_of_days,omitempty"`
	Projects         *[]string `json:"projects,omitempty"`
	SummarizeCommits *bool     `json:"summarize_commits,omitempty"`
}

// Summary is the dashboard headline response.
type Summary struct {
	Commits      int             `json:"commits"`
	Contributors int             `json:"contributors"`
	Filter       entities.Filter `json:"filter"`
}
