// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFilter signals an impossible filter state.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrMalformedTimestamp signals a raw change record whose timestamp
	// cannot be parsed; the whole ingestion is rejected.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrEmptyCohort signals a team-average request over zero active members.
	ErrEmptyCohort = errors.New("empty cohort")
	// ErrPersonNotFound is returned when a username is not known to the
	// directory.
	ErrPersonNotFound = errors.New("person not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
)
