// Package entities contains core business entities.
package entities

import "time"

// Person identifies a Gerrit account. Username is the unique key;
// it is the only field aggregation logic compares on.
type Person struct {
	Username string     `json:"username"`
	Name     string     `json:"name"`
	EndDate  *time.Time `json:"end_date,omitempty"`
}

// Active reports whether the person is still a team member.
func (p Person) Active() bool {
	return p.EndDate == nil
}
