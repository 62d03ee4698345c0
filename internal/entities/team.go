// Package entities contains core business entities.
package entities

// Team aggregates members under a team name.
type Team struct {
	Name    string   `json:"name"`
	Members []Person `json:"members"`
}

// ActiveSize counts members without an end date.
func (t Team) ActiveSize() int {
	n := 0
	for _, m := range t.Members {
		if m.Active() {
			n++
		}
	}
	return n
}

// HasMember reports whether the username belongs to the team.
func (t Team) HasMember(username string) bool {
	for _, m := range t.Members {
		if m.Username == username {
			return true
		}
	}
	return false
}
