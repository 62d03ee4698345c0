// Package file implements the raw-data source against JSON asset files.
package file

// rawPerson mirrors a Gerrit account JSON object.
type rawPerson struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	EndDate  string `json:"endDate,omitempty"`
}

// rawApproval carries the account that approved a label, when any did.
type rawApproval struct {
	Approved *rawPerson `json:"approved,omitempty"`
}

// rawLabels collapses the Gerrit label map to the single label the engine
// interprets.
type rawLabels struct {
	CodeReview rawApproval `json:"Code-Review"`
}

// rawChange mirrors one record of the Gerrit change export. All three
// timestamps use the "YYYY-MM-DD HH:mm:ss.SSS" text format.
type rawChange struct {
	ID                 int       `json:"id"`
	Project            string    `json:"project"`
	Branch             string    `json:"branch"`
	ChangeID           string    `json:"change_id"`
	Status             string    `json:"status"`
	Owner              rawPerson `json:"owner"`
	Submitter          rawPerson `json:"submitter"`
	Labels             rawLabels `json:"labels"`
	Created            string    `json:"created"`
	Updated            string    `json:"updated"`
	Submitted          string    `json:"submitted"`
	Insertions         int       `json:"insertions"`
	Deletions          int       `json:"deletions"`
	UnresolvedComments int       `json:"unresolved_comment_count"`
}

// rawTeam mirrors one record of the team master data export.
type rawTeam struct {
	Name    string      `json:"name"`
	Members []rawPerson `json:"members"`
}
