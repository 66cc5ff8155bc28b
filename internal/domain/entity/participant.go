package entity

// Participant is a volunteer accumulating points. The id is chosen by the
// organizer (student codes like "sv01"), not generated, and must be unique
// within the ledger.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}
