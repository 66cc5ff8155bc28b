package entity

// Event is a scheduled cleanup activity. Attendance is a set of participant
// ids; they are weak references into the participant ledger and are never
// validated against it here (stale ids are harmless and skipped on award).
type Event struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Date                string   `json:"date"` // Calendar date in ISO form, e.g. "2025-09-07".
	Description         string   `json:"description"`
	PointsPerAttendance int      `json:"points_per_attendance"` // Points credited to each attendee on award, never negative.
	Attendees           []string `json:"attendees"`
}

// HasAttendee reports whether the participant id is on the roster.
func (e *Event) HasAttendee(participantID string) bool {
	for _, id := range e.Attendees {
		if id == participantID {
			return true
		}
	}

	return false
}

// ToggleAttendee flips roster membership for the participant id. Adding keeps
// insertion order; toggling twice restores the original roster.
func (e *Event) ToggleAttendee(participantID string) {
	for i, id := range e.Attendees {
		if id == participantID {
			e.Attendees = append(e.Attendees[:i], e.Attendees[i+1:]...)

			return
		}
	}

	e.Attendees = append(e.Attendees, participantID)
}
