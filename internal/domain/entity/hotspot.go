// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Hotspot is a tracked observation point along the canal with a pollution
// severity score on the 0-100 scale.
type Hotspot struct {
	ID             string `json:"id"`              // Opaque generated identifier, stable for the lifetime of the hotspot.
	Name           string `json:"name"`            // Display name, e.g. "Cầu số 1".
	PollutionLevel int    `json:"pollution_level"` // Current pollution level, always clamped to [0,100].
	Note           string `json:"note"`            // Optional free-form observation note.
}

// Severity returns the severity band of the hotspot's current level.
func (h *Hotspot) Severity() Severity {
	return ClassifyLevel(h.PollutionLevel)
}
