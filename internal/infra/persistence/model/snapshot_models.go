// Package model contains the serialized snapshot shapes of the aggregates.
// The JSON field names are the storage format's wire contract and stay stable
// across backends; entities are mapped to and from these structs at the
// repository boundary.
package model

// HotspotModel is the stored form of a pollution observation point.
type HotspotModel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Pollution int    `json:"pollution"`
	Note      string `json:"note,omitempty"`
}

// EventModel is the stored form of a cleanup event and its roster.
type EventModel struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Date            string   `json:"date"`
	Description     string   `json:"description,omitempty"`
	PointsPerAttend int      `json:"pointsPerAttend"`
	Attendees       []string `json:"attendees"`
}

// ParticipantModel is the stored form of a ledger entry.
type ParticipantModel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// RewardModel is the stored form of a catalog item.
type RewardModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// TrendPointModel is the stored form of one day in the trend window.
type TrendPointModel struct {
	Date     string `json:"date"`
	Bags     int    `json:"bags"`
	Rainfall int    `json:"rainfall"`
}

// AlertStateModel bundles the weather alert flags with the trend history;
// the two always persist together under one key.
type AlertStateModel struct {
	BadWeatherRisk bool              `json:"badWeatherRisk"`
	WeatherNote    string            `json:"weatherNote"`
	TrashHistory   []TrendPointModel `json:"trashHistory"`
}
