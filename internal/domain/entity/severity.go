package entity

// Severity buckets the 0-100 pollution scale into the four bands used by the
// monitoring legend. Higher is worse.
type Severity string

const (
	SeverityGood    Severity = "good"    // 0-20
	SeverityCaution Severity = "caution" // 21-50
	SeverityBad     Severity = "bad"     // 51-80
	SeverityHazard  Severity = "hazard"  // 81-100
)

// ClassifyLevel maps a pollution level to its severity band.
// The boundaries are inclusive: 20 is still good, 21 needs attention.
func ClassifyLevel(level int) Severity {
	switch {
	case level <= 20:
		return SeverityGood
	case level <= 50:
		return SeverityCaution
	case level <= 80:
		return SeverityBad
	default:
		return SeverityHazard
	}
}

// ClampLevel forces a pollution level into the valid [0,100] range.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}

	return level
}

// Label returns the Vietnamese display label for the severity band.
func (s Severity) Label() string {
	switch s {
	case SeverityGood:
		return "Tốt"
	case SeverityCaution:
		return "Cần chú ý"
	case SeverityBad:
		return "Xấu"
	case SeverityHazard:
		return "Nguy hại"
	default:
		return string(s)
	}
}

// Color returns the hex color used to render the severity band.
func (s Severity) Color() string {
	switch s {
	case SeverityGood:
		return "#22c55e"
	case SeverityCaution:
		return "#eab308"
	case SeverityBad:
		return "#f97316"
	case SeverityHazard:
		return "#dc2626"
	default:
		return "#6b7280"
	}
}
