package entity

// TrendWindowSize is the fixed length of the rolling trend window. Appending
// beyond it evicts the oldest entries.
const TrendWindowSize = 15

// TrendPoint is one day of collection metrics in the rolling trend window.
type TrendPoint struct {
	Date     string `json:"date"`     // Short date label in "MM-DD" form, matching the chart axis.
	Bags     int    `json:"bags"`     // Number of trash bags collected.
	Rainfall int    `json:"rainfall"` // Rainfall in mm; 0 means no rain that day.
}

// WeatherAlert is the manually toggled bad-weather warning shown across the
// system. It is not derived from the trend log.
type WeatherAlert struct {
	BadWeatherRisk bool   `json:"bad_weather_risk"`
	Note           string `json:"note"`
}
