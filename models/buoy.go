package models

import "time"

// Buoy is one simulated platform with its own reading series.
type Buoy struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   Location   `json:"location"`
	Deployment Deployment `json:"deployment"`
	Readings   []Reading  `json:"readings"`
}

// Location is a WGS-84 position rounded to 4 decimals.
type Location struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
}

// Deployment records when, how deep and on what the buoy was installed.
type Deployment struct {
	Date     string `json:"date"`  // YYYY-MM-DD
	Depth    string `json:"depth"` // e.g. "42m"
	Platform string `json:"platform"`
}

// NewDeployment builds a Deployment from a date, a depth in whole metres
// and a platform name.
func NewDeployment(date time.Time, depthM int, platform string) Deployment {
	return Deployment{
		Date:     date.UTC().Format("2006-01-02"),
		Depth:    itoa(depthM) + "m",
		Platform: platform,
	}
}
