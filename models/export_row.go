package models

import "time"

// ExportRow is one reading flattened together with its buoy identity,
// the row shape used by tabular exports.
type ExportRow struct {
	BuoyID    string
	BuoyName  string
	Latitude  float64
	Longitude float64
	Reading   *Reading
}

// CSVHeader returns the flattened column order.
func (ExportRow) CSVHeader() []string {
	h := []string{"buoy_id", "buoy_name", "latitude", "longitude", "timestamp"}
	for _, p := range Parameters {
		h = append(h, string(p))
	}
	return h
}

// CSVRow serialises the row, each parameter at its own precision.
func (e *ExportRow) CSVRow() []string {
	row := []string{
		e.BuoyID,
		e.BuoyName,
		ftoa(e.Latitude, 4),
		ftoa(e.Longitude, 4),
		e.Reading.Timestamp.UTC().Format(time.RFC3339),
	}
	for _, p := range Parameters {
		row = append(row, ftoa(e.Reading.Value(p), Precision[p]))
	}
	return row
}

// Rows flattens every reading of b, in series order.
func (b *Buoy) Rows() []ExportRow {
	rows := make([]ExportRow, len(b.Readings))
	for i := range b.Readings {
		rows[i] = ExportRow{
			BuoyID:    b.ID,
			BuoyName:  b.Name,
			Latitude:  b.Location.Lat,
			Longitude: b.Location.Lng,
			Reading:   &b.Readings[i],
		}
	}
	return rows
}

// ensure ExportRow satisfies the writer contract
var _ CSVRowWriter = (*ExportRow)(nil)

