package views

import (
	"fmt"
	"strings"

	"reef-datagen/models"
)

// Format identifies an output encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
	FormatLine
)

var formatNames = map[Format]string{
	FormatJSON: "json",
	FormatCSV:  "csv",
	FormatLine: "line",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseFormat maps a case-insensitive format name to its Format.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, fn := range formatNames {
		if fn == n {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: output format %q (choose from json, csv, line)",
		models.ErrInvalidArgument, name)
}

// CSVColumns is the flattened column layout of the CSV export: buoy
// identity and position, then the reading timestamp and parameters.
// models.ExportRow.CSVHeader produces the same list.
var CSVColumns = []string{
	"buoy_id", "buoy_name", "latitude", "longitude", "timestamp",
	"temperature", "salinity", "ph", "dissolved_oxygen",
	"turbidity", "chlorophyll", "wave_height",
}

// LineMeasurement is the measurement name of line-protocol points.
const LineMeasurement = "buoy_reading"
