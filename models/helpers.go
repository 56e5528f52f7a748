package models

import (
	"math"
	"strconv"
)

// ─── shared formatting helpers ──────────────────────────────────────────

func itoa(v int) string { return strconv.Itoa(v) }
func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Round rounds v half away from zero to prec decimal places.
func Round(v float64, prec int) float64 {
	p := math.Pow10(prec)
	return math.Round(v*p) / p
}

// CSVRowWriter is the interface every exportable row model must satisfy.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}
