package views

import (
	"encoding/csv"
	"fmt"
	"io"

	"reef-datagen/models"
)

// CSVWriter writes CSVRowWriter rows through an encoding/csv writer and
// counts them. Write errors are sticky and reported by Flush.
type CSVWriter struct {
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter wraps w and, when writeHeader is set, emits header first.
func NewCSVWriter(w io.Writer, writeHeader bool, header []string) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if writeHeader && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}
	return &CSVWriter{csv: cw}, nil
}

// WriteRow appends one row.
func (w *CSVWriter) WriteRow(r models.CSVRowWriter) error {
	if err := w.csv.Write(r.CSVRow()); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	return w.rows
}

// EncodeCSV flattens every reading of ds into one CSV row.
func EncodeCSV(w io.Writer, ds *models.Dataset) (uint64, error) {
	cw, err := NewCSVWriter(w, true, models.ExportRow{}.CSVHeader())
	if err != nil {
		return 0, err
	}
	for i := range ds.Buoys {
		for _, row := range ds.Buoys[i].Rows() {
			if err := cw.WriteRow(&row); err != nil {
				return cw.Rows(), err
			}
		}
	}
	return cw.Rows(), cw.Flush()
}

// WriteCSV writes the flattened CSV export of ds to path.
func WriteCSV(path string, ds *models.Dataset) error {
	return withFile(path, func(w io.Writer) error {
		_, err := EncodeCSV(w, ds)
		return err
	})
}
