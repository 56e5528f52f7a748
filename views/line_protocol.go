package views

import (
	"io"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"reef-datagen/models"
)

// ReadingPoint converts one reading into a line-protocol point tagged with
// its buoy and dataset type.
func ReadingPoint(b *models.Buoy, dtype models.DatasetType, r *models.Reading) *write.Point {
	return write.NewPoint(
		LineMeasurement,
		map[string]string{
			"buoy_id":      b.ID,
			"dataset_type": dtype.String(),
		},
		r.Fields(),
		r.Timestamp,
	)
}

// EncodeLineProtocol writes one point per reading at second precision.
func EncodeLineProtocol(w io.Writer, ds *models.Dataset) error {
	for i := range ds.Buoys {
		b := &ds.Buoys[i]
		for j := range b.Readings {
			line := write.PointToLineProtocol(ReadingPoint(b, ds.Type, &b.Readings[j]), time.Second)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteLineProtocol writes ds to path as InfluxDB line protocol.
func WriteLineProtocol(path string, ds *models.Dataset) error {
	return withFile(path, func(w io.Writer) error {
		return EncodeLineProtocol(w, ds)
	})
}
