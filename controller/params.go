package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"reef-datagen/models"
	"reef-datagen/views"
)

// Defaults for the generation parameters.
const (
	DefaultNumBuoys        = 5
	DefaultReadingsPerBuoy = 2000
	DefaultDatasetType     = models.TypeReef
)

// RawParams are generation parameters as the user typed them.
type RawParams struct {
	NumBuoys        int
	ReadingsPerBuoy int
	DatasetType     string
	OutputFile      string
	Format          string
	Seed            int64
}

// Params are validated generation parameters.
type Params struct {
	NumBuoys        int
	ReadingsPerBuoy int
	DatasetType     models.DatasetType
	OutputFile      string
	Format          views.Format
	Seed            int64 // 0 means derive from the clock
}

// ResolveParams validates raw input. It touches nothing on disk, so a
// rejected invocation leaves the file system as it found it.
func ResolveParams(raw RawParams) (Params, error) {
	dtype, err := models.ParseDatasetType(raw.DatasetType)
	if err != nil {
		return Params{}, err
	}
	if raw.OutputFile == "" {
		return Params{}, fmt.Errorf("%w: output file is required", models.ErrInvalidArgument)
	}
	if raw.NumBuoys < 0 {
		return Params{}, fmt.Errorf("%w: num_buoys must not be negative, got %d",
			models.ErrInvalidArgument, raw.NumBuoys)
	}
	if raw.ReadingsPerBuoy < 0 {
		return Params{}, fmt.Errorf("%w: readings_per_buoy must not be negative, got %d",
			models.ErrInvalidArgument, raw.ReadingsPerBuoy)
	}
	format := views.FormatJSON
	if raw.Format != "" {
		if format, err = views.ParseFormat(raw.Format); err != nil {
			return Params{}, err
		}
	}
	return Params{
		NumBuoys:        raw.NumBuoys,
		ReadingsPerBuoy: raw.ReadingsPerBuoy,
		DatasetType:     dtype,
		OutputFile:      raw.OutputFile,
		Format:          format,
		Seed:            raw.Seed,
	}, nil
}

// EnsureOutputDir creates the parent directory of path when it is missing.
// It reports whether a directory was created.
func EnsureOutputDir(path string) (bool, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return false, nil
	}
	if fi, err := os.Stat(dir); err == nil {
		if !fi.IsDir() {
			return false, fmt.Errorf("%w: %s exists and is not a directory", models.ErrIO, dir)
		}
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("%w: create output dir: %v", models.ErrIO, err)
	}
	return true, nil
}
