package views

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"reef-datagen/models"
)

// withFile creates path, hands a buffered writer to fn and always closes
// the file. Any failure, including a failed flush or close, wraps
// models.ErrIO.
func withFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", models.ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", models.ErrIO, path, cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, 256*1024)
	if err := fn(bw); err != nil {
		return fmt.Errorf("%w: write %s: %v", models.ErrIO, path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %v", models.ErrIO, path, err)
	}
	return nil
}

// Write encodes ds to path in the given format.
func Write(format Format, path string, ds *models.Dataset) error {
	switch format {
	case FormatJSON:
		return WriteJSON(path, ds)
	case FormatCSV:
		return WriteCSV(path, ds)
	case FormatLine:
		return WriteLineProtocol(path, ds)
	}
	return fmt.Errorf("%w: output format %d", models.ErrInvalidArgument, format)
}
