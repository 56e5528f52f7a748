package views

import (
	"encoding/json"
	"io"

	"reef-datagen/models"
)

// EncodeJSON writes ds as 2-space indented JSON with a trailing newline.
// HTML escaping is off so that units such as "µg/L" stay readable.
func EncodeJSON(w io.Writer, ds *models.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(ds)
}

// WriteJSON writes ds to path as indented JSON.
func WriteJSON(path string, ds *models.Dataset) error {
	return withFile(path, func(w io.Writer) error {
		return EncodeJSON(w, ds)
	})
}
