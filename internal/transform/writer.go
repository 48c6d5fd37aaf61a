package transform

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteCollection writes records to path as pretty-printed UTF-8 JSON.
// HTML escaping is disabled so non-ASCII text and URLs survive verbatim,
// which matters for the product names and descriptions in this dataset.
func WriteCollection(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}
