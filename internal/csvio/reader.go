// Package csvio reads the raw sales export into string-keyed rows.
//
// The export files in the wild are messy: Windows tools prepend a UTF-8 BOM,
// some dumps are Latin-1 encoded, and individual lines can be malformed.
// Reading is therefore tolerant by construction:
//
//   - A UTF-8 BOM is skipped.
//   - Files that are not valid UTF-8 are re-decoded as Latin-1.
//   - Malformed lines are counted and skipped, never fatal.
//   - Rows may have more or fewer fields than the header; extra fields are
//     dropped and missing fields read as empty.
//
// Cell values are returned verbatim (no trimming); the sanitizers own all
// per-field cleanup.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one export record keyed by lowercase header name.
type Row map[string]string

// Get returns the value of the named column, or "" when the column is
// missing from this row. Missing and empty cells are deliberately
// indistinguishable; builders treat both as absent.
func (r Row) Get(name string) string {
	return r[name]
}

// Table is a fully-read export file.
type Table struct {
	Header  []string // Cleaned, lowercased header names in file order
	Rows    []Row    // Data rows; fully empty lines are dropped
	Skipped int      // Malformed lines that were skipped
}

// ReadFile reads a sales export CSV into a Table.
// Returns an error only for conditions that make the whole file unusable
// (unreadable file, no header row).
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	// Encoding fallback: re-decode as Latin-1 when the bytes are not valid
	// UTF-8 (common for exports produced on Windows).
	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("decoding export %s: %w", path, decErr)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	for i, h := range header {
		header[i] = CleanHeader(h)
	}

	table := &Table{Header: header}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			table.Skipped++
			continue
		}
		if isEmpty(record) {
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// CleanHeader normalizes a header cell: trims whitespace and surrounding
// quotes, lowercases.
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.Trim(h, `"'`)
	return strings.ToLower(h)
}

// isEmpty reports whether every field of the record is blank.
func isEmpty(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
