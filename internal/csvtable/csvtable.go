// Package csvtable reads a mapping-table CSV file into its header row and
// data rows, using the standard library's RFC 4180 reader (the only CSV
// implementation seen anywhere in the retrieval pack; no third-party CSV
// library appears in it).
package csvtable

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Error reports a structural CSV problem: these are always fatal, unlike
// a single row's glob or expression failures.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("csvtable: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Table is a parsed CSV mapping table: its header row and the data rows
// beneath it. Row lengths are always equal to len(Header); ReadAll checks
// that itself rather than through the standard reader's FieldsPerRecord.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadAll reads a full CSV table from r. path is used only to annotate
// errors. An empty file (no rows at all) is reported as an *Error; a file
// with only a header row is not an error and yields a Table with zero
// Rows.
func ReadAll(path string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually below for a clearer error

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &Error{Path: path, Err: fmt.Errorf("file has no rows")}
	}

	header := records[0]
	rows := records[1:]
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, &Error{Path: path, Err: fmt.Errorf("row %d has %d fields, want %d", i+2, len(row), len(header))}
		}
	}

	return &Table{Header: header, Rows: rows}, nil
}
