// Package csv2sfz converts tabular sample-mapping tables in CSV form into
// SFZ instrument-mapping text.
//
// Authors write sample-mapping tables in any spreadsheet tool and export
// CSV. Glob patterns in a designated sample column expand one CSV row into
// many output records (one per matched audio file on disk), a small
// arithmetic expression language computes opcode values from per-file
// filename parameters, and a merge-range mechanism lets later rows in the
// same range override earlier ones keyed by resolved sample path.
//
// Example usage:
//
//	sfzBytes, err := csv2sfz.Convert(csvBytes, "./samples")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For lower-level access to individual stages, use ReadTable, ValidateHeader
// and the internal/sfz package's Process/Emit directly.
package csv2sfz

import (
	"bytes"
	"fmt"

	"github.com/momoluna444/csv2sfz/internal/csvtable"
	"github.com/momoluna444/csv2sfz/internal/schema"
	"github.com/momoluna444/csv2sfz/internal/sfz"
)

// Convert reads csvBytes as a CSV sample-mapping table and renders it as
// SFZ text. Sample-column glob patterns resolve relative to baseDir. The
// only errors returned are structural: malformed CSV, a missing or
// duplicate @header column, a duplicate @sample column, or duplicate
// opcode column names. Everything else — unparseable expressions, glob
// patterns matching nothing, unparseable filename parameters, arithmetic
// domain errors — degrades locally per record rather than failing the
// whole file.
func Convert(csvBytes []byte, baseDir string) ([]byte, error) {
	tbl, err := csvtable.ReadAll("<input>", bytes.NewReader(csvBytes))
	if err != nil {
		return nil, err
	}

	doc, err := sfz.Process(baseDir, tbl)
	if err != nil {
		return nil, err
	}

	return []byte(sfz.Emit(doc)), nil
}

// ReadTable parses csvBytes into a Table without running the row
// processor, for callers that want to inspect or validate a CSV before
// converting it.
func ReadTable(name string, csvBytes []byte) (*csvtable.Table, error) {
	return csvtable.ReadAll(name, bytes.NewReader(csvBytes))
}

// ValidateHeader checks a CSV's first row against the header/annotation
// rules without processing any data rows, so a caller can report a
// malformed table before attempting a full conversion.
func ValidateHeader(csvBytes []byte) error {
	tbl, err := ReadTable("<input>", csvBytes)
	if err != nil {
		return err
	}
	if _, err := schema.Parse(tbl.Header); err != nil {
		return fmt.Errorf("invalid header row: %w", err)
	}
	return nil
}
