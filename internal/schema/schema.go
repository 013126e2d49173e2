// Package schema classifies a CSV header row into the columns the row
// processor needs: the merge-range marker column, the sample-path column
// (with its optional alias), raw passthrough columns, hidden columns, and
// ordinary opcode columns.
package schema

import (
	"strconv"
	"strings"
)

// Kind identifies what a column's cells mean to the row processor.
type Kind uint8

const (
	// KindOpcode is the default: the header cell is itself the SFZ
	// opcode name, and each row's cell is its value.
	KindOpcode Kind = iota
	// KindHeader marks the column whose non-empty cells start a new
	// merge range.
	KindHeader
	// KindSample marks the sample-path column; its cells are expanded
	// by globexpand and drive row expansion and filename-parameter
	// extraction.
	KindSample
	// KindRaw marks a column whose cell text is emitted verbatim,
	// without opcode= formatting.
	KindRaw
	// KindHidden marks a column excluded entirely from processing: an
	// empty header cell or one prefixed with "__".
	KindHidden
)

// Column describes one classified CSV column.
type Column struct {
	Index int
	Kind  Kind
	// Name is the opcode name for KindOpcode columns, or the alias text
	// inside "@sample(alias)" for KindSample columns ("sample" if the
	// header cell was the bare "@sample").
	Name string
}

// Schema is the full classification of a CSV header row.
type Schema struct {
	Columns      []Column
	HeaderColumn int // index into Columns, or -1 if no @header column
	SampleColumn int // index into Columns, or -1 if no @sample column
}

// Error reports a malformed or ambiguous header row. Unlike a glob or
// expression failure, this is fatal: the row processor cannot recover a
// well-defined merge/output shape from it.
type Error struct {
	Message string
}

func (e *Error) Error() string { return "schema: " + e.Message }

// Parse classifies each cell of a CSV header row. It returns an *Error if
// no column or more than one column is marked "@header", if more than one
// column is marked "@sample"/"@sample(...)", if two opcode columns share a
// name, or if an "@sample(" annotation is missing its closing paren.
func Parse(headerRow []string) (*Schema, error) {
	s := &Schema{
		Columns:      make([]Column, len(headerRow)),
		HeaderColumn: -1,
		SampleColumn: -1,
	}

	opcodeNames := map[string]bool{}

	for i, cell := range headerRow {
		col := Column{Index: i}

		switch {
		case cell == "@header":
			col.Kind = KindHeader

		case cell == "@sample":
			col.Kind = KindSample
			col.Name = "sample"

		case strings.HasPrefix(cell, "@sample(") && strings.HasSuffix(cell, ")"):
			col.Kind = KindSample
			col.Name = cell[len("@sample(") : len(cell)-1]

		case strings.HasPrefix(cell, "@sample("):
			return nil, &Error{Message: "column " + strconv.Itoa(i) + ": unterminated @sample( alias )"}

		case cell == "@raw":
			col.Kind = KindRaw

		case cell == "" || strings.HasPrefix(cell, "__"):
			col.Kind = KindHidden

		default:
			col.Kind = KindOpcode
			col.Name = cell
		}

		s.Columns[i] = col

		switch col.Kind {
		case KindHeader:
			if s.HeaderColumn != -1 {
				return nil, &Error{Message: "more than one @header column"}
			}
			s.HeaderColumn = i
		case KindSample:
			if s.SampleColumn != -1 {
				return nil, &Error{Message: "more than one @sample column"}
			}
			s.SampleColumn = i
		case KindOpcode:
			if opcodeNames[col.Name] {
				return nil, &Error{Message: "duplicate opcode column name " + col.Name}
			}
			opcodeNames[col.Name] = true
		}
	}

	if s.HeaderColumn == -1 {
		return nil, &Error{Message: "missing required @header column"}
	}

	return s, nil
}
