package sfz

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/momoluna444/csv2sfz/internal/csvtable"
	"github.com/momoluna444/csv2sfz/internal/expr"
	"github.com/momoluna444/csv2sfz/internal/fileparam"
	"github.com/momoluna444/csv2sfz/internal/globexpand"
	"github.com/momoluna444/csv2sfz/internal/schema"
)

// expansion is one sample file a CSV row expands into (a glob cell can
// expand into many; a row with no sample column or an empty cell expands
// into exactly one synthetic, sample-less expansion keyed by row index).
type expansion struct {
	key string
	env expr.Env

	hasSample  bool
	samplePath string
	style      globexpand.Style
}

// Process reads baseDir-relative glob patterns, evaluates expressions,
// and merges tbl's rows into the ordered record sequence described by
// its schema.
func Process(baseDir string, tbl *csvtable.Table) (*Document, error) {
	sch, err := schema.Parse(tbl.Header)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, rg := range segmentBoundaries(tbl.Rows, sch.HeaderColumn) {
		prefix := tbl.Rows[rg.Start][sch.HeaderColumn]
		mt := newMergeTable()

		for rowIdx := rg.Start; rowIdx < rg.End; rowIdx++ {
			row := tbl.Rows[rowIdx]
			exps, err := expandRow(baseDir, row, sch, rowIdx)
			if err != nil {
				return nil, err
			}
			for _, exp := range exps {
				mergeRow(mt.entry(exp.key), row, sch, exp)
			}
		}

		for _, e := range mt.orderedEntries() {
			doc.Entries = append(doc.Entries, buildEntry(prefix, sch, e))
		}
	}

	return doc, nil
}

// mergeRow folds one expanded row into its merge entry: every opcode and
// raw cell is evaluated and stored iff non-empty, and the sample display
// is updated whenever this row's own @sample cell was non-empty.
func mergeRow(entry *mergeEntry, row []string, sch *schema.Schema, exp expansion) {
	if exp.hasSample {
		entry.setSample(exp.samplePath, exp.style)
	}
	for _, col := range sch.Columns {
		switch col.Kind {
		case schema.KindOpcode, schema.KindRaw:
			entry.setCell(col.Index, expr.Substitute(row[col.Index], exp.env))
		}
	}
}

// buildEntry renders one merged entry into its final token sequence, in
// schema column order, applying each column kind's emission rule.
func buildEntry(prefix string, sch *schema.Schema, e *mergeEntry) Entry {
	entry := Entry{RegionPrefix: prefix}
	for _, col := range sch.Columns {
		switch col.Kind {
		case schema.KindSample:
			if !e.hasSample || e.sampleStyle == globexpand.Hidden {
				continue
			}
			entry.Opcodes = append(entry.Opcodes, Opcode{Name: col.Name, Value: e.sampleStyle.Render(e.samplePath)})

		case schema.KindRaw:
			if v, ok := e.cells[col.Index]; ok {
				entry.Opcodes = append(entry.Opcodes, Opcode{Value: v, Raw: true})
			}

		case schema.KindOpcode:
			if v, ok := e.cells[col.Index]; ok {
				entry.Opcodes = append(entry.Opcodes, Opcode{Name: col.Name, Value: v})
			}
		}
	}
	return entry
}

// mergeKey is the identity a record is merged under: the resolved sample
// path when one exists, or a synthetic per-row key otherwise — which
// makes merging a no-op for rows with no @sample column or an empty
// cell, since each such row is always its own key.
func mergeKey(samplePath string, rowIdx int) string {
	if samplePath != "" {
		return samplePath
	}
	return syntheticKey(rowIdx)
}

// segmentBoundaries splits rows into merge ranges at each non-empty
// @header cell. Rows before the first non-empty @header cell, or every
// row when none is ever non-empty, are discarded.
func segmentBoundaries(rows [][]string, headerCol int) []Range {
	var ranges []Range
	start := -1
	for i, row := range rows {
		if row[headerCol] != "" {
			if start != -1 {
				ranges = append(ranges, Range{Start: start, End: i})
			}
			start = i
		}
	}
	if start != -1 {
		ranges = append(ranges, Range{Start: start, End: len(rows)})
	}
	return ranges
}

// expandRow resolves a row's sample column (if any) into its constituent
// expansions. A glob pattern that fails to compile or matches nothing
// yields zero expansions rather than an error: per-row glob failures are
// soft, skipping just that row.
func expandRow(baseDir string, row []string, sch *schema.Schema, rowIdx int) ([]expansion, error) {
	if sch.SampleColumn == -1 || row[sch.SampleColumn] == "" {
		return []expansion{{key: syntheticKey(rowIdx), env: expr.Env{}}}, nil
	}

	cell := row[sch.SampleColumn]
	content, style := globexpand.ParseCellStyle(cell)

	matches, err := globexpand.Expand(baseDir, content)
	if err != nil || len(matches) == 0 {
		return nil, nil
	}

	exps := make([]expansion, 0, len(matches))
	for _, m := range matches {
		exps = append(exps, expansion{
			key:        mergeKey(m, rowIdx),
			env:        fileparam.Extract(stem(m)),
			hasSample:  true,
			samplePath: m,
			style:      style,
		})
	}
	return exps, nil
}

func syntheticKey(rowIdx int) string {
	return "\x00row" + strconv.Itoa(rowIdx)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
