package sfz

import "github.com/momoluna444/csv2sfz/internal/globexpand"

// mergeEntry accumulates the values contributed to one merged record by
// every CSV row sharing its key, keyed by schema column index. A later
// row's non-empty value for a column replaces the earlier one; an empty
// cell leaves the existing value (or absence) untouched. Final emission
// order is the schema's column order, not insertion order, so no
// per-column order bookkeeping is needed here.
type mergeEntry struct {
	cells map[int]string

	hasSample   bool
	samplePath  string
	sampleStyle globexpand.Style
}

func newMergeEntry() *mergeEntry {
	return &mergeEntry{cells: map[int]string{}}
}

func (e *mergeEntry) setCell(colIndex int, value string) {
	if value == "" {
		return
	}
	e.cells[colIndex] = value
}

// setSample records this row's resolved sample path and display style.
// It is called whenever the row's own @sample cell was non-empty, even
// if that style is Hidden, so a later Hidden-styled contribution to the
// same key correctly suppresses emission.
func (e *mergeEntry) setSample(path string, style globexpand.Style) {
	e.hasSample = true
	e.samplePath = path
	e.sampleStyle = style
}

type mergeTable struct {
	order   []string
	entries map[string]*mergeEntry
}

func newMergeTable() *mergeTable {
	return &mergeTable{entries: map[string]*mergeEntry{}}
}

func (t *mergeTable) entry(key string) *mergeEntry {
	e, ok := t.entries[key]
	if !ok {
		e = newMergeEntry()
		t.entries[key] = e
		t.order = append(t.order, key)
	}
	return e
}

func (t *mergeTable) orderedEntries() []*mergeEntry {
	out := make([]*mergeEntry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.entries[k])
	}
	return out
}
