package sfz

import "strings"

// Emit renders a Document as SFZ mapping-table text: one LF-terminated
// line per record, starting with its merge range's region prefix
// followed by space-separated tokens in schema column order.
func Emit(doc *Document) string {
	var sb strings.Builder
	for _, e := range doc.Entries {
		sb.WriteString(e.RegionPrefix)
		for _, op := range e.Opcodes {
			sb.WriteString(" ")
			if op.Raw {
				sb.WriteString(op.Value)
			} else {
				sb.WriteString(op.Name)
				sb.WriteString("=")
				sb.WriteString(op.Value)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
