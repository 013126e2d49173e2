package expr

import "strings"

// Substitute scans cell for "${...}" spans and replaces each with the
// formatted result of evaluating its contents against env. A span that
// fails to parse or evaluate is left untouched, braces and all, so a
// malformed expression is visible in the emitted SFZ rather than silently
// dropped.
func Substitute(cell string, env Env) string {
	if !strings.Contains(cell, "${") {
		return cell
	}

	var out strings.Builder
	i := 0
	for i < len(cell) {
		start := strings.Index(cell[i:], "${")
		if start < 0 {
			out.WriteString(cell[i:])
			break
		}
		start += i
		out.WriteString(cell[i:start])

		end := matchingBrace(cell, start+2)
		if end < 0 {
			// No closing brace: emit the rest verbatim and stop.
			out.WriteString(cell[start:])
			break
		}

		inner := cell[start+2 : end]
		if v, ok := Eval(inner, env); ok {
			out.WriteString(FormatFloat(v))
		} else {
			out.WriteString(cell[start : end+1])
		}
		i = end + 1
	}
	return out.String()
}

// matchingBrace returns the index of the "}" that closes the "${" whose
// contents start at from, or -1 if none is found. Expressions never
// contain braces themselves, so the first "}" at or after from always
// closes the span.
func matchingBrace(s string, from int) int {
	rel := strings.IndexByte(s[from:], '}')
	if rel < 0 {
		return -1
	}
	return from + rel
}
