// Package fileparam extracts "name<number>" parameter tokens from a
// sample file's stem (its filename minus extension), producing the
// identifier environment that expression substitution evaluates against.
package fileparam

import (
	"strconv"
	"strings"

	"github.com/momoluna444/csv2sfz/internal/expr"
)

// Extract splits stem on "_" and parses each resulting token as a
// leading run of ASCII letters immediately followed (no separator) by a
// numeric literal: an optional "-", one or more digits, and an optional
// "." plus fractional digits. "vel100" yields vel=100; "key-5" yields
// key=-5. A token that doesn't fit that shape contributes no binding; it
// is not an error, since stems commonly carry words that aren't
// parameters at all. Later tokens with the same name overwrite earlier
// ones.
func Extract(stem string) expr.Env {
	env := expr.Env{}
	for _, tok := range strings.Split(stem, "_") {
		name, numStr, ok := splitLettersNumber(tok)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			continue
		}
		env[name] = v
	}
	return env
}

// splitLettersNumber splits tok into its leading letter run and trailing
// numeric-literal run. It returns ok=false unless the whole token is
// consumed by letters-then-number with nothing left over.
func splitLettersNumber(tok string) (name, numStr string, ok bool) {
	i := 0
	for i < len(tok) && isASCIILetter(rune(tok[i])) {
		i++
	}
	if i == 0 || i == len(tok) {
		return "", "", false
	}
	name = tok[:i]

	j := i
	if j < len(tok) && tok[j] == '-' {
		j++
	}
	digitsStart := j
	for j < len(tok) && isDigit(tok[j]) {
		j++
	}
	if j == digitsStart {
		return "", "", false
	}
	if j < len(tok) && tok[j] == '.' {
		k := j + 1
		fracStart := k
		for k < len(tok) && isDigit(tok[k]) {
			k++
		}
		if k > fracStart {
			j = k
		}
	}
	if j != len(tok) {
		return "", "", false
	}
	return name, tok[i:], true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
