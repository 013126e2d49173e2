package expr

// ParseError reports a syntax error found while lexing or parsing an
// expression. It never escapes to callers outside this package: Eval
// converts any ParseError into ok=false so the caller falls back to
// echoing the raw "${...}" source, per the failure policy in §4.1.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }
