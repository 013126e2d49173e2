package expr

import "testing"

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"+ - * /", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenEOF}},
		{"( ) , ^", []TokenKind{TokenLeftParen, TokenRightParen, TokenComma, TokenCaret, TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{"3.14", []TokenKind{TokenNumber, TokenEOF}},
		{"vel", []TokenKind{TokenIdent, TokenEOF}},
		{"", []TokenKind{TokenEOF}},
	}

	for _, tt := range tests {
		toks, err := newLexer(tt.input).tokenize()
		if err != nil {
			t.Errorf("tokenize(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if len(toks) != len(tt.expected) {
			t.Errorf("tokenize(%q): got %d tokens, want %d", tt.input, len(toks), len(tt.expected))
			continue
		}
		for i, tok := range toks {
			if tok.kind != tt.expected[i] {
				t.Errorf("tokenize(%q): token %d = %v, want %v", tt.input, i, tok.kind, tt.expected[i])
			}
		}
	}
}

func TestLexerTrailingDotIsNotConsumed(t *testing.T) {
	// The dot is only consumed when followed by a digit, so a bare
	// trailing "." is left dangling and fails to lex as anything else.
	if _, err := newLexer("1.").tokenize(); err == nil {
		t.Errorf("expected error for dangling trailing dot")
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	if _, err := newLexer("1 & 2").tokenize(); err == nil {
		t.Errorf("expected error for unexpected character")
	}
}
