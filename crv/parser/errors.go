package parser

import "fmt"

// LexicalError reports a character the lexer could not match, or an
// unterminated block comment or string literal. Pos points at the first
// offending character.
type LexicalError struct {
	Pos     Position
	Char    byte
	Message string
}

func (e *LexicalError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lexical error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("lexical error at line %d, column %d: unrecognized character %q", e.Pos.Line, e.Pos.Column, string(e.Char))
}

// SyntaxError reports the first expectation mismatch during parsing. The
// parse aborts on the first one; there is no recovery and no accumulation.
type SyntaxError struct {
	Pos      Position
	Found    Token
	Expected string
}

func (e *SyntaxError) Error() string {
	found := e.Found.Literal
	if e.Found.Kind == TokenEOF {
		found = "end of input"
	} else {
		found = fmt.Sprintf("%s (%s)", found, e.Found.Kind)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Pos.Line, e.Pos.Column, e.Expected, found)
}

func syntaxError(tok Token, expected string) *SyntaxError {
	return &SyntaxError{Pos: tok.Span.Start, Found: tok, Expected: expected}
}
