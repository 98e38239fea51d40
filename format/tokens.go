package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/crvicio/crvc/crv/parser"
)

// TokenTableEncoder renders a token stream as an aligned table with one
// row per token: lexeme, kind and a position attribute object.
type TokenTableEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokenTableEncoder(w io.Writer) *TokenTableEncoder {
	return &TokenTableEncoder{w: w}
}

func (e *TokenTableEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenTableEncoder) MarshalText() ([]byte, error) {
	header := []string{"LEXEME", "KIND", "ATTRIBUTES"}
	rows := make([][3]string, 0, len(e.tokens))
	widths := []int{len(header[0]), len(header[1]), len(header[2])}

	for _, tok := range e.tokens {
		row := [3]string{tok.Literal, tok.Kind.String(), tokenAttributes(tok)}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s | %-*s | %s\n", widths[0], header[0], widths[1], header[1], header[2])
	fmt.Fprintf(&sb, "%s-+-%s-+-%s\n",
		strings.Repeat("-", widths[0]),
		strings.Repeat("-", widths[1]),
		strings.Repeat("-", widths[2]))
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-*s | %-*s | %s\n", widths[0], row[0], widths[1], row[1], row[2])
	}
	return []byte(sb.String()), nil
}

func tokenAttributes(tok parser.Token) string {
	if tok.Kind == parser.TokenStringLit {
		return fmt.Sprintf("{\"line\": %d, \"column\": %d, \"value\": %q}",
			tok.Line(), tok.Column(), tok.Value)
	}
	return fmt.Sprintf("{\"line\": %d, \"column\": %d}", tok.Line(), tok.Column())
}
