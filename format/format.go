package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/crvicio/crvc/crv/parser"
)

// Encoder renders a parsed program to a writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(program *parser.Program) error
}

// NewEncoder selects an encoder by name: "json" or "text".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "text":
		return NewTextEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}
