package format

import (
	"encoding/json"
	"io"

	"github.com/crvicio/crvc/crv/parser"
)

type JSONEncoder struct {
	w       io.Writer
	program *parser.Program
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(program *parser.Program) error {
	e.program = program
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(parser.NodeJSON(e.program), "", "  ")
}
