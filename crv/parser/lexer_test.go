package parser

import (
	"reflect"
	"testing"
)

func kinds(tokens []Token) []TokenKind {
	var got []TokenKind
	for _, tok := range tokens {
		got = append(got, tok.Kind)
	}
	return got
}

func TestLexerTokenSequences(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"mision", []TokenKind{TokenKeyword, TokenEOF}},
		{"tropa", []TokenKind{TokenIdent, TokenEOF}},
		{"123", []TokenKind{TokenIntLit, TokenEOF}},
		{"3.14", []TokenKind{TokenFloatLit, TokenEOF}},
		{"123.", []TokenKind{TokenIntLit, TokenSymbol, TokenEOF}},
		{`"hola"`, []TokenKind{TokenStringLit, TokenEOF}},
		{"// comentario\nvar", []TokenKind{TokenKeyword, TokenEOF}},
		{"/* bloque */ var", []TokenKind{TokenKeyword, TokenEOF}},
		{"/* linea1\nlinea2 */ var", []TokenKind{TokenKeyword, TokenEOF}},
		{"+ - * / %", []TokenKind{TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenEOF}},
		{"== != < <= > >=", []TokenKind{TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenEOF}},
		{"&& || !", []TokenKind{TokenOperator, TokenOperator, TokenOperator, TokenEOF}},
		{"+= -= *= /= %=", []TokenKind{TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenOperator, TokenEOF}},
		{"( ) { } [ ] . , :", []TokenKind{TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenSymbol, TokenEOF}},
		{"afirmativo negativo", []TokenKind{TokenBoolLit, TokenBoolLit, TokenEOF}},
		{"nulo", []TokenKind{TokenNullLit, TokenEOF}},
		{"x = 5", []TokenKind{TokenIdent, TokenOperator, TokenIntLit, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input), "test.crv")
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			got := kinds(tokens)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("kinds = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLexerKeywords(t *testing.T) {
	reserved := []string{
		"ejercito", "global", "var", "mision", "severidad", "estricto",
		"advertencia", "revisar", "ejecutar", "confirmar", "si", "por",
		"defecto", "estrategia", "atacar", "mientras", "retirada", "con",
		"abortar", "avanzar",
	}

	for _, word := range reserved {
		t.Run(word, func(t *testing.T) {
			tokens, err := Tokenize([]byte(word), "test.crv")
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if tokens[0].Kind != TokenKeyword {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, TokenKeyword)
			}
			if tokens[0].Literal != word {
				t.Errorf("Literal = %q, want %q", tokens[0].Literal, word)
			}
		})
	}
}

func TestLexerReclassification(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"afirmativo", TokenBoolLit},
		{"negativo", TokenBoolLit},
		{"nulo", TokenNullLit},
		{"mision", TokenKeyword},
		// Environment mission names stay plain identifiers; their
		// meaning comes from grammatical position.
		{"reportar", TokenIdent},
		{"recibir", TokenIdent},
		{"azar", TokenIdent},
		{"misionero", TokenIdent},
		{"_interno", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input), "test.crv")
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
		})
	}
}

func TestLexerLongestMatch(t *testing.T) {
	tokens, err := Tokenize([]byte("<="), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2 (operator + EOF)", len(tokens))
	}
	if tokens[0].Kind != TokenOperator || tokens[0].Literal != "<=" {
		t.Errorf("got %v %q, want one OPERATOR <=", tokens[0].Kind, tokens[0].Literal)
	}
}

func TestLexerPositions(t *testing.T) {
	input := "var x\n  y = 1"
	tokens, err := Tokenize([]byte(input), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []struct {
		literal string
		line    int
		column  int
	}{
		{"var", 1, 1},
		{"x", 1, 5},
		{"y", 2, 3},
		{"=", 2, 5},
		{"1", 2, 7},
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Literal != w.literal || tok.Line() != w.line || tok.Column() != w.column {
			t.Errorf("token %d = %q at %d:%d, want %q at %d:%d",
				i, tok.Literal, tok.Line(), tok.Column(), w.literal, w.line, w.column)
		}
	}
}

func TestLexerColumnResetInBlockComment(t *testing.T) {
	// The column counter resets on every newline, including newlines
	// inside block comments.
	tokens, err := Tokenize([]byte("/* a\nb */ x"), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	tok := tokens[0]
	if tok.Literal != "x" || tok.Line() != 2 || tok.Column() != 6 {
		t.Errorf("got %q at %d:%d, want x at 2:6", tok.Literal, tok.Line(), tok.Column())
	}
}

func TestLexerPositionMonotonicity(t *testing.T) {
	input := "mision m(a, b) {\n  ejecutar:\n  var x = 1.5 + \"s\"\n}\n"
	tokens, err := Tokenize([]byte(input), "test.crv", EmitNewlines())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if cur.Line() < prev.Line() {
			t.Fatalf("token %d line %d before previous line %d", i, cur.Line(), prev.Line())
		}
		if cur.Line() == prev.Line() && cur.Column() < prev.Column() {
			t.Fatalf("token %d column %d before previous column %d on line %d",
				i, cur.Column(), prev.Column(), cur.Line())
		}
	}
}

func TestLexerNewlineTokens(t *testing.T) {
	tokens, err := Tokenize([]byte("a\nb"), "test.crv", EmitNewlines())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got := kinds(tokens)
	want := []TokenKind{TokenIdent, TokenNewline, TokenIdent, TokenEOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}

	tokens, err = Tokenize([]byte("a\nb"), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got = kinds(tokens)
	want = []TokenKind{TokenIdent, TokenIdent, TokenEOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kinds without EmitNewlines = %v, want %v", got, want)
	}
}

func TestLexerStringValue(t *testing.T) {
	tokens, err := Tokenize([]byte(`"en marcha"`), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	tok := tokens[0]
	if tok.Literal != `"en marcha"` {
		t.Errorf("Literal = %q", tok.Literal)
	}
	if tok.Value != "en marcha" {
		t.Errorf("Value = %q, want %q", tok.Value, "en marcha")
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	_, err := Tokenize([]byte("var x = @"), "test.crv")
	if err == nil {
		t.Fatal("expected a lexical error")
	}
	lerr, ok := err.(*LexicalError)
	if !ok {
		t.Fatalf("error type = %T, want *LexicalError", err)
	}
	if lerr.Char != '@' {
		t.Errorf("Char = %q, want '@'", string(lerr.Char))
	}
	if lerr.Pos.Line != 1 || lerr.Pos.Column != 9 {
		t.Errorf("Pos = %d:%d, want 1:9", lerr.Pos.Line, lerr.Pos.Column)
	}
}

func TestLexerTolerantMode(t *testing.T) {
	tokens, err := Tokenize([]byte("var x = @"), "test.crv", Tolerant())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got := kinds(tokens)
	want := []TokenKind{TokenKeyword, TokenIdent, TokenOperator, TokenError, TokenEOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if tokens[3].Literal != "@" {
		t.Errorf("error token literal = %q, want @", tokens[3].Literal)
	}
}

func TestLexerTolerantOneTokenPerCharacter(t *testing.T) {
	tokens, err := Tokenize([]byte("@@#"), "test.crv", Tolerant())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	got := kinds(tokens)
	want := []TokenKind{TokenError, TokenError, TokenError, TokenEOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestLexerTolerantTotality(t *testing.T) {
	// Tolerant mode always completes, whatever the input, as long as
	// comments and strings are terminated.
	inputs := []string{
		"@#$^&",
		"?? ;; ~~",
		"mision @ x # 1",
		"\x00\x01\x02",
		"ñ",
	}
	for _, input := range inputs {
		tokens, err := Tokenize([]byte(input), "test.crv", Tolerant())
		if err != nil {
			t.Errorf("Tokenize(%q) error = %v", input, err)
			continue
		}
		if tokens[len(tokens)-1].Kind != TokenEOF {
			t.Errorf("Tokenize(%q) not EOF-terminated", input)
		}
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	for _, opts := range [][]LexerOption{nil, {Tolerant()}} {
		_, err := Tokenize([]byte("var /* sin cierre"), "test.crv", opts...)
		if err == nil {
			t.Fatal("expected a lexical error for unterminated block comment")
		}
		if _, ok := err.(*LexicalError); !ok {
			t.Fatalf("error type = %T, want *LexicalError", err)
		}
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	for _, input := range []string{`"sin cierre`, "\"corta\nda\""} {
		for _, opts := range [][]LexerOption{nil, {Tolerant()}} {
			_, err := Tokenize([]byte(input), "test.crv", opts...)
			if err == nil {
				t.Fatalf("Tokenize(%q): expected a lexical error", input)
			}
		}
	}
}

func TestLexerDeterminism(t *testing.T) {
	input := []byte("mision test() { ejecutar: var x = 5 }")
	first, err := Tokenize(input, "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Tokenize(input, "test.crv")
		if err != nil {
			t.Fatalf("Tokenize() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated tokenization differs")
		}
	}
}

func TestLexerScenarioA(t *testing.T) {
	input := "mision test() { ejecutar: var x = 5 }"
	tokens, err := Tokenize([]byte(input), "test.crv")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []struct {
		kind    TokenKind
		literal string
	}{
		{TokenKeyword, "mision"},
		{TokenIdent, "test"},
		{TokenSymbol, "("},
		{TokenSymbol, ")"},
		{TokenSymbol, "{"},
		{TokenKeyword, "ejecutar"},
		{TokenSymbol, ":"},
		{TokenKeyword, "var"},
		{TokenIdent, "x"},
		{TokenOperator, "="},
		{TokenIntLit, "5"},
		{TokenSymbol, "}"},
		{TokenEOF, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Literal != w.literal {
			t.Errorf("token %d = %v %q, want %v %q",
				i, tokens[i].Kind, tokens[i].Literal, w.kind, w.literal)
		}
	}
}
