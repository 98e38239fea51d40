package parser

import "testing"

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		name string
	}{
		{TokenEOF, "EOF"},
		{TokenError, "ERROR"},
		{TokenNewline, "NEWLINE"},
		{TokenKeyword, "KEYWORD"},
		{TokenIdent, "IDENT"},
		{TokenBoolLit, "BOOL_LIT"},
		{TokenNullLit, "NULL_LIT"},
		{TokenIntLit, "INT_LIT"},
		{TokenFloatLit, "FLOAT_LIT"},
		{TokenStringLit, "STRING_LIT"},
		{TokenOperator, "OPERATOR"},
		{TokenSymbol, "SYMBOL"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
	}
}

func TestClassifyIdent(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   TokenKind
	}{
		{"mision", TokenKeyword},
		{"atacar", TokenKeyword},
		{"afirmativo", TokenBoolLit},
		{"negativo", TokenBoolLit},
		{"nulo", TokenNullLit},
		{"soldado", TokenIdent},
		{"Mision", TokenIdent},
		{"ejecutar2", TokenIdent},
	}
	for _, tt := range tests {
		if got := ClassifyIdent(tt.lexeme); got != tt.kind {
			t.Errorf("ClassifyIdent(%q) = %v, want %v", tt.lexeme, got, tt.kind)
		}
	}
}

func TestIsAssignOp(t *testing.T) {
	for _, op := range []string{"=", "+=", "-=", "*=", "/=", "%="} {
		if !IsAssignOp(op) {
			t.Errorf("IsAssignOp(%q) = false", op)
		}
	}
	for _, op := range []string{"==", "<=", "+", ""} {
		if IsAssignOp(op) {
			t.Errorf("IsAssignOp(%q) = true", op)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	tok := Token{Kind: TokenKeyword, Literal: "mision"}
	if !tok.IsKeyword("mision") {
		t.Error("IsKeyword(mision) = false")
	}
	if tok.IsKeyword("var") {
		t.Error("IsKeyword(var) = true")
	}

	op := Token{Kind: TokenOperator, Literal: "+="}
	if !op.IsOperator("+=") || op.IsOperator("+") {
		t.Error("IsOperator mismatch")
	}

	sym := Token{Kind: TokenSymbol, Literal: "{"}
	if !sym.IsSymbol("{") || sym.IsSymbol("}") {
		t.Error("IsSymbol mismatch")
	}
}
