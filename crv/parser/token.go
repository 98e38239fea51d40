package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

// TokenKind classifies a lexical unit. The set is closed: the lexer never
// produces a kind outside this enumeration.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenNewline

	TokenKeyword
	TokenIdent
	TokenBoolLit
	TokenNullLit
	TokenIntLit
	TokenFloatLit
	TokenStringLit
	TokenOperator
	TokenSymbol
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenError:     "ERROR",
	TokenNewline:   "NEWLINE",
	TokenKeyword:   "KEYWORD",
	TokenIdent:     "IDENT",
	TokenBoolLit:   "BOOL_LIT",
	TokenNullLit:   "NULL_LIT",
	TokenIntLit:    "INT_LIT",
	TokenFloatLit:  "FLOAT_LIT",
	TokenStringLit: "STRING_LIT",
	TokenOperator:  "OPERATOR",
	TokenSymbol:    "SYMBOL",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexical unit. Line and column of the first character are
// available through Span.Start (1-indexed). Value carries the unquoted
// content of a string literal and is empty for every other kind.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
	Value   string
}

func (t Token) Line() int   { return t.Span.Start.Line }
func (t Token) Column() int { return t.Span.Start.Column }

// Is reports whether the token has the given kind and lexeme. The grammar
// discriminates keywords, operators and symbols by lexeme, so the parser
// matches on both.
func (t Token) Is(kind TokenKind, lexeme string) bool {
	return t.Kind == kind && t.Literal == lexeme
}

func (t Token) IsKeyword(lexeme string) bool  { return t.Is(TokenKeyword, lexeme) }
func (t Token) IsOperator(lexeme string) bool { return t.Is(TokenOperator, lexeme) }
func (t Token) IsSymbol(lexeme string) bool   { return t.Is(TokenSymbol, lexeme) }

// keywords holds the 20 reserved words of the language. The boolean and
// null literals (afirmativo, negativo, nulo) are not keywords: they
// classify as BOOL_LIT and NULL_LIT. Environment mission names such as
// "reportar" are deliberately absent; they stay IDENT and are resolved by
// grammatical position.
var keywords = map[string]bool{
	"ejercito":    true,
	"global":      true,
	"var":         true,
	"mision":      true,
	"severidad":   true,
	"estricto":    true,
	"advertencia": true,
	"revisar":     true,
	"ejecutar":    true,
	"confirmar":   true,
	"si":          true,
	"por":         true,
	"defecto":     true,
	"estrategia":  true,
	"atacar":      true,
	"mientras":    true,
	"retirada":    true,
	"con":         true,
	"abortar":     true,
	"avanzar":     true,
}

// ClassifyIdent maps an identifier lexeme to its final token kind.
func ClassifyIdent(lexeme string) TokenKind {
	switch lexeme {
	case "afirmativo", "negativo":
		return TokenBoolLit
	case "nulo":
		return TokenNullLit
	}
	if keywords[lexeme] {
		return TokenKeyword
	}
	return TokenIdent
}

// assignOps are the operators that turn a leading Reference into an
// Assignment statement.
var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
}

func IsAssignOp(lexeme string) bool {
	return assignOps[lexeme]
}
