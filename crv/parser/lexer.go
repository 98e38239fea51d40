package parser

// LexerOption configures a Lexer.
type LexerOption func(*Lexer)

// Tolerant makes the lexer emit one ERROR token per unrecognized character
// instead of failing. Unterminated block comments and string literals stay
// fatal regardless.
func Tolerant() LexerOption {
	return func(l *Lexer) {
		l.tolerant = true
	}
}

// EmitNewlines makes the lexer emit a NEWLINE token for every newline
// character. The parser ignores them; they exist for diagnostics only.
func EmitNewlines() LexerOption {
	return func(l *Lexer) {
		l.emitNewlines = true
	}
}

type Lexer struct {
	input        []byte
	file         string
	pos          int
	line         int
	column       int
	tolerant     bool
	emitNewlines bool
}

func NewLexer(input []byte, file string, opts ...LexerOption) *Lexer {
	l := &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the whole input in one pass and returns the token
// sequence, terminated by exactly one EOF token.
func Tokenize(input []byte, file string, opts ...LexerOption) ([]Token, error) {
	l := NewLexer(input, file, opts...)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken returns the next token, skipping whitespace and comments.
// Newlines are skipped too unless the lexer was built with EmitNewlines.
func (l *Lexer) NextToken() (Token, error) {
	for {
		start := l.Position()

		if l.pos >= len(l.input) {
			return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}, nil
		}

		ch := l.peek()

		if ch == '/' && l.peekN(1) == '*' {
			if err := l.skipBlockComment(start); err != nil {
				return Token{}, err
			}
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			l.skipLineComment()
			continue
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v' {
			l.advance()
			continue
		}
		if ch == '\n' {
			l.advance()
			if l.emitNewlines {
				return Token{
					Kind:    TokenNewline,
					Span:    Span{Start: start, End: l.Position()},
					Literal: "\n",
				}, nil
			}
			continue
		}

		if ch == '"' {
			return l.scanString(start)
		}
		if isDigit(ch) {
			return l.scanNumber(start), nil
		}
		if isLetter(ch) {
			return l.scanIdent(start), nil
		}

		return l.scanOperator(start)
	}
}

func (l *Lexer) skipLineComment() {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment(start Position) error {
	l.advanceN(2)
	for {
		if l.pos >= len(l.input) {
			return &LexicalError{Pos: start, Message: "unterminated block comment"}
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return nil
		}
		l.advance()
	}
}

func (l *Lexer) scanString(start Position) (Token, error) {
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			return Token{}, &LexicalError{Pos: start, Message: "unterminated string literal"}
		}
		if ch == '"' {
			l.advance()
			break
		}
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return Token{
		Kind:    TokenStringLit,
		Span:    Span{Start: start, End: end},
		Literal: literal,
		Value:   literal[1 : len(literal)-1],
	}, nil
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	kind := TokenIntLit
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		kind = TokenFloatLit
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(kind, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return Token{
		Kind:    ClassifyIdent(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

// scanOperator matches operators and symbols, multi-character operators
// before their single-character prefixes.
func (l *Lexer) scanOperator(start Position) (Token, error) {
	ch := l.peek()

	switch ch {
	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.token(TokenOperator, start), nil
		}
	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(TokenOperator, start), nil
		}
	case '=', '!', '<', '>':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenOperator, start), nil
		}
		l.advance()
		return l.token(TokenOperator, start), nil
	case '+', '-', '*', '/', '%':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenOperator, start), nil
		}
		l.advance()
		return l.token(TokenOperator, start), nil
	case '(', ')', '{', '}', '[', ']', '.', ',', ':':
		l.advance()
		return l.token(TokenSymbol, start), nil
	}

	if !l.tolerant {
		return Token{}, &LexicalError{Pos: start, Char: ch}
	}
	l.advance()
	return l.token(TokenError, start), nil
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
