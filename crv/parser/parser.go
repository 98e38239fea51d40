package parser

import "strconv"

// Parser consumes an EOF-terminated token sequence with one token of
// lookahead and builds a Program. It is fail-fast: the first expectation
// mismatch aborts the whole parse with a SyntaxError.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser prepares a parser over the given token sequence. NEWLINE
// tokens are dropped up front: they carry diagnostic positions only and
// are never grammatically significant.
func NewParser(tokens []Token) *Parser {
	filtered := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == TokenNewline {
			continue
		}
		filtered = append(filtered, tok)
	}
	return &Parser{tokens: filtered}
}

// Parse runs the grammar over a token sequence.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).Parse()
}

// ParseSource tokenizes and parses in one step.
func ParseSource(input []byte, file string, opts ...LexerOption) (*Program, error) {
	tokens, err := Tokenize(input, file, opts...)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind TokenKind, expected string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return Token{}, syntaxError(tok, expected)
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(lexeme string) (Token, error) {
	tok := p.peek()
	if !tok.IsKeyword(lexeme) {
		return Token{}, syntaxError(tok, "keyword "+strconv.Quote(lexeme))
	}
	return p.advance(), nil
}

func (p *Parser) expectOperator(lexeme string) (Token, error) {
	tok := p.peek()
	if !tok.IsOperator(lexeme) {
		return Token{}, syntaxError(tok, strconv.Quote(lexeme))
	}
	return p.advance(), nil
}

func (p *Parser) expectSymbol(lexeme string) (Token, error) {
	tok := p.peek()
	if !tok.IsSymbol(lexeme) {
		return Token{}, syntaxError(tok, strconv.Quote(lexeme))
	}
	return p.advance(), nil
}

// matchOperator reports whether the lookahead is an OPERATOR token with
// one of the given lexemes.
func (p *Parser) matchOperator(lexemes ...string) bool {
	tok := p.peek()
	if tok.Kind != TokenOperator {
		return false
	}
	for _, lexeme := range lexemes {
		if tok.Literal == lexeme {
			return true
		}
	}
	return false
}

// Parse implements the Program production: a sequence of namespace,
// mission and global variable declarations running to EOF. Statements are
// not allowed at the top level.
func (p *Parser) Parse() (*Program, error) {
	program := &Program{}
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return program, nil
		}

		var decl Decl
		var err error
		switch {
		case tok.IsKeyword("ejercito"):
			decl, err = p.parseNamespace()
		case tok.IsKeyword("mision"):
			decl, err = p.parseMission()
		case tok.IsKeyword("global"):
			decl, err = p.parseGlobalVar()
		default:
			return nil, syntaxError(tok, `"ejercito", "mision" or "global" at top level`)
		}
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, decl)
	}
}

// parseNamespace ::= "ejercito" IDENT "{" ( MissionDef | GlobalVarDecl )* "}"
func (p *Parser) parseNamespace() (*NamespaceDecl, error) {
	if _, err := p.expectKeyword("ejercito"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent, "a namespace name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}

	ns := &NamespaceDecl{Pos: name.Span.Start, Name: name.Literal}
	for !p.peek().IsSymbol("}") {
		tok := p.peek()
		var decl Decl
		switch {
		case tok.IsKeyword("mision"):
			decl, err = p.parseMission()
		case tok.IsKeyword("global"):
			decl, err = p.parseGlobalVar()
		default:
			return nil, syntaxError(tok, `"mision", "global" or "}" in namespace body`)
		}
		if err != nil {
			return nil, err
		}
		ns.Body = append(ns.Body, decl)
	}
	p.advance()
	return ns, nil
}

// parseGlobalVar ::= "global" "var" IDENT ( "=" Expression )?
func (p *Parser) parseGlobalVar() (*GlobalVarDecl, error) {
	if _, err := p.expectKeyword("global"); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("var"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent, "a variable name")
	if err != nil {
		return nil, err
	}
	decl := &GlobalVarDecl{Pos: name.Span.Start, Name: name.Literal}
	if p.matchOperator("=") {
		p.advance()
		decl.Value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return decl, nil
}

// parseLocalVar ::= "var" IDENT ( "=" Expression )?
func (p *Parser) parseLocalVar() (*LocalVarDecl, error) {
	if _, err := p.expectKeyword("var"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent, "a variable name")
	if err != nil {
		return nil, err
	}
	decl := &LocalVarDecl{Pos: name.Span.Start, Name: name.Literal}
	if p.matchOperator("=") {
		p.advance()
		var err error
		decl.Value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return decl, nil
}

// parseMission ::= "mision" IDENT "(" Parameters? ")"
//                  ( "severidad" "=" ( "estricto" | "advertencia" ) )?
//                  "{" CheckSection? ExecuteSection ConfirmSection? "}"
func (p *Parser) parseMission() (*MissionDef, error) {
	if _, err := p.expectKeyword("mision"); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent, "a mission name")
	if err != nil {
		return nil, err
	}
	mission := &MissionDef{Pos: name.Span.Start, Name: name.Literal}

	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	if !p.peek().IsSymbol(")") {
		for {
			param, err := p.expect(TokenIdent, "a parameter name")
			if err != nil {
				return nil, err
			}
			mission.Parameters = append(mission.Parameters, param.Literal)
			if !p.peek().IsSymbol(",") {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	if p.peek().IsKeyword("severidad") {
		p.advance()
		if _, err := p.expectOperator("="); err != nil {
			return nil, err
		}
		tok := p.peek()
		switch {
		case tok.IsKeyword("estricto"):
			mission.Severity = SeverityStrict
		case tok.IsKeyword("advertencia"):
			mission.Severity = SeverityWarning
		default:
			return nil, syntaxError(tok, `"estricto" or "advertencia" after "severidad ="`)
		}
		p.advance()
	}

	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}

	if p.peek().IsKeyword("revisar") {
		tok := p.advance()
		if _, err := p.expectSymbol(":"); err != nil {
			return nil, err
		}
		stmts, err := p.parseSectionStatements("ejecutar")
		if err != nil {
			return nil, err
		}
		mission.Check = &CheckSection{Pos: tok.Span.Start, Statements: stmts}
	}

	tok, err := p.expectKeyword("ejecutar")
	if err != nil {
		return nil, syntaxError(p.peek(), `section "ejecutar" in mission body`)
	}
	if _, err := p.expectSymbol(":"); err != nil {
		return nil, err
	}
	stmts, err := p.parseSectionStatements("confirmar")
	if err != nil {
		return nil, err
	}
	mission.Execute = &ExecuteSection{Pos: tok.Span.Start, Statements: stmts}

	if p.peek().IsKeyword("confirmar") {
		tok := p.advance()
		if _, err := p.expectSymbol(":"); err != nil {
			return nil, err
		}
		stmts, err := p.parseSectionStatements("")
		if err != nil {
			return nil, err
		}
		mission.Confirm = &ConfirmSection{Pos: tok.Span.Start, Statements: stmts}
	}

	if _, err := p.expectSymbol("}"); err != nil {
		return nil, err
	}
	return mission, nil
}

// parseSectionStatements collects statements until the closing brace of
// the mission body or the keyword introducing the next section.
func (p *Parser) parseSectionStatements(nextSection string) ([]Stmt, error) {
	var stmts []Stmt
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return nil, syntaxError(tok, `"}" closing the mission body`)
		}
		if tok.IsSymbol("}") {
			return stmts, nil
		}
		if nextSection != "" && tok.IsKeyword(nextSection) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch {
	case tok.IsKeyword("var"):
		return p.parseLocalVar()
	case tok.IsKeyword("atacar"):
		return p.parseWhile()
	case tok.IsKeyword("estrategia"):
		return p.parseIfChain()
	case tok.IsKeyword("retirada"):
		return p.parseReturn()
	case tok.IsKeyword("abortar"):
		p.advance()
		return &Break{Pos: tok.Span.Start}, nil
	case tok.IsKeyword("avanzar"):
		p.advance()
		return &Continue{Pos: tok.Span.Start}, nil
	case tok.Kind == TokenIdent:
		return p.parseAssignOrCall()
	}
	return nil, syntaxError(tok, "a statement")
}

// parseWhile ::= "atacar" "mientras" "(" Expression ")" ( Block | Statement )
func (p *Parser) parseWhile() (*WhileLoop, error) {
	tok, err := p.expectKeyword("atacar")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("mientras"); err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}
	return &WhileLoop{Pos: tok.Span.Start, Condition: cond, Body: body}, nil
}

// parseIfChain ::= "estrategia" ( "si" "(" Expression ")" body )+
//                  ( "por" "defecto" body )?
func (p *Parser) parseIfChain() (*IfChain, error) {
	tok, err := p.expectKeyword("estrategia")
	if err != nil {
		return nil, err
	}
	chain := &IfChain{Pos: tok.Span.Start}

	if !p.peek().IsKeyword("si") {
		return nil, syntaxError(p.peek(), `"si" after "estrategia"`)
	}
	for p.peek().IsKeyword("si") {
		branchTok := p.advance()
		if _, err := p.expectSymbol("("); err != nil {
			return nil, err
		}
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		body, err := p.parseBlockOrStatement()
		if err != nil {
			return nil, err
		}
		chain.Branches = append(chain.Branches, IfBranch{
			Pos:       branchTok.Span.Start,
			Condition: cond,
			Body:      body,
		})
	}

	if p.peek().IsKeyword("por") {
		p.advance()
		if _, err := p.expectKeyword("defecto"); err != nil {
			return nil, err
		}
		chain.Default, err = p.parseBlockOrStatement()
		if err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// parseReturn ::= "retirada" ( "con" Expression )?
func (p *Parser) parseReturn() (*Return, error) {
	tok, err := p.expectKeyword("retirada")
	if err != nil {
		return nil, err
	}
	ret := &Return{Pos: tok.Span.Start}
	if p.peek().IsKeyword("con") {
		p.advance()
		ret.Value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// parseAssignOrCall handles statements that begin with an identifier:
// a Reference followed by an assignment operator is an Assignment, a
// Reference followed by "(" is a call statement; anything else is an
// error. No backtracking is needed because the Reference is reused as the
// call's callee.
func (p *Parser) parseAssignOrCall() (Stmt, error) {
	ref, err := p.parseReference()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind == TokenOperator && IsAssignOp(tok.Literal) {
		op := p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Assignment{
			Pos:      op.Span.Start,
			Target:   ref,
			Operator: op.Literal,
			Value:    value,
		}, nil
	}

	if tok.IsSymbol("(") {
		var callee Expr = ref
		if len(ref.Segments) == 1 {
			callee = ref.Identifier()
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		call := &Call{Pos: ref.Pos, Callee: callee, Arguments: args}
		return &CallStatement{Pos: ref.Pos, Call: call}, nil
	}

	return nil, syntaxError(tok, "an assignment operator or \"(\"")
}

// parseBlockOrStatement parses a braced block or a single statement; a
// single statement is normalized to a Block with one entry.
func (p *Parser) parseBlockOrStatement() (*Block, error) {
	if p.peek().IsSymbol("{") {
		return p.parseBlock()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &Block{Pos: stmt.Position(), Statements: []Stmt{stmt}}, nil
}

func (p *Parser) parseBlock() (*Block, error) {
	tok, err := p.expectSymbol("{")
	if err != nil {
		return nil, err
	}
	block := &Block{Pos: tok.Span.Start}
	for !p.peek().IsSymbol("}") {
		if p.peek().Kind == TokenEOF {
			return nil, syntaxError(p.peek(), `"}" closing the block`)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.advance()
	return block, nil
}

// parseReference ::= IDENT ( "." IDENT )*
func (p *Parser) parseReference() (*Reference, error) {
	first, err := p.expect(TokenIdent, "an identifier")
	if err != nil {
		return nil, err
	}
	ref := &Reference{Pos: first.Span.Start, Segments: []string{first.Literal}}
	for p.peek().IsSymbol(".") {
		p.advance()
		seg, err := p.expect(TokenIdent, "an identifier after \".\"")
		if err != nil {
			return nil, err
		}
		ref.Segments = append(ref.Segments, seg.Literal)
	}
	return ref, nil
}

// Expression precedence ladder, loosest binding first. Each level loops
// over its own operators left-associatively and defers to the next
// tighter level for operands.

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	return p.parseBinaryLevel(p.parseAnd, "||")
}

func (p *Parser) parseAnd() (Expr, error) {
	return p.parseBinaryLevel(p.parseEquality, "&&")
}

func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinaryLevel(p.parseRelational, "==", "!=")
}

func (p *Parser) parseRelational() (Expr, error) {
	return p.parseBinaryLevel(p.parseAdditive, "<", "<=", ">", ">=")
}

func (p *Parser) parseAdditive() (Expr, error) {
	return p.parseBinaryLevel(p.parseMultiplicative, "+", "-")
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, "*", "/", "%")
}

func (p *Parser) parseBinaryLevel(next func() (Expr, error), ops ...string) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchOperator(ops...) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Pos:      op.Span.Start,
			Operator: op.Literal,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

// parseUnary is right-associative: the operand of a prefix operator is
// itself a unary expression, so "!!x" nests.
func (p *Parser) parseUnary() (Expr, error) {
	if p.matchOperator("-", "!") {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: op.Span.Start, Operator: op.Literal, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix applies member access, indexing and call suffixes
// left-associatively over a primary expression.
func (p *Parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch {
		case tok.IsSymbol("."):
			p.advance()
			member, err := p.expect(TokenIdent, "an identifier after \".\"")
			if err != nil {
				return nil, err
			}
			expr = &PostfixExpr{Pos: member.Span.Start, Base: expr, Member: member.Literal}
		case tok.IsSymbol("["):
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectSymbol("]"); err != nil {
				return nil, err
			}
			expr = &PostfixExpr{Pos: tok.Span.Start, Base: expr, Index: index}
		case tok.IsSymbol("("):
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &Call{Pos: expr.Position(), Callee: expr, Arguments: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseCallArgs() ([]Expr, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var args []Expr
	if !p.peek().IsSymbol(")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.peek().IsSymbol(",") {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenIntLit:
		p.advance()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, syntaxError(tok, "a representable integer literal")
		}
		return &NumberLiteral{Pos: tok.Span.Start, Literal: tok.Literal, Int: value}, nil
	case TokenFloatLit:
		p.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, syntaxError(tok, "a representable float literal")
		}
		return &NumberLiteral{Pos: tok.Span.Start, Literal: tok.Literal, IsFloat: true, Float: value}, nil
	case TokenStringLit:
		p.advance()
		return &StringLiteral{Pos: tok.Span.Start, Value: tok.Value}, nil
	case TokenBoolLit:
		p.advance()
		return &BooleanLiteral{Pos: tok.Span.Start, Value: tok.Literal == "afirmativo"}, nil
	case TokenNullLit:
		p.advance()
		return &NullLiteral{Pos: tok.Span.Start}, nil
	case TokenIdent:
		p.advance()
		return &Identifier{Pos: tok.Span.Start, Name: tok.Literal}, nil
	case TokenSymbol:
		if tok.Literal == "(" {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, syntaxError(tok, "a primary expression")
}
