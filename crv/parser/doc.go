// Package parser implements the front end of the C-rvicio Militar
// language: a single-pass lexer turning source text into classified
// tokens, and a recursive-descent parser turning the token sequence into
// an abstract syntax tree rooted at a Program node.
//
// # Pipeline
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// Both passes are sequential, deterministic and free of shared state:
// identical input always yields an identical token sequence and a
// structurally identical tree.
//
// # Lexing
//
// The lexer scans left to right with a byte cursor, tracking 1-indexed
// line and column. At each position the longest, most specific match
// wins: comments and whitespace first, then string literals, floats
// before ints, multi-character operators before their single-character
// prefixes, then symbols and identifiers. Identifier lexemes are
// reclassified afterwards: reserved words become KEYWORD, afirmativo and
// negativo become BOOL_LIT, nulo becomes NULL_LIT. Environment mission
// names are plain IDENT tokens; their meaning is positional.
//
// Two modes alter the output. Tolerant() substitutes one ERROR token per
// unrecognized character instead of failing, deferring rejection to the
// parser; unterminated block comments and string literals remain fatal.
// EmitNewlines() adds NEWLINE tokens for diagnostics; the parser drops
// them before consuming the stream.
//
// # Parsing
//
// One grammar production per method, one token of lookahead, no
// backtracking. Operator precedence is a ladder of eight levels, loosest
// first: || ; && ; == != ; < <= > >= ; + - ; * / % ; unary - ! ; postfix
// access, indexing and calls over a primary. The parser is fail-fast:
// the first expectation mismatch aborts the parse and is returned as a
// *SyntaxError carrying the offending token and its position. There is
// no error recovery and no multi-error reporting.
//
// # Example
//
//	program, err := parser.ParseSource(src, "drill.crv")
//	if err != nil {
//		var serr *parser.SyntaxError
//		if errors.As(err, &serr) {
//			// serr.Pos, serr.Found, serr.Expected
//		}
//	}
package parser
