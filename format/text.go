package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/crvicio/crvc/crv/parser"
)

// TextEncoder renders the node tree as an indented preorder listing, one
// node per line.
type TextEncoder struct {
	w       io.Writer
	program *parser.Program
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(program *parser.Program) error {
	e.program = program
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeNode(&sb, e.program, 0)
	return []byte(sb.String()), nil
}

func line(sb *strings.Builder, depth int, format string, args ...any) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, format, args...)
	sb.WriteByte('\n')
}

func writeNode(sb *strings.Builder, n parser.Node, depth int) {
	switch node := n.(type) {
	case *parser.Program:
		line(sb, depth, "Program")
		for _, decl := range node.Body {
			writeNode(sb, decl, depth+1)
		}
	case *parser.NamespaceDecl:
		line(sb, depth, "NamespaceDecl %s", node.Name)
		for _, decl := range node.Body {
			writeNode(sb, decl, depth+1)
		}
	case *parser.GlobalVarDecl:
		line(sb, depth, "GlobalVarDecl %s", node.Name)
		if node.Value != nil {
			writeNode(sb, node.Value, depth+1)
		}
	case *parser.LocalVarDecl:
		line(sb, depth, "LocalVarDecl %s", node.Name)
		if node.Value != nil {
			writeNode(sb, node.Value, depth+1)
		}
	case *parser.MissionDef:
		header := fmt.Sprintf("MissionDef %s(%s)", node.Name, strings.Join(node.Parameters, ", "))
		if node.Severity != parser.SeverityNone {
			header += " severity=" + string(node.Severity)
		}
		line(sb, depth, "%s", header)
		if node.Check != nil {
			writeNode(sb, node.Check, depth+1)
		}
		writeNode(sb, node.Execute, depth+1)
		if node.Confirm != nil {
			writeNode(sb, node.Confirm, depth+1)
		}
	case *parser.CheckSection:
		line(sb, depth, "CheckSection")
		writeStmts(sb, node.Statements, depth+1)
	case *parser.ExecuteSection:
		line(sb, depth, "ExecuteSection")
		writeStmts(sb, node.Statements, depth+1)
	case *parser.ConfirmSection:
		line(sb, depth, "ConfirmSection")
		writeStmts(sb, node.Statements, depth+1)
	case *parser.Assignment:
		line(sb, depth, "Assignment %s", node.Operator)
		writeNode(sb, node.Target, depth+1)
		writeNode(sb, node.Value, depth+1)
	case *parser.WhileLoop:
		line(sb, depth, "WhileLoop")
		writeNode(sb, node.Condition, depth+1)
		writeNode(sb, node.Body, depth+1)
	case *parser.IfChain:
		line(sb, depth, "IfChain")
		for i := range node.Branches {
			branch := &node.Branches[i]
			line(sb, depth+1, "IfBranch")
			writeNode(sb, branch.Condition, depth+2)
			writeNode(sb, branch.Body, depth+2)
		}
		if node.Default != nil {
			line(sb, depth+1, "Default")
			writeStmts(sb, node.Default.Statements, depth+2)
		}
	case *parser.Return:
		line(sb, depth, "Return")
		if node.Value != nil {
			writeNode(sb, node.Value, depth+1)
		}
	case *parser.Break:
		line(sb, depth, "Break")
	case *parser.Continue:
		line(sb, depth, "Continue")
	case *parser.CallStatement:
		line(sb, depth, "CallStatement")
		writeNode(sb, node.Call, depth+1)
	case *parser.Block:
		line(sb, depth, "Block")
		writeStmts(sb, node.Statements, depth+1)
	case *parser.BinaryExpr:
		line(sb, depth, "BinaryExpr %s", node.Operator)
		writeNode(sb, node.Left, depth+1)
		writeNode(sb, node.Right, depth+1)
	case *parser.UnaryExpr:
		line(sb, depth, "UnaryExpr %s", node.Operator)
		writeNode(sb, node.Operand, depth+1)
	case *parser.PostfixExpr:
		if node.Member != "" {
			line(sb, depth, "PostfixExpr .%s", node.Member)
			writeNode(sb, node.Base, depth+1)
		} else {
			line(sb, depth, "PostfixExpr []")
			writeNode(sb, node.Base, depth+1)
			writeNode(sb, node.Index, depth+1)
		}
	case *parser.Call:
		line(sb, depth, "Call")
		writeNode(sb, node.Callee, depth+1)
		for _, arg := range node.Arguments {
			writeNode(sb, arg, depth+1)
		}
	case *parser.Reference:
		line(sb, depth, "Reference %s", strings.Join(node.Segments, "."))
	case *parser.Identifier:
		line(sb, depth, "Identifier %s", node.Name)
	case *parser.NumberLiteral:
		line(sb, depth, "NumberLiteral %s %s", node.Subkind(), node.Literal)
	case *parser.StringLiteral:
		line(sb, depth, "StringLiteral %q", node.Value)
	case *parser.BooleanLiteral:
		line(sb, depth, "BooleanLiteral %t", node.Value)
	case *parser.NullLiteral:
		line(sb, depth, "NullLiteral")
	default:
		line(sb, depth, "%T", n)
	}
}

func writeStmts(sb *strings.Builder, stmts []parser.Stmt, depth int) {
	for _, stmt := range stmts {
		writeNode(sb, stmt, depth)
	}
}
