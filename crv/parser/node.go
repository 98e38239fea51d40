package parser

// The AST is a closed set of tagged variants: one struct per node kind,
// grouped by the marker interfaces below. Nodes are built bottom-up by the
// parser and never mutated afterwards; ownership is strictly tree-shaped
// (no parent pointers, no cycles).

// Node is the base interface of every AST node. Position returns the
// source position of the triggering token; the zero Position means the
// position is absent.
type Node interface {
	Position() Position
}

// Decl is a declaration that may appear in a Program or namespace body.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a mission section or block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Severity of a mission's check section failures.
type Severity string

const (
	SeverityNone    Severity = ""
	SeverityStrict  Severity = "strict"
	SeverityWarning Severity = "warning"
)

// Program is the root node. Its body contains only NamespaceDecl,
// MissionDef and GlobalVarDecl nodes; the parser enforces this.
type Program struct {
	Body []Decl
}

func (p *Program) Position() Position { return Position{} }

// NamespaceDecl groups missions and globals under a name (the "ejercito"
// construct).
type NamespaceDecl struct {
	Pos  Position
	Name string
	Body []Decl
}

// GlobalVarDecl declares a global variable with an optional initializer.
type GlobalVarDecl struct {
	Pos   Position
	Name  string
	Value Expr
}

// LocalVarDecl declares a mission-local variable with an optional
// initializer.
type LocalVarDecl struct {
	Pos   Position
	Name  string
	Value Expr
}

// MissionDef is the language's function definition: an optional check
// section (preconditions), a required execute section (body) and an
// optional confirm section (postconditions), in that order.
type MissionDef struct {
	Pos        Position
	Name       string
	Parameters []string
	Severity   Severity
	Check      *CheckSection
	Execute    *ExecuteSection
	Confirm    *ConfirmSection
}

type CheckSection struct {
	Pos        Position
	Statements []Stmt
}

type ExecuteSection struct {
	Pos        Position
	Statements []Stmt
}

type ConfirmSection struct {
	Pos        Position
	Statements []Stmt
}

// Assignment assigns to a Reference target with one of = += -= *= /= %=.
type Assignment struct {
	Pos      Position
	Target   *Reference
	Operator string
	Value    Expr
}

// WhileLoop is the "atacar mientras" loop. A single-statement body is
// normalized to a Block with one statement.
type WhileLoop struct {
	Pos       Position
	Condition Expr
	Body      *Block
}

// IfChain is the "estrategia" conditional: one or more si-branches and at
// most one trailing default block.
type IfChain struct {
	Pos      Position
	Branches []IfBranch
	Default  *Block
}

type IfBranch struct {
	Pos       Position
	Condition Expr
	Body      *Block
}

// Return is "retirada", optionally "retirada con <expr>".
type Return struct {
	Pos   Position
	Value Expr
}

type Break struct {
	Pos Position
}

type Continue struct {
	Pos Position
}

// CallStatement is a call in statement position.
type CallStatement struct {
	Pos  Position
	Call *Call
}

type Block struct {
	Pos        Position
	Statements []Stmt
}

type BinaryExpr struct {
	Pos      Position
	Operator string
	Left     Expr
	Right    Expr
}

type UnaryExpr struct {
	Pos      Position
	Operator string
	Operand  Expr
}

// PostfixExpr is one postfix step over a base expression: either a member
// access (Member set) or an indexing (Index set). Chains are built
// left-associatively, each step owning the previous one as Base.
type PostfixExpr struct {
	Pos    Position
	Base   Expr
	Member string
	Index  Expr
}

type Call struct {
	Pos       Position
	Callee    Expr
	Arguments []Expr
}

// Reference is a dotted access path such as a.b.c. A single-segment
// Reference is interchangeable with an Identifier where the grammar
// position requires one.
type Reference struct {
	Pos      Position
	Segments []string
}

// Identifier collapses a single-segment Reference in expression position.
func (r *Reference) Identifier() *Identifier {
	return &Identifier{Pos: r.Pos, Name: r.Segments[0]}
}

type Identifier struct {
	Pos  Position
	Name string
}

type NumberLiteral struct {
	Pos     Position
	Literal string
	IsFloat bool
	Int     int64
	Float   float64
}

// Subkind reports "integer" or "float".
func (n *NumberLiteral) Subkind() string {
	if n.IsFloat {
		return "float"
	}
	return "integer"
}

type StringLiteral struct {
	Pos   Position
	Value string
}

type BooleanLiteral struct {
	Pos   Position
	Value bool
}

type NullLiteral struct {
	Pos Position
}

func (n *NamespaceDecl) Position() Position  { return n.Pos }
func (n *GlobalVarDecl) Position() Position  { return n.Pos }
func (n *LocalVarDecl) Position() Position   { return n.Pos }
func (n *MissionDef) Position() Position     { return n.Pos }
func (n *CheckSection) Position() Position   { return n.Pos }
func (n *ExecuteSection) Position() Position { return n.Pos }
func (n *ConfirmSection) Position() Position { return n.Pos }
func (n *Assignment) Position() Position     { return n.Pos }
func (n *WhileLoop) Position() Position      { return n.Pos }
func (n *IfChain) Position() Position        { return n.Pos }
func (n *IfBranch) Position() Position       { return n.Pos }
func (n *Return) Position() Position         { return n.Pos }
func (n *Break) Position() Position          { return n.Pos }
func (n *Continue) Position() Position       { return n.Pos }
func (n *CallStatement) Position() Position  { return n.Pos }
func (n *Block) Position() Position          { return n.Pos }
func (n *BinaryExpr) Position() Position     { return n.Pos }
func (n *UnaryExpr) Position() Position      { return n.Pos }
func (n *PostfixExpr) Position() Position    { return n.Pos }
func (n *Call) Position() Position           { return n.Pos }
func (n *Reference) Position() Position      { return n.Pos }
func (n *Identifier) Position() Position     { return n.Pos }
func (n *NumberLiteral) Position() Position  { return n.Pos }
func (n *StringLiteral) Position() Position  { return n.Pos }
func (n *BooleanLiteral) Position() Position { return n.Pos }
func (n *NullLiteral) Position() Position    { return n.Pos }

func (*NamespaceDecl) declNode() {}
func (*GlobalVarDecl) declNode() {}
func (*MissionDef) declNode()    {}

func (*LocalVarDecl) stmtNode()  {}
func (*Assignment) stmtNode()    {}
func (*WhileLoop) stmtNode()     {}
func (*IfChain) stmtNode()       {}
func (*Return) stmtNode()        {}
func (*Break) stmtNode()         {}
func (*Continue) stmtNode()      {}
func (*CallStatement) stmtNode() {}

func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*PostfixExpr) exprNode()    {}
func (*Call) exprNode()           {}
func (*Reference) exprNode()      {}
func (*Identifier) exprNode()     {}
func (*NumberLiteral) exprNode()  {}
func (*StringLiteral) exprNode()  {}
func (*BooleanLiteral) exprNode() {}
func (*NullLiteral) exprNode()    {}
