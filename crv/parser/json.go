package parser

import "encoding/json"

// JSON rendering is a direct structural serialization of the node tree:
// a "type" tag plus the variant's fields, sequences as arrays, absent
// optional fields omitted. Positions appear as "line"/"column" when set.

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(NodeJSON(p))
}

// NodeJSON converts a node (and its subtree) into the generic value that
// encoding/json renders.
func NodeJSON(n Node) map[string]any {
	if n == nil {
		return nil
	}

	obj := map[string]any{}
	tag := ""

	switch node := n.(type) {
	case *Program:
		tag = "Program"
		obj["body"] = nodesJSON(node.Body)
	case *NamespaceDecl:
		tag = "NamespaceDecl"
		obj["name"] = node.Name
		obj["body"] = nodesJSON(node.Body)
	case *GlobalVarDecl:
		tag = "GlobalVarDecl"
		obj["name"] = node.Name
		if node.Value != nil {
			obj["value"] = NodeJSON(node.Value)
		}
	case *LocalVarDecl:
		tag = "LocalVarDecl"
		obj["name"] = node.Name
		if node.Value != nil {
			obj["value"] = NodeJSON(node.Value)
		}
	case *MissionDef:
		tag = "MissionDef"
		obj["name"] = node.Name
		params := node.Parameters
		if params == nil {
			params = []string{}
		}
		obj["parameters"] = params
		if node.Severity != SeverityNone {
			obj["severity"] = string(node.Severity)
		}
		if node.Check != nil {
			obj["check"] = NodeJSON(node.Check)
		}
		obj["execute"] = NodeJSON(node.Execute)
		if node.Confirm != nil {
			obj["confirm"] = NodeJSON(node.Confirm)
		}
	case *CheckSection:
		tag = "CheckSection"
		obj["statements"] = nodesJSON(node.Statements)
	case *ExecuteSection:
		tag = "ExecuteSection"
		obj["statements"] = nodesJSON(node.Statements)
	case *ConfirmSection:
		tag = "ConfirmSection"
		obj["statements"] = nodesJSON(node.Statements)
	case *Assignment:
		tag = "Assignment"
		obj["target"] = NodeJSON(node.Target)
		obj["operator"] = node.Operator
		obj["value"] = NodeJSON(node.Value)
	case *WhileLoop:
		tag = "WhileLoop"
		obj["condition"] = NodeJSON(node.Condition)
		obj["body"] = NodeJSON(node.Body)
	case *IfChain:
		tag = "IfChain"
		branches := make([]any, len(node.Branches))
		for i := range node.Branches {
			branch := map[string]any{
				"condition": NodeJSON(node.Branches[i].Condition),
				"body":      NodeJSON(node.Branches[i].Body),
			}
			addPosition(branch, node.Branches[i].Pos)
			branches[i] = branch
		}
		obj["branches"] = branches
		if node.Default != nil {
			obj["default"] = NodeJSON(node.Default)
		}
	case *Return:
		tag = "Return"
		if node.Value != nil {
			obj["value"] = NodeJSON(node.Value)
		}
	case *Break:
		tag = "Break"
	case *Continue:
		tag = "Continue"
	case *CallStatement:
		tag = "CallStatement"
		obj["call"] = NodeJSON(node.Call)
	case *Block:
		tag = "Block"
		obj["statements"] = nodesJSON(node.Statements)
	case *BinaryExpr:
		tag = "BinaryExpr"
		obj["operator"] = node.Operator
		obj["left"] = NodeJSON(node.Left)
		obj["right"] = NodeJSON(node.Right)
	case *UnaryExpr:
		tag = "UnaryExpr"
		obj["operator"] = node.Operator
		obj["operand"] = NodeJSON(node.Operand)
	case *PostfixExpr:
		tag = "PostfixExpr"
		obj["base"] = NodeJSON(node.Base)
		if node.Index != nil {
			obj["index"] = NodeJSON(node.Index)
		} else {
			obj["member"] = node.Member
		}
	case *Call:
		tag = "Call"
		obj["callee"] = NodeJSON(node.Callee)
		obj["arguments"] = nodesJSON(node.Arguments)
	case *Reference:
		tag = "Reference"
		obj["segments"] = node.Segments
	case *Identifier:
		tag = "Identifier"
		obj["name"] = node.Name
	case *NumberLiteral:
		tag = "NumberLiteral"
		if node.IsFloat {
			obj["value"] = node.Float
		} else {
			obj["value"] = node.Int
		}
		obj["subkind"] = node.Subkind()
	case *StringLiteral:
		tag = "StringLiteral"
		obj["value"] = node.Value
	case *BooleanLiteral:
		tag = "BooleanLiteral"
		obj["value"] = node.Value
	case *NullLiteral:
		tag = "NullLiteral"
	default:
		tag = "Unknown"
	}

	obj["type"] = tag
	addPosition(obj, n.Position())
	return obj
}

func addPosition(obj map[string]any, pos Position) {
	if pos.Line != 0 {
		obj["line"] = pos.Line
		obj["column"] = pos.Column
	}
}

func nodesJSON[T Node](nodes []T) []any {
	result := make([]any, len(nodes))
	for i, n := range nodes {
		result[i] = NodeJSON(n)
	}
	return result
}
