package ast

import "strings"

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func (n *NumberLit) String() string { return FormatNumber(n.Value) }
func (n *StringLit) String() string { return "'" + n.Value + "'" }
func (n *BoolLit) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}
func (n *NoneLit) String() string    { return "none" }
func (n *Identifier) String() string { return n.Name }

func (n *Compound) String() string { return "[" + joinNodes(n.Stmts) + "]" }
func (n *Block) String() string    { return "{" + joinNodes(n.Stmts) + "}" }

func (n *VarDecl) String() string {
	if n.Value != nil {
		return "let " + n.Name + " = " + n.Value.String() + ";"
	}
	return "let " + n.Name + ";"
}

func (n *Assign) String() string { return n.Name + " = " + n.Expr.String() + ";" }

func (n *BinOp) String() string {
	return n.Left.String() + " " + n.Op.String() + " " + n.Right.String()
}

func (n *UnaryOp) String() string { return n.Op.String() + n.Expr.String() }

func (n *FunctionDecl) String() string {
	return "function " + n.Name + "(" + strings.Join(n.Params, ", ") + ") " + n.Body.String()
}

func (n *Lambda) String() string {
	return "|" + strings.Join(n.Params, ", ") + "| " + n.Body.String()
}

func (n *FunctionCall) String() string {
	return n.Callee.String() + "(" + joinNodes(n.Args) + ")"
}

func (n *ExprStmt) String() string { return n.Inner.String() }

func (n *ObjectLit) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.Key + ": " + f.Value.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (n *Index) String() string { return n.Target.String() + "." + n.Key }

func (n *SetProperty) String() string {
	return n.Target.String() + "." + n.Key + " = " + n.Value.String() + ";"
}
