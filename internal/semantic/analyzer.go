package semantic

import (
	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
)

// Options mirrors the evaluator's Options (spec.md §6): when
// DisableDeclaration is set, `let`/`function` bindings are skipped so a
// REPL hint can preview an expression without mutating accumulated
// names (spec.md §4.4 "disable_decleration").
type Options struct {
	DisableDeclaration bool
}

// Analyzer runs the semantic pass against a long-lived scope table
// shared with the interpreter, so names declared by one REPL input
// remain visible to the next (spec.md §4.4).
type Analyzer struct {
	scope   *SymbolTable
	Options Options
}

// New creates an Analyzer rooted at scope. scope is owned by the
// caller (normally the long-lived Interpreter) and mutated in place.
func New(scope *SymbolTable) *Analyzer {
	return &Analyzer{scope: scope}
}

// Analyze walks program, resolving names and checking for duplicate
// declarations. It returns the first error encountered (spec.md §4.2
// "no error recovery" applies equally to this pass).
func (a *Analyzer) Analyze(program *ast.Compound) *nerr.Error {
	for _, stmt := range program.Stmts {
		if err := a.visit(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) visit(n ast.Node) *nerr.Error {
	switch node := n.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit, *ast.NoneLit:
		return nil
	case *ast.Identifier:
		if _, ok := a.scope.LookUp(node.Name, false); !ok {
			return nerr.At(nerr.ReferenceError, node.Pos(), "", nerr.MsgUndefined, node.Name)
		}
		return nil
	case *ast.Compound:
		for _, s := range node.Stmts {
			if err := a.visit(s); err != nil {
				return err
			}
		}
		return nil
	case *ast.Block:
		for _, s := range node.Stmts {
			if err := a.visit(s); err != nil {
				return err
			}
		}
		return nil
	case *ast.VarDecl:
		return a.visitVarDecl(node)
	case *ast.Assign:
		return a.visitAssign(node)
	case *ast.BinOp:
		if err := a.visit(node.Left); err != nil {
			return err
		}
		return a.visit(node.Right)
	case *ast.UnaryOp:
		return a.visit(node.Expr)
	case *ast.FunctionDecl:
		return a.visitFunctionDecl(node)
	case *ast.Lambda:
		return a.visitLambda(node)
	case *ast.FunctionCall:
		return a.visitFunctionCall(node)
	case *ast.ExprStmt:
		return a.visit(node.Inner)
	case *ast.ObjectLit:
		for _, f := range node.Fields {
			if err := a.visit(f.Value); err != nil {
				return err
			}
		}
		return nil
	case *ast.Index:
		return a.visit(node.Target)
	case *ast.SetProperty:
		if err := a.visit(node.Target); err != nil {
			return err
		}
		return a.visit(node.Value)
	default:
		return nerr.At(nerr.SyntaxError, n.Pos(), "", nerr.MsgUnknownNode, "semantic analysis")
	}
}

func (a *Analyzer) visitVarDecl(node *ast.VarDecl) *nerr.Error {
	if node.Value != nil {
		if err := a.visit(node.Value); err != nil {
			return err
		}
	}
	if a.Options.DisableDeclaration {
		return nil
	}
	if _, exists := a.scope.LookUp(node.Name, true); exists {
		return nerr.At(nerr.SyntaxError, node.Pos(), "", nerr.MsgDuplicateDecl, node.Name)
	}
	a.scope.Insert(Symbol{Name: node.Name, Kind: VarSymbol})
	return nil
}

func (a *Analyzer) visitAssign(node *ast.Assign) *nerr.Error {
	if err := a.visit(node.Expr); err != nil {
		return err
	}
	if _, ok := a.scope.LookUp(node.Name, false); !ok {
		return nerr.At(nerr.ReferenceError, node.Pos(), "", nerr.MsgAssignUndefined, node.Name)
	}
	return nil
}

func (a *Analyzer) visitFunctionDecl(node *ast.FunctionDecl) *nerr.Error {
	if !a.Options.DisableDeclaration {
		if _, exists := a.scope.LookUp(node.Name, true); exists {
			return nerr.At(nerr.SyntaxError, node.Pos(), "", nerr.MsgDuplicateDecl, node.Name)
		}
		a.scope.Insert(Symbol{Name: node.Name, Kind: FunctionSymbol, Params: node.Params})
	}
	return a.visitFunctionBody(node.Name, node.Params, node.Body)
}

func (a *Analyzer) visitLambda(node *ast.Lambda) *nerr.Error {
	return a.visitFunctionBody(node.ID, node.Params, node.Body)
}

// visitFunctionBody pushes a child scope named scopeName one level
// deeper, binds each parameter as a Var symbol, recurses into body,
// then pops. Unlike the reference implementation (spec.md §9, §4.4),
// the scope is popped on every exit path, including errors, so a
// failed declaration never leaves the REPL's persistent scope table
// one level too deep for the next input.
func (a *Analyzer) visitFunctionBody(scopeName string, params []string, body ast.Node) *nerr.Error {
	child := NewChild(a.scope, scopeName)
	for _, param := range params {
		child.Insert(Symbol{Name: param, Kind: VarSymbol})
	}

	saved := a.scope
	a.scope = child
	err := a.visit(body)
	a.scope = saved

	return err
}

// visitFunctionCall performs only name-resolution of the callee and its
// arguments; arity checking is deferred to runtime (spec.md §4.4:
// "structural arity checking is OPTIONAL in this pass").
func (a *Analyzer) visitFunctionCall(node *ast.FunctionCall) *nerr.Error {
	if err := a.visit(node.Callee); err != nil {
		return err
	}
	for _, arg := range node.Args {
		if err := a.visit(arg); err != nil {
			return err
		}
	}
	return nil
}
