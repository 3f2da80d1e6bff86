package interp

import (
	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/token"
)

// eval walks node under env, the environment chain active at this point
// in evaluation, honoring opts (spec.md §4.6, §6). It is the runtime
// mirror of semantic.Analyzer.visit: the two switches cover the same
// node set and are kept in the same order deliberately, so a reviewer
// diffing them can see at a glance that nothing was missed.
//
// Grounded on the teacher's internal/interp evaluator (a single
// type-switching Eval method walking the shared ast.Node tree) and on
// original_source/src/interpreter.rs's visit_* dispatch.
func (i *Interpreter) eval(node ast.Node, env *Environment, opts Options) (Value, *nerr.Error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		return Number{Value: n.Value}, nil
	case *ast.StringLit:
		return String{Value: n.Value}, nil
	case *ast.BoolLit:
		return Boolean{Value: n.Value}, nil
	case *ast.NoneLit:
		return None{}, nil
	case *ast.Identifier:
		if v, ok := env.LookUp(n.Name, false); ok {
			return v, nil
		}
		return nil, nerr.At(nerr.ReferenceError, n.Pos(), "", nerr.MsgUndefined, n.Name)
	case *ast.Compound:
		return i.evalCompound(n, env, opts)
	case *ast.Block:
		return i.evalStmts(n.Stmts, env, opts)
	case *ast.VarDecl:
		return i.evalVarDecl(n, env, opts)
	case *ast.Assign:
		return i.evalAssign(n, env, opts)
	case *ast.BinOp:
		return i.evalBinOp(n, env, opts)
	case *ast.UnaryOp:
		return i.evalUnaryOp(n, env, opts)
	case *ast.FunctionDecl:
		return i.evalFunctionDecl(n, env, opts)
	case *ast.Lambda:
		return i.evalLambda(n, env, opts)
	case *ast.FunctionCall:
		return i.evalFunctionCall(n, env, opts)
	case *ast.ExprStmt:
		return i.eval(n.Inner, env, opts)
	case *ast.ObjectLit:
		return i.evalObjectLit(n, env, opts)
	case *ast.Index:
		return i.evalIndex(n, env, opts)
	case *ast.SetProperty:
		return i.evalSetProperty(n, env, opts)
	default:
		return nil, nerr.At(nerr.SyntaxError, node.Pos(), "", nerr.MsgUnknownNode, "evaluation")
	}
}

// evalStmts evaluates a sequence of statements and yields the value of
// the last one (None for an empty sequence), the expression-oriented
// convention spec.md uses for block and lambda bodies (spec.md §3).
func (i *Interpreter) evalStmts(stmts []ast.Node, env *Environment, opts Options) (Value, *nerr.Error) {
	var result Value = None{}
	for _, stmt := range stmts {
		v, err := i.eval(stmt, env, opts)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalCompound evaluates the top-level program. Unlike evalStmts, it
// rolls back a top-level declaration's persistent symbol-table entry
// when the declaration's own evaluation fails, so a REPL input that
// errors mid-statement never leaves a name declared-but-unbound for
// the next input to trip over (spec.md §4.6/§7; see
// semantic.SymbolTable.Remove).
func (i *Interpreter) evalCompound(n *ast.Compound, env *Environment, opts Options) (Value, *nerr.Error) {
	var result Value = None{}
	for _, stmt := range n.Stmts {
		v, err := i.eval(stmt, env, opts)
		if err != nil {
			if !opts.DisableDeclaration {
				if name, ok := declaredName(stmt); ok {
					i.scope.Remove(name)
					env.Undefine(name)
				}
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}

// declaredName returns the name a top-level VarDecl or FunctionDecl
// statement introduces, used only to drive evalCompound's rollback.
func declaredName(stmt ast.Node) (string, bool) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return n.Name, true
	case *ast.FunctionDecl:
		return n.Name, true
	case *ast.ExprStmt:
		return declaredName(n.Inner)
	default:
		return "", false
	}
}

func (i *Interpreter) evalVarDecl(n *ast.VarDecl, env *Environment, opts Options) (Value, *nerr.Error) {
	var val Value = None{}
	if n.Value != nil {
		v, err := i.eval(n.Value, env, opts)
		if err != nil {
			return nil, err
		}
		val = v
	}
	if !opts.DisableDeclaration {
		env.Define(n.Name, val)
	}
	return None{}, nil
}

func (i *Interpreter) evalAssign(n *ast.Assign, env *Environment, opts Options) (Value, *nerr.Error) {
	val, err := i.eval(n.Expr, env, opts)
	if err != nil {
		return nil, err
	}
	if !env.Assign(n.Name, val) {
		return nil, nerr.At(nerr.ReferenceError, n.Pos(), "", nerr.MsgAssignUndefined, n.Name)
	}
	return val, nil
}

func (i *Interpreter) evalFunctionDecl(n *ast.FunctionDecl, env *Environment, opts Options) (Value, *nerr.Error) {
	fn := Function{Kind: UserFunction, Name: n.Name, Params: n.Params, Body: n.Body, Env: env}
	if !opts.DisableDeclaration {
		env.Define(n.Name, fn)
	}
	return None{}, nil
}

func (i *Interpreter) evalLambda(n *ast.Lambda, env *Environment, opts Options) (Value, *nerr.Error) {
	fn := Function{Kind: LambdaFunction, Name: n.ID, Params: n.Params, Body: n.Body, Env: env}
	if !opts.DisableDeclaration {
		env.Define(n.ID, fn)
	}
	return fn, nil
}

func (i *Interpreter) evalFunctionCall(n *ast.FunctionCall, env *Environment, opts Options) (Value, *nerr.Error) {
	if opts.DisableCalls {
		return nil, nerr.New(nerr.UnknownError, nerr.MsgCallsDisabled)
	}

	calleeVal, err := i.eval(n.Callee, env, opts)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(Function)
	if !ok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgNotAFunction, calleeVal.Display(true))
	}

	args := make([]Value, len(n.Args))
	for idx, a := range n.Args {
		v, err := i.eval(a, env, opts)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if fn.Kind == BuiltInFunction {
		return fn.Native(i, args)
	}

	// Fewer arguments than parameters binds the remainder to None rather
	// than raising an arity error (spec.md §4.6); extra arguments are
	// simply unbound since there's no parameter to receive them.
	callEnv := NewEnclosed(fn.Env)
	for idx, param := range fn.Params {
		if idx < len(args) {
			callEnv.Define(param, args[idx])
		} else {
			callEnv.Define(param, None{})
		}
	}
	return i.eval(fn.Body, callEnv, opts)
}

func (i *Interpreter) evalObjectLit(n *ast.ObjectLit, env *Environment, opts Options) (Value, *nerr.Error) {
	obj := NewObject()
	for _, f := range n.Fields {
		v, err := i.eval(f.Value, env, opts)
		if err != nil {
			return nil, err
		}
		obj.Fields[f.Key] = v
	}
	return obj, nil
}

func (i *Interpreter) evalIndex(n *ast.Index, env *Environment, opts Options) (Value, *nerr.Error) {
	target, err := i.eval(n.Target, env, opts)
	if err != nil {
		return nil, err
	}
	obj, ok := target.(Object)
	if !ok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgNotAnObject, n.Key, target.Type())
	}
	if v, ok := obj.Fields[n.Key]; ok {
		return v, nil
	}
	return None{}, nil
}

func (i *Interpreter) evalSetProperty(n *ast.SetProperty, env *Environment, opts Options) (Value, *nerr.Error) {
	target, err := i.eval(n.Target, env, opts)
	if err != nil {
		return nil, err
	}
	obj, ok := target.(Object)
	if !ok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgNotAnObject, n.Key, target.Type())
	}
	val, err := i.eval(n.Value, env, opts)
	if err != nil {
		return nil, err
	}
	obj.Fields[n.Key] = val
	return val, nil
}

func (i *Interpreter) evalUnaryOp(n *ast.UnaryOp, env *Environment, opts Options) (Value, *nerr.Error) {
	v, err := i.eval(n.Expr, env, opts)
	if err != nil {
		return nil, err
	}

	if n.Op.Type == token.Operator && n.Op.Op == token.Not {
		return Boolean{Value: !Truthy(v)}, nil
	}

	num, ok := v.(Number)
	if !ok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgTypeMismatchUnary, n.Op.String(), v.Type())
	}
	switch n.Op.Op {
	case token.Add:
		return num, nil
	case token.Sub:
		return Number{Value: -num.Value}, nil
	default:
		return nil, nerr.At(nerr.SyntaxError, n.Pos(), "", nerr.MsgUnknownNode, "unary operator")
	}
}
