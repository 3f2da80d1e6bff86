package interp

import (
	"math"
	"reflect"
	"strings"

	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/token"
)

// evalBinOp dispatches a binary operator application (spec.md §4.6).
// `and`/`or` are handled first since they short-circuit and never
// evaluate their right operand unless needed; every other operator
// evaluates both sides unconditionally before dispatching on type.
func (i *Interpreter) evalBinOp(n *ast.BinOp, env *Environment, opts Options) (Value, *nerr.Error) {
	if n.Op.Type == token.Keyword {
		return i.evalLogical(n, env, opts)
	}

	left, err := i.eval(n.Left, env, opts)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(n.Right, env, opts)
	if err != nil {
		return nil, err
	}

	switch n.Op.Op {
	case token.Add:
		return evalAdd(n, left, right)
	case token.Sub:
		return numericOp(n, left, right, func(a, b float64) float64 { return a - b })
	case token.Mul:
		return evalMul(n, left, right)
	case token.Div:
		return numericOp(n, left, right, func(a, b float64) float64 { return a / b })
	case token.Mod:
		return numericOp(n, left, right, math.Mod)
	case token.Pow:
		return numericOp(n, left, right, math.Pow)
	case token.Eq:
		return Boolean{Value: valuesEqual(left, right)}, nil
	case token.Ne:
		return Boolean{Value: !valuesEqual(left, right)}, nil
	case token.Lt, token.Le, token.Gt, token.Ge:
		return evalCompare(n, left, right)
	default:
		return nil, nerr.At(nerr.SyntaxError, n.Pos(), "", nerr.MsgUnknownNode, "binary operator")
	}
}

// evalLogical implements `and`/`or` as short-circuiting, value-returning
// operators (spec.md §4.6, §9): `a and b` evaluates (and yields) only a
// when a is falsy, otherwise yields b; `a or b` yields only a when a is
// truthy, otherwise yields b. This is the same "decide with the left
// operand alone, otherwise fall through to the right" convention most
// dynamically-typed scripting languages use, rather than coercing the
// result to Boolean.
func (i *Interpreter) evalLogical(n *ast.BinOp, env *Environment, opts Options) (Value, *nerr.Error) {
	left, err := i.eval(n.Left, env, opts)
	if err != nil {
		return nil, err
	}

	if n.Op.Kw == token.And && !Truthy(left) {
		return left, nil
	}
	if n.Op.Kw == token.Or && Truthy(left) {
		return left, nil
	}

	return i.eval(n.Right, env, opts)
}

func evalAdd(n *ast.BinOp, left, right Value) (Value, *nerr.Error) {
	if ln, ok := left.(Number); ok {
		if rn, ok := right.(Number); ok {
			return Number{Value: ln.Value + rn.Value}, nil
		}
	}
	if ls, ok := left.(String); ok {
		if rs, ok := right.(String); ok {
			return String{Value: ls.Value + rs.Value}, nil
		}
	}
	return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgTypeMismatchBinary, "+", left.Type(), right.Type())
}

// evalMul additionally implements string repetition (spec.md §4.6):
// String * Number or Number * String repeats the string, provided the
// number is a non-negative integer.
func evalMul(n *ast.BinOp, left, right Value) (Value, *nerr.Error) {
	if ln, ok := left.(Number); ok {
		if rn, ok := right.(Number); ok {
			return Number{Value: ln.Value * rn.Value}, nil
		}
	}
	if s, count, ok := stringRepeatOperands(left, right); ok {
		n2, err := repeatCount(n, count)
		if err != nil {
			return nil, err
		}
		return String{Value: strings.Repeat(s, n2)}, nil
	}
	return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgTypeMismatchBinary, "*", left.Type(), right.Type())
}

func stringRepeatOperands(left, right Value) (string, float64, bool) {
	if ls, ok := left.(String); ok {
		if rn, ok := right.(Number); ok {
			return ls.Value, rn.Value, true
		}
	}
	if rs, ok := right.(String); ok {
		if ln, ok := left.(Number); ok {
			return rs.Value, ln.Value, true
		}
	}
	return "", 0, false
}

func repeatCount(n *ast.BinOp, count float64) (int, *nerr.Error) {
	if count < 0 || count != math.Trunc(count) {
		return 0, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgBadRepeatCount, ast.FormatNumber(count))
	}
	return int(count), nil
}

func numericOp(n *ast.BinOp, left, right Value, f func(a, b float64) float64) (Value, *nerr.Error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgTypeMismatchBinary, n.Op.String(), left.Type(), right.Type())
	}
	return Number{Value: f(ln.Value, rn.Value)}, nil
}

// evalCompare implements `< <= > >=` (spec.md §4.6): both operands must
// be Number, with no carve-out for String — unlike `+`/`*`, ordering has
// no defined meaning over strings in this language.
func evalCompare(n *ast.BinOp, left, right Value) (Value, *nerr.Error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return nil, nerr.At(nerr.TypeError, n.Pos(), "", nerr.MsgTypeMismatchBinary, n.Op.String(), left.Type(), right.Type())
	}
	return Boolean{Value: compareOrdered(n.Op.Op, ln.Value < rn.Value, ln.Value == rn.Value, ln.Value > rn.Value)}, nil
}

func compareOrdered(op token.Op, lt, eq, gt bool) bool {
	switch op {
	case token.Lt:
		return lt
	case token.Le:
		return lt || eq
	case token.Gt:
		return gt
	case token.Ge:
		return gt || eq
	default:
		return false
	}
}

// valuesEqual implements `==`/`!=` (spec.md §4.6): equal only when both
// operands share the same runtime type, compared structurally; values
// of differing type are never equal.
func valuesEqual(left, right Value) bool {
	switch l := left.(type) {
	case Number:
		r, ok := right.(Number)
		return ok && l.Value == r.Value
	case String:
		r, ok := right.(String)
		return ok && l.Value == r.Value
	case Boolean:
		r, ok := right.(Boolean)
		return ok && l.Value == r.Value
	case None:
		_, ok := right.(None)
		return ok
	case Object:
		r, ok := right.(Object)
		return ok && sameObjectIdentity(l, r)
	default:
		return false
	}
}

// sameObjectIdentity compares Object values by the identity of their
// underlying field map, not by structural content: two separately
// constructed object literals with identical fields are distinct
// values, matching the shared-by-reference semantics object literals
// otherwise rely on. reflect.Value.Pointer is the standard way to
// compare two Go maps for identity, since the == operator doesn't
// support it directly.
func sameObjectIdentity(a, b Object) bool {
	return reflect.ValueOf(a.Fields).Pointer() == reflect.ValueOf(b.Fields).Pointer()
}
