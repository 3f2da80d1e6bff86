// Package interp implements the runtime value domain, environment
// chain, and tree-walking evaluator for neko (spec.md §3, §4.5, §4.6),
// plus the long-lived Interpreter that ties lexing, parsing, semantic
// analysis and evaluation together across successive REPL inputs.
//
// Grounded on the teacher's internal/interp/value.go (a Value interface
// implemented by one struct per runtime kind, each with Type()/String())
// and internal/interp/environment.go (parent-linked Environment,
// New/NewEnclosed constructors), and on original_source/src/interpreter.rs
// and enviroment.rs for the value/closure semantics themselves.
package interp

import (
	"github.com/nekolang/neko/internal/ast"
	"github.com/nekolang/neko/internal/nerr"
)

// Value is a runtime value (spec.md §3). Every concrete value type
// implements Type (a short tag used in type-error messages) and
// Display (the stringification rules of spec.md §6 — quote controls
// whether a String value is wrapped in quotes, which differs between
// `print` output and REPL result echo).
type Value interface {
	Type() string
	Display(quote bool) string
}

// Number is a floating-point value.
type Number struct{ Value float64 }

func (Number) Type() string { return "Number" }
func (n Number) Display(bool) string { return ast.FormatNumber(n.Value) }

// Boolean is a true/false value.
type Boolean struct{ Value bool }

func (Boolean) Type() string { return "Boolean" }
func (b Boolean) Display(bool) string {
	if b.Value {
		return "true"
	}
	return "false"
}

// String is a text value.
type String struct{ Value string }

func (String) Type() string { return "String" }
func (s String) Display(quote bool) string {
	if quote {
		return "'" + s.Value + "'"
	}
	return s.Value
}

// None is the singleton absent value (spec.md §3 `Value::None`).
type None struct{}

func (None) Type() string          { return "None" }
func (None) Display(bool) string   { return "none" }

// Object is a shared, mutable field map (spec.md §3: "Object field maps
// are shared by reference semantics"). A Go map already has reference
// semantics under copy, so storing it by value here is sufficient to
// give aliasing Object values that observe each other's writes.
type Object struct {
	Fields map[string]Value
}

func NewObject() Object { return Object{Fields: make(map[string]Value)} }

func (Object) Type() string { return "Object" }
func (o Object) Display(quote bool) string {
	if len(o.Fields) == 0 {
		return "{}"
	}
	s := "{ "
	first := true
	for _, k := range o.order() {
		if !first {
			s += ", "
		}
		first = false
		s += k + ": " + o.Fields[k].Display(true)
	}
	return s + " }"
}

// order returns field names in insertion-independent, but stable,
// sorted order so Display is deterministic for tests; spec.md only
// specifies the separator punctuation, not iteration order.
func (o Object) order() []string {
	names := make([]string, 0, len(o.Fields))
	for k := range o.Fields {
		names = append(names, k)
	}
	sortStrings(names)
	return names
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// FunctionKind distinguishes the three callable shapes spec.md §3
// describes: a named `function` declaration, a `|params| body` lambda,
// and a native built-in.
type FunctionKind int

const (
	UserFunction FunctionKind = iota
	LambdaFunction
	BuiltInFunction
)

// Native is the signature of a built-in's implementation (spec.md
// §4.7): it receives already-evaluated arguments and returns a value or
// a kinded error.
type Native func(i *Interpreter, args []Value) (Value, *nerr.Error)

// Function is a callable value. Env is the environment chain that was
// active when the function/lambda was declared — not the caller's
// environment at call time — which is what gives it closure semantics
// (spec.md §3 invariants).
type Function struct {
	Env    *Environment
	Native Native
	Name   string
	Params []string
	Body   ast.Node
	Kind   FunctionKind
}

func (Function) Type() string { return "Function" }

func (f Function) Display(bool) string {
	switch f.Kind {
	case BuiltInFunction:
		return "[Built-In Function: " + f.Name + "]"
	case LambdaFunction:
		return "[Function: (lambda)]"
	default:
		return "[Function: " + f.Name + "]"
	}
}

// Truthy implements the and/or/not coercion rule of spec.md §4.6:
// Number != 0, non-empty String, Boolean as itself, any Function true,
// None false.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Number:
		return val.Value != 0
	case String:
		return val.Value != ""
	case Boolean:
		return val.Value
	case Function:
		return true
	case None:
		return false
	default:
		return false
	}
}
