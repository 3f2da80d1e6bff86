package interp

import (
	"strings"

	"github.com/nekolang/neko/internal/nerr"
	"github.com/nekolang/neko/internal/semantic"
)

// registerBuiltins installs the built-in functions of spec.md §4.7 into
// both the global symbol table (so the semantic pass resolves their
// names) and the global environment (so the evaluator can call them).
// Grounded on the teacher's pattern of seeding interpreter globals at
// construction time (internal/interp/interpreter.go) and on
// original_source/src/interpreter.rs's native_print/native_error.
func (i *Interpreter) registerBuiltins() {
	i.defineBuiltin("print", nativePrint)
	i.defineBuiltin("error", nativeError)
}

func (i *Interpreter) defineBuiltin(name string, fn Native) {
	i.scope.Insert(semantic.Symbol{Name: name, Kind: semantic.BuiltInSymbol})
	i.env.Define(name, Function{Kind: BuiltInFunction, Name: name, Native: fn})
}

// nativePrint writes its arguments, space-separated and using the
// unquoted Display form, followed by a newline, and evaluates to None
// (spec.md §4.7).
func nativePrint(i *Interpreter, args []Value) (Value, *nerr.Error) {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.Display(false)
	}
	i.out.Write([]byte(strings.Join(parts, " ") + "\n"))
	return None{}, nil
}

// nativeError raises a runtime error whose message is the
// stringification of its first argument, whatever its type (spec.md
// §4.7). Only the zero-argument call is itself a TypeError.
func nativeError(i *Interpreter, args []Value) (Value, *nerr.Error) {
	if len(args) == 0 {
		return nil, nerr.New(nerr.TypeError, nerr.MsgExpectValueGotNone)
	}
	return nil, nerr.New(nerr.UnknownError, "%s", args[0].Display(false))
}
