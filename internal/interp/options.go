package interp

// Options controls a single Interpret call without touching the
// persistent interpreter state (spec.md §6). Setting both fields gives a
// preview evaluation that can never declare a name twice or run a
// side-effecting call.
type Options struct {
	// DisableCalls makes every FunctionCall evaluation fail immediately
	// with a CallsDisabled error instead of invoking the callee.
	DisableCalls bool
	// DisableDeclaration makes `let` and `function` skip both scope
	// registration and environment binding, so re-evaluating the same
	// declaration is never a duplicate-declaration error.
	DisableDeclaration bool
}
