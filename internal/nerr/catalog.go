package nerr

// Canned message formats used across the lexer/parser/semantic/evaluator,
// so the same failure is always worded the same way. Grounded on the
// teacher's internal/interp/errors/catalog.go ErrMsgXxx convention.

const (
	// Parser / syntax
	MsgExpectedToken      = "expected %s, got %s"
	MsgInvalidAssignTarget = "invalid assignment target: %s"
	MsgDuplicateDecl      = "'%s' is already declared in this scope"
	MsgLambdaNeedsIdent   = "expected parameter name after '|', got %s"
	MsgUnknownNode        = "internal error: unknown AST node in %s"

	// Reference
	MsgUndefined      = "'%s' is not defined"
	MsgAssignUndefined = "cannot assign to undefined variable '%s'"

	// Type
	MsgTypeMismatchBinary = "cannot apply '%s' to %s and %s"
	MsgTypeMismatchUnary  = "cannot apply unary '%s' to %s"
	MsgNotAFunction       = "%s is not a function"
	MsgNotAnObject        = "cannot access '.%s' on a %s"
	MsgBadRepeatCount     = "string repetition count must be a non-negative integer, got %s"
	MsgExpectValueGotNone = "Expect value got none."

	// Misc / disabled
	MsgCallsDisabled = "Calls Disabled"
)
