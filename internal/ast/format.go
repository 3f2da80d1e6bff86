package ast

import "strconv"

// FormatNumber renders a float the way both AST dumps and runtime value
// display do (spec.md §6: "default float formatting, no trailing zeros
// unless needed"), grounded on the teacher's FloatValue.String, which
// uses the same 'g'/-1 precision formatting.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
