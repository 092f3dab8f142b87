package pyast

import (
	"fmt"
	"strings"
)

// ExprString reconstructs an annotation expression as source-like text, for
// error messages and diagnostics.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *Name:
		return v.Ident
	case *NoneLit:
		return "None"
	case *StringLit:
		return fmt.Sprintf("%q", v.Value)
	case *Subscript:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = ExprString(a)
		}
		return ExprString(v.Base) + "[" + strings.Join(args, ", ") + "]"
	case *Union:
		return ExprString(v.Left) + " | " + ExprString(v.Right)
	case *BadExpr:
		return v.Source
	default:
		return "<invalid>"
	}
}
