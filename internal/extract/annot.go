package extract

import (
	"vkrustgen/internal/overrides"
	"vkrustgen/internal/pyast"
	"vkrustgen/internal/schema"
)

// ParseAnnotation converts one field's annotation expression into a type
// descriptor. First match wins:
//
//  1. explicit (class, field) type override, verbatim
//  2. scalar keywords: str, bool, int (width-overridable, u32 default), float
//  3. list[T] and dict[K, V] generics
//  4. binary unions: "T | None" optionality, "int | float" numeric union
//  5. bare or quoted names as references to other declarations, boxed where
//     the boxed-field table says so
//
// Shapes outside the vocabulary come back as schema.Unknown; emission fails
// on those rather than rendering something invalid.
func ParseAnnotation(expr pyast.Expr, class, field string) schema.Type {
	if text, ok := overrides.FieldTypes[overrides.FieldKey{Class: class, Field: field}]; ok {
		return schema.Verbatim{Text: text}
	}
	return parseExpr(expr, class, field)
}

func parseExpr(expr pyast.Expr, class, field string) schema.Type {
	switch e := expr.(type) {
	case *pyast.Name:
		switch e.Ident {
		case "str":
			return schema.Scalar{Kind: schema.String}
		case "bool":
			return schema.Scalar{Kind: schema.Bool}
		case "int":
			width := schema.U32
			if w, ok := overrides.IntWidths[overrides.FieldKey{Class: class, Field: field}]; ok {
				width = w
			}
			return schema.Scalar{Kind: schema.Int, Width: width}
		case "float":
			return schema.Scalar{Kind: schema.Float}
		default:
			// Reference to another declared type.
			return ref(e.Ident, class, field)
		}
	case *pyast.StringLit:
		// Quoted forward reference, e.g. "Handle" before its declaration.
		return ref(e.Value, class, field)
	case *pyast.Subscript:
		return parseSubscript(e, class, field)
	case *pyast.Union:
		return parseUnion(e, class, field)
	default:
		return schema.Unknown{Source: pyast.ExprString(expr)}
	}
}

func parseSubscript(e *pyast.Subscript, class, field string) schema.Type {
	base, ok := e.Base.(*pyast.Name)
	if !ok {
		return schema.Unknown{Source: pyast.ExprString(e)}
	}
	switch {
	case base.Ident == "list" && len(e.Args) == 1:
		elem := parseExpr(e.Args[0], class, field)
		if isUnknown(elem) {
			return elem
		}
		return schema.Sequence{Elem: elem}
	case base.Ident == "dict" && len(e.Args) == 2:
		key := parseExpr(e.Args[0], class, field)
		if isUnknown(key) {
			return key
		}
		value := parseExpr(e.Args[1], class, field)
		if isUnknown(value) {
			return value
		}
		return schema.OrderedMap{Key: key, Value: value}
	default:
		return schema.Unknown{Source: pyast.ExprString(e)}
	}
}

func parseUnion(e *pyast.Union, class, field string) schema.Type {
	// "int | float" (either order) is structural: it resolves to the numeric
	// union no matter which field it appears in, ahead of optionality and
	// boxing. The fixed override table never targets such a field, so the
	// override rule and this rule cannot disagree on real input.
	if isNumericPair(e.Left, e.Right) {
		return schema.NumericUnion{}
	}
	if _, ok := e.Right.(*pyast.NoneLit); ok {
		inner := parseExpr(e.Left, class, field)
		if isUnknown(inner) {
			return inner
		}
		return schema.Optional{Elem: inner}
	}
	return schema.Unknown{Source: pyast.ExprString(e)}
}

func ref(name, class, field string) schema.Type {
	_, boxed := overrides.BoxedFields[overrides.FieldKey{Class: class, Field: field}]
	return schema.Ref{Name: name, Boxed: boxed}
}

func isNumericPair(left, right pyast.Expr) bool {
	return isBareName(left, "int") && isBareName(right, "float") ||
		isBareName(left, "float") && isBareName(right, "int")
}

func isBareName(e pyast.Expr, ident string) bool {
	n, ok := e.(*pyast.Name)
	return ok && n.Ident == ident
}

func isUnknown(t schema.Type) bool {
	_, ok := t.(schema.Unknown)
	return ok
}
