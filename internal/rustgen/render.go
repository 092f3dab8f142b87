package rustgen

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vkrustgen/internal/overrides"
	"vkrustgen/internal/schema"
)

// RenderType maps a type descriptor to a Rust type expression per the fixed
// table. Unknown descriptors are a build failure, never rendered.
func RenderType(t schema.Type) (string, error) {
	switch v := t.(type) {
	case schema.Verbatim:
		return v.Text, nil
	case schema.Scalar:
		switch v.Kind {
		case schema.String:
			return "String", nil
		case schema.Bool:
			return "bool", nil
		case schema.Int:
			return v.Width.String(), nil
		case schema.Float:
			return "f64", nil
		default:
			return "", fmt.Errorf("invalid scalar kind %d", v.Kind)
		}
	case schema.Optional:
		// A boxed reference absorbs source-level optionality: the rendered
		// type carries exactly one Option and one Box.
		if r, ok := v.Elem.(schema.Ref); ok && r.Boxed {
			return "Option<Box<" + r.Name + ">>", nil
		}
		inner, err := RenderType(v.Elem)
		if err != nil {
			return "", err
		}
		return "Option<" + inner + ">", nil
	case schema.Sequence:
		inner, err := RenderType(v.Elem)
		if err != nil {
			return "", err
		}
		return "Vec<" + inner + ">", nil
	case schema.OrderedMap:
		key, err := RenderType(v.Key)
		if err != nil {
			return "", err
		}
		value, err := RenderType(v.Value)
		if err != nil {
			return "", err
		}
		return "IndexMap<" + key + ", " + value + ">", nil
	case schema.Ref:
		if v.Boxed {
			// Boxing implies optionality even without "| None" in the
			// source; absence is how a reference chain terminates.
			return "Option<Box<" + v.Name + ">>", nil
		}
		return v.Name, nil
	case schema.NumericUnion:
		return overrides.NumericUnionName, nil
	case schema.Unknown:
		return "", fmt.Errorf("annotation %q matches no translation rule", v.Source)
	default:
		return "", fmt.Errorf("unsupported descriptor type %T", t)
	}
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// snakeCase converts a camelCase identifier to snake_case.
func snakeCase(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "${1}_${2}"))
}

var titleCaser = cases.Title(language.Und)

// variantName converts a source enum variant ("depth_stencil", "NONE") to a
// capitalized-compound Rust identifier. A variant spelling "none" in any
// case maps to the fixed identifier "None", no further transformation.
func variantName(variant string) string {
	words := strings.Split(variant, "_")
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	name := strings.Join(words, "")
	if name == "None" {
		return "None"
	}
	return name
}
