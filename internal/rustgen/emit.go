package rustgen

import (
	"fmt"
	"slices"
	"strings"

	"vkrustgen/internal/overrides"
	"vkrustgen/internal/schema"
)

// OrderError reports a declaration-order entry with no extracted
// declaration behind it. This is a configuration defect, not an input
// problem: the order table and the schema source have drifted apart.
type OrderError struct {
	Entry string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("declaration order entry %q has no extracted declaration", e.Entry)
}

// FieldError wraps a rendering failure with the record and field it
// occurred in.
type FieldError struct {
	Class string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s.%s: %v", e.Class, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Generator renders a schema as Rust source text.
type Generator struct {
	Schema *schema.Schema
}

func New(s *schema.Schema) *Generator {
	return &Generator{Schema: s}
}

// Generate produces the complete Rust module, one block per declaration in
// declaration order, blocks separated by blank lines. It fails without
// partial output on any Unknown descriptor or unresolvable order entry.
func (g *Generator) Generate() (string, error) {
	lines := []string{
		"use indexmap::IndexMap;",
		"use serde::{Deserialize, Serialize};",
		"use serde_repr::{Deserialize_repr, Serialize_repr};",
		"",
	}

	for _, name := range overrides.DeclarationOrder {
		if name == overrides.NumericUnionName {
			lines = append(lines, numericUnionLines()...)
			continue
		}
		if e, ok := g.Schema.Enum(name); ok {
			lines = append(lines, enumLines(e)...)
			continue
		}
		if r, ok := g.Schema.Record(name); ok {
			structLns, err := structLines(r)
			if err != nil {
				return "", err
			}
			lines = append(lines, structLns...)
			continue
		}
		return "", &OrderError{Entry: name}
	}

	return strings.Join(lines, "\n"), nil
}

// numericUnionLines emits the synthetic int-or-float union. It is untagged:
// the deserializer tries each variant's shape in order rather than reading a
// discriminant.
func numericUnionLines() []string {
	return []string{
		"#[derive(Clone, Debug, Deserialize, Serialize)]",
		"#[serde(untagged)]",
		fmt.Sprintf("pub enum %s {", overrides.NumericUnionName),
		"    Int(u64),",
		"    Float(f64),",
		"}",
		"",
	}
}

// enumLines emits an integer-backed enumeration. Ordinals start at 1 in
// declared variant order.
func enumLines(e *schema.EnumSpec) []string {
	lines := []string{
		"#[derive(Clone, Copy, Debug, Deserialize_repr, Eq, PartialEq, Serialize_repr)]",
		"#[repr(u8)]",
		fmt.Sprintf("pub enum %s {", e.Name),
	}
	for i, v := range e.Variants {
		lines = append(lines, fmt.Sprintf("    %s = %d,", variantName(v), i+1))
	}
	return append(lines, "}", "")
}

func structLines(r *schema.RecordSpec) ([]string, error) {
	derives := []string{"Clone", "Debug", "Deserialize", "Serialize"}
	if extra, ok := overrides.ExtraDerives[r.Name]; ok {
		derives = append(derives, extra...)
		slices.Sort(derives)
	}
	lines := []string{
		fmt.Sprintf("#[derive(%s)]", strings.Join(derives, ", ")),
		fmt.Sprintf("pub struct %s {", r.Name),
	}
	for _, f := range r.Fields {
		rendered, err := RenderType(f.Type)
		if err != nil {
			return nil, &FieldError{Class: r.Name, Field: f.DeclaredName, Err: err}
		}
		ident := snakeCase(f.DeclaredName)
		_, reserved := overrides.ReservedKeywords[f.DeclaredName]
		// Serialization stays bound to the declared name whenever the
		// emitted identifier differs from it.
		needsRename := ident != f.DeclaredName || reserved
		if reserved {
			ident = f.DeclaredName + "_"
		}
		if needsRename {
			lines = append(lines, fmt.Sprintf("    #[serde(rename = %q)]", f.DeclaredName))
		}
		lines = append(lines, fmt.Sprintf("    pub %s: %s,", ident, rendered))
	}
	return append(lines, "}", ""), nil
}
