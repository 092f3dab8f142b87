package extract

import (
	"fmt"
	"slices"

	"vkrustgen/internal/pyast"
	"vkrustgen/internal/schema"
)

// StructuralError reports a record field whose annotation could not be
// parsed into a known AST shape and has no override to fall back on.
type StructuralError struct {
	Class  string
	Field  string
	Pos    pyast.Pos
	Source string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: field %s.%s: unparseable annotation %q",
		e.Pos, e.Class, e.Field, e.Source)
}

// Extract walks the parsed module in declaration order and classifies each
// class into a record or enum descriptor. Classes matching neither shape are
// ignored. Errors are collected rather than aborting at the first field, so
// one run reports every offending declaration; any error is fatal to the
// caller.
func Extract(m *pyast.Module) (*schema.Schema, []error) {
	out := &schema.Schema{}
	var errs []error

	for _, cls := range m.Classes {
		switch {
		case slices.Contains(cls.Bases, "Enum"):
			out.Enums = append(out.Enums, extractEnum(cls))
		case slices.Contains(cls.Decorators, "dataclass"):
			rec, recErrs := extractRecord(cls)
			out.Records = append(out.Records, rec)
			errs = append(errs, recErrs...)
		}
	}
	return out, errs
}

// extractEnum collects variant names in declared order. The assigned values
// are discarded: ordinals are positional.
func extractEnum(cls *pyast.ClassDef) schema.EnumSpec {
	spec := schema.EnumSpec{Name: cls.Name}
	for _, stmt := range cls.Body {
		if c, ok := stmt.(*pyast.ConstDef); ok {
			spec.Variants = append(spec.Variants, c.Name)
		}
	}
	return spec
}

func extractRecord(cls *pyast.ClassDef) (schema.RecordSpec, []error) {
	spec := schema.RecordSpec{Name: cls.Name}
	var errs []error
	for _, stmt := range cls.Body {
		f, ok := stmt.(*pyast.FieldDef)
		if !ok {
			continue
		}
		t := ParseAnnotation(f.Annotation, cls.Name, f.Name)
		if bad, isBad := f.Annotation.(*pyast.BadExpr); isBad && isUnknown(t) {
			errs = append(errs, &StructuralError{
				Class:  cls.Name,
				Field:  f.Name,
				Pos:    bad.Pos,
				Source: bad.Source,
			})
			continue
		}
		spec.Fields = append(spec.Fields, schema.FieldSpec{
			DeclaredName: f.Name,
			Type:         t,
		})
	}
	return spec, errs
}
