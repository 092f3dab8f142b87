package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// String returns the conventional short name for the width, e.g. "u32".
func (w IntWidth) String() string {
	sign := "u"
	if w.Signed {
		sign = "i"
	}
	return fmt.Sprintf("%s%d", sign, w.Bits)
}

// typeEnvelope is the JSON shape for a Type. A tagged envelope rather than
// the Go sum type itself, so the dump output is self-describing.
type typeEnvelope struct {
	Kind   string        `json:"kind"`
	Scalar string        `json:"scalar,omitempty"`
	Width  string        `json:"width,omitempty"`
	Elem   *typeEnvelope `json:"elem,omitempty"`
	Key    *typeEnvelope `json:"key,omitempty"`
	Value  *typeEnvelope `json:"value,omitempty"`
	Name   string        `json:"name,omitempty"`
	Boxed  bool          `json:"boxed,omitempty"`
	Text   string        `json:"text,omitempty"`
	Source string        `json:"source,omitempty"`
}

func envelope(t Type) *typeEnvelope {
	switch v := t.(type) {
	case Scalar:
		e := &typeEnvelope{Kind: "scalar"}
		switch v.Kind {
		case String:
			e.Scalar = "string"
		case Bool:
			e.Scalar = "boolean"
		case Int:
			e.Scalar = "integer"
			e.Width = v.Width.String()
		case Float:
			e.Scalar = "float"
		}
		return e
	case Optional:
		return &typeEnvelope{Kind: "optional", Elem: envelope(v.Elem)}
	case Sequence:
		return &typeEnvelope{Kind: "sequence", Elem: envelope(v.Elem)}
	case OrderedMap:
		return &typeEnvelope{Kind: "map", Key: envelope(v.Key), Value: envelope(v.Value)}
	case Ref:
		return &typeEnvelope{Kind: "ref", Name: v.Name, Boxed: v.Boxed}
	case NumericUnion:
		return &typeEnvelope{Kind: "numeric_union"}
	case Verbatim:
		return &typeEnvelope{Kind: "verbatim", Text: v.Text}
	case Unknown:
		return &typeEnvelope{Kind: "unknown", Source: v.Source}
	default:
		return &typeEnvelope{Kind: "unknown"}
	}
}

// MarshalJSON serializes the field as {"name": ..., "type": {...}}.
func (f FieldSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string        `json:"name"`
		Type *typeEnvelope `json:"type"`
	}{Name: f.DeclaredName, Type: envelope(f.Type)})
}

// MarshalJSON serializes the record with fields in declared order.
func (r RecordSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string      `json:"name"`
		Fields []FieldSpec `json:"fields"`
	}{Name: r.Name, Fields: r.Fields})
}

// MarshalJSON serializes the enum with positional ordinals starting at 1,
// matching what the emitted enumeration deserializes against.
func (e EnumSpec) MarshalJSON() ([]byte, error) {
	type variant struct {
		Name    string `json:"name"`
		Ordinal int    `json:"ordinal"`
	}
	variants := make([]variant, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = variant{Name: v, Ordinal: i + 1}
	}
	return json.Marshal(struct {
		Name     string    `json:"name"`
		Variants []variant `json:"variants"`
	}{Name: e.Name, Variants: variants})
}

// MarshalJSON serializes the whole schema in source declaration order.
func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Records []RecordSpec `json:"records"`
		Enums   []EnumSpec   `json:"enums"`
	}{Records: s.Records, Enums: s.Enums})
}
