package schema

// Type is the normalized representation of a parsed field annotation.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the emitter.
//
// Type variants:
//   - Scalar: string, bool, integer (with width) or 64-bit float
//   - Optional: nullable wrapper ("T | None" in the source)
//   - Sequence: ordered growable list ("list[T]")
//   - OrderedMap: insertion-order-preserving map ("dict[K, V]")
//   - Ref: reference to another declaration, optionally boxed
//   - NumericUnion: the synthetic int-or-float union
//   - Verbatim: target type fixed by an override table entry
//   - Unknown: annotation shape outside the vocabulary; fatal at emission
type Type interface {
	typeNode() // Marker method - seals interface to this package
}

// ScalarKind enumerates the scalar vocabulary of the source annotations.
type ScalarKind int

const (
	String ScalarKind = iota + 1
	Bool
	Int
	Float
)

// IntWidth describes the fixed-width integer representation a source "int"
// maps to. The zero value is invalid; use U32 unless an override says
// otherwise.
type IntWidth struct {
	Bits   int
	Signed bool
}

// Integer widths the override tables select between.
var (
	U32 = IntWidth{Bits: 32}
	U64 = IntWidth{Bits: 64}
	I64 = IntWidth{Bits: 64, Signed: true}
)

// Scalar is a scalar annotation. Width is set only for Int.
type Scalar struct {
	Kind  ScalarKind
	Width IntWidth
}

// Optional wraps a type that may be absent ("T | None").
type Optional struct {
	Elem Type
}

// Sequence is an ordered homogeneous list ("list[T]").
type Sequence struct {
	Elem Type
}

// OrderedMap is an insertion-order-preserving map ("dict[K, V]").
type OrderedMap struct {
	Key   Type
	Value Type
}

// Ref names another declaration without embedding it. Boxed refs require a
// heap indirection when rendered, which is how recursive record graphs stay
// representable by value.
type Ref struct {
	Name  string
	Boxed bool
}

// NumericUnion is the synthetic union for "int | float" annotations. The
// source type system cannot say "numeric literal" any other way, so the pair
// always resolves here regardless of the enclosing field.
type NumericUnion struct{}

// Verbatim carries a target-type string fixed by the override tables. It
// wins over all structural inference and exists to paper over known
// mismatches between the two type systems.
type Verbatim struct {
	Text string
}

// Unknown records an annotation that parsed into a well-formed expression
// but matches no translation rule. Emission must fail on it, never render it.
type Unknown struct {
	Source string
}

func (Scalar) typeNode()       {}
func (Optional) typeNode()     {}
func (Sequence) typeNode()     {}
func (OrderedMap) typeNode()   {}
func (Ref) typeNode()          {}
func (NumericUnion) typeNode() {}
func (Verbatim) typeNode()     {}
func (Unknown) typeNode()      {}

// FieldSpec is one declared record field. DeclaredName is the schema's
// original identifier, before any case conversion; it is always preserved as
// the serialization key.
type FieldSpec struct {
	DeclaredName string
	Type         Type
}

// RecordSpec is an aggregate declaration. Field order matches the source and
// is semantically significant.
type RecordSpec struct {
	Name   string
	Fields []FieldSpec
}

// EnumSpec is an enumeration declaration. Variant order determines the
// assigned ordinal; the values assigned in the source are discarded.
type EnumSpec struct {
	Name     string
	Variants []string
}

// Schema bundles every extracted declaration in source order.
type Schema struct {
	Records []RecordSpec
	Enums   []EnumSpec
}

// Record returns the record declaration with the given name, if any.
func (s *Schema) Record(name string) (*RecordSpec, bool) {
	for i := range s.Records {
		if s.Records[i].Name == name {
			return &s.Records[i], true
		}
	}
	return nil, false
}

// Enum returns the enum declaration with the given name, if any.
func (s *Schema) Enum(name string) (*EnumSpec, bool) {
	for i := range s.Enums {
		if s.Enums[i].Name == name {
			return &s.Enums[i], true
		}
	}
	return nil, false
}
