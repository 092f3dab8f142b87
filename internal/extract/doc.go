// Package extract pattern-matches schema declarations out of the parsed
// source and produces the intermediate representation.
//
// Two fixed shapes are recognized: a class deriving from Enum whose body is
// name-value assignments becomes an EnumSpec (assigned values are discarded,
// ordinals are positional), and a class decorated with @dataclass whose body
// is annotated field declarations becomes a RecordSpec. Everything else is
// ignored.
//
// Each field annotation goes through ParseAnnotation, which applies the
// translation rules in precedence order: explicit per-field override first,
// then scalar keywords, parameterized generics, binary unions (with the
// structural int/float rule), forward references, and boxing. The function
// is pure: its output depends only on the annotation, the enclosing
// (class, field) pair, and the static override tables.
package extract
