// Package schema provides the intermediate representation for vkrustgen.
//
// This package contains type definitions only. All other internal packages
// import schema; schema imports nothing internal. This keeps the IR the
// foundational layer with no circular dependencies.
//
// The IR captures exactly the type vocabulary the source declarations use:
// scalars, optionals, sequences, ordered maps, references to other
// declarations, the int/float numeric union, and verbatim overrides. Field
// and variant order is load-bearing: it matches source declaration order and
// determines both the emitted order and serde's untagged deserialization
// precedence.
package schema
