// Package rustgen renders the extracted schema as Rust source text.
//
// The declaration order table is authoritative: declarations are emitted in
// exactly that sequence, extracted declarations absent from the table are
// silently omitted, and a table entry with no extracted declaration fails
// the run. Output is a pure function of the schema and the override tables,
// so repeated runs over unchanged input are byte-identical.
package rustgen
