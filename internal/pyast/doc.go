// Package pyast parses the restricted Python declaration syntax the schema
// source uses: module-level class definitions carrying decorators and base
// classes, annotated field declarations, and name-value assignments.
//
// The parser is deliberately two-pass: this package produces a generic
// abstract syntax representation and knows nothing about dataclasses, enums,
// or the translation rules. Pattern-matching fixed shapes out of the AST is
// the extract package's job.
//
// Everything outside the recognized shapes - imports, docstrings, methods,
// module-level functions, comments - is skipped, not rejected. A field
// annotation that fails to tokenize is preserved as a BadExpr so the caller
// can report it against the enclosing class and field.
package pyast
