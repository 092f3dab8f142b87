package pyast

import "fmt"

// Pos is a 1-based source position.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether the position refers to a real source location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Module is the parse result for one source file.
type Module struct {
	Classes []*ClassDef
}

// ClassDef is a module-level class definition.
type ClassDef struct {
	Name       string
	Bases      []string // base class names, in declaration order
	Decorators []string // decorator names; call forms reduced to the callee name
	Body       []Stmt
	Pos        Pos
}

// Stmt is a recognized class-body statement.
//
// This is a sealed interface - only types in this package implement it.
type Stmt interface {
	stmtNode() // Marker method - seals interface to this package
}

// FieldDef is an annotated assignment: "name: annotation" with an optional
// trailing default that is parsed past but not represented.
type FieldDef struct {
	Name       string
	Annotation Expr // BadExpr when the annotation failed to parse
	Pos        Pos
}

// ConstDef is a plain name-value assignment: "NAME = expr". The assigned
// value is not represented; enum ordinals are positional.
type ConstDef struct {
	Name string
	Pos  Pos
}

func (*FieldDef) stmtNode() {}
func (*ConstDef) stmtNode() {}

// Expr is a type-annotation expression.
//
// This is a sealed interface - only types in this package implement it.
type Expr interface {
	exprNode() // Marker method - seals interface to this package
}

// Name is a bare identifier: "str", "Handle", "list".
type Name struct {
	Ident string
	Pos   Pos
}

// NoneLit is the literal null marker "None".
type NoneLit struct {
	Pos Pos
}

// StringLit is a quoted annotation, used for not-yet-declared names.
type StringLit struct {
	Value string
	Pos   Pos
}

// Subscript is a parameterized generic: "list[T]", "dict[K, V]".
type Subscript struct {
	Base Expr
	Args []Expr
	Pos  Pos
}

// Union is one "X | Y" alternative pair. "A | B | C" parses left-associative
// as Union(Union(A, B), C).
type Union struct {
	Left  Expr
	Right Expr
	Pos   Pos
}

// BadExpr preserves annotation text that does not tokenize or parse. The
// extractor reports it as a structural error when it occurs inside a record
// declaration.
type BadExpr struct {
	Source string
	Pos    Pos
}

func (*Name) exprNode()      {}
func (*NoneLit) exprNode()   {}
func (*StringLit) exprNode() {}
func (*Subscript) exprNode() {}
func (*Union) exprNode()     {}
func (*BadExpr) exprNode()   {}
