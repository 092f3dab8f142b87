package pyast

import "fmt"

// SyntaxError reports source text the parser cannot tokenize or parse.
type SyntaxError struct {
	File string
	Pos  Pos
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLBracket
	tokRBracket
	tokComma
	tokPipe
)

type token struct {
	kind tokenKind
	text string
	pos  Pos
}

// exprLexer tokenizes a single-line annotation expression. base anchors
// positions to the enclosing source line.
type exprLexer struct {
	src  string
	off  int
	base Pos
}

func (l *exprLexer) at() Pos {
	return Pos{Line: l.base.Line, Col: l.base.Col + l.off}
}

func (l *exprLexer) errorf(pos Pos, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (l *exprLexer) next() (token, error) {
	for l.off < len(l.src) && (l.src[l.off] == ' ' || l.src[l.off] == '\t') {
		l.off++
	}
	start := l.at()
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}
	c := l.src[l.off]
	switch {
	case c == '[':
		l.off++
		return token{kind: tokLBracket, text: "[", pos: start}, nil
	case c == ']':
		l.off++
		return token{kind: tokRBracket, text: "]", pos: start}, nil
	case c == ',':
		l.off++
		return token{kind: tokComma, text: ",", pos: start}, nil
	case c == '|':
		l.off++
		return token{kind: tokPipe, text: "|", pos: start}, nil
	case c == '"' || c == '\'':
		quote := c
		for j := l.off + 1; j < len(l.src); j++ {
			if l.src[j] == quote {
				text := l.src[l.off+1 : j]
				l.off = j + 1
				return token{kind: tokString, text: text, pos: start}, nil
			}
		}
		return token{}, l.errorf(start, "unterminated string literal")
	case isIdentStart(c):
		j := l.off
		for j < len(l.src) && isIdentPart(l.src[j]) {
			j++
		}
		text := l.src[l.off:j]
		l.off = j
		return token{kind: tokIdent, text: text, pos: start}, nil
	default:
		return token{}, l.errorf(start, "unexpected character %q in annotation", string(c))
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// exprParser is a recursive-descent parser over the annotation grammar:
//
//	union   := primary ("|" primary)*
//	primary := IDENT ("[" union ("," union)* "]")? | STRING
//
// "|" is left-associative, matching how the source language builds its
// union expressions.
type exprParser struct {
	lex exprLexer
	tok token
}

// ParseExpr parses one annotation expression. base anchors reported
// positions to the annotation's location within its source line.
func ParseExpr(src string, base Pos) (Expr, error) {
	p := &exprParser{lex: exprLexer{src: src, base: base}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	e, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.lex.errorf(p.tok.pos, "unexpected %q after annotation", p.tok.text)
	}
	return e, nil
}

func (p *exprParser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *exprParser) parseUnion() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPipe {
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &Union{Left: left, Right: right, Pos: pos}
	}
	return left, nil
}

func (p *exprParser) parsePrimary() (Expr, error) {
	switch p.tok.kind {
	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if name == "None" {
			return &NoneLit{Pos: pos}, nil
		}
		if p.tok.kind != tokLBracket {
			return &Name{Ident: name, Pos: pos}, nil
		}
		return p.parseSubscript(&Name{Ident: name, Pos: pos})
	case tokString:
		lit := &StringLit{Value: p.tok.text, Pos: p.tok.pos}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return lit, nil
	default:
		return nil, p.lex.errorf(p.tok.pos, "expected type name, got %q", p.tok.text)
	}
}

func (p *exprParser) parseSubscript(base *Name) (Expr, error) {
	sub := &Subscript{Base: base, Pos: p.tok.pos}
	if err := p.advance(); err != nil { // consume "["
		return nil, err
	}
	for {
		arg, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		sub.Args = append(sub.Args, arg)
		switch p.tok.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokRBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return sub, nil
		default:
			return nil, p.lex.errorf(p.tok.pos, "expected \",\" or \"]\" in subscript, got %q", p.tok.text)
		}
	}
}
