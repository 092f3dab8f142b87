package pyast

import (
	"regexp"
	"strings"
)

var classHeaderRe = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)\s*(?:\(\s*([^)]*?)\s*\))?\s*:`)

// Parse parses schema source text into a Module. filename appears in error
// messages only; the source is read in full before parsing begins.
func Parse(filename string, src []byte) (*Module, error) {
	p := &fileParser{file: filename, lines: strings.Split(string(src), "\n")}
	return p.parseModule()
}

type fileParser struct {
	file  string
	lines []string
	i     int // current line, 0-based
}

func (p *fileParser) parseModule() (*Module, error) {
	m := &Module{}
	var decorators []string
	for p.i < len(p.lines) {
		line := stripComment(p.lines[p.i])
		trim := strings.TrimSpace(line)
		if trim == "" {
			p.i++
			continue
		}
		if indentOf(line) > 0 {
			// Inside the suite of something we skipped at module level.
			p.i++
			continue
		}
		switch {
		case strings.HasPrefix(trim, `"""`) || strings.HasPrefix(trim, "'''"):
			p.skipTripleQuoted(trim)
			decorators = nil
		case strings.HasPrefix(trim, "@"):
			decorators = append(decorators, decoratorName(trim))
			p.i++
		case strings.HasPrefix(trim, "class "):
			cls, err := p.parseClass(trim, decorators)
			if err != nil {
				return nil, err
			}
			m.Classes = append(m.Classes, cls)
			decorators = nil
		default:
			decorators = nil
			p.i++
		}
	}
	return m, nil
}

func (p *fileParser) parseClass(header string, decorators []string) (*ClassDef, error) {
	match := classHeaderRe.FindStringSubmatch(header)
	if match == nil {
		return nil, &SyntaxError{
			File: p.file,
			Pos:  Pos{Line: p.i + 1, Col: 1},
			Msg:  "malformed class header",
		}
	}
	cls := &ClassDef{
		Name:       match[1],
		Decorators: decorators,
		Pos:        Pos{Line: p.i + 1, Col: 1},
	}
	for _, b := range strings.Split(match[2], ",") {
		if b = strings.TrimSpace(b); b != "" {
			cls.Bases = append(cls.Bases, b)
		}
	}
	p.i++
	p.parseBody(cls)
	return cls, nil
}

// parseBody consumes the indented suite following a class header. The first
// statement's indentation fixes the body level; deeper lines belong to
// skipped nested suites (method bodies, nested classes).
func (p *fileParser) parseBody(cls *ClassDef) {
	base := -1
	for p.i < len(p.lines) {
		line := stripComment(p.lines[p.i])
		trim := strings.TrimSpace(line)
		if trim == "" {
			p.i++
			continue
		}
		indent := indentOf(line)
		if indent == 0 {
			return
		}
		if base == -1 {
			base = indent
		}
		if indent > base {
			p.i++
			continue
		}
		if indent < base {
			return
		}
		switch {
		case strings.HasPrefix(trim, `"""`) || strings.HasPrefix(trim, "'''"):
			p.skipTripleQuoted(trim)
		case strings.HasPrefix(trim, "@"),
			strings.HasPrefix(trim, "def "),
			strings.HasPrefix(trim, "async "),
			strings.HasPrefix(trim, "class "):
			p.i++
			p.skipSuite(base)
		case trim == "pass" || trim == "...":
			p.i++
		default:
			p.parseBodyStmt(cls, trim, indent)
			p.i++
		}
	}
}

// skipSuite advances past every line indented deeper than base.
func (p *fileParser) skipSuite(base int) {
	for p.i < len(p.lines) {
		line := p.lines[p.i]
		if strings.TrimSpace(stripComment(line)) == "" {
			p.i++
			continue
		}
		if indentOf(line) <= base {
			return
		}
		p.i++
	}
}

// skipTripleQuoted advances past a docstring that starts on the current line.
func (p *fileParser) skipTripleQuoted(trim string) {
	delim := trim[:3]
	rest := trim[3:]
	p.i++
	if strings.Contains(rest, delim) {
		return
	}
	for p.i < len(p.lines) {
		if strings.Contains(p.lines[p.i], delim) {
			p.i++
			return
		}
		p.i++
	}
}

// parseBodyStmt classifies one body line as an annotated field, a name-value
// assignment, or noise.
func (p *fileParser) parseBodyStmt(cls *ClassDef, trim string, indent int) {
	lineNo := p.i + 1
	colon := topLevelIndex(trim, ':')
	eq := topLevelIndex(trim, '=')

	switch {
	case colon >= 0 && (eq < 0 || colon < eq):
		name := strings.TrimSpace(trim[:colon])
		if !isIdentifier(name) {
			return
		}
		start := colon + 1
		for start < len(trim) && (trim[start] == ' ' || trim[start] == '\t') {
			start++
		}
		end := len(trim)
		if eq >= 0 {
			end = eq
		}
		annotSrc := strings.TrimSpace(trim[start:end])
		base := Pos{Line: lineNo, Col: indent + start + 1}
		var annot Expr
		if annotSrc == "" {
			annot = &BadExpr{Source: annotSrc, Pos: base}
		} else if parsed, err := ParseExpr(annotSrc, base); err != nil {
			annot = &BadExpr{Source: annotSrc, Pos: base}
		} else {
			annot = parsed
		}
		cls.Body = append(cls.Body, &FieldDef{
			Name:       name,
			Annotation: annot,
			Pos:        Pos{Line: lineNo, Col: indent + 1},
		})
	case eq >= 0:
		name := strings.TrimSpace(trim[:eq])
		if !isIdentifier(name) {
			return
		}
		cls.Body = append(cls.Body, &ConstDef{
			Name: name,
			Pos:  Pos{Line: lineNo, Col: indent + 1},
		})
	}
}

// decoratorName reduces "@dataclass" or "@dataclass(frozen=True)" to
// "dataclass".
func decoratorName(trim string) string {
	name := strings.TrimPrefix(trim, "@")
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// stripComment removes a trailing "#" comment, respecting quoted strings.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

// indentOf measures leading whitespace; a tab advances to the next multiple
// of eight columns.
func indentOf(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n += 8 - n%8
		default:
			return n
		}
	}
	return n
}

// topLevelIndex finds the first occurrence of target outside brackets and
// string literals. Comparison operators do not count as "=".
func topLevelIndex(s string, target byte) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == target && depth == 0:
			if target == '=' {
				if i+1 < len(s) && s[i+1] == '=' {
					i++
					continue
				}
				if i > 0 && strings.IndexByte("<>!=", s[i-1]) >= 0 {
					continue
				}
			}
			return i
		}
	}
	return -1
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}
