package egg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The decoder is a small two-stage parser: a tokenizer feeding a generic
// entry tree, then an interpretation pass that extracts the group, vertex
// pool and polygons. Unknown entry types are skipped so documents written
// by other tools with extra records still load.

type tokenKind int

const (
	tokType tokenKind = iota // <SomeType>
	tokWord                  // names and scalars
	tokOpen                  // {
	tokClose                 // }
)

type token struct {
	kind tokenKind
	text string
	line int
}

type lexer struct {
	r    *bufio.Reader
	line int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

// next returns the next token, or io.EOF.
func (l *lexer) next() (token, error) {
	for {
		c, _, err := l.r.ReadRune()
		if err != nil {
			return token{}, err
		}
		switch {
		case c == '\n':
			l.line++
		case c == ' ' || c == '\t' || c == '\r':
			// skip
		case c == '/':
			// line comment
			if nxt, _, err := l.r.ReadRune(); err == nil && nxt == '/' {
				for {
					c, _, err := l.r.ReadRune()
					if err != nil {
						return token{}, err
					}
					if c == '\n' {
						l.line++
						break
					}
				}
			} else {
				return token{}, fmt.Errorf("line %d: unexpected '/'", l.line)
			}
		case c == '{':
			return token{tokOpen, "{", l.line}, nil
		case c == '}':
			return token{tokClose, "}", l.line}, nil
		case c == '<':
			var sb strings.Builder
			for {
				c, _, err := l.r.ReadRune()
				if err != nil {
					return token{}, fmt.Errorf("line %d: unterminated entry type", l.line)
				}
				if c == '>' {
					return token{tokType, sb.String(), l.line}, nil
				}
				sb.WriteRune(c)
			}
		default:
			var sb strings.Builder
			sb.WriteRune(c)
			for {
				c, _, err := l.r.ReadRune()
				if err != nil {
					return token{kind: tokWord, text: sb.String(), line: l.line}, nil
				}
				if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '{' || c == '}' || c == '<' {
					l.r.UnreadRune()
					return token{kind: tokWord, text: sb.String(), line: l.line}, nil
				}
				sb.WriteRune(c)
			}
		}
	}
}

// entry is one parsed <Type> name { ... } record.
type entry struct {
	typ      string
	name     string
	values   []string
	children []*entry
	line     int
}

// child returns the first child of the given type, or nil.
func (e *entry) child(typ string) *entry {
	for _, c := range e.children {
		if c.typ == typ {
			return c
		}
	}
	return nil
}

type parser struct {
	lex    *lexer
	peeked *token
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

// parseEntry consumes one entry; the leading type token is already read.
func (p *parser) parseEntry(typ token) (*entry, error) {
	e := &entry{typ: typ.text, line: typ.line}

	t, err := p.next()
	if err != nil {
		return nil, fmt.Errorf("line %d: unexpected end of file after <%s>", typ.line, typ.text)
	}
	if t.kind == tokWord {
		e.name = t.text
		t, err = p.next()
		if err != nil {
			return nil, fmt.Errorf("line %d: unexpected end of file after <%s> %s", typ.line, typ.text, e.name)
		}
	}
	if t.kind != tokOpen {
		return nil, fmt.Errorf("line %d: expected '{' in <%s> entry, got %q", t.line, typ.text, t.text)
	}

	for {
		t, err := p.next()
		if err == io.EOF {
			return nil, fmt.Errorf("line %d: unterminated <%s> entry", typ.line, typ.text)
		}
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case tokClose:
			return e, nil
		case tokWord:
			e.values = append(e.values, t.text)
		case tokType:
			child, err := p.parseEntry(t)
			if err != nil {
				return nil, err
			}
			e.children = append(e.children, child)
		default:
			return nil, fmt.Errorf("line %d: unexpected token %q", t.line, t.text)
		}
	}
}

// parseAll returns the top-level entries of the stream.
func (p *parser) parseAll() ([]*entry, error) {
	var out []*entry
	for {
		t, err := p.next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if t.kind != tokType {
			return nil, fmt.Errorf("line %d: expected entry type, got %q", t.line, t.text)
		}
		e, err := p.parseEntry(t)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func parseFloats(e *entry, values []string, want int) ([]float32, error) {
	if len(values) != want {
		return nil, fmt.Errorf("line %d: <%s> expects %d numbers, got %d", e.line, e.typ, want, len(values))
	}
	out := make([]float32, want)
	for i, s := range values {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad number %q in <%s>", e.line, s, e.typ)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// Decode parses a document from r.
func Decode(r io.Reader) (*Document, error) {
	p := &parser{lex: newLexer(r)}
	entries, err := p.parseAll()
	if err != nil {
		return nil, err
	}

	var group *entry
	for _, e := range entries {
		switch e.typ {
		case "CoordinateSystem":
			if len(e.values) != 1 || !strings.EqualFold(e.values[0], CoordinateSystem) {
				return nil, fmt.Errorf("line %d: unsupported coordinate system %v", e.line, e.values)
			}
		case "Group":
			if group != nil {
				return nil, fmt.Errorf("line %d: multiple groups not supported", e.line)
			}
			group = e
		}
	}
	if group == nil {
		return nil, fmt.Errorf("no <Group> entry found")
	}

	d := &Document{Name: group.name}

	pool := group.child("VertexPool")
	if pool == nil {
		return nil, fmt.Errorf("line %d: group %q has no <VertexPool>", group.line, group.name)
	}
	for _, ve := range pool.children {
		if ve.typ != "Vertex" {
			continue
		}
		idx, err := strconv.Atoi(ve.name)
		if err != nil || idx != len(d.Vertices) {
			return nil, fmt.Errorf("line %d: vertex indices must be dense and ordered, got %q", ve.line, ve.name)
		}
		pos, err := parseFloats(ve, ve.values, 3)
		if err != nil {
			return nil, err
		}
		v := Vertex{Position: [3]float32(pos)}
		if ne := ve.child("Normal"); ne != nil {
			n, err := parseFloats(ne, ne.values, 3)
			if err != nil {
				return nil, err
			}
			v.Normal = [3]float32(n)
		}
		if ue := ve.child("UV"); ue != nil {
			uv, err := parseFloats(ue, ue.values, 2)
			if err != nil {
				return nil, err
			}
			v.UV = [2]float32(uv)
		}
		d.Vertices = append(d.Vertices, v)
	}

	for _, pe := range group.children {
		if pe.typ != "Polygon" {
			continue
		}
		ref := pe.child("VertexRef")
		if ref == nil {
			return nil, fmt.Errorf("line %d: polygon without <VertexRef>", pe.line)
		}
		if len(ref.values) != 3 {
			return nil, fmt.Errorf("line %d: only triangles are supported, got %d refs", ref.line, len(ref.values))
		}
		var poly Polygon
		for i, s := range ref.values {
			n, err := strconv.ParseUint(s, 10, 32)
			if err != nil || n >= uint64(len(d.Vertices)) {
				return nil, fmt.Errorf("line %d: bad vertex reference %q", ref.line, s)
			}
			poly.Refs[i] = uint32(n)
		}
		if pn := ref.child("Ref"); pn != nil {
			if len(pn.values) != 1 || pn.values[0] != pool.name {
				return nil, fmt.Errorf("line %d: polygon references unknown pool %v", pn.line, pn.values)
			}
		}
		d.Polygons = append(d.Polygons, poly)
	}

	return d, nil
}

// ParseFile reads and decodes the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open egg file: %w", err)
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
