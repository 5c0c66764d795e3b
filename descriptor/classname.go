package descriptor

import (
	"io"
	"slices"
	"strings"
)

// ClassName is a class name in internal form: package and class segments
// separated by '/', followed by one '$'-prefixed segment per level of
// nesting.
type ClassName struct {
	Path   []string
	Nested []string
}

// NewClassName returns the top-level class with the given path segments.
func NewClassName(path ...string) ClassName {
	return ClassName{Path: slices.Clone(path)}
}

// WithNested returns a copy of c with nested appended to its nested chain.
func (c ClassName) WithNested(nested ...string) ClassName {
	return ClassName{
		Path:   slices.Clone(c.Path),
		Nested: append(slices.Clone(c.Nested), nested...),
	}
}

// ParseClassName parses the whole of s as a class name.
func ParseClassName(s string) (ClassName, error) {
	return parse(s, (*parser).className)
}

func (p *parser) className() (ClassName, bool) {
	var c ClassName
	seg, ok := p.ident(identPath)
	if !ok {
		return ClassName{}, false
	}
	c.Path = append(c.Path, seg)
	for p.peek() == '/' {
		p.pos++
		if seg, ok = p.ident(identPath); !ok {
			return ClassName{}, false
		}
		c.Path = append(c.Path, seg)
	}
	for p.peek() == '$' {
		p.pos++
		if seg, ok = p.ident(identNested); !ok {
			return ClassName{}, false
		}
		c.Nested = append(c.Nested, seg)
	}
	if len(c.Nested) == 0 {
		p.expect(quoteByte('/'), quoteByte('$'))
	} else {
		p.expect(quoteByte('$'))
	}
	return c, true
}

func (c ClassName) String() string {
	return string(c.appendDescriptor(nil))
}

// WriteTo writes the internal form of c to w.
func (c ClassName) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendDescriptor(nil))
	return int64(n), err
}

func (c ClassName) appendDescriptor(b []byte) []byte {
	for i, seg := range c.Path {
		if i > 0 {
			b = append(b, '/')
		}
		b = append(b, seg...)
	}
	for _, seg := range c.Nested {
		b = append(b, '$')
		b = append(b, seg...)
	}
	return b
}

func (c ClassName) Equal(o ClassName) bool {
	return slices.Equal(c.Path, o.Path) && slices.Equal(c.Nested, o.Nested)
}

// Package returns the package in internal form, "" for the default package.
func (c ClassName) Package() string {
	if len(c.Path) < 2 {
		return ""
	}
	return strings.Join(c.Path[:len(c.Path)-1], "/")
}

// SimpleName returns the innermost class name.
func (c ClassName) SimpleName() string {
	if len(c.Nested) > 0 {
		return c.Nested[len(c.Nested)-1]
	}
	if len(c.Path) == 0 {
		return ""
	}
	return c.Path[len(c.Path)-1]
}

// Outer returns the enclosing class and true, or false for a top-level class.
func (c ClassName) Outer() (ClassName, bool) {
	if len(c.Nested) == 0 {
		return ClassName{}, false
	}
	return ClassName{
		Path:   slices.Clone(c.Path),
		Nested: slices.Clone(c.Nested[:len(c.Nested)-1]),
	}, true
}

// JavaName returns the name as written in Java source, with nested classes
// joined by '.'.
func (c ClassName) JavaName() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(c.Path, "."))
	for _, seg := range c.Nested {
		sb.WriteByte('.')
		sb.WriteString(seg)
	}
	return sb.String()
}

func (c ClassName) MarshalText() ([]byte, error) {
	return c.appendDescriptor(nil), nil
}

func (c *ClassName) UnmarshalText(text []byte) error {
	parsed, err := ParseClassName(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
