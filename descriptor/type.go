package descriptor

import (
	"io"
	"strings"
)

// Type is a field descriptor: a Primitive, a ClassType or an ArrayType.
// No other implementations exist.
type Type interface {
	String() string
	WriteTo(w io.Writer) (int64, error)
	// JavaName returns the type as written in Java source.
	JavaName() string
	Equal(Type) bool

	appendDescriptor(b []byte) []byte
}

// Primitive is one of the eight primitive types. Its value is the
// descriptor character.
type Primitive byte

const (
	Byte    Primitive = 'B'
	Char    Primitive = 'C'
	Double  Primitive = 'D'
	Float   Primitive = 'F'
	Int     Primitive = 'I'
	Long    Primitive = 'J'
	Short   Primitive = 'S'
	Boolean Primitive = 'Z'
)

var primitiveNames = map[Primitive]string{
	Byte:    "byte",
	Char:    "char",
	Double:  "double",
	Float:   "float",
	Int:     "int",
	Long:    "long",
	Short:   "short",
	Boolean: "boolean",
}

// Primitives lists every primitive in descriptor-character order.
var Primitives = []Primitive{Byte, Char, Double, Float, Int, Long, Short, Boolean}

// Code returns the descriptor character.
func (p Primitive) Code() byte { return byte(p) }

func (p Primitive) String() string { return string(rune(p)) }

func (p Primitive) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(p)})
	return int64(n), err
}

func (p Primitive) JavaName() string { return primitiveNames[p] }

func (p Primitive) Equal(t Type) bool {
	o, ok := t.(Primitive)
	return ok && o == p
}

// Size returns the number of local variable slots a value occupies.
func (p Primitive) Size() int {
	if p == Long || p == Double {
		return 2
	}
	return 1
}

func (p Primitive) appendDescriptor(b []byte) []byte { return append(b, byte(p)) }

// ClassType is a reference to a class, encoded as L<name>;.
type ClassType struct {
	Name ClassName
}

// ClassOf returns the class type for the given path segments.
func ClassOf(path ...string) ClassType {
	return ClassType{Name: NewClassName(path...)}
}

func (c ClassType) String() string { return string(c.appendDescriptor(nil)) }

func (c ClassType) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.appendDescriptor(nil))
	return int64(n), err
}

func (c ClassType) JavaName() string { return c.Name.JavaName() }

func (c ClassType) Equal(t Type) bool {
	o, ok := t.(ClassType)
	return ok && o.Name.Equal(c.Name)
}

func (c ClassType) appendDescriptor(b []byte) []byte {
	b = append(b, 'L')
	b = c.Name.appendDescriptor(b)
	return append(b, ';')
}

// ArrayType is one array dimension over Elem, encoded as [<elem>. Elem
// must not be nil; formatting an array without an element type panics.
type ArrayType struct {
	Elem Type
}

// ArrayOf wraps elem in dims array dimensions.
func ArrayOf(elem Type, dims int) Type {
	for i := 0; i < dims; i++ {
		elem = ArrayType{Elem: elem}
	}
	return elem
}

func (a ArrayType) String() string { return string(a.appendDescriptor(nil)) }

func (a ArrayType) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.appendDescriptor(nil))
	return int64(n), err
}

func (a ArrayType) JavaName() string {
	base, dims := Component(a)
	if base == nil {
		return ""
	}
	return base.JavaName() + strings.Repeat("[]", dims)
}

func (a ArrayType) Equal(t Type) bool {
	o, ok := t.(ArrayType)
	return ok && typesEqual(a.Elem, o.Elem)
}

func (a ArrayType) appendDescriptor(b []byte) []byte {
	for {
		b = append(b, '[')
		inner, ok := a.Elem.(ArrayType)
		if !ok {
			if a.Elem == nil {
				panic("descriptor: array element type is nil")
			}
			return a.Elem.appendDescriptor(b)
		}
		a = inner
	}
}

// Component strips every array dimension from t and returns the
// innermost type together with the number of dimensions removed.
func Component(t Type) (Type, int) {
	dims := 0
	for {
		a, ok := t.(ArrayType)
		if !ok {
			return t, dims
		}
		t = a.Elem
		dims++
	}
}

// IsReference reports whether values of t are object references.
func IsReference(t Type) bool {
	_, ok := t.(Primitive)
	return t != nil && !ok
}

// ParseType parses the whole of s as a field descriptor.
func ParseType(s string) (Type, error) {
	return parse(s, (*parser).fieldType)
}

func (p *parser) fieldType() (Type, bool) {
	dims := 0
	for p.peek() == '[' {
		p.pos++
		dims++
	}
	if p.pos >= len(p.input) {
		p.expect(expectType)
		return nil, false
	}
	c := p.input[p.pos]
	if _, ok := primitiveNames[Primitive(c)]; ok {
		p.pos++
		return ArrayOf(Primitive(c), dims), true
	}
	if c != 'L' {
		p.expect(expectType)
		return nil, false
	}
	p.pos++
	name, ok := p.className()
	if !ok || !p.accept(';') {
		return nil, false
	}
	return ArrayOf(ClassType{Name: name}, dims), true
}

func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// appendType writes t, or V for the nil (void) return type.
func appendType(b []byte, t Type) []byte {
	if t == nil {
		return append(b, 'V')
	}
	return t.appendDescriptor(b)
}
