package descriptor

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// ConstructorName is the name every constructor carries.
const ConstructorName = "<init>"

// Signature is the parameter list and return type of a method, the part
// of a method descriptor that class files store (for example "(IJ)V").
// A nil Return means void. Parameters must not contain nil; formatting
// such a signature panics.
type Signature struct {
	Parameters []Type
	Return     Type
}

// ParseSignature parses the whole of s as a name-less method descriptor.
func ParseSignature(s string) (Signature, error) {
	return parse(s, (*parser).signature)
}

func (p *parser) signature() (Signature, bool) {
	params, ok := p.parameters()
	if !ok {
		return Signature{}, false
	}
	if p.peek() == 'V' {
		p.pos++
		return Signature{Parameters: params}, true
	}
	at := p.pos
	ret, ok := p.fieldType()
	if !ok {
		p.pos = at
		p.expect(quoteByte('V'))
		return Signature{}, false
	}
	return Signature{Parameters: params, Return: ret}, true
}

func (p *parser) parameters() ([]Type, bool) {
	if !p.accept('(') {
		return nil, false
	}
	var params []Type
	for {
		if p.peek() == ')' {
			p.pos++
			return params, true
		}
		at := p.pos
		t, ok := p.fieldType()
		if !ok {
			p.pos = at
			p.expect(quoteByte(')'))
			return nil, false
		}
		params = append(params, t)
	}
}

func (s Signature) String() string { return string(s.appendDescriptor(nil)) }

func (s Signature) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.appendDescriptor(nil))
	return int64(n), err
}

func (s Signature) appendDescriptor(b []byte) []byte {
	b = append(b, '(')
	for i, t := range s.Parameters {
		if t == nil {
			panic(fmt.Sprintf("descriptor: parameter %d is nil", i))
		}
		b = t.appendDescriptor(b)
	}
	b = append(b, ')')
	return appendType(b, s.Return)
}

func (s Signature) Equal(o Signature) bool {
	return typesEqual(s.Return, o.Return) && slices.EqualFunc(s.Parameters, o.Parameters, typesEqual)
}

// ParameterSlots returns the number of local variable slots the
// parameters occupy, not counting the receiver.
func (s Signature) ParameterSlots() int {
	n := 0
	for _, t := range s.Parameters {
		if p, ok := t.(Primitive); ok {
			n += p.Size()
		} else {
			n++
		}
	}
	return n
}

func (s Signature) MarshalText() ([]byte, error) {
	return s.appendDescriptor(nil), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Method is a method descriptor together with the method's name. A method
// named ConstructorName is a constructor and always encodes a void return:
// any Return set on a constructor is dropped when formatting, so
// Method{Name: "<init>", Signature: Signature{Return: Int}} formats as
// "<init>()V" and parses back as NewConstructor().
type Method struct {
	Name string
	Signature
}

// NewMethod returns the method name with the given parameters and return
// type; pass a nil ret for void.
func NewMethod(name string, ret Type, params ...Type) Method {
	return Method{Name: name, Signature: Signature{Parameters: slices.Clone(params), Return: ret}}
}

// NewConstructor returns a constructor taking params.
func NewConstructor(params ...Type) Method {
	return Method{Name: ConstructorName, Signature: Signature{Parameters: slices.Clone(params)}}
}

func (m Method) IsConstructor() bool { return m.Name == ConstructorName }

// ParseMethod parses the whole of s as a named method descriptor. A plain
// identifier name is tried first; failing that the constructor form
// "<init>(...)V" is tried.
func ParseMethod(s string) (Method, error) {
	return parse(s, (*parser).method)
}

func (p *parser) method() (Method, bool) {
	start := p.pos
	if name, ok := p.ident(identMember); ok {
		if sig, ok := p.signature(); ok {
			return Method{Name: name, Signature: sig}, true
		}
	}
	p.pos = start
	if !p.literal(ConstructorName) {
		return Method{}, false
	}
	params, ok := p.parameters()
	if !ok || !p.accept('V') {
		return Method{}, false
	}
	return Method{Name: ConstructorName, Signature: Signature{Parameters: params}}, true
}

func (m Method) String() string { return string(m.appendDescriptor(nil)) }

func (m Method) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.appendDescriptor(nil))
	return int64(n), err
}

func (m Method) appendDescriptor(b []byte) []byte {
	b = append(b, m.Name...)
	if m.IsConstructor() {
		return Signature{Parameters: m.Parameters}.appendDescriptor(b)
	}
	return m.Signature.appendDescriptor(b)
}

func (m Method) Equal(o Method) bool {
	return m.Name == o.Name && m.Signature.Equal(o.Signature)
}

// JavaString renders m as a Java declaration without modifiers, for
// example "java.lang.String substring(int, int)". Constructors render
// without a return type.
func (m Method) JavaString() string {
	var sb strings.Builder
	if !m.IsConstructor() {
		if m.Return == nil {
			sb.WriteString("void")
		} else {
			sb.WriteString(m.Return.JavaName())
		}
		sb.WriteByte(' ')
	}
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, t := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.JavaName())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (m Method) MarshalText() ([]byte, error) {
	return m.appendDescriptor(nil), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
