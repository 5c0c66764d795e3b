package classfile

import (
	"bytes"
	"encoding/binary"
)

// classBuilder assembles minimal class files for tests.
type classBuilder struct {
	pool    bytes.Buffer
	count   uint16
	utf8    map[string]uint16
	fields  []memberSpec
	methods []memberSpec
	attrs   []attrSpec
}

// attrSpec declares length bytes but carries only data, so truncated
// attributes can be built.
type attrSpec struct {
	name   string
	length uint32
	data   []byte
}

type memberSpec struct {
	flags      AccessFlags
	name, desc string
}

func newClassBuilder() *classBuilder {
	return &classBuilder{count: 1, utf8: map[string]uint16{}}
}

func (b *classBuilder) u1(v uint8)  { b.pool.WriteByte(v) }
func (b *classBuilder) u2(v uint16) { binary.Write(&b.pool, binary.BigEndian, v) }

func (b *classBuilder) next(slots uint16) uint16 {
	idx := b.count
	b.count += slots
	return idx
}

func (b *classBuilder) Utf8(s string) uint16 {
	if idx, ok := b.utf8[s]; ok {
		return idx
	}
	b.u1(uint8(ConstantUtf8))
	b.u2(uint16(len(s)))
	b.pool.WriteString(s)
	idx := b.next(1)
	b.utf8[s] = idx
	return idx
}

func (b *classBuilder) Class(name string) uint16 {
	n := b.Utf8(name)
	b.u1(uint8(ConstantClass))
	b.u2(n)
	return b.next(1)
}

func (b *classBuilder) NameAndType(name, desc string) uint16 {
	n, d := b.Utf8(name), b.Utf8(desc)
	b.u1(uint8(ConstantNameAndType))
	b.u2(n)
	b.u2(d)
	return b.next(1)
}

func (b *classBuilder) Ref(tag ConstantTag, class, name, desc string) uint16 {
	c, nt := b.Class(class), b.NameAndType(name, desc)
	b.u1(uint8(tag))
	b.u2(c)
	b.u2(nt)
	return b.next(1)
}

// RawRef adds a member reference with unchecked indexes.
func (b *classBuilder) RawRef(tag ConstantTag, classIndex, nameAndTypeIndex uint16) uint16 {
	b.u1(uint8(tag))
	b.u2(classIndex)
	b.u2(nameAndTypeIndex)
	return b.next(1)
}

func (b *classBuilder) MethodType(desc string) uint16 {
	d := b.Utf8(desc)
	b.u1(uint8(ConstantMethodType))
	b.u2(d)
	return b.next(1)
}

func (b *classBuilder) Long(v int64) uint16 {
	b.u1(uint8(ConstantLong))
	binary.Write(&b.pool, binary.BigEndian, v)
	return b.next(2)
}

func (b *classBuilder) Field(flags AccessFlags, name, desc string) {
	b.Utf8(name)
	b.Utf8(desc)
	b.fields = append(b.fields, memberSpec{flags, name, desc})
}

func (b *classBuilder) Method(flags AccessFlags, name, desc string) {
	b.Utf8(name)
	b.Utf8(desc)
	b.methods = append(b.methods, memberSpec{flags, name, desc})
}

func (b *classBuilder) Attribute(name string, length uint32, data []byte) {
	b.Utf8(name)
	b.attrs = append(b.attrs, attrSpec{name, length, data})
}

func (b *classBuilder) Build(flags AccessFlags, this, super uint16, interfaces ...uint16) []byte {
	var out bytes.Buffer
	w := func(v any) { binary.Write(&out, binary.BigEndian, v) }

	w(uint32(Magic))
	w(uint16(0))
	w(uint16(65))
	w(b.count)
	out.Write(b.pool.Bytes())
	w(uint16(flags))
	w(this)
	w(super)
	w(uint16(len(interfaces)))
	for _, i := range interfaces {
		w(i)
	}
	for _, members := range [][]memberSpec{b.fields, b.methods} {
		w(uint16(len(members)))
		for _, m := range members {
			w(uint16(m.flags))
			w(b.utf8[m.name])
			w(b.utf8[m.desc])
			w(uint16(0))
		}
	}
	w(uint16(len(b.attrs)))
	for _, a := range b.attrs {
		w(b.utf8[a.name])
		w(a.length)
		out.Write(a.data)
	}
	return out.Bytes()
}
