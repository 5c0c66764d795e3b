package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unicode/utf16"
)

// reader remembers the first read error; every later read is a no-op.
type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	b := r.readBytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) readU2() uint16 {
	b := r.readBytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) readU4() uint32 {
	b := r.readBytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// maxPrealloc bounds what readBytes allocates before any data arrives.
// Lengths come from the file, so larger payloads grow with the input.
const maxPrealloc = 64 << 10

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.err = fmt.Errorf("invalid length %d", n)
		return nil
	}
	if n <= maxPrealloc {
		buf := make([]byte, n)
		if _, r.err = io.ReadFull(r.r, buf); r.err != nil {
			return nil
		}
		return buf
	}

	var buf bytes.Buffer
	buf.Grow(maxPrealloc)
	if _, err := io.CopyN(&buf, r.r, int64(n)); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		r.err = err
		return nil
	}
	return buf.Bytes()
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", r.err)
	}

	constantPoolCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", r.err)
	}
	if constantPoolCount == 0 {
		return nil, fmt.Errorf("invalid constant pool count: 0")
	}

	cf.ConstantPool = make(ConstantPool, constantPoolCount-1)
	for i := uint16(1); i < constantPoolCount; i++ {
		entry, wide, err := readConstantPoolEntry(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool entry %d: %w", i, err)
		}
		cf.ConstantPool[i-1] = entry
		if wide {
			i++
		}
	}

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()

	interfacesCount := r.readU2()
	cf.Interfaces = make([]uint16, interfacesCount)
	for i := range cf.Interfaces {
		cf.Interfaces[i] = r.readU2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", r.err)
	}

	var err error
	if cf.Fields, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}
	if cf.Methods, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}
	if cf.Attributes, err = readAttributes(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}

	return cf, nil
}

// readConstantPoolEntry reports wide for longs and doubles, which take
// two pool slots.
func readConstantPoolEntry(r *reader) (entry ConstantPoolEntry, wide bool, err error) {
	tag := ConstantTag(r.readU1())
	if r.err != nil {
		return nil, false, r.err
	}

	switch tag {
	case ConstantUtf8:
		length := r.readU2()
		bytes := r.readBytes(int(length))
		entry = &ConstantUtf8Info{Value: decodeModifiedUtf8(bytes)}
	case ConstantClass:
		entry = &ConstantClassInfo{NameIndex: r.readU2()}
	case ConstantNameAndType:
		entry = &ConstantNameAndTypeInfo{NameIndex: r.readU2(), DescriptorIndex: r.readU2()}
	case ConstantFieldref, ConstantMethodref, ConstantInterfaceMethodref:
		entry = &ConstantRefInfo{Kind: tag, ClassIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	case ConstantMethodType:
		entry = &ConstantMethodTypeInfo{DescriptorIndex: r.readU2()}
	default:
		size, ok := opaqueSizes[tag]
		if !ok {
			return nil, false, fmt.Errorf("unknown constant pool tag: %d", tag)
		}
		entry = &ConstantOpaqueInfo{Kind: tag, Data: r.readBytes(size)}
		wide = tag == ConstantLong || tag == ConstantDouble
	}

	if r.err != nil {
		return nil, false, r.err
	}
	return entry, wide, nil
}

func readMembers(r *reader, cp ConstantPool) ([]Member, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}

	members := make([]Member, count)
	for i := range members {
		m := &members[i]
		m.AccessFlags = AccessFlags(r.readU2())
		nameIndex := r.readU2()
		descriptorIndex := r.readU2()
		if r.err != nil {
			return nil, r.err
		}

		var err error
		if m.Name, err = cp.GetUtf8(nameIndex); err != nil {
			return nil, fmt.Errorf("member %d name: %w", i, err)
		}
		if m.Descriptor, err = cp.GetUtf8(descriptorIndex); err != nil {
			return nil, fmt.Errorf("member %s descriptor: %w", m.Name, err)
		}
		if m.Attributes, err = readAttributes(r, cp); err != nil {
			return nil, fmt.Errorf("member %s: %w", m.Name, err)
		}
	}
	return members, nil
}

func readAttributes(r *reader, cp ConstantPool) ([]Attribute, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}

	attrs := make([]Attribute, count)
	for i := range attrs {
		nameIndex := r.readU2()
		length := r.readU4()
		attrs[i].Data = r.readBytes(int(length))
		if r.err != nil {
			return nil, r.err
		}
		name, err := cp.GetUtf8(nameIndex)
		if err != nil {
			return nil, fmt.Errorf("attribute %d name: %w", i, err)
		}
		attrs[i].Name = name
	}
	return attrs, nil
}

// decodeModifiedUtf8 decodes the class file's string encoding: NUL is
// written as two bytes and supplementary characters as surrogate pairs.
func decodeModifiedUtf8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, uint16(c))
			i++
		}
	}
	return string(utf16.Decode(units))
}
