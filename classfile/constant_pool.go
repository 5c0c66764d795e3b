package classfile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

// ConstantRefInfo is a field, method or interface method reference.
type ConstantRefInfo struct {
	Kind             ConstantTag
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantRefInfo) Tag() ConstantTag { return c.Kind }

type ConstantMethodTypeInfo struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

// ConstantOpaqueInfo keeps the raw payload of entries that do not name
// classes or carry descriptors.
type ConstantOpaqueInfo struct {
	Kind ConstantTag
	Data []byte
}

func (c *ConstantOpaqueInfo) Tag() ConstantTag { return c.Kind }

// ConstantPool is indexed from 1 like the class file; slot 0 of the slice
// is entry 1. The second slot of a long or double is nil.
type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) (ConstantPoolEntry, error) {
	if index == 0 || int(index) > len(cp) || cp[index-1] == nil {
		return nil, fmt.Errorf("invalid constant pool index %d", index)
	}
	return cp[index-1], nil
}

func (cp ConstantPool) GetUtf8(index uint16) (string, error) {
	e, err := cp.entry(index)
	if err != nil {
		return "", err
	}
	u, ok := e.(*ConstantUtf8Info)
	if !ok {
		return "", fmt.Errorf("constant %d: expected Utf8, got tag %d", index, e.Tag())
	}
	return u.Value, nil
}

// GetClassName returns the raw internal name of a Class constant. Array
// classes are named by their descriptor, for example "[Ljava/lang/String;".
func (cp ConstantPool) GetClassName(index uint16) (string, error) {
	e, err := cp.entry(index)
	if err != nil {
		return "", err
	}
	c, ok := e.(*ConstantClassInfo)
	if !ok {
		return "", fmt.Errorf("constant %d: expected Class, got tag %d", index, e.Tag())
	}
	return cp.GetUtf8(c.NameIndex)
}

// GetClass decodes a Class constant into a type: a ClassType for ordinary
// classes and an ArrayType for array classes.
func (cp ConstantPool) GetClass(index uint16) (descriptor.Type, error) {
	name, err := cp.GetClassName(index)
	if err != nil {
		return nil, err
	}
	return decodeClassName(name)
}

func decodeClassName(name string) (descriptor.Type, error) {
	if strings.HasPrefix(name, "[") {
		t, err := descriptor.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("array class %q: %w", name, err)
		}
		return t, nil
	}
	c, err := parseClassName(name)
	if err != nil {
		return nil, fmt.Errorf("class name %q: %w", name, err)
	}
	return descriptor.ClassType{Name: c}, nil
}

// declarationNames are the class names javac gives to package and module
// declarations. They are not identifiers, so they are only accepted as the
// last segment of a class name.
var declarationNames = []string{"package-info", "module-info"}

// parseClassName is descriptor.ParseClassName extended with the
// declaration class names.
func parseClassName(name string) (descriptor.ClassName, error) {
	pkg, last := "", name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		pkg, last = name[:i], name[i+1:]
	}
	if !slices.Contains(declarationNames, last) {
		return descriptor.ParseClassName(name)
	}
	if pkg == "" {
		return descriptor.NewClassName(last), nil
	}
	c, err := descriptor.ParseClassName(pkg)
	if err != nil {
		return descriptor.ClassName{}, err
	}
	if len(c.Nested) > 0 {
		return descriptor.ClassName{}, fmt.Errorf("package %q names a nested class", pkg)
	}
	return descriptor.NewClassName(append(c.Path, last)...), nil
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, desc string, err error) {
	e, err := cp.entry(index)
	if err != nil {
		return "", "", err
	}
	nt, ok := e.(*ConstantNameAndTypeInfo)
	if !ok {
		return "", "", fmt.Errorf("constant %d: expected NameAndType, got tag %d", index, e.Tag())
	}
	if name, err = cp.GetUtf8(nt.NameIndex); err != nil {
		return "", "", err
	}
	if desc, err = cp.GetUtf8(nt.DescriptorIndex); err != nil {
		return "", "", err
	}
	return name, desc, nil
}

// GetRef resolves a field, method or interface method reference into the
// owning class name, member name and raw descriptor.
func (cp ConstantPool) GetRef(index uint16) (className, name, desc string, err error) {
	e, err := cp.entry(index)
	if err != nil {
		return "", "", "", err
	}
	ref, ok := e.(*ConstantRefInfo)
	if !ok {
		return "", "", "", fmt.Errorf("constant %d: expected member reference, got tag %d", index, e.Tag())
	}
	if className, err = cp.GetClassName(ref.ClassIndex); err != nil {
		return "", "", "", err
	}
	if name, desc, err = cp.GetNameAndType(ref.NameAndTypeIndex); err != nil {
		return "", "", "", err
	}
	return className, name, desc, nil
}

func (cp ConstantPool) GetMethodType(index uint16) (string, error) {
	e, err := cp.entry(index)
	if err != nil {
		return "", err
	}
	mt, ok := e.(*ConstantMethodTypeInfo)
	if !ok {
		return "", fmt.Errorf("constant %d: expected MethodType, got tag %d", index, e.Tag())
	}
	return cp.GetUtf8(mt.DescriptorIndex)
}
