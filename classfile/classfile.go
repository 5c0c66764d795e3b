package classfile

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []Member
	Methods      []Member
	Attributes   []Attribute
}

// Member is a field or method with its name and descriptor already
// resolved from the constant pool.
type Member struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
	Attributes  []Attribute
}

type Attribute struct {
	Name string
	Data []byte
}

// Name returns the class's own name. The names of package-info and
// module-info classes are accepted even though they are not identifiers.
func (cf *ClassFile) Name() (descriptor.ClassName, error) {
	raw, err := cf.ConstantPool.GetClassName(cf.ThisClass)
	if err != nil {
		return descriptor.ClassName{}, fmt.Errorf("this class: %w", err)
	}
	return parseClassName(raw)
}

// SuperName returns the superclass name, or false for java/lang/Object
// and module-info.
func (cf *ClassFile) SuperName() (descriptor.ClassName, bool, error) {
	if cf.SuperClass == 0 {
		return descriptor.ClassName{}, false, nil
	}
	raw, err := cf.ConstantPool.GetClassName(cf.SuperClass)
	if err != nil {
		return descriptor.ClassName{}, false, fmt.Errorf("super class: %w", err)
	}
	c, err := descriptor.ParseClassName(raw)
	return c, err == nil, err
}

func (cf *ClassFile) InterfaceNames() ([]descriptor.ClassName, error) {
	names := make([]descriptor.ClassName, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		raw, err := cf.ConstantPool.GetClassName(idx)
		if err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, err)
		}
		if names[i], err = descriptor.ParseClassName(raw); err != nil {
			return nil, fmt.Errorf("interface %q: %w", raw, err)
		}
	}
	return names, nil
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface()
}

func (cf *ClassFile) GetField(name string) *Member {
	for i := range cf.Fields {
		if cf.Fields[i].Name == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

func (cf *ClassFile) GetMethod(name, desc string) *Member {
	for i := range cf.Methods {
		if cf.Methods[i].Name == name && (desc == "" || cf.Methods[i].Descriptor == desc) {
			return &cf.Methods[i]
		}
	}
	return nil
}

func (cf *ClassFile) GetMethods(name string) []*Member {
	var methods []*Member
	for i := range cf.Methods {
		if cf.Methods[i].Name == name {
			methods = append(methods, &cf.Methods[i])
		}
	}
	return methods
}

// FieldType decodes the descriptor of a field.
func (m *Member) FieldType() (descriptor.Type, error) {
	return descriptor.ParseType(m.Descriptor)
}

// Method decodes the descriptor of a method. The name is taken as is, so
// special methods such as <clinit> decode as well.
func (m *Member) Method() (descriptor.Method, error) {
	sig, err := descriptor.ParseSignature(m.Descriptor)
	if err != nil {
		return descriptor.Method{}, err
	}
	if m.Name == descriptor.ConstructorName {
		return descriptor.NewConstructor(sig.Parameters...), nil
	}
	return descriptor.Method{Name: m.Name, Signature: sig}, nil
}

func (m *Member) IsConstructor() bool {
	return m.Name == descriptor.ConstructorName
}

func (m *Member) IsStaticInitializer() bool {
	return m.Name == "<clinit>"
}
