package classfile

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type DescriptorKind int

const (
	KindClass DescriptorKind = iota
	KindField
	KindMethod
	KindFieldRef
	KindMethodRef
	KindMethodType
)

var descriptorKindNames = map[DescriptorKind]string{
	KindClass:      "class",
	KindField:      "field",
	KindMethod:     "method",
	KindFieldRef:   "fieldref",
	KindMethodRef:  "methodref",
	KindMethodType: "methodtype",
}

func (k DescriptorKind) String() string {
	if name, ok := descriptorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DescriptorRef is one name or descriptor found in a class file. Index is
// the constant pool entry it came from, or 0 for the class's own members.
// Err is set when the entry could not be resolved; Check then fails with it.
type DescriptorRef struct {
	Kind  DescriptorKind
	Index uint16
	Owner string
	Name  string
	Text  string
	Err   error
}

func (d DescriptorRef) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%s #%d", d.Kind, d.Index)
	}
	switch d.Kind {
	case KindClass, KindMethodType:
		return fmt.Sprintf("%s %s", d.Kind, d.Text)
	}
	return fmt.Sprintf("%s %s.%s:%s", d.Kind, d.Owner, d.Name, d.Text)
}

// Descriptors lists every class name, member descriptor and referenced
// descriptor in the class file, in constant pool order after the class's
// own fields and methods.
func (cf *ClassFile) Descriptors() []DescriptorRef {
	owner, _ := cf.ConstantPool.GetClassName(cf.ThisClass)

	var refs []DescriptorRef
	for _, f := range cf.Fields {
		refs = append(refs, DescriptorRef{Kind: KindField, Owner: owner, Name: f.Name, Text: f.Descriptor})
	}
	for _, m := range cf.Methods {
		refs = append(refs, DescriptorRef{Kind: KindMethod, Owner: owner, Name: m.Name, Text: m.Descriptor})
	}

	for i, e := range cf.ConstantPool {
		index := uint16(i + 1)
		switch e := e.(type) {
		case *ConstantClassInfo:
			name, err := cf.ConstantPool.GetUtf8(e.NameIndex)
			refs = append(refs, resolved(DescriptorRef{Kind: KindClass, Index: index, Text: name}, err))
		case *ConstantRefInfo:
			kind := KindMethodRef
			if e.Kind == ConstantFieldref {
				kind = KindFieldRef
			}
			className, name, desc, err := cf.ConstantPool.GetRef(index)
			refs = append(refs, resolved(DescriptorRef{Kind: kind, Index: index, Owner: className, Name: name, Text: desc}, err))
		case *ConstantMethodTypeInfo:
			desc, err := cf.ConstantPool.GetMethodType(index)
			refs = append(refs, resolved(DescriptorRef{Kind: KindMethodType, Index: index, Text: desc}, err))
		}
	}
	return refs
}

func resolved(ref DescriptorRef, err error) DescriptorRef {
	if err != nil {
		ref.Err = fmt.Errorf("unresolved constant %d: %w", ref.Index, err)
	}
	return ref
}

// Check decodes the descriptor and verifies that formatting the decoded
// value reproduces the original text.
func (d DescriptorRef) Check() error {
	if d.Err != nil {
		return d.Err
	}
	var (
		formatted string
		err       error
	)
	switch d.Kind {
	case KindClass:
		var t descriptor.Type
		if t, err = decodeClassName(d.Text); err == nil {
			formatted = t.String()
			if c, ok := t.(descriptor.ClassType); ok {
				formatted = c.Name.String()
			}
		}
	case KindField, KindFieldRef:
		var t descriptor.Type
		if t, err = descriptor.ParseType(d.Text); err == nil {
			formatted = t.String()
		}
	default:
		var sig descriptor.Signature
		if sig, err = descriptor.ParseSignature(d.Text); err == nil {
			formatted = sig.String()
		}
	}
	if err != nil {
		return err
	}
	if formatted != d.Text {
		return fmt.Errorf("%q formats back as %q", d.Text, formatted)
	}
	return nil
}
