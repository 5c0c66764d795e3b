package classfile

import "strings"

const (
	Magic = 0xCAFEBABE
)

type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSuper        AccessFlags = 0x0020
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) IsPublic() bool    { return f&AccPublic != 0 }
func (f AccessFlags) IsInterface() bool { return f&AccInterface != 0 }
func (f AccessFlags) IsSynthetic() bool { return f&AccSynthetic != 0 }

// The same bit means different things on fields and methods, so each
// member kind has its own keyword table.
var (
	classModifiers = []modifier{
		{AccPublic, "public"}, {AccFinal, "final"}, {AccAbstract, "abstract"},
	}
	fieldModifiers = []modifier{
		{AccPublic, "public"}, {AccPrivate, "private"}, {AccProtected, "protected"},
		{AccStatic, "static"}, {AccFinal, "final"}, {AccVolatile, "volatile"},
		{AccTransient, "transient"},
	}
	methodModifiers = []modifier{
		{AccPublic, "public"}, {AccPrivate, "private"}, {AccProtected, "protected"},
		{AccAbstract, "abstract"}, {AccStatic, "static"}, {AccFinal, "final"},
		{AccSynchronized, "synchronized"}, {AccNative, "native"}, {AccStrict, "strictfp"},
	}
)

type modifier struct {
	flag    AccessFlags
	keyword string
}

func (f AccessFlags) modifiers(table []modifier) string {
	var words []string
	for _, m := range table {
		if f&m.flag != 0 {
			words = append(words, m.keyword)
		}
	}
	return strings.Join(words, " ")
}

// ClassModifiers returns the Java keywords for f on a class. ACC_ABSTRACT
// is left out for interfaces, where it is implied.
func (f AccessFlags) ClassModifiers() string {
	if f&AccInterface != 0 {
		f &^= AccAbstract
	}
	return f.modifiers(classModifiers)
}

// ClassKind returns the declaration keyword for a class with flags f.
func (f AccessFlags) ClassKind() string {
	switch {
	case f&AccModule != 0:
		return "module"
	case f&AccAnnotation != 0:
		return "@interface"
	case f&AccInterface != 0:
		return "interface"
	case f&AccEnum != 0:
		return "enum"
	}
	return "class"
}

// FieldModifiers returns the Java keywords for f on a field.
func (f AccessFlags) FieldModifiers() string { return f.modifiers(fieldModifiers) }

// MethodModifiers returns the Java keywords for f on a method.
func (f AccessFlags) MethodModifiers() string { return f.modifiers(methodModifiers) }

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantDynamic            ConstantTag = 17
	ConstantInvokeDynamic      ConstantTag = 18
	ConstantModule             ConstantTag = 19
	ConstantPackage            ConstantTag = 20
)

// opaqueSizes holds the payload size of constants whose contents never
// hold a descriptor.
var opaqueSizes = map[ConstantTag]int{
	ConstantInteger:       4,
	ConstantFloat:         4,
	ConstantLong:          8,
	ConstantDouble:        8,
	ConstantString:        2,
	ConstantMethodHandle:  3,
	ConstantDynamic:       4,
	ConstantInvokeDynamic: 4,
	ConstantModule:        2,
	ConstantPackage:       2,
}
