package descriptor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stringType = ClassOf("java", "lang", "String")

func TestMethodString(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		want   string
	}{
		{"void method", NewMethod("hello", nil, stringType), "hello(Ljava/lang/String;)V"},
		{"constructor", NewConstructor(stringType), "<init>(Ljava/lang/String;)V"},
		{"no parameters", NewMethod("toString", stringType), "toString()Ljava/lang/String;"},
		{"mixed parameters", NewMethod("m", ArrayOf(Int, 1), Int, Long, ArrayOf(objectType, 2), Boolean), "m(IJ[[Ljava/lang/Object;Z)[I"},
		{"empty constructor", NewConstructor(), "<init>()V"},
		{"constructor ignores return", Method{Name: ConstructorName, Signature: Signature{Return: Int}}, "<init>()V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.String())

			var buf bytes.Buffer
			_, err := tt.method.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input string
		want  Method
	}{
		{"hello(Ljava/lang/String;)V", NewMethod("hello", nil, stringType)},
		{"<init>(Ljava/lang/String;)V", NewConstructor(stringType)},
		{"<init>()V", NewConstructor()},
		{"size()I", NewMethod("size", Int)},
		{"get(J)[[Ljava/lang/Object;", NewMethod("get", ArrayOf(objectType, 2), Long)},
		{"m(BCDFIJSZ)Z", NewMethod("m", Boolean, Byte, Char, Double, Float, Int, Long, Short, Boolean)},
		{"lambda$main$0(I)V", NewMethod("lambda$main$0", nil, Int)},
		{"init()V", NewMethod("init", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %#v", got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseMethodConstructorDisambiguation(t *testing.T) {
	ctor, err := ParseMethod("<init>(Ljava/lang/String;)V")
	require.NoError(t, err)
	assert.True(t, ctor.IsConstructor())
	require.Len(t, ctor.Parameters, 1)
	assert.True(t, stringType.Equal(ctor.Parameters[0]))
	assert.Nil(t, ctor.Return)

	named, err := ParseMethod("hello(Ljava/lang/String;)V")
	require.NoError(t, err)
	assert.False(t, named.IsConstructor())
	assert.Equal(t, "hello", named.Name)
	assert.Nil(t, named.Return)

	// Both encode void the same way; only the name tells them apart.
	assert.False(t, ctor.Equal(named))
}

func TestParseMethodErrors(t *testing.T) {
	tests := []struct {
		input    string
		offset   int
		expected []string
	}{
		{"", 0, []string{"identifier", `"<init>"`}},
		{"(I)V", 0, []string{"identifier", `"<init>"`}},
		{"m", 1, []string{"'('"}},
		{"m(I", 3, []string{"type descriptor", "')'"}},
		{"m(IX)V", 3, []string{"type descriptor", "')'"}},
		{"m()", 3, []string{"'V'", "type descriptor"}},
		{"m()X", 3, []string{"'V'", "type descriptor"}},
		{"m(Ljava/lang)V", 12, []string{"'/'", "'$'", "';'"}},
		{"m()VV", 4, []string{"end of input"}},
		{"<init>()I", 8, []string{"'V'"}},
		{"<init>(I", 8, []string{"type descriptor", "')'"}},
		{"<clinit>()V", 0, []string{"identifier", `"<init>"`}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMethod(tt.input)
			require.Error(t, err)

			var errs Errors
			require.True(t, errors.As(err, &errs))
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.offset, errs[0].Offset)
			assert.ElementsMatch(t, tt.expected, errs[0].Expected)
		})
	}
}

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("(II)I")
	require.NoError(t, err)
	assert.Equal(t, "(II)I", sig.String())
	assert.Len(t, sig.Parameters, 2)
	assert.Equal(t, Int, sig.Return)

	sig, err = ParseSignature("()V")
	require.NoError(t, err)
	assert.Empty(t, sig.Parameters)
	assert.Nil(t, sig.Return)

	_, err = ParseSignature("name()V")
	assert.Error(t, err)
}

func TestSignatureParameterSlots(t *testing.T) {
	sig, err := ParseSignature("(IJDLjava/lang/Object;[J)V")
	require.NoError(t, err)
	assert.Equal(t, 1+2+2+1+1, sig.ParameterSlots())
}

func TestMethodJavaString(t *testing.T) {
	assert.Equal(t, "void hello(java.lang.String)", NewMethod("hello", nil, stringType).JavaString())
	assert.Equal(t, "long[] get(int, java.lang.Object[][])", NewMethod("get", ArrayOf(Long, 1), Int, ArrayOf(objectType, 2)).JavaString())
	assert.Equal(t, "<init>(java.lang.String)", NewConstructor(stringType).JavaString())
}

func TestMethodText(t *testing.T) {
	var m Method
	require.NoError(t, m.UnmarshalText([]byte("<init>(I)V")))
	assert.True(t, m.IsConstructor())

	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "<init>(I)V", string(text))

	var s Signature
	require.NoError(t, s.UnmarshalText([]byte("([B)Ljava/lang/String;")))
	assert.True(t, stringType.Equal(s.Return))
}

func TestConstructorDropsReturn(t *testing.T) {
	m := Method{Name: ConstructorName, Signature: Signature{Return: Int}}
	assert.Equal(t, "<init>()V", m.String())

	back, err := ParseMethod(m.String())
	require.NoError(t, err)
	assert.True(t, NewConstructor().Equal(back))
	assert.False(t, m.Equal(back))
}

func TestNewMethodCopiesParameters(t *testing.T) {
	params := []Type{Int, Int}
	m := NewMethod("add", Int, params...)
	params[0] = Long
	assert.Equal(t, "add(II)I", m.String())
}
