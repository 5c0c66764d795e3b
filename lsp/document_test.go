package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	text := `invokespecial java/lang/Object."<init>":()V
field name:Ljava/lang/String;
method hello(Ljava/lang/String;)V
checkcast [[I
broken m(IX)V
static <clinit>()V
int[] a = b[0];`

	findings := Scan(text)
	var got []string
	for _, f := range findings {
		got = append(got, f.Text)
	}
	assert.Equal(t, []string{
		"()V",
		"Ljava/lang/String;",
		"hello(Ljava/lang/String;)V",
		"[[I",
		"m(IX)V",
		"<clinit>()V",
	}, got)

	assert.Equal(t, FindingSignature, findings[0].Kind)
	assert.Equal(t, FindingType, findings[1].Kind)
	assert.Equal(t, FindingMethod, findings[2].Kind)
	assert.Equal(t, "hello", findings[2].Method.Name)

	require.NotNil(t, findings[4].Err)
	assert.Equal(t, 3, findings[4].Err.Offset)

	assert.Nil(t, findings[5].Err)
	assert.Equal(t, "<clinit>", findings[5].Method.Name)
}

func TestScanClinitErrorOffset(t *testing.T) {
	findings := Scan("<clinit>(LFoo)V")
	require.Len(t, findings, 1)
	require.NotNil(t, findings[0].Err)
	assert.Equal(t, 13, findings[0].Err.Offset)
}

func TestScanSkipsWordInterior(t *testing.T) {
	assert.Empty(t, Scan("xLjava/lang/Object; args[I]"))
}

func TestScanIgnoresCallSyntax(t *testing.T) {
	tests := []string{
		"System.out.println(x);",
		"see foo(bar)baz",
		"if (ready) { run(); }",
		"public static void main(String[] args)",
		"3foo(I)V",
		"int[] a = b[0];",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Empty(t, Scan(text))
		})
	}
}

func TestFindingAt(t *testing.T) {
	findings := Scan("a [J b")
	f, ok := FindingAt(findings, 3)
	require.True(t, ok)
	assert.Equal(t, "[J", f.Text)

	_, ok = FindingAt(findings, 0)
	assert.False(t, ok)
	_, ok = FindingAt(findings, 4)
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	findings := Scan("get(IJ)[Ljava/lang/Object; Ljava/util/Map$Entry; [Z")
	require.Len(t, findings, 3)

	assert.Equal(t, "```java\njava.lang.Object[] get(int, long)\n```\n2 parameters, 3 argument slots", findings[0].Explain())
	assert.Equal(t, "```java\njava.util.Map.Entry\n```\nreference type", findings[1].Explain())
	assert.Equal(t, "```java\nboolean[]\n```\nreference type", findings[2].Explain())

	bad := Scan("m(LFoo)V")
	require.Len(t, bad, 1)
	assert.Empty(t, bad[0].Explain())
}
