package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)

	for _, name := range []string{"ClassName", "FieldType", "MethodDescriptor", "Constructor"} {
		assert.Contains(t, g, name)
	}
}

func TestGrammarBaseTypesMatchPrimitives(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)

	alt, ok := g["BaseType"].Expr.(ebnf.Alternative)
	require.True(t, ok)

	var codes []string
	for _, expr := range alt {
		tok, ok := expr.(*ebnf.Token)
		require.True(t, ok)
		codes = append(codes, tok.String)
	}

	var want []string
	for _, p := range Primitives {
		want = append(want, p.String())
	}
	assert.Equal(t, want, codes)
}
