package descriptor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generator struct {
	r *rand.Rand
}

const identStart = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
const identRest = identStart + "0123456789"

func (g generator) ident() string {
	n := 1 + g.r.Intn(8)
	b := []byte{identStart[g.r.Intn(len(identStart))]}
	for i := 1; i < n; i++ {
		b = append(b, identRest[g.r.Intn(len(identRest))])
	}
	return string(b)
}

func (g generator) className() ClassName {
	path := make([]string, 1+g.r.Intn(4))
	for i := range path {
		path[i] = g.ident()
	}
	c := NewClassName(path...)
	for i := g.r.Intn(3); i > 0; i-- {
		c = c.WithNested(g.ident())
	}
	return c
}

func (g generator) fieldType(depth int) Type {
	switch n := g.r.Intn(10); {
	case n < 5 || depth > 4:
		return Primitives[g.r.Intn(len(Primitives))]
	case n < 8:
		return ClassType{Name: g.className()}
	default:
		return ArrayType{Elem: g.fieldType(depth + 1)}
	}
}

func (g generator) method() Method {
	params := make([]Type, g.r.Intn(5))
	for i := range params {
		params[i] = g.fieldType(0)
	}
	if g.r.Intn(5) == 0 {
		return NewConstructor(params...)
	}
	var ret Type
	if g.r.Intn(3) > 0 {
		ret = g.fieldType(0)
	}
	return NewMethod(g.ident(), ret, params...)
}

func TestRoundTrip(t *testing.T) {
	g := generator{r: rand.New(rand.NewSource(1))}

	for i := 0; i < 500; i++ {
		c := g.className()
		parsedClass, err := ParseClassName(c.String())
		require.NoError(t, err, c.String())
		assert.True(t, c.Equal(parsedClass), c.String())

		typ := g.fieldType(0)
		parsedType, err := ParseType(typ.String())
		require.NoError(t, err, typ.String())
		assert.True(t, typ.Equal(parsedType), typ.String())

		m := g.method()
		parsedMethod, err := ParseMethod(m.String())
		require.NoError(t, err, m.String())
		assert.True(t, m.Equal(parsedMethod), m.String())

		parsedSig, err := ParseSignature(m.Signature.String())
		require.NoError(t, err, m.Signature.String())
		assert.True(t, m.Signature.Equal(parsedSig), m.Signature.String())
	}
}
