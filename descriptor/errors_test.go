package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxErrorMessages(t *testing.T) {
	_, err := ParseType("Ljava/lang/Object")
	assert.EqualError(t, err, `syntax error: offset 17: expected '/', '$' or ';', found end of input`)

	_, err = ParseMethod("m(X)V")
	assert.EqualError(t, err, `syntax error: offset 2: expected type descriptor or ')', found 'X'`)

	_, err = ParseClassName("a$")
	assert.EqualError(t, err, `syntax error: offset 2: expected identifier, found end of input`)

	e := &SyntaxError{Offset: 4, Found: "'x'"}
	assert.Equal(t, "unexpected 'x'", e.Message())
	assert.Nil(t, Errors(nil).First())
}
