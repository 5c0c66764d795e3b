package descriptor

import (
	"fmt"
	"strings"
)

// SyntaxError reports the input offset at which parsing failed and what
// the grammar would have accepted there.
type SyntaxError struct {
	Offset   int
	Expected []string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message())
}

// Message describes the error without its position.
func (e *SyntaxError) Message() string {
	if len(e.Expected) == 0 {
		return "unexpected " + e.Found
	}
	return "expected " + joinAlternatives(e.Expected) + ", found " + e.Found
}

// Errors is the error returned by the Parse functions. It is never empty.
type Errors []*SyntaxError

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return "syntax error: " + strings.Join(msgs, "; ")
}

func (errs Errors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// First returns the earliest error.
func (errs Errors) First() *SyntaxError {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	}
	return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
}
