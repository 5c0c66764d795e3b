package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
)

const (
	kindAuto      = "auto"
	kindClass     = "class"
	kindType      = "type"
	kindMethod    = "method"
	kindSignature = "signature"
)

// detectKind guesses the grammar of text from its shape. A lone primitive
// code is read as a type even though it is also a valid class name.
func detectKind(text string) string {
	switch {
	case strings.HasPrefix(text, "("):
		return kindSignature
	case strings.Contains(text, "("):
		return kindMethod
	case strings.HasPrefix(text, "["),
		len(text) == 1 && strings.Contains("BCDFIJSZ", text),
		strings.HasPrefix(text, "L") && strings.HasSuffix(text, ";"):
		return kindType
	}
	return kindClass
}

// parseAs parses text with the named grammar and returns a
// descriptor.ClassName, descriptor.Type, descriptor.Method or
// descriptor.Signature.
func parseAs(kind, text string) (any, error) {
	if kind == kindAuto {
		kind = detectKind(text)
	}
	switch kind {
	case kindClass:
		return descriptor.ParseClassName(text)
	case kindType:
		return descriptor.ParseType(text)
	case kindMethod:
		return descriptor.ParseMethod(text)
	case kindSignature:
		return descriptor.ParseSignature(text)
	}
	return nil, fmt.Errorf("unknown kind: %s (expected auto, class, type, method or signature)", kind)
}
