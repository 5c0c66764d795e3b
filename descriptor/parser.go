package descriptor

import (
	"slices"
	"strconv"
	"unicode/utf8"
)

// identKind selects which runes an identifier may contain.
type identKind int

const (
	identPath   identKind = iota // package and class segments
	identNested                  // nested class segments, may start with a digit
	identMember                  // method names, may contain '$'
)

const (
	expectIdent = "identifier"
	expectType  = "type descriptor"
	expectEOF   = "end of input"
)

// parser is a recursive-descent reader over one descriptor string. It
// remembers the furthest offset at which anything failed along with every
// alternative that was expected there.
type parser struct {
	input    string
	pos      int
	failPos  int
	expected []string
}

func newParser(input string) *parser {
	return &parser{input: input, failPos: -1}
}

// parse runs fn over the whole of input.
func parse[T any](input string, fn func(*parser) (T, bool)) (T, error) {
	p := newParser(input)
	v, ok := fn(p)
	if !ok || !p.end() {
		var zero T
		return zero, p.err()
	}
	return v, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) expect(what ...string) {
	switch {
	case p.pos > p.failPos:
		p.failPos = p.pos
		p.expected = append(p.expected[:0:0], what...)
	case p.pos == p.failPos:
		for _, w := range what {
			if !slices.Contains(p.expected, w) {
				p.expected = append(p.expected, w)
			}
		}
	}
}

func (p *parser) accept(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	p.expect(quoteByte(c))
	return false
}

func (p *parser) literal(s string) bool {
	if len(p.input)-p.pos >= len(s) && p.input[p.pos:p.pos+len(s)] == s {
		p.pos += len(s)
		return true
	}
	p.expect(strconv.Quote(s))
	return false
}

func (p *parser) end() bool {
	if p.pos == len(p.input) {
		return true
	}
	p.expect(expectEOF)
	return false
}

func (p *parser) ident(kind identKind) (string, bool) {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isIdentRune(r, p.pos == start, kind) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		p.expect(expectIdent)
		return "", false
	}
	return p.input[start:p.pos], true
}

// isIdentRune accepts ASCII letters, digits and '_' only.
func isIdentRune(r rune, first bool, kind identKind) bool {
	switch {
	case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		return true
	case r == '$':
		return kind == identMember
	case '0' <= r && r <= '9':
		return !first || kind == identNested
	}
	return false
}

func (p *parser) err() error {
	found := expectEOF
	if p.failPos < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[p.failPos:])
		found = strconv.QuoteRune(r)
	}
	return Errors{{Offset: p.failPos, Expected: p.expected, Found: found}}
}

func quoteByte(c byte) string {
	return strconv.QuoteRune(rune(c))
}
