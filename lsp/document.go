package lsp

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/jvmdesc/descriptor"
)

// FindingKind says which grammar a finding was parsed with.
type FindingKind int

const (
	FindingMethod FindingKind = iota
	FindingSignature
	FindingType
)

// Finding is a run of text that looks like a descriptor. Exactly one of
// Method, Type and Err is set.
type Finding struct {
	Kind   FindingKind
	Start  int
	End    int
	Text   string
	Method descriptor.Method
	Type   descriptor.Type
	Err    *descriptor.SyntaxError
}

const descChars = `A-Za-z0-9_$/;\[`

// A method descriptor's parameter list and return type must each start
// with a type code, which keeps ordinary calls such as f(x); out.
var (
	methodPattern = regexp.MustCompile(`(?:<init>|<clinit>|[A-Za-z_$][A-Za-z0-9_$]*)?\((?:\)|[BCDFIJSZL\[][` + descChars + `]*\))[BCDFIJSZLV\[][` + descChars + `]*`)
	arrayPattern  = regexp.MustCompile(`\[+[BCDFIJSZL][` + descChars + `]*`)
	classPattern  = regexp.MustCompile(`L[A-Za-z0-9_$]*/[A-Za-z0-9_$/]*;`)
)

// Scan returns every descriptor-like token in text ordered by offset.
// Method descriptors take precedence over the type descriptors inside them.
func Scan(text string) []Finding {
	var findings []Finding
	var covered [][2]int

	for _, loc := range methodPattern.FindAllStringIndex(text, -1) {
		if !atWordStart(text, loc[0]) {
			continue
		}
		findings = append(findings, scanMethod(text[loc[0]:loc[1]], loc[0]))
		covered = append(covered, [2]int{loc[0], loc[1]})
	}

	inside := func(start int) bool {
		for _, c := range covered {
			if start >= c[0] && start < c[1] {
				return true
			}
		}
		return false
	}

	for _, re := range []*regexp.Regexp{arrayPattern, classPattern} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if inside(loc[0]) || !atWordStart(text, loc[0]) {
				continue
			}
			findings = append(findings, scanType(text[loc[0]:loc[1]], loc[0]))
			covered = append(covered, [2]int{loc[0], loc[1]})
		}
	}

	sort.Slice(findings, func(i, j int) bool { return findings[i].Start < findings[j].Start })
	return findings
}

func atWordStart(text string, offset int) bool {
	if offset == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:offset])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$')
}

func scanMethod(text string, start int) Finding {
	f := Finding{Kind: FindingMethod, Start: start, End: start + len(text), Text: text}

	// <clinit> and bare signatures are outside the method grammar, so only
	// their signature part is parsed.
	name, sigText := "", text
	switch {
	case strings.HasPrefix(text, "<clinit>"):
		name, sigText = "<clinit>", text[len("<clinit>"):]
	case strings.HasPrefix(text, "("):
		f.Kind = FindingSignature
	default:
		m, err := descriptor.ParseMethod(text)
		if err != nil {
			f.Err = firstError(err)
			return f
		}
		f.Method = m
		return f
	}

	sig, err := descriptor.ParseSignature(sigText)
	if err != nil {
		f.Err = firstError(err)
		f.Err.Offset += len(name)
		return f
	}
	f.Method = descriptor.Method{Name: name, Signature: sig}
	return f
}

func scanType(text string, start int) Finding {
	f := Finding{Kind: FindingType, Start: start, End: start + len(text), Text: text}
	t, err := descriptor.ParseType(text)
	if err != nil {
		f.Err = firstError(err)
		return f
	}
	f.Type = t
	return f
}

func firstError(err error) *descriptor.SyntaxError {
	var errs descriptor.Errors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := *errs.First()
		return &e
	}
	return &descriptor.SyntaxError{Found: err.Error()}
}

// FindingAt returns the finding that covers offset.
func FindingAt(findings []Finding, offset int) (Finding, bool) {
	for _, f := range findings {
		if offset >= f.Start && offset < f.End {
			return f, true
		}
	}
	return Finding{}, false
}

// Explain renders a valid finding as Markdown for hover.
func (f Finding) Explain() string {
	if f.Err != nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("```java\n")
	if f.Kind == FindingType {
		sb.WriteString(f.Type.JavaName())
	} else {
		sb.WriteString(f.Method.JavaString())
	}
	sb.WriteString("\n```\n")

	switch f.Kind {
	case FindingType:
		if descriptor.IsReference(f.Type) {
			sb.WriteString("reference type")
		} else {
			sb.WriteString("primitive type")
		}
	default:
		fmt.Fprintf(&sb, "%s, %s",
			plural(len(f.Method.Parameters), "parameter"),
			plural(f.Method.ParameterSlots(), "argument slot"))
	}
	return sb.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
