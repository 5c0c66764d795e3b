package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
)

type jsonNode struct {
	Kind       string     `json:"kind"`
	Descriptor string     `json:"descriptor"`
	Java       string     `json:"java,omitempty"`
	Name       string     `json:"name,omitempty"`
	Path       []string   `json:"path,omitempty"`
	Nested     []string   `json:"nested,omitempty"`
	Element    *jsonNode  `json:"element,omitempty"`
	Class      *jsonNode  `json:"class,omitempty"`
	Parameters []jsonNode `json:"parameters,omitempty"`
	Return     *jsonNode  `json:"return,omitempty"`
}

func buildNode(v any) jsonNode {
	switch v := v.(type) {
	case descriptor.ClassName:
		return jsonNode{Kind: "class", Descriptor: v.String(), Java: v.JavaName(), Path: v.Path, Nested: v.Nested}
	case descriptor.Primitive:
		return jsonNode{Kind: "primitive", Descriptor: v.String(), Java: v.JavaName()}
	case descriptor.ClassType:
		class := buildNode(v.Name)
		return jsonNode{Kind: "reference", Descriptor: v.String(), Java: v.JavaName(), Class: &class}
	case descriptor.ArrayType:
		elem := buildNode(v.Elem)
		return jsonNode{Kind: "array", Descriptor: v.String(), Java: v.JavaName(), Element: &elem}
	case descriptor.Method:
		n := buildSignature(v.Signature)
		n.Kind = "method"
		if v.IsConstructor() {
			n.Kind = "constructor"
		}
		n.Name = v.Name
		n.Descriptor = v.String()
		n.Java = v.JavaString()
		return n
	case descriptor.Signature:
		return buildSignature(v)
	}
	return jsonNode{Kind: "unknown", Descriptor: fmt.Sprint(v)}
}

func buildSignature(s descriptor.Signature) jsonNode {
	n := jsonNode{Kind: "signature", Descriptor: s.String()}
	for _, p := range s.Parameters {
		n.Parameters = append(n.Parameters, buildNode(p))
	}
	if s.Return != nil {
		ret := buildNode(s.Return)
		n.Return = &ret
	}
	return n
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(buildNode(v), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeTree prints v as an indented outline, one component per line.
func writeTree(w io.Writer, v any) error {
	var sb strings.Builder
	treeIndent(&sb, buildNode(v), "", 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func treeIndent(sb *strings.Builder, n jsonNode, label string, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Kind)
	sb.WriteString(" ")
	sb.WriteString(n.Descriptor)
	if n.Java != "" && n.Java != n.Descriptor {
		sb.WriteString("  // ")
		sb.WriteString(n.Java)
	}
	sb.WriteString("\n")

	if n.Class != nil {
		treeIndent(sb, *n.Class, "", indent+1)
	}
	if n.Element != nil {
		treeIndent(sb, *n.Element, "element", indent+1)
	}
	for i, p := range n.Parameters {
		treeIndent(sb, p, fmt.Sprintf("param %d", i), indent+1)
	}
	if n.Return != nil {
		treeIndent(sb, *n.Return, "return", indent+1)
	} else if n.Kind == "method" || n.Kind == "signature" {
		sb.WriteString(strings.Repeat("  ", indent+1))
		sb.WriteString("return: void\n")
	}
}
