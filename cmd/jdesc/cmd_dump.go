package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jvmdesc/classfile"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.class>",
		Short: "Dump the members of a class file with their decoded descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := classfile.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse class file: %w", err)
			}
			return dumpClass(cmd.OutOrStdout(), cf)
		},
	}
}

func dumpClass(w io.Writer, cf *classfile.ClassFile) error {
	var javaName string
	if name, err := cf.Name(); err == nil {
		javaName = name.JavaName()
	} else if javaName, err = cf.ConstantPool.GetClassName(cf.ThisClass); err != nil {
		return fmt.Errorf("class name: %w", err)
	}
	header := strings.TrimSpace(cf.AccessFlags.ClassModifiers() + " " + cf.AccessFlags.ClassKind())
	fmt.Fprintf(w, "%s %s (version %d.%d)\n", header, javaName, cf.MajorVersion, cf.MinorVersion)
	if super, ok, err := cf.SuperName(); err != nil {
		return fmt.Errorf("super class: %w", err)
	} else if ok {
		fmt.Fprintf(w, "  extends %s\n", super.JavaName())
	}
	interfaces, err := cf.InterfaceNames()
	if err != nil {
		return err
	}
	if len(interfaces) > 0 {
		names := make([]string, len(interfaces))
		for i, iface := range interfaces {
			names[i] = iface.JavaName()
		}
		fmt.Fprintf(w, "  implements %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Modifiers", "Name", "Descriptor", "Java"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	for _, f := range cf.Fields {
		java := ""
		if t, err := f.FieldType(); err != nil {
			java = "error: " + err.Error()
		} else {
			java = t.JavaName() + " " + f.Name
		}
		table.Append([]string{"field", f.AccessFlags.FieldModifiers(), f.Name, f.Descriptor, java})
	}
	for _, m := range cf.Methods {
		kind := "method"
		switch {
		case m.IsConstructor():
			kind = "constructor"
		case m.IsStaticInitializer():
			kind = "initializer"
		}
		java := ""
		if decoded, err := m.Method(); err != nil {
			java = "error: " + err.Error()
		} else {
			java = decoded.JavaString()
		}
		table.Append([]string{kind, m.AccessFlags.MethodModifiers(), m.Name, m.Descriptor, java})
	}

	table.Render()
	return nil
}
