package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/jvmdesc/descriptor"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newCheckCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Check files holding one descriptor per line",
		Long: `Check reads descriptors one per line from each file, or from standard
input when no file is given. Blank lines and lines starting with # are
skipped. Every malformed descriptor is reported as file:line:column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("jdesc.check")
			out := cmd.OutOrStdout()

			failures := 0
			if len(args) == 0 {
				n, err := checkReader(out, "<stdin>", cmd.InOrStdin(), kind)
				if err != nil {
					return err
				}
				failures += n
			}
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open %s: %w", name, err)
				}
				n, err := checkReader(out, name, f, kind)
				f.Close()
				if err != nil {
					return err
				}
				log.Debugf("%s: %d failures", name, n)
				failures += n
			}

			if failures > 0 {
				return fmt.Errorf("%d malformed descriptors", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindAuto, "grammar to check with (auto, class, type, method, signature)")

	return cmd
}

func checkReader(out io.Writer, name string, r io.Reader, kind string) (int, error) {
	failures := 0
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		indent := strings.Index(raw, text)

		_, err := parseAs(kind, text)
		if err == nil {
			continue
		}
		failures++

		var errs descriptor.Errors
		if !errors.As(err, &errs) {
			return failures, err
		}
		first := errs.First()
		fmt.Fprintf(out, "%s:%d:%d: %s\n", name, line, indent+first.Offset+1, first.Message())
	}
	if err := scanner.Err(); err != nil {
		return failures, fmt.Errorf("read %s: %w", name, err)
	}
	return failures, nil
}
