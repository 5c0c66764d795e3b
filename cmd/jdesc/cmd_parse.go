package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var kind string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <descriptor>...",
		Short: "Parse descriptors and print their structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				v, err := parseAs(kind, text)
				if err != nil {
					return fmt.Errorf("parse %q: %w", text, err)
				}

				switch outputFormat {
				case "json":
					err = writeJSON(out, v)
				case "text":
					err = writeTree(out, v)
				case "java":
					_, err = fmt.Fprintln(out, buildNode(v).Java)
				default:
					return fmt.Errorf("unknown format: %s (expected text, json or java)", outputFormat)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindAuto, "grammar to parse with (auto, class, type, method, signature)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, java)")

	return cmd
}
