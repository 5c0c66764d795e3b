package main

import (
	"fmt"

	"github.com/dhamidi/jvmdesc/descriptor"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the descriptor grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := descriptor.Grammar(); err != nil {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), descriptor.GrammarText)
			return err
		},
	}
}
