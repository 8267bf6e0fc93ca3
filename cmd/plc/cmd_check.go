package main

import (
	"github.com/spf13/cobra"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/parser"
)

// getCheckCmd returns the definition of the check command.
func getCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a source file and report the first error",
		Long: `
Parse a Pocket Lisp source file. A clean file produces no output; a
malformed one prints its diagnostic and exits with the compile error
code.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := readSource(args[0])
			if err != nil {
				exitFileError(err)
			}
			if _, err := parser.New(source).Parse(); err != nil {
				exitCompileError(err)
			}
		},
	}
}
