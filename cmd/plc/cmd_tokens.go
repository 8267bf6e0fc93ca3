package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/lexer"
)

// getTokensCmd returns the definition of the tokens command.
func getTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a source file and print its token stream",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := readSource(args[0])
			if err != nil {
				exitFileError(err)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Kind", "Lexeme", "Line"})

			s := lexer.NewScanner(source)
			for {
				tok := s.Next()
				if tok.Kind == lexer.KindEof {
					break
				}
				table.Append([]string{tok.Kind.String(), tok.Src, strconv.Itoa(tok.Line)})
			}
			table.Render()
		},
	}
}
