package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/parser"
)

// astEnv provides the environment for the ast command.
type astEnv struct {
	flagDebug bool
}

// getASTCmd returns the definition of the ast command.
func getASTCmd() *cobra.Command {
	env := &astEnv{}
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		Run:   env.runASTCmd,
	}
	cmd.Flags().BoolVarP(&env.flagDebug, "debug", "d", false, "Dump the raw tree structure instead of the rendered forms")
	return cmd
}

func (e *astEnv) runASTCmd(cmd *cobra.Command, args []string) {
	source, err := readSource(args[0])
	if err != nil {
		exitFileError(err)
	}

	prog, err := parser.New(source).Parse()
	if err != nil {
		exitCompileError(err)
	}

	if e.flagDebug {
		spew.Dump(prog)
		return
	}
	fmt.Println(prog.String())
}
