// Command plc is the Pocket Lisp compiler front end. It checks source
// files, dumps token streams and syntax trees, and hosts an interactive
// session.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes follow the sysexits convention.
const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70 // reserved for a future execution backend
)

func main() {
	root := &cobra.Command{
		Use:           "plc",
		Short:         "Pocket Lisp compiler front end",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		getCheckCmd(),
		getTokensCmd(),
		getASTCmd(),
		getReplCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

// readSource loads the source file behind the file-driven subcommands.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not open file '%s'", path)
	}
	return string(data), nil
}

// exitFileError reports an unreadable input file and exits with the
// usage code.
func exitFileError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitUsage)
}

// exitCompileError prints a diagnostic in red and exits with the compile
// error code.
func exitCompileError(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
	os.Exit(exitCompile)
}
