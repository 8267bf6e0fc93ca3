package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/parser"
)

const (
	historyFile = ".plc_history"
	promptMain  = "> "
	promptCont  = "... "
)

// getReplCmd returns the definition of the repl command.
func getReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		Run:   runReplCmd,
	}
}

func runReplCmd(cmd *cobra.Command, args []string) {
	fmt.Printf("Pocket Lisp %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	echo := color.New(color.FgBlue)
	fail := color.New(color.FgRed)

	for {
		src, ok := readForm(ln)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return
		}

		prog, err := parser.New(src).Parse()
		if err != nil {
			fail.Fprintln(os.Stderr, err.Error())
			continue
		}
		echo.Println(prog.String())
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readForm reads one source form, continuing onto further lines while
// the parse probe reports that the input ended mid-form. The second
// return is false when the session should end.
func readForm(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C aborts the pending input, not the session.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parser.New(src).Parse()
		if perr == nil {
			return src, true
		}
		var diag *parser.Diagnostic
		if errors.As(perr, &diag) && diag.IsIncomplete() {
			continue
		}
		return src, true
	}
}
