package parser

import "fmt"

// Diagnostic is a single parse error tied to a source location. It is the
// only error type Parse returns for bad input.
type Diagnostic struct {
	Line    int
	Lexeme  string // offending source text, possibly empty
	AtEnd   bool   // the error was raised at the Eof token
	Lexical bool   // raised on an error token, which has no source text
	Message string
}

// Error renders the stable diagnostic format
// "[line <N>] Error<location>: <message>". Lexical errors carry no
// location fragment; every other token renders its source slice, even
// an empty one.
func (d *Diagnostic) Error() string {
	switch {
	case d.AtEnd:
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	case d.Lexical:
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Lexeme, d.Message)
}

// IsIncomplete reports whether the parse failed because the input ended
// mid-form, meaning more input could still complete it. Line-oriented
// callers use this to keep reading instead of reporting the error.
func (d *Diagnostic) IsIncomplete() bool {
	return d.AtEnd
}
