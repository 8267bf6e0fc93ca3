package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind uint8

const (
	// KindInit is the zero value, never produced by scanning.
	KindInit Kind = iota
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindLeftSquare
	KindRightSquare
	KindDispatch
	KindTrue
	KindFalse
	KindIdentifier
	KindKeyword
	KindString
	KindIntegerNumber
	KindFloatNumber
	KindFractionNumber
	KindError
	KindEof
)

var kindNames = [...]string{
	KindInit:           "Init",
	KindLeftParen:      "LeftParen",
	KindRightParen:     "RightParen",
	KindLeftBrace:      "LeftBrace",
	KindRightBrace:     "RightBrace",
	KindLeftSquare:     "LeftSquare",
	KindRightSquare:    "RightSquare",
	KindDispatch:       "Dispatch",
	KindTrue:           "True",
	KindFalse:          "False",
	KindIdentifier:     "Identifier",
	KindKeyword:        "Keyword",
	KindString:         "String",
	KindIntegerNumber:  "IntegerNumber",
	KindFloatNumber:    "FloatNumber",
	KindFractionNumber: "FractionNumber",
	KindError:          "Error",
	KindEof:            "Eof",
}

// String returns the name used in diagnostics, e.g. "LeftParen".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a single lexical unit. Src is the exact substring matched in
// the source, except for KindError tokens where it carries the diagnostic
// message instead. Line is 1-based.
type Token struct {
	Kind Kind
	Src  string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s] %q %d", t.Kind, t.Src, t.Line)
}
