package parser_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/ast"
	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.New(src).Parse()
	require.NoError(t, err)
	return prog
}

func TestParseBlankInputs(t *testing.T) {
	srcs := []string{
		"",
		"   \n\t\r,",
		"; line comment",
		";# block\ncomment #;",
		" ;# a #; ; b\n",
	}
	for _, src := range srcs {
		prog := parse(t, src)
		assert.Empty(t, prog.Forms, "source %q", src)
	}
}

func TestParsePrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *ast.Program
	}{
		{
			name: "empty form",
			src:  "()",
			want: &ast.Program{Forms: []ast.ExpressionList{{}}},
		},
		{
			name: "boolean literals",
			src:  "(true false)",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.BooleanLiteral{Value: true},
				&ast.BooleanLiteral{Value: false},
			}}},
		},
		{
			name: "fraction literals keep zero and negative parts",
			src:  "( -1/2 1/2 0/1 )",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.FractionNumberLiteral{Numerator: -1, Denominator: 2},
				&ast.FractionNumberLiteral{Numerator: 1, Denominator: 2},
				&ast.FractionNumberLiteral{Numerator: 0, Denominator: 1},
			}}},
		},
		{
			name: "zero denominator is not validated",
			src:  "(1/0)",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.FractionNumberLiteral{Numerator: 1, Denominator: 0},
			}}},
		},
		{
			name: "anonymous function",
			src:  "(#( + %1 2 ))",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.AnonymousFunction{Body: ast.ExpressionList{
					&ast.Identifier{Name: "+"},
					&ast.Identifier{Name: "%1"},
					&ast.IntegerNumberLiteral{Value: 2},
				}},
			}}},
		},
		{
			name: "mixed literals",
			src:  `(print :name "Bob" 42 4.5)`,
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.Identifier{Name: "print"},
				&ast.Keyword{Name: ":name"},
				&ast.StringLiteral{Value: "Bob"},
				&ast.IntegerNumberLiteral{Value: 42},
				&ast.FloatNumberLiteral{Value: 4.5},
			}}},
		},
		{
			name: "collections",
			src:  "(set [1 2] {:a 1})",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.Identifier{Name: "set"},
				&ast.Array{Elements: ast.ExpressionList{
					&ast.IntegerNumberLiteral{Value: 1},
					&ast.IntegerNumberLiteral{Value: 2},
				}},
				&ast.Map{Entries: ast.ExpressionList{
					&ast.Keyword{Name: ":a"},
					&ast.IntegerNumberLiteral{Value: 1},
				}},
			}}},
		},
		{
			name: "nested call",
			src:  "(f (g 1))",
			want: &ast.Program{Forms: []ast.ExpressionList{{
				&ast.Identifier{Name: "f"},
				&ast.FunctionCall{Elements: ast.ExpressionList{
					&ast.Identifier{Name: "g"},
					&ast.IntegerNumberLiteral{Value: 1},
				}},
			}}},
		},
		{
			name: "multiple forms keep source order",
			src:  "(a)\n(b)",
			want: &ast.Program{Forms: []ast.ExpressionList{
				{&ast.Identifier{Name: "a"}},
				{&ast.Identifier{Name: "b"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			if diff := cmp.Diff(tt.want, prog); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bare literal at top level",
			src:  "true false",
			want: "[line 1] Error at 'true': Expected LeftParen, but get True",
		},
		{
			name: "empty string literal at top level keeps its location",
			src:  `""`,
			want: "[line 1] Error at '': Expected LeftParen, but get String",
		},
		{
			name: "array at top level",
			src:  "[1]",
			want: "[line 1] Error at '[': Expected LeftParen, but get LeftSquare",
		},
		{
			name: "missing closer",
			src:  "(true",
			want: "[line 1] Error at end: Expected RightParen, but got Eof",
		},
		{
			name: "missing closer reports the last line",
			src:  "(true\n false",
			want: "[line 2] Error at end: Expected RightParen, but got Eof",
		},
		{
			name: "stray closer inside list",
			src:  "(])",
			want: "[line 1] Error at ']': Unexpected token RightSquare",
		},
		{
			name: "dispatch without parens",
			src:  "(#1)",
			want: "[line 1] Error at '1': Unexpected token IntegerNumber",
		},
		{
			name: "dispatch with empty string literal",
			src:  `(#"")`,
			want: "[line 1] Error at '': Unexpected token String",
		},
		{
			name: "dispatch at end of input",
			src:  "(#",
			want: "[line 1] Error at end: Unexpected token Eof",
		},
		{
			name: "unterminated string",
			src:  `("abc`,
			want: "[line 1] Error: Unterminated string",
		},
		{
			name: "unterminated fraction",
			src:  "(1/)",
			want: "[line 1] Error: Unterminated fraction number",
		},
		{
			name: "unexpected character",
			src:  "(~)",
			want: "[line 1] Error: Unexpected character.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.New(tt.src).Parse()
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Nil(t, prog, "no partial program on error")
		})
	}
}

func TestParseFloatOverflowSaturates(t *testing.T) {
	// A digit run past the float64 range saturates to infinity; the
	// scanner guarantees only the lexical shape of the token.
	huge := strings.Repeat("9", 320)
	prog := parse(t, "( "+huge+".0 -"+huge+".0 )")
	want := &ast.Program{Forms: []ast.ExpressionList{{
		&ast.FloatNumberLiteral{Value: math.Inf(1)},
		&ast.FloatNumberLiteral{Value: math.Inf(-1)},
	}}}
	if diff := cmp.Diff(want, prog); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestPanicModeReportsFirstErrorOnly(t *testing.T) {
	// Both forms are malformed, only the first is ever reported.
	_, err := parser.New("(]) (})").Parse()
	require.Error(t, err)
	assert.Equal(t, "[line 1] Error at ']': Unexpected token RightSquare", err.Error())
}

func TestDiagnosticIsIncomplete(t *testing.T) {
	var diag *parser.Diagnostic

	_, err := parser.New("(add 1").Parse()
	require.ErrorAs(t, err, &diag)
	assert.True(t, diag.IsIncomplete())

	_, err = parser.New("true").Parse()
	require.ErrorAs(t, err, &diag)
	assert.False(t, diag.IsIncomplete())
}

func TestRenderReparseRoundTrip(t *testing.T) {
	srcs := []string{
		"(add 1 2)",
		"(f [1 2] {:a 1})",
		"(#( * %1 %1 ))",
		`(greet "hello")`,
		"( -1/2 0/1 )",
		"(scale 4.5 -0.25)",
		"(a)\n(b (c))",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			first := parse(t, src)
			second := parse(t, first.String())
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("reparsed program differs (-first +second):\n%s", diff)
			}
		})
	}
}
