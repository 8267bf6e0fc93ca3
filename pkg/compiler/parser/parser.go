package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/ast"
	"github.com/maxinteger/pocket-lisp-next/pkg/compiler/lexer"
)

// Parser builds a Program from Pocket Lisp source in a single pass,
// pulling tokens from the scanner on demand. The first lexical or syntax
// error puts the parser into panic mode: the diagnostic is recorded,
// every later error is dropped, and the panic flag is never cleared, so
// one parse reports at most one error.
type Parser struct {
	scanner   *lexer.Scanner
	current   lexer.Token
	program   *ast.Program
	hadError  bool
	panicMode bool
	lastError *Diagnostic
}

// New creates a parser for the given source text.
func New(source string) *Parser {
	return &Parser{
		scanner: lexer.NewScanner(source),
		program: &ast.Program{},
	}
}

// Parse consumes the scanner fully and returns the accumulated program,
// or the sole recorded diagnostic. No partial program is returned on
// error.
func (p *Parser) Parse() (*ast.Program, error) {
	p.advance()
	for !p.isEnd() {
		form, err := p.form()
		if err != nil {
			break
		}
		p.program.Forms = append(p.program.Forms, form)
	}
	p.consume(lexer.KindEof, "Expect end of expression.")
	if p.hadError {
		return nil, p.lastError
	}
	return p.program, nil
}

// form parses one top-level form, which must be parenthesized. A bare
// literal at top level is a hard error.
func (p *Parser) form() (ast.ExpressionList, error) {
	if p.current.Kind != lexer.KindLeftParen {
		return nil, p.errorAtCurrent(fmt.Sprintf("Expected LeftParen, but get %s", p.current.Kind))
	}
	return p.expressionList(lexer.KindLeftParen)
}

// expression parses one expression dispatching on the current token kind
// and advances past everything it consumed.
func (p *Parser) expression() (ast.ExpressionNode, error) {
	tok := p.current
	switch tok.Kind {
	case lexer.KindTrue:
		p.advance()
		return &ast.BooleanLiteral{Value: true}, nil
	case lexer.KindFalse:
		p.advance()
		return &ast.BooleanLiteral{Value: false}, nil
	case lexer.KindString:
		p.advance()
		return &ast.StringLiteral{Value: tok.Src}, nil
	case lexer.KindIntegerNumber:
		val, err := strconv.ParseInt(tok.Src, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("parser: integer number token %q: %v", tok.Src, err))
		}
		p.advance()
		return &ast.IntegerNumberLiteral{Value: val}, nil
	case lexer.KindFloatNumber:
		// Range overflow saturates to ±Inf and stays a valid literal.
		val, err := strconv.ParseFloat(tok.Src, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic(fmt.Sprintf("parser: float number token %q: %v", tok.Src, err))
		}
		p.advance()
		return &ast.FloatNumberLiteral{Value: val}, nil
	case lexer.KindFractionNumber:
		num, den := parseFraction(tok.Src)
		p.advance()
		return &ast.FractionNumberLiteral{Numerator: num, Denominator: den}, nil
	case lexer.KindIdentifier:
		p.advance()
		return &ast.Identifier{Name: tok.Src}, nil
	case lexer.KindKeyword:
		p.advance()
		return &ast.Keyword{Name: tok.Src}, nil
	case lexer.KindDispatch:
		p.advance() // skip '#'
		if p.current.Kind != lexer.KindLeftParen {
			return nil, p.errorAtCurrent(fmt.Sprintf("Unexpected token %s", p.current.Kind))
		}
		body, err := p.expressionList(lexer.KindLeftParen)
		if err != nil {
			return nil, err
		}
		return &ast.AnonymousFunction{Body: body}, nil
	case lexer.KindLeftParen:
		elems, err := p.expressionList(lexer.KindLeftParen)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCall{Elements: elems}, nil
	case lexer.KindLeftSquare:
		elems, err := p.expressionList(lexer.KindLeftSquare)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elements: elems}, nil
	case lexer.KindLeftBrace:
		entries, err := p.expressionList(lexer.KindLeftBrace)
		if err != nil {
			return nil, err
		}
		return &ast.Map{Entries: entries}, nil
	case lexer.KindEof:
		// A nested list ran out of input; the caller reports the missing
		// closer.
		return &ast.Empty{}, nil
	}
	return nil, p.errorAtCurrent(fmt.Sprintf("Unexpected token %s", tok.Kind))
}

// expressionList parses a delimited list given its opening kind. The
// returned list may be partial when an inner expression failed and the
// error propagated.
func (p *Parser) expressionList(open lexer.Kind) (ast.ExpressionList, error) {
	end := closerOf(open)

	if p.current.Kind != open {
		// Degraded recovery: report without consuming anything and hand
		// back an empty list.
		p.errorAtCurrent(fmt.Sprintf("Expected %s, but got %s", open, p.current.Kind))
		return ast.ExpressionList{}, nil
	}
	p.advance() // skip opener

	list := ast.ExpressionList{}
	for p.current.Kind != end && !p.isEnd() {
		expr, err := p.expression()
		if err != nil {
			return list, err
		}
		list = append(list, expr)
	}

	if p.current.Kind != end {
		return list, p.errorAtCurrent(fmt.Sprintf("Expected %s, but got %s", end, p.current.Kind))
	}
	p.advance() // skip closer

	return list, nil
}

// closerOf maps an opening delimiter kind to its required closer. Any
// other kind is a programming error, not bad user input.
func closerOf(open lexer.Kind) lexer.Kind {
	switch open {
	case lexer.KindLeftParen:
		return lexer.KindRightParen
	case lexer.KindLeftSquare:
		return lexer.KindRightSquare
	case lexer.KindLeftBrace:
		return lexer.KindRightBrace
	}
	panic(fmt.Sprintf("parser: %s is not an opening delimiter", open))
}

// parseFraction splits an a/b literal into its integer halves. The
// scanner guarantees the shape, so a failure here is a contract
// violation.
func parseFraction(src string) (num, den int64) {
	numSrc, denSrc, ok := strings.Cut(src, "/")
	if !ok {
		panic(fmt.Sprintf("parser: fraction number token %q", src))
	}
	num, err := strconv.ParseInt(numSrc, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("parser: fraction number token %q: %v", src, err))
	}
	den, err = strconv.ParseInt(denSrc, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("parser: fraction number token %q: %v", src, err))
	}
	return num, den
}

// advance pulls the next token, escalating lexical errors on the spot so
// the parser never holds a KindError token as lookahead.
func (p *Parser) advance() {
	for {
		p.current = p.scanner.Next()
		if p.current.Kind != lexer.KindError {
			return
		}
		p.errorAt(p.current, p.current.Src)
	}
}

func (p *Parser) consume(kind lexer.Kind, message string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

func (p *Parser) isEnd() bool {
	return p.current.Kind == lexer.KindEof
}

func (p *Parser) errorAtCurrent(message string) error {
	return p.errorAt(p.current, message)
}

// errorAt records a diagnostic at the given token unless panic mode has
// already swallowed one, and returns the sole recorded diagnostic so
// callers can propagate it.
func (p *Parser) errorAt(tok lexer.Token, message string) error {
	if !p.panicMode {
		p.panicMode = true
		p.hadError = true
		d := &Diagnostic{Line: tok.Line, Message: message}
		switch tok.Kind {
		case lexer.KindEof:
			d.AtEnd = true
		case lexer.KindError:
			// Src carries the lexical message, not source text.
			d.Lexical = true
		default:
			d.Lexeme = tok.Src
		}
		p.lastError = d
	}
	return p.lastError
}
