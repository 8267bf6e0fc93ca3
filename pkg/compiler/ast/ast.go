package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpressionNode represents any node in the Abstract Syntax Tree. String
// renders the node as source-like text.
type ExpressionNode interface {
	String() string
	exprNode()
}

// ExpressionList is an ordered sequence of expression nodes. Order is
// semantically significant.
type ExpressionList []ExpressionNode

func (l ExpressionList) String() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Program is the root node, one entry per top-level parenthesized form in
// source order.
type Program struct {
	Forms []ExpressionList
}

func (p *Program) String() string {
	parts := make([]string, len(p.Forms))
	for i, f := range p.Forms {
		parts[i] = "(" + f.String() + ")"
	}
	return strings.Join(parts, "\n")
}

// Empty marks the spot where a nested list ran out of input.
type Empty struct{}

func (e *Empty) exprNode()      {}
func (e *Empty) String() string { return "" }

type BooleanLiteral struct {
	Value bool
}

func (b *BooleanLiteral) exprNode()      {}
func (b *BooleanLiteral) String() string { return strconv.FormatBool(b.Value) }

type IntegerNumberLiteral struct {
	Value int64
}

func (n *IntegerNumberLiteral) exprNode()      {}
func (n *IntegerNumberLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

type FloatNumberLiteral struct {
	Value float64
}

func (n *FloatNumberLiteral) exprNode() {}

// String renders without an exponent, keeping the text lexable as one
// numeric token.
func (n *FloatNumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// FractionNumberLiteral is an exact a/b rational literal. The pair is
// kept as scanned, neither reduced nor validated for a zero denominator.
type FractionNumberLiteral struct {
	Numerator   int64
	Denominator int64
}

func (n *FractionNumberLiteral) exprNode() {}
func (n *FractionNumberLiteral) String() string {
	return fmt.Sprintf("%d/%d", n.Numerator, n.Denominator)
}

type StringLiteral struct {
	Value string
}

func (s *StringLiteral) exprNode()      {}
func (s *StringLiteral) String() string { return strconv.Quote(s.Value) }

type Identifier struct {
	Name string
}

func (i *Identifier) exprNode()      {}
func (i *Identifier) String() string { return i.Name }

// Keyword is a `:name` literal. Name includes the leading colon.
type Keyword struct {
	Name string
}

func (k *Keyword) exprNode()      {}
func (k *Keyword) String() string { return k.Name }

// FunctionCall: ( ELEMENTS )
type FunctionCall struct {
	Elements ExpressionList
}

func (c *FunctionCall) exprNode()      {}
func (c *FunctionCall) String() string { return "(" + c.Elements.String() + ")" }

// AnonymousFunction: #( BODY )
type AnonymousFunction struct {
	Body ExpressionList
}

func (f *AnonymousFunction) exprNode()      {}
func (f *AnonymousFunction) String() string { return "#(" + f.Body.String() + ")" }

// Array: [ ELEMENTS ]
type Array struct {
	Elements ExpressionList
}

func (a *Array) exprNode()      {}
func (a *Array) String() string { return "[" + a.Elements.String() + "]" }

// Map: { ENTRIES } as a flat key value sequence.
type Map struct {
	Entries ExpressionList
}

func (m *Map) exprNode()      {}
func (m *Map) String() string { return "{" + m.Entries.String() + "}" }
