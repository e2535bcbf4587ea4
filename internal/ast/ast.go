// Package ast defines the Abstract Syntax Tree node types produced by the
// parser. Every surface phrasing the parser accepts lowers to one of the
// node kinds here — there is exactly one canonical shape per statement or
// expression kind, regardless of which keyword spelled it (§4.2).
package ast

import (
	"fmt"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Statement is a node executed for its side effects.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Identifier is a name reference, used both as an expression (variable
// read) and inside declarations (the name being bound).
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }

// NumberLiteral is an integer or floating-point literal expression.
type NumberLiteral struct {
	Token    token.Token
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }

// StringLiteral is a double-quoted string expression.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return fmt.Sprintf("%q", s.Value) }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }

// InfixExpression is a binary arithmetic expression. Operator is the
// canonical operator ("+", "-", "*", "/") after the parser has lowered
// whichever surface phrase (e.g. "added to", "divided by") was used; the
// parser has also already reordered operand-reversing phrases such as
// "subtracted from" so Left/Right are always in left-minus-right /
// left-over-right order for the canonical Operator.
type InfixExpression struct {
	Token    token.Token // the operator token as written in source
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator, e.Right.String())
}
func (e *InfixExpression) Pos() token.Position { return e.Token.Pos }

// GroupedExpression is a parenthesized expression, kept as its own node so
// String() can round-trip the parentheses.
type GroupedExpression struct {
	Token token.Token // '('
	Inner Expression
}

func (e *GroupedExpression) expressionNode()      {}
func (e *GroupedExpression) TokenLiteral() string { return e.Token.Literal }
func (e *GroupedExpression) String() string       { return "(" + e.Inner.String() + ")" }
func (e *GroupedExpression) Pos() token.Position  { return e.Token.Pos }

// MetaEntry is one "<key> = <expr>" tail entry attached to an @anchor or
// relational declaration.
type MetaEntry struct {
	Key   string
	Value Expression
}

// AssignStatement binds the result of Value to Name. make/set/let and
// their connector variants (be, to, be equal to) all lower here.
type AssignStatement struct {
	Token token.Token // the opener keyword (make/set/let)
	Name  *Identifier
	Value Expression
}

func (s *AssignStatement) statementNode()      {}
func (s *AssignStatement) TokenLiteral() string { return s.Token.Literal }
func (s *AssignStatement) String() string {
	return fmt.Sprintf("make %s be %s", s.Name.String(), s.Value.String())
}
func (s *AssignStatement) Pos() token.Position { return s.Token.Pos }

// PrintStatement renders Value and writes it to the output sink. talk,
// show, and "wetin be" all lower here.
type PrintStatement struct {
	Token token.Token
	Value Expression
}

func (s *PrintStatement) statementNode()      {}
func (s *PrintStatement) TokenLiteral() string { return s.Token.Literal }
func (s *PrintStatement) String() string       { return "talk " + s.Value.String() }
func (s *PrintStatement) Pos() token.Position  { return s.Token.Pos }

// AnchorDecl declares a named, immutable reference point.
type AnchorDecl struct {
	Token    token.Token // '@anchor'
	Name     *Identifier
	Value    Expression
	Metadata []MetaEntry
}

func (s *AnchorDecl) statementNode()      {}
func (s *AnchorDecl) TokenLiteral() string { return s.Token.Literal }
func (s *AnchorDecl) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@anchor %s = %s", s.Name.String(), s.Value.String())
	for _, m := range s.Metadata {
		fmt.Fprintf(&sb, " %s = %s", m.Key, m.Value.String())
	}
	return sb.String()
}
func (s *AnchorDecl) Pos() token.Position { return s.Token.Pos }

// ListAnchorsStatement prints one line per anchor in declaration order.
type ListAnchorsStatement struct {
	Token token.Token
}

func (s *ListAnchorsStatement) statementNode()      {}
func (s *ListAnchorsStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ListAnchorsStatement) String() string       { return "list anchors" }
func (s *ListAnchorsStatement) Pos() token.Position  { return s.Token.Pos }

// DescribeAnchorStatement prints the full rendering of a named anchor.
// describe anchor / inspect anchor both lower here.
type DescribeAnchorStatement struct {
	Token token.Token
	Name  *Identifier
}

func (s *DescribeAnchorStatement) statementNode()      {}
func (s *DescribeAnchorStatement) TokenLiteral() string { return s.Token.Literal }
func (s *DescribeAnchorStatement) String() string {
	return "describe anchor " + s.Name.String()
}
func (s *DescribeAnchorStatement) Pos() token.Position { return s.Token.Pos }

// RelationalDecl declares a relational value against an ordered list of
// anchor names.
type RelationalDecl struct {
	Token    token.Token // 'relational'
	Name     *Identifier
	Value    Expression
	Anchors  []*Identifier
	Metadata []MetaEntry
}

func (s *RelationalDecl) statementNode()      {}
func (s *RelationalDecl) TokenLiteral() string { return s.Token.Literal }
func (s *RelationalDecl) String() string {
	names := make([]string, len(s.Anchors))
	for i, a := range s.Anchors {
		names[i] = a.Value
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "relational %s = %s relative to [%s]", s.Name.String(), s.Value.String(), strings.Join(names, ", "))
	for _, m := range s.Metadata {
		fmt.Fprintf(&sb, " %s = %s", m.Key, m.Value.String())
	}
	return sb.String()
}
func (s *RelationalDecl) Pos() token.Position { return s.Token.Pos }

// WhenStatement is a reactive conditional: Body runs iff Subject, compared
// to the anchor named Reference, satisfies Qualifier ("over"/"under"/"near").
type WhenStatement struct {
	Token     token.Token // 'when'
	Subject   Expression
	Qualifier string
	Reference *Identifier
	Body      []Statement
}

func (s *WhenStatement) statementNode()      {}
func (s *WhenStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhenStatement) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "when %s is %q %s:\n", s.Subject.String(), s.Qualifier, s.Reference.String())
	for _, st := range s.Body {
		fmt.Fprintf(&sb, "  @action %s\n", st.String())
	}
	return sb.String()
}
func (s *WhenStatement) Pos() token.Position { return s.Token.Pos }
