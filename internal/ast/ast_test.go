package ast

import (
	"testing"

	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

func TestInfixExpressionString(t *testing.T) {
	expr := &InfixExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "plus"},
		Left:     &NumberLiteral{Token: token.Token{Literal: "2"}, IntVal: 2},
		Operator: "+",
		Right:    &NumberLiteral{Token: token.Token{Literal: "3"}, IntVal: 3},
	}
	if got := expr.String(); got != "(2 + 3)" {
		t.Fatalf("got %q", got)
	}
}

func TestAnchorDeclStringIncludesMetadata(t *testing.T) {
	decl := &AnchorDecl{
		Token: token.Token{Literal: "@anchor"},
		Name:  &Identifier{Value: "room"},
		Value: &NumberLiteral{Token: token.Token{Literal: "21.5"}, IsFloat: true, FloatVal: 21.5},
		Metadata: []MetaEntry{
			{Key: "unit", Value: &StringLiteral{Value: "C"}},
		},
	}
	want := `@anchor room = 21.5 unit = "C"`
	if got := decl.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProgramStringJoinsStatements(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&PrintStatement{Token: token.Token{Literal: "talk"}, Value: &StringLiteral{Value: "hi"}},
	}}
	want := "talk \"hi\"\n"
	if got := prog.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
