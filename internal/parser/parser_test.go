package parser

import (
	"testing"

	"github.com/FFFF-0000h/GIANT-Language/internal/ast"
	"github.com/FFFF-0000h/GIANT-Language/internal/lexer"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog, errs := p.ParseProgram()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	return prog
}

func TestAssignVariantsLowerToSameNode(t *testing.T) {
	variants := []string{
		"make x be 5",
		"set x to 5",
		"let x be 5",
		"let x be equal to 5",
	}
	for _, src := range variants {
		prog := parseOK(t, src)
		if len(prog.Statements) != 1 {
			t.Fatalf("%q: got %d statements", src, len(prog.Statements))
		}
		assign, ok := prog.Statements[0].(*ast.AssignStatement)
		if !ok {
			t.Fatalf("%q: got %T", src, prog.Statements[0])
		}
		if assign.Name.Value != "x" {
			t.Fatalf("%q: name = %q", src, assign.Name.Value)
		}
		num, ok := assign.Value.(*ast.NumberLiteral)
		if !ok || num.IntVal != 5 {
			t.Fatalf("%q: value = %#v", src, assign.Value)
		}
	}
}

func TestPrintVariantsLowerToSameNode(t *testing.T) {
	for _, src := range []string{`talk "hi"`, `show "hi"`, `wetin be "hi"`} {
		prog := parseOK(t, src)
		if _, ok := prog.Statements[0].(*ast.PrintStatement); !ok {
			t.Fatalf("%q: got %T", src, prog.Statements[0])
		}
	}
}

func TestSubtractedFromReversesOperands(t *testing.T) {
	prog := parseOK(t, "talk 20 subtracted from 30")
	print := prog.Statements[0].(*ast.PrintStatement)
	infix := print.Value.(*ast.InfixExpression)
	if infix.Operator != "-" {
		t.Fatalf("operator = %q", infix.Operator)
	}
	left := infix.Left.(*ast.NumberLiteral)
	right := infix.Right.(*ast.NumberLiteral)
	if left.IntVal != 30 || right.IntVal != 20 {
		t.Fatalf("got left=%d right=%d, want left=30 right=20", left.IntVal, right.IntVal)
	}
}

func TestAddedToReversesOperands(t *testing.T) {
	prog := parseOK(t, "talk 5 added to 10")
	print := prog.Statements[0].(*ast.PrintStatement)
	infix := print.Value.(*ast.InfixExpression)
	if infix.Operator != "+" {
		t.Fatalf("operator = %q", infix.Operator)
	}
	left := infix.Left.(*ast.NumberLiteral)
	right := infix.Right.(*ast.NumberLiteral)
	if left.IntVal != 10 || right.IntVal != 5 {
		t.Fatalf("got left=%d right=%d, want left=10 right=5", left.IntVal, right.IntVal)
	}
}

func TestMultiplicativeBindsTighterThanAdditive(t *testing.T) {
	prog := parseOK(t, "talk 2 plus 3 times 4")
	print := prog.Statements[0].(*ast.PrintStatement)
	infix := print.Value.(*ast.InfixExpression)
	if infix.Operator != "+" {
		t.Fatalf("top-level operator = %q, want +", infix.Operator)
	}
	right := infix.Right.(*ast.InfixExpression)
	if right.Operator != "*" {
		t.Fatalf("right operand operator = %q, want *", right.Operator)
	}
}

func TestAnchorDeclWithMetadata(t *testing.T) {
	prog := parseOK(t, `@anchor room = 21.5 unit = "C" tolerance = 0.5`)
	decl := prog.Statements[0].(*ast.AnchorDecl)
	if decl.Name.Value != "room" {
		t.Fatalf("name = %q", decl.Name.Value)
	}
	if len(decl.Metadata) != 2 {
		t.Fatalf("got %d metadata entries", len(decl.Metadata))
	}
	if decl.Metadata[0].Key != "unit" || decl.Metadata[1].Key != "tolerance" {
		t.Fatalf("metadata = %+v", decl.Metadata)
	}
}

func TestRelationalDeclWithAnchorList(t *testing.T) {
	prog := parseOK(t, "relational v = 15 relative to [a, b]")
	decl := prog.Statements[0].(*ast.RelationalDecl)
	if len(decl.Anchors) != 2 || decl.Anchors[0].Value != "a" || decl.Anchors[1].Value != "b" {
		t.Fatalf("anchors = %+v", decl.Anchors)
	}
}

func TestRelationalDeclMultilineMetadata(t *testing.T) {
	src := "relational reading = 34 relative to [pressure]\n\tsensor_id = \"P-104\"\n\tpolicy = \"alert\"\n"
	prog := parseOK(t, src)
	decl := prog.Statements[0].(*ast.RelationalDecl)
	if len(decl.Metadata) != 2 {
		t.Fatalf("got %d metadata entries, want 2: %+v", len(decl.Metadata), decl.Metadata)
	}
	if decl.Metadata[0].Key != "sensor_id" || decl.Metadata[1].Key != "policy" {
		t.Fatalf("metadata = %+v", decl.Metadata)
	}
}

func TestWhenParsesIndentedActionBody(t *testing.T) {
	src := "when s is \"over\" lim:\n\t@action talk \"fast\"\n"
	prog := parseOK(t, src)
	when := prog.Statements[0].(*ast.WhenStatement)
	if when.Qualifier != "over" || when.Reference.Value != "lim" {
		t.Fatalf("got qualifier=%q reference=%q", when.Qualifier, when.Reference.Value)
	}
	if len(when.Body) != 1 {
		t.Fatalf("got %d body statements", len(when.Body))
	}
	if _, ok := when.Body[0].(*ast.PrintStatement); !ok {
		t.Fatalf("body statement = %T", when.Body[0])
	}
}

func TestWhenBodyDanglingAtEOFIsValid(t *testing.T) {
	src := "when s is \"near\" lim:\n\t@action talk \"ok\""
	prog := parseOK(t, src)
	when := prog.Statements[0].(*ast.WhenStatement)
	if len(when.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(when.Body))
	}
}

func TestParenthesizedExpression(t *testing.T) {
	prog := parseOK(t, "talk (2 plus 3) times 4")
	print := prog.Statements[0].(*ast.PrintStatement)
	infix := print.Value.(*ast.InfixExpression)
	if infix.Operator != "*" {
		t.Fatalf("operator = %q", infix.Operator)
	}
	if _, ok := infix.Left.(*ast.GroupedExpression); !ok {
		t.Fatalf("left operand = %T, want GroupedExpression", infix.Left)
	}
}

func TestParseErrorRecoveryContinuesToNextStatement(t *testing.T) {
	src := "make be 5\ntalk \"after\""
	p := New(lexer.New(src))
	prog, errs := p.ParseProgram()
	if len(errs) == 0 {
		t.Fatal("expected a parse error on the first line")
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want the second statement to still parse", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.PrintStatement); !ok {
		t.Fatalf("got %T", prog.Statements[0])
	}
}
