package value

import (
	"testing"

	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

var zeroPos = token.Position{Line: 1, Column: 1}

func TestAddIntKeepsInt(t *testing.T) {
	got, err := Add(Int(2), Int(3), zeroPos)
	if err != nil {
		t.Fatal(err)
	}
	if got.T != TInt || got.I != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestAddMixedPromotesFloat(t *testing.T) {
	got, err := Add(Int(2), Float(3.5), zeroPos)
	if err != nil {
		t.Fatal(err)
	}
	if got.T != TFloat || got.F != 5.5 {
		t.Fatalf("got %+v", got)
	}
}

func TestDivAlwaysFloat(t *testing.T) {
	got, err := Div(Int(10), Int(2), zeroPos)
	if err != nil {
		t.Fatal(err)
	}
	if got.T != TFloat || got.F != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestDivByZeroIsArithmeticError(t *testing.T) {
	_, err := Div(Int(1), Int(0), zeroPos)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestArithmeticOnNonNumericIsTypeError(t *testing.T) {
	_, err := Add(Str("x"), Int(1), zeroPos)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatFloatTrimsTrailingZerosKeepsOne(t *testing.T) {
	cases := map[float64]string{
		5.0:   "5.0",
		5.5:   "5.5",
		1.10:  "1.1",
		0.125: "0.125",
	}
	for in, want := range cases {
		if got := FormatFloat(in); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if Int(7).Display() != "7" {
		t.Fatal("int display")
	}
	if Bool(true).Display() != "true" {
		t.Fatal("bool display")
	}
	if Str("hi").Display() != "hi" {
		t.Fatal("string display should not include quotes")
	}
}
