// Package value implements the GIANT data model of §3: scalars, anchors,
// and relational values, plus the arithmetic, qualifier, and rendering
// rules of §4.3.
//
// The value type is a tagged sum {Scalar, Anchor, Relational}, not a class
// hierarchy with relational values as a kind of number — evaluator call
// sites branch on the concrete type (Scalar, *Anchor, *Relational) with a
// type switch; Kind() exposes the same tag as a value.
package value

import (
	"strconv"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

// Kind tags which member of the {Scalar, Anchor, Relational} sum a Value
// holds.
type Kind int

const (
	KindScalar Kind = iota
	KindAnchor
	KindRelational
)

// Value is the common interface for everything that can be bound in an
// Environment or produced by evaluating an expression.
type Value interface {
	Kind() Kind
	Display() string
}

// ScalarType tags which native representation a Scalar holds.
type ScalarType int

const (
	TInt ScalarType = iota
	TFloat
	TString
	TBool
)

// Scalar is one of {integer, float, string, boolean} (§3). Strings are
// immutable byte sequences printed verbatim, without surrounding quotes.
type Scalar struct {
	T ScalarType
	I int64
	F float64
	S string
	B bool
}

func Int(v int64) Scalar    { return Scalar{T: TInt, I: v} }
func Float(v float64) Scalar { return Scalar{T: TFloat, F: v} }
func Str(v string) Scalar   { return Scalar{T: TString, S: v} }
func Bool(v bool) Scalar    { return Scalar{T: TBool, B: v} }

func (s Scalar) Kind() Kind { return KindScalar }

// IsNumeric reports whether the scalar is an integer or a float.
func (s Scalar) IsNumeric() bool { return s.T == TInt || s.T == TFloat }

// AsFloat returns the scalar's numeric value as a float64. Callers must
// check IsNumeric first; AsFloat on a non-numeric scalar returns 0.
func (s Scalar) AsFloat() float64 {
	switch s.T {
	case TInt:
		return float64(s.I)
	case TFloat:
		return s.F
	default:
		return 0
	}
}

// TypeName names the scalar's runtime type for error messages.
func (s Scalar) TypeName() string {
	switch s.T {
	case TInt:
		return "integer"
	case TFloat:
		return "float"
	case TString:
		return "string"
	case TBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Display is the native representation: integers and floats print as
// numbers (floats trim trailing zeros but always keep at least one digit
// after the decimal point, so 5.0 prints as "5.0"), strings print
// verbatim without quotes, and booleans print as "true"/"false".
func (s Scalar) Display() string {
	switch s.T {
	case TInt:
		return strconv.FormatInt(s.I, 10)
	case TFloat:
		return FormatFloat(s.F)
	case TString:
		return s.S
	case TBool:
		if s.B {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// FormatFloat renders f the way relational offsets and float scalars are
// displayed: trailing zeros trimmed, but at least one digit kept after the
// decimal point.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// arithResultIsFloat reports whether a binary arithmetic op yields a float:
// integer⊕integer stays integer unless forceFloat is set, and any float
// operand promotes the result to float.
func arithResultIsFloat(a, b Scalar, forceFloat bool) bool {
	return forceFloat || a.T == TFloat || b.T == TFloat
}

// Add implements "+". Non-numeric operands are a TypeError.
func Add(a, b Scalar, pos token.Position) (Scalar, error) {
	if err := requireNumeric(a, b, pos, "add"); err != nil {
		return Scalar{}, err
	}
	if arithResultIsFloat(a, b, false) {
		return Float(a.AsFloat() + b.AsFloat()), nil
	}
	return Int(a.I + b.I), nil
}

// Sub implements "-".
func Sub(a, b Scalar, pos token.Position) (Scalar, error) {
	if err := requireNumeric(a, b, pos, "subtract"); err != nil {
		return Scalar{}, err
	}
	if arithResultIsFloat(a, b, false) {
		return Float(a.AsFloat() - b.AsFloat()), nil
	}
	return Int(a.I - b.I), nil
}

// Mul implements "*".
func Mul(a, b Scalar, pos token.Position) (Scalar, error) {
	if err := requireNumeric(a, b, pos, "multiply"); err != nil {
		return Scalar{}, err
	}
	if arithResultIsFloat(a, b, false) {
		return Float(a.AsFloat() * b.AsFloat()), nil
	}
	return Int(a.I * b.I), nil
}

// Div implements "/". Division always yields a float; dividing by zero is
// an ArithmeticError regardless of operand types.
func Div(a, b Scalar, pos token.Position) (Scalar, error) {
	if err := requireNumeric(a, b, pos, "divide"); err != nil {
		return Scalar{}, err
	}
	if b.AsFloat() == 0 {
		return Scalar{}, arithmeticDivByZero(pos)
	}
	return Float(a.AsFloat() / b.AsFloat()), nil
}

func requireNumeric(a, b Scalar, pos token.Position, verb string) error {
	if !a.IsNumeric() {
		return ifaceerr.Typef(pos, "cannot %s a %s value", verb, a.TypeName())
	}
	if !b.IsNumeric() {
		return ifaceerr.Typef(pos, "cannot %s a %s value", verb, b.TypeName())
	}
	return nil
}

func arithmeticDivByZero(pos token.Position) error {
	return ifaceerr.Arithmeticf(pos, "division by zero")
}
