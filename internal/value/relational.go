package value

import (
	"fmt"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

// Offset pairs a rendered offset amount with the qualifier it earned
// against one anchor, cached at construction time (§3: "The numeric value
// is fixed at creation; anchors, being immutable, make the computed
// offsets stable.").
type Offset struct {
	Anchor    *Anchor
	Amount    Scalar // |value - anchor.value|, integer iff both operands were integer
	Qualifier string // "over" | "under" | "near"
}

// Relational is a numeric scalar paired with an ordered, non-empty list of
// anchors it is interpreted relative to (§3).
type Relational struct {
	Value   Scalar // numeric
	Offsets []Offset
	Meta    []MetaEntry
}

func (r *Relational) Kind() Kind { return KindRelational }

// NewRelational constructs a relational value, validating that val is
// numeric and that anchors is non-empty. It does not check that anchors
// exist: the caller resolves names to *Anchor before calling, so a
// dangling reference is reported as a NameError by the caller. Offsets
// are computed and cached immediately, in anchor declaration order.
func NewRelational(val Scalar, anchors []*Anchor, meta []MetaEntry, pos token.Position) (*Relational, error) {
	if !val.IsNumeric() {
		return nil, ifaceerr.Typef(pos, "relational value must be numeric, got %s", val.TypeName())
	}
	if len(anchors) == 0 {
		return nil, ifaceerr.Typef(pos, "relational value must reference at least one anchor")
	}
	if err := validateMeta(meta, pos); err != nil {
		return nil, err
	}
	offsets := make([]Offset, len(anchors))
	for i, a := range anchors {
		amount, qual := computeOffset(val, a)
		offsets[i] = Offset{Anchor: a, Amount: amount, Qualifier: qual}
	}
	return &Relational{Value: val, Offsets: offsets, Meta: meta}, nil
}

// computeOffset implements the offset/qualifier rule of §3/§4.3: offset is
// |value - anchor.value|, rendered as an integer iff both participants are
// integer scalars, else as a float with trailing zeros trimmed. Qualifier
// is "over" if value is more than tolerance above the anchor, "under" if
// more than tolerance below, "near" otherwise (including exactly at the
// tolerance boundary).
func computeOffset(val Scalar, a *Anchor) (Scalar, string) {
	diff := val.AsFloat() - a.Value.AsFloat()
	amount := diff
	if amount < 0 {
		amount = -amount
	}

	var amountScalar Scalar
	if val.T == TInt && a.Value.T == TInt {
		amountScalar = Int(int64(amount))
	} else {
		amountScalar = Float(amount)
	}

	return amountScalar, Qualify(val, a)
}

// Qualify evaluates the over/under/near relation of a value against an
// anchor directly, independent of whether the anchor is part of any
// relational value's reference list (§4.3: "If a is not referenced by r,
// the qualifier evaluates against a directly using a's tolerance").
func Qualify(val Scalar, a *Anchor) string {
	tol := a.Tolerance()
	v, av := val.AsFloat(), a.Value.AsFloat()
	switch {
	case v > av+tol:
		return "over"
	case v < av-tol:
		return "under"
	default:
		return "near"
	}
}

// FindOffset returns the cached offset for anchor name, if r references
// it.
func (r *Relational) FindOffset(name string) (Offset, bool) {
	for _, o := range r.Offsets {
		if o.Anchor.Name == name {
			return o, true
		}
	}
	return Offset{}, false
}

// Display renders "<value> (<offset_1> <qualifier_1> <anchor_name_1>, …)"
// (§3), anchors in declaration order.
func (r *Relational) Display() string {
	parts := make([]string, len(r.Offsets))
	for i, o := range r.Offsets {
		parts[i] = fmt.Sprintf("%s %s %s", o.Amount.Display(), o.Qualifier, o.Anchor.Name)
	}
	return fmt.Sprintf("%s (%s)", r.Value.Display(), strings.Join(parts, ", "))
}
