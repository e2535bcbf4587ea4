package value

import (
	"fmt"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

// recognizedMetaKeys drives the display order of an anchor's recognized
// metadata (§3): unit, tolerance, description, context, confidence.
// Unrecognized keys are retained and displayed, in declaration order,
// after the recognized ones, but carry no semantic weight.
var recognizedMetaKeys = []string{"unit", "tolerance", "description", "context", "confidence"}

func isRecognizedMetaKey(key string) bool {
	for _, k := range recognizedMetaKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MetaEntry is one key/value pair in an anchor's or relational value's
// metadata bag.
type MetaEntry struct {
	Key   string
	Value Scalar
}

// Anchor is a named, immutable numeric reference point with optional
// metadata (§3). Anchors are created once by an @anchor declaration and
// never mutated afterward.
type Anchor struct {
	Name  string
	Value Scalar // numeric
	Meta  []MetaEntry
}

func (a *Anchor) Kind() Kind { return KindAnchor }

// Get looks up a metadata key (recognized or not) on the anchor.
func (a *Anchor) Get(key string) (Scalar, bool) {
	for _, m := range a.Meta {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Scalar{}, false
}

// Tolerance returns the anchor's tolerance, defaulting to 0 if unset.
func (a *Anchor) Tolerance() float64 {
	if v, ok := a.Get("tolerance"); ok {
		return v.AsFloat()
	}
	return 0
}

// NewAnchor constructs an anchor, validating that its value is numeric and
// that recognized metadata keys carry well-formed values (tolerance
// non-negative, confidence in [0,1]). pos is used for error reporting and
// should be the anchor declaration's source position.
func NewAnchor(name string, val Scalar, meta []MetaEntry, pos token.Position) (*Anchor, error) {
	if !val.IsNumeric() {
		return nil, ifaceerr.Typef(pos, "anchor %q value must be numeric, got %s", name, val.TypeName())
	}
	if err := validateMeta(meta, pos); err != nil {
		return nil, err
	}
	return &Anchor{Name: name, Value: val, Meta: meta}, nil
}

// validateMeta checks the recognized-key invariants shared by anchors and
// relational values: tolerance must be numeric and non-negative,
// confidence must be numeric and within [0, 1].
func validateMeta(meta []MetaEntry, pos token.Position) error {
	for _, m := range meta {
		switch m.Key {
		case "tolerance":
			if !m.Value.IsNumeric() {
				return ifaceerr.Valuef(pos, "tolerance must be numeric, got %s", m.Value.TypeName())
			}
			if m.Value.AsFloat() < 0 {
				return ifaceerr.Valuef(pos, "tolerance must be non-negative, got %s", m.Value.Display())
			}
		case "confidence":
			if !m.Value.IsNumeric() {
				return ifaceerr.Valuef(pos, "confidence must be numeric, got %s", m.Value.TypeName())
			}
			f := m.Value.AsFloat()
			if f < 0 || f > 1 {
				return ifaceerr.Valuef(pos, "confidence must be within [0, 1], got %s", m.Value.Display())
			}
		}
	}
	return nil
}

// Display renders "<name> = <value> [unit=<u>] [tolerance=±<t>] …" (§4.3).
func (a *Anchor) Display() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = %s", a.Name, a.Value.Display())
	for _, m := range orderedMeta(a.Meta) {
		sb.WriteString(" ")
		sb.WriteString(formatMetaEntry(m))
	}
	return sb.String()
}

// orderedMeta returns meta with recognized keys first (in the fixed
// display order), followed by unrecognized keys in declaration order.
func orderedMeta(meta []MetaEntry) []MetaEntry {
	byKey := make(map[string]MetaEntry, len(meta))
	for _, m := range meta {
		byKey[m.Key] = m
	}
	seen := make(map[string]bool, len(meta))
	ordered := make([]MetaEntry, 0, len(meta))
	for _, k := range recognizedMetaKeys {
		if m, ok := byKey[k]; ok {
			ordered = append(ordered, m)
			seen[k] = true
		}
	}
	for _, m := range meta {
		if !seen[m.Key] {
			ordered = append(ordered, m)
			seen[m.Key] = true
		}
	}
	return ordered
}

func formatMetaEntry(m MetaEntry) string {
	if m.Key == "tolerance" {
		return fmt.Sprintf("tolerance=±%s", m.Value.Display())
	}
	return fmt.Sprintf("%s=%s", m.Key, m.Value.Display())
}
