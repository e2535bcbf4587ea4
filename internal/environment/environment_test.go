package environment

import (
	"testing"

	"github.com/FFFF-0000h/GIANT-Language/internal/token"
	"github.com/FFFF-0000h/GIANT-Language/internal/value"
)

var zeroPos = token.Position{Line: 1, Column: 1}

func TestBindAndLookup(t *testing.T) {
	env := New()
	env.Bind("x", value.Int(5))
	v, ok := env.Lookup("x")
	if !ok {
		t.Fatal("expected binding")
	}
	if v.(value.Scalar).I != 5 {
		t.Fatalf("got %+v", v)
	}
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	env := New()
	if _, ok := env.Lookup("nope"); ok {
		t.Fatal("expected not found")
	}
}

func TestRebindOverwritesAndKeepsPosition(t *testing.T) {
	env := New()
	a1, _ := value.NewAnchor("t", value.Int(1), nil, zeroPos)
	a2, _ := value.NewAnchor("u", value.Int(2), nil, zeroPos)
	a3, _ := value.NewAnchor("t", value.Int(3), nil, zeroPos)
	env.Bind("t", a1)
	env.Bind("u", a2)
	env.Bind("t", a3)

	anchors := env.Anchors()
	if len(anchors) != 2 {
		t.Fatalf("got %d anchors, want 2", len(anchors))
	}
	if anchors[0].Name != "t" || anchors[0].Value.I != 3 {
		t.Fatalf("rebinding should keep original order but update value: got %+v", anchors[0])
	}
	if anchors[1].Name != "u" {
		t.Fatalf("got %+v", anchors[1])
	}
}

func TestLookupAnchorRejectsNonAnchorBinding(t *testing.T) {
	env := New()
	env.Bind("x", value.Int(5))
	if _, ok := env.LookupAnchor("x"); ok {
		t.Fatal("expected false for a scalar binding")
	}
}
