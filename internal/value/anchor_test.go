package value

import "testing"

func TestNewAnchorRejectsNonNumericValue(t *testing.T) {
	_, err := NewAnchor("x", Str("nope"), nil, zeroPos)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewAnchorRejectsNegativeTolerance(t *testing.T) {
	meta := []MetaEntry{{Key: "tolerance", Value: Int(-1)}}
	_, err := NewAnchor("x", Int(10), meta, zeroPos)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewAnchorRejectsConfidenceOutOfRange(t *testing.T) {
	meta := []MetaEntry{{Key: "confidence", Value: Float(1.5)}}
	_, err := NewAnchor("x", Int(10), meta, zeroPos)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAnchorToleranceDefaultsToZero(t *testing.T) {
	a, err := NewAnchor("x", Int(10), nil, zeroPos)
	if err != nil {
		t.Fatal(err)
	}
	if a.Tolerance() != 0 {
		t.Fatalf("got %v, want 0", a.Tolerance())
	}
}

func TestAnchorDisplayOrdersRecognizedKeysFirst(t *testing.T) {
	meta := []MetaEntry{
		{Key: "sensor_id", Value: Str("S-1")},
		{Key: "tolerance", Value: Int(5)},
		{Key: "unit", Value: Str("psi")},
	}
	a, err := NewAnchor("p", Int(30), meta, zeroPos)
	if err != nil {
		t.Fatal(err)
	}
	want := `p = 30 unit=psi tolerance=±5 sensor_id=S-1`
	if got := a.Display(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
