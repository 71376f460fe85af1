package exam

import "testing"

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("History", "Ancient India", "Who built the Sanchi Stupa?")
	b := Fingerprint("History", "Ancient India", "Who built the Sanchi Stupa?")
	if a != b {
		t.Errorf("same input produced different fingerprints: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
}

func TestFingerprint_NormalizesCaseAndWhitespace(t *testing.T) {
	a := Fingerprint("History", "Ancient India", "Who built   the Sanchi Stupa?")
	b := Fingerprint("history", "ancient  india", "  WHO BUILT THE SANCHI STUPA?  ")
	if a != b {
		t.Error("normalization should make case and whitespace variants collide")
	}
}

func TestFingerprint_SubjectDistinguishes(t *testing.T) {
	a := Fingerprint("History", "", "Which of these is correct?")
	b := Fingerprint("Polity", "", "Which of these is correct?")
	if a == b {
		t.Error("same text under different subjects must not collide")
	}
}
