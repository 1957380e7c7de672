package ratelimit

import "testing"

func TestAllowWithinCapacity(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 0.0001) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("k", 3, 0.0001) {
		t.Fatalf("expected bucket exhausted")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0.0001) {
		t.Fatalf("first a should pass")
	}
	if l.Allow("a", 1, 0.0001) {
		t.Fatalf("second a should be limited")
	}
	if !l.Allow("b", 1, 0.0001) {
		t.Fatalf("b has its own bucket")
	}
}
