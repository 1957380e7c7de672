package repository

import "testing"

func TestIsValidFrequency(t *testing.T) {
	for _, f := range []Frequency{Daily, Weekly, Monthly} {
		if !IsValidFrequency(f) {
			t.Fatalf("expected %q valid", f)
		}
	}
	if IsValidFrequency("hourly") {
		t.Fatalf("expected hourly invalid")
	}
	if IsValidFrequency("") {
		t.Fatalf("expected empty invalid")
	}
}

func TestNormalizeFrequency(t *testing.T) {
	if got := NormalizeFrequency(""); got != Monthly {
		t.Fatalf("empty should default to monthly, got %q", got)
	}
	if got := NormalizeFrequency("weekly"); got != Weekly {
		t.Fatalf("unexpected %q", got)
	}
	if got := NormalizeFrequency("yearly"); got != Monthly {
		t.Fatalf("unknown should default to monthly, got %q", got)
	}
}
