package repository

// Frequency is the purchase cadence of a DCA plan.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// IsValidFrequency returns true if f is a supported cadence.
func IsValidFrequency(f Frequency) bool {
	switch f {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// DefaultFrequency returns the default cadence.
func DefaultFrequency() Frequency { return Monthly }

// NormalizeFrequency converts a raw string to a valid cadence (or default).
func NormalizeFrequency(s string) Frequency {
	if s == "" {
		return DefaultFrequency()
	}
	f := Frequency(s)
	if IsValidFrequency(f) {
		return f
	}
	return DefaultFrequency()
}
