package validator

// Strength says how much of an address a validator could verify.
type Strength int

const (
	// StrengthNone marks an invalid address.
	StrengthNone Strength = iota
	// StrengthUnchecked is used for currencies without a validator.
	StrengthUnchecked
	// StrengthFormat means prefix, length and alphabet checks passed but the
	// family carries no checksum the validator verifies.
	StrengthFormat
	// StrengthDegraded means a checksum exists but could not be evaluated,
	// so the address was accepted on format alone.
	StrengthDegraded
	// StrengthChecksum means the embedded checksum was verified.
	StrengthChecksum
)

func (s Strength) String() string {
	switch s {
	case StrengthUnchecked:
		return "unchecked"
	case StrengthFormat:
		return "format"
	case StrengthDegraded:
		return "degraded"
	case StrengthChecksum:
		return "checksum"
	default:
		return "none"
	}
}

// Confidence deltas added to a base score on success.
const (
	DeltaVerified   = 20.0
	DeltaDeprecated = 15.0
	DeltaFormatOnly = 10.0
)

// Outcome is the result of one validation. It is never persisted.
type Outcome struct {
	Valid          bool
	Delta          float64
	Classification string
	Strength       Strength
	// Reason explains a failure.
	Reason string
	// Reject marks a failure that drops the candidate however it was
	// matched, instead of letting a permissive match keep a reduced score.
	Reject bool
}

func verified(class string) Outcome {
	return Outcome{Valid: true, Delta: DeltaVerified, Classification: class, Strength: StrengthChecksum}
}

func formatOnly(class string) Outcome {
	return Outcome{Valid: true, Delta: DeltaFormatOnly, Classification: class, Strength: StrengthFormat}
}

func invalid(reason string) Outcome {
	return Outcome{Reason: reason}
}

// rejected is a failure caused by a false-positive heuristic rather than a
// bad encoding.
func rejected(reason string) Outcome {
	return Outcome{Reason: reason, Reject: true}
}
