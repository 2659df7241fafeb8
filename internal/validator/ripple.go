package validator

import (
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/codec"
)

var (
	// rippleWords are fragments that show up in exported column names and
	// prose but never in real account IDs often enough to matter.
	rippleWords = []string{
		"recipient", "bank", "account", "count", "week", "day",
		"amount", "balance", "transaction", "payment",
	}
	rippleCamelWords = []string{"Count", "Week", "Day", "Account"}
)

const rippleMinDistinct = 12

func validateRipple(addr string) Outcome {
	lower := strings.ToLower(addr)
	for _, w := range rippleWords {
		if strings.Contains(lower, w) {
			return rejected("false positive pattern")
		}
	}

	if !strings.HasPrefix(addr, "r") || len(addr) < 25 || len(addr) > 35 {
		return invalid("invalid format")
	}
	if !codec.RippleAlphabet.Contains(addr) {
		return invalid("invalid characters")
	}
	if distinct(addr) < rippleMinDistinct {
		return invalid("low entropy")
	}
	for _, w := range rippleCamelWords {
		if strings.Contains(addr, w) {
			return rejected("contains word pattern")
		}
	}

	if _, _, err := codec.RippleDecode(addr); err != nil {
		return invalid(failureReason(err))
	}
	return verified("Valid (checksum verified)")
}

func distinct(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
