package validator

import (
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/codec"
)

// The families in this file carry checksums this package does not verify
// (Monero's Keccak checksum over its block Base58, Cardano's CBOR/CRC32
// and Bech32 payloads). They get format checks and the format-only delta.

func validateMonero(addr string) Outcome {
	if !codec.IsBase58(addr) {
		return invalid("invalid characters")
	}
	switch {
	case addr[0] == '4' && len(addr) == 95:
		return formatOnly("Standard")
	case addr[0] == '4' && len(addr) == 106:
		return formatOnly("Integrated")
	case addr[0] == '8' && len(addr) == 95:
		return formatOnly("Subaddress")
	}
	return invalid("unknown format")
}

func validateCardano(addr string) Outcome {
	switch {
	case strings.HasPrefix(addr, "addr1"):
		if len(addr) >= 58 && isLowerAlnum(addr[len("addr1"):]) {
			return formatOnly("Shelley")
		}
		return invalid("invalid Shelley address")
	case strings.HasPrefix(addr, "stake1"):
		if len(addr) >= 50 && isLowerAlnum(addr[len("stake1"):]) {
			return formatOnly("Stake")
		}
		return invalid("invalid stake address")
	case strings.HasPrefix(addr, "DdzFF"), strings.HasPrefix(addr, "Ae2"):
		if len(addr) >= 50 && codec.IsBase58(addr) {
			return formatOnly("Byron")
		}
		return invalid("invalid Byron address")
	}
	return invalid("unknown format")
}

var solanaWords = []string{
	"fingerprint", "session", "browser", "different", "from", "last",
	"count", "week", "day", "recipient", "bank", "account",
}

const (
	solanaKeyLen      = 32
	solanaMinDistinct = 10
	solanaMaxRun      = 3
)

func validateSolana(addr string) Outcome {
	lower := strings.ToLower(addr)
	for _, w := range solanaWords {
		if strings.Contains(lower, w) {
			return rejected("false positive pattern")
		}
	}
	if len(addr) < 32 || len(addr) > 44 {
		return invalid("invalid length")
	}
	if !codec.IsBase58(addr) {
		return invalid("invalid characters")
	}
	if longestRun(addr) > solanaMaxRun {
		return rejected("repeated characters")
	}
	key, err := codec.BitcoinAlphabet.Decode(addr)
	if err != nil {
		return invalid("invalid base58")
	}
	if len(key) != solanaKeyLen {
		return invalid("invalid decoded length")
	}
	if distinct(addr) < solanaMinDistinct {
		return invalid("low entropy")
	}
	return formatOnly("Valid public key")
}

func longestRun(s string) int {
	best, run := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

func isLowerAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
