package validator

import (
	"errors"
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/codec"
)

const base32Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

func validateStellar(addr string) Outcome {
	if len(addr) != codec.StrKeyLength {
		return invalid("invalid length")
	}

	var class string
	var want byte
	switch addr[0] {
	case 'G':
		class, want = "Account ID", codec.VersionAccountID
	case 'S':
		class, want = "Secret Seed", codec.VersionSeed
	default:
		return invalid("invalid prefix")
	}

	for i := 0; i < len(addr); i++ {
		if strings.IndexByte(base32Chars, addr[i]) < 0 {
			return invalid("invalid characters")
		}
	}

	version, _, err := codec.DecodeStrKey(addr)
	if err == nil && version != want {
		return invalid("invalid version byte")
	}
	return classifyStellar(class, err)
}

// classifyStellar turns a StrKey decode result into an outcome. A checksum
// mismatch is a hard failure; any other decode failure leaves the checksum
// unevaluated and the address is accepted on format alone.
func classifyStellar(class string, err error) Outcome {
	switch {
	case err == nil:
		return verified(class)
	case errors.Is(err, codec.ErrChecksumMismatch):
		return invalid("invalid checksum")
	default:
		return Outcome{Valid: true, Delta: DeltaFormatOnly, Classification: class, Strength: StrengthDegraded}
	}
}
