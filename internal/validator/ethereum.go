package validator

import (
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/codec"
)

func validateEthereum(addr string) Outcome {
	switch codec.CheckEIP55(addr) {
	case codec.ChecksumVerified:
		return verified("Valid (checksum verified)")
	case codec.ChecksumAbsent:
		return formatOnly("Valid (no checksum)")
	}
	if !codec.IsHexAddress(addr) {
		return invalid("invalid format")
	}
	return invalid("invalid checksum")
}

// validateTether routes TRC-20 addresses to Tron and the rest to Ethereum.
func validateTether(addr string) Outcome {
	if strings.HasPrefix(addr, "T") {
		return validateTron(addr)
	}
	return validateEthereum(addr)
}
