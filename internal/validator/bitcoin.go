package validator

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/fyrsmithlabs/coinscan/internal/codec"
)

const hash160Len = 20

// Version bytes for networks btcd does not ship parameters for.
const (
	litecoinPubKeyHash byte = 0x30
	litecoinScriptHash byte = 0x32
	dogecoinPubKeyHash byte = 0x1e
	dogecoinScriptHash byte = 0x16
	tronMainnet        byte = 0x41

	litecoinHRP = "ltc"
)

var bitcoinParams = &chaincfg.MainNetParams

func validateBitcoin(addr string) Outcome {
	switch {
	case hasPrefixFold(addr, bitcoinParams.Bech32HRPSegwit+"1"):
		return validateSegWit(bitcoinParams.Bech32HRPSegwit, addr, bitcoinWitnessClass)
	case strings.HasPrefix(addr, "1"):
		return base58Check(addr, "P2PKH", bitcoinParams.PubKeyHashAddrID)
	case strings.HasPrefix(addr, "3"):
		return base58Check(addr, "P2SH", bitcoinParams.ScriptHashAddrID)
	}
	return invalid("unknown prefix")
}

func bitcoinWitnessClass(wp *codec.WitnessProgram) (string, bool) {
	switch {
	case wp.Version == 0 && len(wp.Program) == 20:
		return "P2WPKH", true
	case wp.Version == 0 && len(wp.Program) == 32:
		return "P2WSH", true
	case wp.Version == 1 && len(wp.Program) == 32:
		return "P2TR (Taproot)", true
	}
	return "", false
}

func validateLitecoin(addr string) Outcome {
	switch {
	case hasPrefixFold(addr, litecoinHRP+"1"):
		return validateSegWit(litecoinHRP, addr, func(*codec.WitnessProgram) (string, bool) {
			return "SegWit", true
		})
	case strings.HasPrefix(addr, "L"):
		return base58Check(addr, "P2PKH", litecoinPubKeyHash)
	case strings.HasPrefix(addr, "M"):
		return base58Check(addr, "P2SH", litecoinScriptHash)
	case strings.HasPrefix(addr, "3"):
		// Litecoin once shared Bitcoin's P2SH version byte.
		out := base58Check(addr, "P2SH (deprecated)", bitcoinParams.ScriptHashAddrID)
		if out.Valid {
			out.Delta = DeltaDeprecated
		}
		return out
	}
	return invalid("unknown prefix")
}

func validateDogecoin(addr string) Outcome {
	if len(addr) != 34 {
		return invalid("invalid length")
	}
	switch addr[0] {
	case 'D':
		return base58Check(addr, "P2PKH", dogecoinPubKeyHash)
	case 'A', '9':
		return base58Check(addr, "P2SH", dogecoinScriptHash)
	}
	return invalid("unknown prefix")
}

func validateTron(addr string) Outcome {
	if !strings.HasPrefix(addr, "T") || len(addr) != 34 {
		return invalid("invalid format")
	}
	return base58Check(addr, "Mainnet", tronMainnet)
}

func base58Check(addr, class string, version byte) Outcome {
	if _, _, err := codec.CheckDecodeVersion(addr, hash160Len, version); err != nil {
		return invalid(failureReason(err))
	}
	return verified(class)
}

func validateSegWit(hrp, addr string, classify func(*codec.WitnessProgram) (string, bool)) Outcome {
	wp, err := codec.DecodeSegWit(hrp, addr)
	if err != nil {
		return invalid(failureReason(err))
	}
	class, ok := classify(wp)
	if !ok {
		return invalid("unsupported witness program")
	}
	return verified(class)
}

// failureReason maps codec errors to short, stable reasons.
func failureReason(err error) string {
	switch {
	case errors.Is(err, codec.ErrChecksumMismatch):
		return "invalid checksum"
	case errors.Is(err, codec.ErrInvalidVersion):
		return "invalid version byte"
	case errors.Is(err, codec.ErrInvalidAlphabet), errors.Is(err, codec.ErrInvalidCharacter):
		return "invalid characters"
	case errors.Is(err, codec.ErrInvalidLength):
		return "invalid length"
	case errors.Is(err, codec.ErrInvalidHRP):
		return "wrong network"
	case errors.Is(err, codec.ErrInvalidWitness):
		return "invalid witness program"
	default:
		return "invalid encoding"
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
