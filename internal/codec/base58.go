package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	mrbase58 "github.com/mr-tron/base58"
)

const (
	// Base58Chars is the Bitcoin alphabet. It omits 0, O, I and l.
	Base58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// RippleChars is Ripple's reordering of the Base58 alphabet.
	RippleChars = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	// ChecksumLen is the number of trailing checksum bytes in Base58Check data.
	ChecksumLen = 4
)

var (
	// BitcoinAlphabet decodes the standard Base58 alphabet.
	BitcoinAlphabet = NewAlphabet(Base58Chars)

	// RippleAlphabet decodes Ripple account addresses.
	RippleAlphabet = NewAlphabet(RippleChars)
)

// Alphabet is a 58-character Base58 dialect.
type Alphabet struct {
	chars string
	enc   *mrbase58.Alphabet
}

// NewAlphabet builds a dialect from exactly 58 distinct characters.
// It panics on a malformed table.
func NewAlphabet(chars string) *Alphabet {
	if len(chars) != 58 {
		panic(fmt.Sprintf("codec: base58 alphabet must have 58 characters, got %d", len(chars)))
	}
	return &Alphabet{chars: chars, enc: mrbase58.NewAlphabet(chars)}
}

// Contains reports whether every byte of s belongs to the alphabet.
func (a *Alphabet) Contains(s string) bool {
	return containsOnly(s, a.chars)
}

// Decode decodes s. Leading zero-digits become leading zero bytes.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidLength
	}
	if !a.Contains(s) {
		return nil, ErrInvalidAlphabet
	}
	out, err := mrbase58.DecodeAlphabet(s, a.enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlphabet, err)
	}
	return out, nil
}

// IsBase58 reports whether s is non-empty and uses only the Bitcoin alphabet.
func IsBase58(s string) bool {
	return s != "" && containsOnly(s, Base58Chars)
}

// Base58Decode decodes s with the Bitcoin alphabet.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidLength
	}
	if !IsBase58(s) {
		return nil, ErrInvalidAlphabet
	}
	return base58.Decode(s), nil
}

// CheckDecode decodes a Base58Check string into its version byte and payload.
func CheckDecode(s string) (version byte, payload []byte, err error) {
	if !IsBase58(s) {
		return 0, nil, ErrInvalidAlphabet
	}
	payload, version, err = base58.CheckDecode(s)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return 0, nil, ErrChecksumMismatch
	case errors.Is(err, base58.ErrInvalidFormat):
		return 0, nil, ErrInvalidLength
	case err != nil:
		return 0, nil, err
	}
	return version, payload, nil
}

// CheckDecodeVersion decodes a Base58Check string and requires a payload of
// payloadLen bytes and a version byte from allowed.
// It panics if allowed is empty.
func CheckDecodeVersion(s string, payloadLen int, allowed ...byte) (byte, []byte, error) {
	if len(allowed) == 0 {
		panic("codec: empty version set")
	}
	version, payload, err := CheckDecode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(payload) != payloadLen {
		return 0, nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidLength, len(payload), payloadLen)
	}
	if bytes.IndexByte(allowed, version) < 0 {
		return 0, nil, fmt.Errorf("%w: 0x%02x", ErrInvalidVersion, version)
	}
	return version, payload, nil
}

// DoubleSHA256Checksum returns the first four bytes of SHA-256(SHA-256(b)).
func DoubleSHA256Checksum(b []byte) []byte {
	return chainhash.DoubleHashB(b)[:ChecksumLen]
}

func containsOnly(s, alphabet string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
