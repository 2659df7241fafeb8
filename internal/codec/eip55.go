package codec

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumStatus is the result of checking an EIP-55 address.
type ChecksumStatus int

const (
	// ChecksumInvalid means the address is malformed or its mixed case is wrong.
	ChecksumInvalid ChecksumStatus = iota
	// ChecksumAbsent means a well-formed all-lower or all-upper address.
	ChecksumAbsent
	// ChecksumVerified means the mixed case matches the Keccak-256 digest.
	ChecksumVerified
)

func (s ChecksumStatus) String() string {
	switch s {
	case ChecksumAbsent:
		return "absent"
	case ChecksumVerified:
		return "verified"
	default:
		return "invalid"
	}
}

const hexAddressLen = 40

// IsHexAddress reports whether s is "0x" (or "0X") followed by 40 hex digits.
func IsHexAddress(s string) bool {
	if len(s) != hexAddressLen+2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// EIP55Checksum returns the canonical mixed-case form of a hex address.
func EIP55Checksum(addr string) (string, error) {
	if !IsHexAddress(addr) {
		return "", ErrInvalidAlphabet
	}
	lower := strings.ToLower(addr[2:])
	digest := keccak256([]byte(lower))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && hashNibble(digest, i) >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out), nil
}

// CheckEIP55 classifies addr. A single mismatched letter invalidates the
// whole address; single-case addresses carry no checksum.
func CheckEIP55(addr string) ChecksumStatus {
	if !IsHexAddress(addr) {
		return ChecksumInvalid
	}
	body := addr[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return ChecksumAbsent
	}

	digest := keccak256([]byte(strings.ToLower(body)))
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= 'a' && c <= 'f':
			if hashNibble(digest, i) >= 8 {
				return ChecksumInvalid
			}
		case c >= 'A' && c <= 'F':
			if hashNibble(digest, i) < 8 {
				return ChecksumInvalid
			}
		}
	}
	return ChecksumVerified
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

func hashNibble(digest []byte, i int) byte {
	b := digest[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}
