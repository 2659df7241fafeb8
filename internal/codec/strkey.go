package codec

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
)

const (
	// StrKeyLength is the encoded length of a Stellar account ID or seed.
	StrKeyLength = 56

	// VersionAccountID prefixes public keys ("G...").
	VersionAccountID byte = 6 << 3
	// VersionSeed prefixes secret seeds ("S...").
	VersionSeed byte = 18 << 3

	strKeyRawLength = 35 // version + 32-byte key + CRC16
)

var strKeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DecodeStrKey decodes a Stellar StrKey into its version byte and 32-byte key.
// The trailing two bytes are a little-endian CRC16-CCITT over version||key.
func DecodeStrKey(s string) (version byte, key []byte, err error) {
	if len(s) != StrKeyLength {
		return 0, nil, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(s))
	}
	raw, err := strKeyEncoding.DecodeString(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidAlphabet, err)
	}
	if len(raw) != strKeyRawLength {
		return 0, nil, ErrInvalidLength
	}

	body, sum := raw[:strKeyRawLength-2], raw[strKeyRawLength-2:]
	if binary.LittleEndian.Uint16(sum) != CRC16CCITT(body) {
		return 0, nil, ErrChecksumMismatch
	}
	return body[0], body[1:], nil
}
