package codec

import "bytes"

// rippleDecodedLen is version (1) + account ID (20) + checksum (4).
const rippleDecodedLen = 25

// RippleDecode decodes a classic Ripple address into its version byte and
// 20-byte account ID, verifying the trailing double SHA-256 checksum.
func RippleDecode(s string) (version byte, accountID []byte, err error) {
	raw, err := RippleAlphabet.Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(raw) != rippleDecodedLen {
		return 0, nil, ErrInvalidLength
	}
	body, sum := raw[:len(raw)-ChecksumLen], raw[len(raw)-ChecksumLen:]
	if !bytes.Equal(DoubleSHA256Checksum(body), sum) {
		return 0, nil, ErrChecksumMismatch
	}
	return body[0], body[1:], nil
}
