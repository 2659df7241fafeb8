package codec

import "errors"

var (
	// ErrInvalidAlphabet indicates a character outside the encoding alphabet.
	ErrInvalidAlphabet = errors.New("character outside alphabet")

	// ErrInvalidLength indicates an encoded or decoded length out of range.
	ErrInvalidLength = errors.New("invalid length")

	// ErrChecksumMismatch indicates the embedded checksum does not match.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidVersion indicates a version byte outside the allowed set.
	ErrInvalidVersion = errors.New("unexpected version byte")

	// ErrInvalidCharacter indicates a byte outside printable ASCII (33-126).
	ErrInvalidCharacter = errors.New("character outside printable ASCII")

	// ErrMixedCase indicates a Bech32 string mixing upper and lower case.
	ErrMixedCase = errors.New("mixed-case bech32 string")

	// ErrInvalidSeparator indicates a missing or misplaced Bech32 separator.
	ErrInvalidSeparator = errors.New("missing or misplaced separator")

	// ErrInvalidHRP indicates an unexpected human-readable part.
	ErrInvalidHRP = errors.New("unexpected human-readable part")

	// ErrInvalidBitGroup indicates a value wider than the source group size.
	ErrInvalidBitGroup = errors.New("value exceeds bit group width")

	// ErrInvalidPadding indicates leftover or non-zero padding bits.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidWitness indicates an invalid SegWit version or program.
	ErrInvalidWitness = errors.New("invalid witness program")
)
