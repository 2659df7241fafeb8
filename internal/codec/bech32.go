package codec

import (
	"fmt"
	"strings"
)

// Encoding identifies the Bech32 checksum constant a string was built with.
type Encoding int

const (
	// EncodingBech32 is the BIP-173 constant (polymod == 1).
	EncodingBech32 Encoding = iota + 1
	// EncodingBech32m is the BIP-350 constant used for witness version >= 1.
	EncodingBech32m
)

func (e Encoding) String() string {
	switch e {
	case EncodingBech32:
		return "bech32"
	case EncodingBech32m:
		return "bech32m"
	default:
		return "unknown"
	}
}

const (
	bech32Charset   = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	bech32Const     = 1
	bech32mConst    = 0x2bc830a3
	bech32ChecksumN = 6

	// MaxBech32Length is the BIP-173 upper bound on a whole string.
	MaxBech32Length = 90
)

var bech32Generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// Polymod computes the BCH checksum over 5-bit values.
func Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < len(bech32Generator); i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= bech32Generator[i]
			}
		}
	}
	return chk
}

// HRPExpand spreads the human-readable part into checksum input values:
// high bits of each character, a zero, then low bits of each character.
func HRPExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// VerifyChecksum reports whether data (including its six checksum values)
// carries a valid BIP-173 checksum for hrp.
func VerifyChecksum(hrp string, data []byte) bool {
	return Polymod(append(HRPExpand(hrp), data...)) == bech32Const
}

func checksumEncoding(hrp string, data []byte) (Encoding, bool) {
	switch Polymod(append(HRPExpand(hrp), data...)) {
	case bech32Const:
		return EncodingBech32, true
	case bech32mConst:
		return EncodingBech32m, true
	default:
		return 0, false
	}
}

// Bech32Decode splits s into its lower-cased human-readable part and 5-bit
// data values with the checksum removed. Both BIP-173 and BIP-350 checksums
// are accepted; the returned Encoding says which one matched.
func Bech32Decode(s string) (hrp string, data []byte, enc Encoding, err error) {
	if len(s) > MaxBech32Length {
		return "", nil, 0, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(s))
	}
	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			return "", nil, 0, ErrInvalidCharacter
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		return "", nil, 0, ErrMixedCase
	}

	s = strings.ToLower(s)
	pos := strings.LastIndexByte(s, '1')
	if pos < 1 || pos+bech32ChecksumN+1 > len(s) {
		return "", nil, 0, ErrInvalidSeparator
	}

	hrp = s[:pos]
	values := make([]byte, 0, len(s)-pos-1)
	for i := pos + 1; i < len(s); i++ {
		idx := strings.IndexByte(bech32Charset, s[i])
		if idx < 0 {
			return "", nil, 0, ErrInvalidAlphabet
		}
		values = append(values, byte(idx))
	}

	enc, ok := checksumEncoding(hrp, values)
	if !ok {
		return "", nil, 0, ErrChecksumMismatch
	}
	return hrp, values[:len(values)-bech32ChecksumN], enc, nil
}

// ConvertBits regroups a sequence of fromBits-wide values into toBits-wide
// values. With pad set, a trailing partial group is zero-filled; without it,
// any leftover group must be shorter than fromBits and all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("%w: %d to %d bits", ErrInvalidBitGroup, fromBits, toBits)
	}

	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	out := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, ErrInvalidBitGroup
		}
		acc = (acc<<fromBits | uint32(v)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrInvalidPadding
	}
	return out, nil
}

// WitnessProgram is a decoded SegWit output script.
type WitnessProgram struct {
	Version  byte
	Program  []byte
	Encoding Encoding
}

// DecodeSegWit decodes a SegWit address and checks it against hrp.
//
// Version 0 programs must be 20 or 32 bytes and use the Bech32 checksum;
// versions 1 through 16 must use Bech32m. Programs are 2 to 40 bytes.
func DecodeSegWit(hrp, addr string) (*WitnessProgram, error) {
	gotHRP, data, enc, err := Bech32Decode(addr)
	if err != nil {
		return nil, err
	}
	if gotHRP != strings.ToLower(hrp) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrInvalidHRP, gotHRP, hrp)
	}
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidWitness)
	}

	version := data[0]
	if version > 16 {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidWitness, version)
	}
	program, err := ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(program) < 2 || len(program) > 40 {
		return nil, fmt.Errorf("%w: program is %d bytes", ErrInvalidWitness, len(program))
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return nil, fmt.Errorf("%w: version 0 program is %d bytes", ErrInvalidWitness, len(program))
	}
	if (version == 0 && enc != EncodingBech32) || (version != 0 && enc != EncodingBech32m) {
		return nil, fmt.Errorf("%w: version %d uses %s", ErrChecksumMismatch, version, enc)
	}

	return &WitnessProgram{Version: version, Program: program, Encoding: enc}, nil
}
