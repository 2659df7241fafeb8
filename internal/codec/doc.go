// Package codec implements the binary-to-text encodings and checksums used by
// cryptocurrency addresses.
//
// The package supports:
//   - Base58 and Base58Check (Bitcoin alphabet) with version byte sets
//   - Base58 dialects such as Ripple's reordered alphabet
//   - Bech32 (BIP-173) and Bech32m (BIP-350) with SegWit program decoding
//   - EIP-55 mixed-case checksums over Keccak-256
//   - Stellar StrKey (Base32 + CRC16-CCITT)
//
// All decoders fail closed. Malformed input produces one of the sentinel
// errors below and never a panic; panics are reserved for programmer misuse
// such as constructing an alphabet of the wrong size.
package codec
