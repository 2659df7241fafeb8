package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestBase58Decode(t *testing.T) {
	t.Run("genesis address", func(t *testing.T) {
		raw, err := Base58Decode(genesisAddress)
		require.NoError(t, err)
		assert.Len(t, raw, 25)
		assert.Equal(t, byte(0x00), raw[0])
	})

	t.Run("rejects excluded characters", func(t *testing.T) {
		for _, s := range []string{"0abc", "Oabc", "Iabc", "labc", "ab c"} {
			_, err := Base58Decode(s)
			assert.ErrorIs(t, err, ErrInvalidAlphabet, s)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Base58Decode("")
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestCheckDecodeVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		allowed     []byte
		wantVersion byte
		wantPayload string
		wantErr     error
	}{
		{
			name:        "bitcoin p2pkh",
			input:       genesisAddress,
			allowed:     []byte{0x00},
			wantVersion: 0x00,
			wantPayload: "62e907b15cbf27d5425399ebf6f0fb50ebb88f18",
		},
		{
			name:        "bitcoin p2sh",
			input:       "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
			allowed:     []byte{0x05},
			wantVersion: 0x05,
		},
		{
			name:        "litecoin p2pkh",
			input:       "LMSZBzxZtJsuvJHJM12pPXJeu595thtQYV",
			allowed:     []byte{0x30},
			wantVersion: 0x30,
			wantPayload: "185266251c345ea98b087c04d1a35986fba6849b",
		},
		{
			name:        "tron mainnet",
			input:       "TCBovr2TxNkopfemm8hEdew2beX7vHGK5i",
			allowed:     []byte{0x41},
			wantVersion: 0x41,
			wantPayload: "185266251c345ea98b087c04d1a35986fba6849b",
		},
		{
			name:        "one of several versions",
			input:       "9tesbBD5Rcq8f2f3i6NXnGECXxSZNypwjU",
			allowed:     []byte{0x1e, 0x16},
			wantVersion: 0x16,
		},
		{
			name:    "corrupted checksum",
			input:   "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb",
			allowed: []byte{0x00},
			wantErr: ErrChecksumMismatch,
		},
		{
			name:    "version outside set",
			input:   genesisAddress,
			allowed: []byte{0x05},
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "too short",
			input:   "1111",
			allowed: []byte{0x00},
			wantErr: ErrInvalidLength,
		},
		{
			name:    "bad alphabet",
			input:   "0A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			allowed: []byte{0x00},
			wantErr: ErrInvalidAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, payload, err := CheckDecodeVersion(tt.input, 20, tt.allowed...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, version)
			assert.Len(t, payload, 20)
			if tt.wantPayload != "" {
				assert.Equal(t, tt.wantPayload, hex.EncodeToString(payload))
			}
		})
	}
}

func TestCheckDecodeVersion_PanicsOnEmptySet(t *testing.T) {
	assert.Panics(t, func() {
		_, _, _ = CheckDecodeVersion(genesisAddress, 20)
	})
}

func TestNewAlphabet_PanicsOnBadTable(t *testing.T) {
	assert.Panics(t, func() { NewAlphabet("") })
	assert.Panics(t, func() { NewAlphabet("abc") })
}

func TestAlphabet_Decode(t *testing.T) {
	raw, err := BitcoinAlphabet.Decode("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	_, err = BitcoinAlphabet.Decode("0WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	assert.ErrorIs(t, err, ErrInvalidAlphabet)

	assert.True(t, RippleAlphabet.Contains("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))
	assert.False(t, RippleAlphabet.Contains("r0b9"))
}

func TestRippleDecode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantID    string
		wantErr   error
	}{
		{
			name:   "known account",
			input:  "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			wantID: "b5f762798a53d543a014caf8b297cff8f2f937e8",
		},
		{
			name:   "generated account",
			input:  "rsDbv8ejoediCVb9w1sXfWNtgimogidutA",
			wantID: "185266251c345ea98b087c04d1a35986fba6849b",
		},
		{name: "corrupted checksum", input: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTj", wantErr: ErrChecksumMismatch},
		{name: "bitcoin alphabet only", input: "r0b9CJAWyB4rj91VRWn96DkukG4bwdtyTh", wantErr: ErrInvalidAlphabet},
		{name: "too short", input: "rHb9CJ", wantErr: ErrInvalidLength},
		{name: "empty", input: "", wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, id, err := RippleDecode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, byte(0), version)
			assert.Equal(t, tt.wantID, hex.EncodeToString(id))
		})
	}
}

func TestDoubleSHA256Checksum(t *testing.T) {
	raw, err := Base58Decode(genesisAddress)
	require.NoError(t, err)
	assert.Equal(t, raw[21:], DoubleSHA256Checksum(raw[:21]))
}
