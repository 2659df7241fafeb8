package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis        = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	stellarAccount = "GARS5VXZ7K7RJY53KU4SWGGP4PIP5PEU2IGMMMT4HCQ5A5OW5IIYYCH5"
)

func newFilter(t *testing.T) *Filter {
	t.Helper()
	f, err := New(nil)
	require.NoError(t, err)
	return f
}

func TestCheck(t *testing.T) {
	f := newFilter(t)

	tests := []struct {
		name       string
		symbol     string
		addr       string
		before     string
		after      string
		wantReason Reason
		wantDetail string
	}{
		{name: "clean address", symbol: "BTC", addr: genesis, before: "wallet=", after: ";bal=0"},
		{name: "no context", symbol: "BTC", addr: genesis},
		{name: "denylisted word", symbol: "SOL", addr: "ab3RecipientXyz9kLmN", wantReason: ReasonWord, wantDetail: "recipient"},
		{name: "short word ignored", symbol: "SOL", addr: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"},
		{name: "underscore", symbol: "SOL", addr: "abcdefgh_jkmnpqrstu", wantReason: ReasonIndicator, wantDetail: "_"},
		{name: "camel case hump", symbol: "XRP", addr: "r9aHbcdefgFromXyz12345", wantReason: ReasonIndicator, wantDetail: "From"},
		{name: "leading capital is not a hump", symbol: "SOL", addr: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		{name: "capital after digit is not a hump", symbol: "BTC", addr: "1Lb9To3Fkq8mZxR2wPvYcN7dHsJtG4uEaQ"},
		{name: "low diversity", symbol: "BTC", addr: "1111111111222222222233333333334444", wantReason: ReasonDiversity},
		{name: "ripple needs more diversity", symbol: "XRP", addr: "rabcdefghjkrabcdefghjkra", wantReason: ReasonDiversity},
		{name: "ripple override is per symbol", symbol: "SOL", addr: "rabcdefghjkrabcdefghjkra"},
		{name: "file extension nearby", symbol: "BTC", addr: genesis, after: ".csv", wantReason: ReasonContext, wantDetail: ".csv"},
		{name: "version nearby", symbol: "BTC", addr: genesis, before: "v2 ", wantReason: ReasonContext, wantDetail: "v2"},
		{name: "context is case-insensitive", symbol: "BTC", addr: genesis, before: "TOKEN ", wantReason: ReasonContext, wantDetail: "token"},
		{name: "glued before", symbol: "BTC", addr: genesis, before: "abc", wantReason: ReasonBoundary, wantDetail: "c"},
		{name: "glued after", symbol: "BTC", addr: genesis, after: "9 ", wantReason: ReasonBoundary, wantDetail: "9"},
		{name: "delimiter before", symbol: "BTC", addr: genesis, before: "btc:"},
		{name: "stellar skips content checks", symbol: "XLM", addr: stellarAccount, before: "user "},
		{name: "stellar memo", symbol: "XLM", addr: stellarAccount, after: ":::ucl:::42"},
		{name: "stellar still needs boundary", symbol: "XLM", addr: stellarAccount, after: "ABC", wantReason: ReasonBoundary, wantDetail: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := f.Check(tt.symbol, tt.addr, tt.before, tt.after)
			assert.Equal(t, tt.wantReason != ReasonNone, v.Rejected)
			assert.Equal(t, tt.wantReason, v.Reason)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, v.Detail)
			}
		})
	}
}

func TestCheck_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	f, err := New(cfg)
	require.NoError(t, err)

	assert.False(t, f.Enabled())
	assert.False(t, f.Check("BTC", "a_b", "x", "y").Rejected)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero word length", func(c *Config) { c.MinWordLength = 0 }, true},
		{"negative diversity", func(c *Config) { c.MinDistinctChars = -1 }, true},
		{"negative window", func(c *Config) { c.ContextWindow = -1 }, true},
		{"negative override", func(c *Config) { c.DistinctCharOverrides["SOL"] = -2 }, true},
		{"empty indicator", func(c *Config) { c.Indicators = append(c.Indicators, "") }, true},
		{"disabled skips checks", func(c *Config) { c.Enabled = false; c.MinWordLength = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateNormalizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Words = []string{"Session", ""}
	cfg.ContextIndicators = []string{".TXT"}
	cfg.DistinctCharOverrides = map[string]int{"xrp": 14}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"session"}, cfg.Words)
	assert.Equal(t, []string{".txt"}, cfg.ContextIndicators)
	assert.Equal(t, map[string]int{"XRP": 14}, cfg.DistinctCharOverrides)
}

func TestContext(t *testing.T) {
	text := "wallet=" + genesis + ";bal=0"
	start := len("wallet=")

	before, after := Context(text, start, start+len(genesis), 10)
	assert.Equal(t, "wallet=", before)
	assert.Equal(t, ";bal=0", after)

	before, after = Context(text, start, start+len(genesis), 3)
	assert.Equal(t, "et=", before)
	assert.Equal(t, ";ba", after)
}

func TestContext_Runes(t *testing.T) {
	text := "адрес:" + genesis + "—конец"
	start := len("адрес:")

	before, after := Context(text, start, start+len(genesis), 3)
	assert.Equal(t, "ес:", before)
	assert.Equal(t, "—ко", after)
}

func TestContext_Clamps(t *testing.T) {
	before, after := Context("abc", -5, 99, 10)
	assert.Equal(t, "", before)
	assert.Equal(t, "", after)
}
