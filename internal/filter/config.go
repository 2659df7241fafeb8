package filter

import (
	"fmt"
	"strings"
)

// Config configures the false-positive filter.
type Config struct {
	// Enabled controls whether filtering is active (default: true)
	Enabled bool `koanf:"enabled"`

	// Words are natural-language fragments that disqualify a candidate
	// when found anywhere inside it, case-insensitively.
	Words []string `koanf:"words"`

	// MinWordLength skips denylisted words shorter than this; short words
	// occur by chance in random Base58 text.
	MinWordLength int `koanf:"min_word_length"`

	// Indicators are identifier fragments. "_" matches anywhere; a
	// capitalized indicator only matches as a camel-case hump, directly
	// after a lowercase letter.
	Indicators []string `koanf:"indicators"`

	// ContextIndicators disqualify a candidate when found in the
	// surrounding context window, case-insensitively.
	ContextIndicators []string `koanf:"context_indicators"`

	// MinDistinctChars is the lowest number of distinct characters an
	// address may have (default: 10).
	MinDistinctChars int `koanf:"min_distinct_chars"`

	// DistinctCharOverrides raises or lowers MinDistinctChars per symbol.
	DistinctCharOverrides map[string]int `koanf:"distinct_char_overrides"`

	// ContextWindow is the number of characters examined on each side.
	ContextWindow int `koanf:"context_window"`

	// MemoSeparator introduces a Stellar memo glued to an account ID.
	MemoSeparator string `koanf:"memo_separator"`
}

// DefaultConfig returns the standard filter settings.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Words: []string{
			"fingerprint", "session", "browser", "different", "from", "last",
			"count", "week", "day", "recipient", "bank", "account", "amount",
			"balance", "transaction", "payment", "transfer", "wallet", "address",
		},
		MinWordLength:     5,
		Indicators:        []string{"_", "From", "To", "Count", "Amount", "Balance"},
		ContextIndicators: []string{".txt", ".csv", ".json", ".xml", "v1", "v2", "version", "user", "id", "key", "token"},
		MinDistinctChars:  10,
		DistinctCharOverrides: map[string]int{
			"XRP": 12,
		},
		ContextWindow: 10,
		MemoSeparator: ":::ucl:::",
	}
}

// Validate checks the configuration and normalizes case-insensitive lists.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be >= 1, got %d", c.MinWordLength)
	}
	if c.MinDistinctChars < 0 {
		return fmt.Errorf("min_distinct_chars must be >= 0, got %d", c.MinDistinctChars)
	}
	if c.ContextWindow < 0 {
		return fmt.Errorf("context_window must be >= 0, got %d", c.ContextWindow)
	}
	for symbol, n := range c.DistinctCharOverrides {
		if n < 0 {
			return fmt.Errorf("distinct_char_overrides %s: must be >= 0, got %d", symbol, n)
		}
	}
	for i, ind := range c.Indicators {
		if ind == "" {
			return fmt.Errorf("indicator %d is empty", i)
		}
	}

	c.Words = lowerAll(c.Words)
	c.ContextIndicators = lowerAll(c.ContextIndicators)

	overrides := make(map[string]int, len(c.DistinctCharOverrides))
	for symbol, n := range c.DistinctCharOverrides {
		overrides[strings.ToUpper(symbol)] = n
	}
	c.DistinctCharOverrides = overrides
	return nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
