package registry

import (
	"regexp"

	"github.com/fyrsmithlabs/coinscan/internal/validator"
)

// Character classes shared by several currencies.
const (
	base58Class  = `[a-km-zA-HJ-NP-Z1-9]`
	base58Class2 = `[1-9A-HJ-NP-Za-km-z]`
)

func strict(expr string) Pattern {
	return Pattern{Expr: regexp.MustCompile(expr), Strict: true}
}

func permissive(expr string) Pattern {
	return Pattern{Expr: regexp.MustCompile(expr)}
}

func join(sets ...[]Pattern) []Pattern {
	var out []Pattern
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func ethereumPatterns() []Pattern {
	return []Pattern{
		strict(`\b0x[a-fA-F0-9]{40}\b`),
		strict(`(?i)\b0x[a-f0-9]{40}\b`),
		permissive(`(?i)0x[a-f0-9]{40}`),
	}
}

func tronPatterns() []Pattern {
	return []Pattern{
		strict(`\bT[a-zA-Z0-9]{33}\b`),
		permissive(`T[a-zA-Z0-9]{33}`),
	}
}

// builtins returns fresh copies of the built-in currencies. Order matters:
// when two currencies match the same string in a cell, the earlier one keeps
// it.
func builtins() []*CurrencyPattern {
	return []*CurrencyPattern{
		{
			Symbol: "BTC",
			Name:   "Bitcoin",
			Patterns: []Pattern{
				strict(`\b[13]` + base58Class + `{25,34}\b`),
				strict(`\b3` + base58Class + `{25,34}\b`),
				strict(`\bbc1[a-z0-9]{39,59}\b`),
				strict(`\bbc1p[a-z0-9]{58}\b`),
				permissive(`[13]` + base58Class + `{25,34}`),
				permissive(`bc1[a-z0-9]{39,59}`),
				permissive(`bc1p[a-z0-9]{58}`),
			},
			MinLength:   26,
			MaxLength:   62,
			HasChecksum: true,
			Bias:        0.1,
			Description: "Bitcoin addresses (P2PKH, P2SH, Bech32, Taproot)",
			Family:      validator.FamilyBitcoin,
		},
		{
			Symbol:      "ETH",
			Name:        "Ethereum",
			Patterns:    ethereumPatterns(),
			MinLength:   42,
			MaxLength:   42,
			HasChecksum: true,
			Bias:        0.15,
			Description: "Ethereum addresses (0x + 40 hex characters)",
			Family:      validator.FamilyEthereum,
		},
		{
			Symbol: "XMR",
			Name:   "Monero",
			Patterns: []Pattern{
				strict(`\b4[0-9AB][0-9a-zA-Z]{93}\b`),
				strict(`\b4[0-9AB][0-9a-zA-Z]{104}\b`),
				strict(`\b8[0-9a-zA-Z]{94}\b`),
				permissive(`4[0-9AB][0-9a-zA-Z]{93}`),
				permissive(`4[0-9AB][0-9a-zA-Z]{104}`),
				permissive(`8[0-9a-zA-Z]{94}`),
			},
			MinLength:   95,
			MaxLength:   106,
			HasChecksum: true,
			Bias:        0.2,
			Description: "Monero addresses (Standard, Integrated, Subaddress)",
			Family:      validator.FamilyMonero,
		},
		{
			Symbol:      "TRX",
			Name:        "Tron",
			Patterns:    tronPatterns(),
			MinLength:   34,
			MaxLength:   34,
			HasChecksum: true,
			Bias:        0.1,
			Description: "Tron addresses (Base58 starting with T)",
			Family:      validator.FamilyTron,
		},
		{
			Symbol:      "USDT",
			Name:        "Tether",
			Patterns:    join(ethereumPatterns(), tronPatterns()),
			MinLength:   34,
			MaxLength:   42,
			HasChecksum: true,
			Description: "Tether addresses (Ethereum or Tron based)",
			Family:      validator.FamilyTether,
		},
		{
			Symbol: "DOGE",
			Name:   "Dogecoin",
			Patterns: []Pattern{
				strict(`\bD[5-9A-HJ-NP-U]` + base58Class + `{32,33}\b`),
				strict(`\b[A9]` + base58Class + `{33}\b`),
				permissive(`D[5-9A-HJ-NP-U]` + base58Class + `{32,33}`),
				permissive(`[A9]` + base58Class + `{33}`),
			},
			MinLength:   34,
			MaxLength:   34,
			HasChecksum: true,
			Bias:        0.1,
			Description: "Dogecoin addresses",
			Family:      validator.FamilyDogecoin,
		},
		{
			Symbol: "XRP",
			Name:   "Ripple",
			Patterns: []Pattern{
				strict(`\br` + base58Class2 + `{24,34}\b`),
				permissive(`r` + base58Class2 + `{24,34}`),
			},
			MinLength:   25,
			MaxLength:   35,
			HasChecksum: true,
			Bias:        0.15,
			Description: "Ripple/XRP addresses",
			Family:      validator.FamilyRipple,
		},
		{
			Symbol: "ADA",
			Name:   "Cardano",
			Patterns: []Pattern{
				strict(`\baddr1[a-z0-9]{53,104}\b`),
				strict(`\bstake1[a-z0-9]{50,100}\b`),
				strict(`\bDdzFF` + base58Class2 + `{50,104}\b`),
				strict(`\bAe2` + base58Class2 + `{50,104}\b`),
				permissive(`addr1[a-z0-9]{53,104}`),
				permissive(`stake1[a-z0-9]{50,100}`),
				permissive(`DdzFF` + base58Class2 + `{50,104}`),
				permissive(`Ae2` + base58Class2 + `{50,104}`),
			},
			MinLength:   50,
			MaxLength:   110,
			HasChecksum: true,
			Bias:        0.2,
			Description: "Cardano addresses (Shelley and Byron eras)",
			Family:      validator.FamilyCardano,
		},
		{
			Symbol:      "SHIB",
			Name:        "Shiba Inu",
			Patterns:    ethereumPatterns(),
			MinLength:   42,
			MaxLength:   42,
			HasChecksum: true,
			Description: "Shiba Inu addresses (ERC-20 token on Ethereum)",
			Family:      validator.FamilyEthereum,
		},
		{
			Symbol: "LTC",
			Name:   "Litecoin",
			Patterns: []Pattern{
				strict(`\b[LM]` + base58Class + `{25,34}\b`),
				strict(`\bltc1[a-z0-9]{39,59}\b`),
				strict(`\b3` + base58Class + `{25,34}\b`),
				permissive(`[LM]` + base58Class + `{25,34}`),
				permissive(`ltc1[a-z0-9]{39,59}`),
				permissive(`3` + base58Class + `{25,34}`),
			},
			MinLength:   26,
			MaxLength:   62,
			HasChecksum: true,
			Bias:        0.1,
			Description: "Litecoin addresses (Legacy and SegWit)",
			Family:      validator.FamilyLitecoin,
		},
		{
			Symbol: "XLM",
			Name:   "Stellar",
			Patterns: []Pattern{
				strict(`\bG[A-Z2-7]{55}\b`),
				permissive(`G[A-Z2-7]{55}`),
			},
			MinLength:   56,
			MaxLength:   56,
			HasChecksum: true,
			Bias:        0.15,
			Description: "Stellar addresses (Base32 starting with G)",
			Family:      validator.FamilyStellar,
		},
		{
			Symbol: "SOL",
			Name:   "Solana",
			Patterns: []Pattern{
				strict(`\b` + base58Class2 + `{32,44}\b`),
				permissive(base58Class2 + `{32,44}`),
			},
			MinLength: 32,
			MaxLength: 44,
			// Solana keys carry no checksum; the validator still runs for its
			// run and decode checks but adds no confidence.
			HasChecksum: false,
			Bias:        0.05,
			Description: "Solana addresses (Base58 encoded)",
			Family:      validator.FamilySolana,
		},
	}
}

var builtinAliases = []struct {
	alias, symbol string
}{
	{"MONERO", "XMR"},
	{"RIPPLE", "XRP"},
	{"CARDANO", "ADA"},
	{"LITECOIN", "LTC"},
	{"DOGECOIN", "DOGE"},
	{"TETHER", "USDT"},
	{"SHIBA INU", "SHIB"},
	{"SOLANA", "SOL"},
	{"TRON", "TRX"},
	{"STELLAR", "XLM"},
}
