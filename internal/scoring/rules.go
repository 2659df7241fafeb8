package scoring

import "strings"

// solanaSystemAddresses are well-known program IDs.
var solanaSystemAddresses = map[string]bool{
	"11111111111111111111111111111112":            true,
	"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA": true,
}

// DefaultRules returns the per-symbol adjustments applied by Base.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"BTC":  bitcoinRule,
		"ETH":  ethereumRule,
		"SHIB": ethereumRule,
		"USDT": tetherRule,
		"XMR":  moneroRule,
		"SOL":  solanaRule,
	}
}

func bitcoinRule(addr string) float64 {
	var adj float64
	// Bech32 addresses are emitted lower-case.
	if strings.HasPrefix(strings.ToLower(addr), "bc1") && addr != strings.ToLower(addr) {
		adj -= 20
	}
	// 34-character "3" addresses are also Litecoin's legacy P2SH shape.
	if strings.HasPrefix(addr, "3") && len(addr) == 34 {
		adj -= 5
	}
	return adj
}

func ethereumRule(addr string) float64 {
	var adj float64
	if !strings.HasPrefix(strings.ToLower(addr), "0x") {
		adj -= 30
	}
	if len(addr) < 3 || !isHex(addr[2:]) {
		adj -= 50
	}
	return adj
}

// tetherRule applies the Ethereum rule to ERC-20 Tether only; TRC-20 Tether
// addresses are Base58.
func tetherRule(addr string) float64 {
	if strings.HasPrefix(addr, "T") {
		return 0
	}
	return ethereumRule(addr)
}

func moneroRule(addr string) float64 {
	if len(addr) > 1 && addr[0] == '4' && !strings.ContainsRune("0123456789AB", rune(addr[1])) {
		return -20
	}
	return 0
}

func solanaRule(addr string) float64 {
	if solanaSystemAddresses[addr] {
		return 5
	}
	return 0
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
