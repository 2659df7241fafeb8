package registry

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fyrsmithlabs/coinscan/internal/validator"
)

// Length bounds applied to every user-defined currency.
const (
	CustomMinLength = 1
	CustomMaxLength = 200
)

// maxCustomFileSize bounds custom currency files.
const maxCustomFileSize = 1024 * 1024

// CustomCurrency is a user-supplied name/symbol/pattern triple.
type CustomCurrency struct {
	Name    string `koanf:"name" toml:"name"`
	Symbol  string `koanf:"symbol" toml:"symbol"`
	Pattern string `koanf:"pattern" toml:"pattern"`
	// ReplaceAlias allows Symbol to take over a built-in alias such as
	// "RIPPLE". Without it an alias collision is an error.
	ReplaceAlias bool `koanf:"replace_alias" toml:"replace_alias"`
}

// customFile is the TOML layout read by LoadCustomFile:
//
//	[[currency]]
//	name = "Example Coin"
//	symbol = "EXC"
//	pattern = "EXC[0-9a-f]{32}"
//	replace_alias = false
type customFile struct {
	Currency []CustomCurrency `toml:"currency"`
}

// Compile turns the triple into a CurrencyPattern: a word-bounded strict
// pattern followed by the bare permissive one, no checksum and no bias.
func (c CustomCurrency) Compile() (*CurrencyPattern, error) {
	if err := ValidateSymbol(c.Symbol); err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("%w: %s has no name", ErrInvalidName, c.Symbol)
	}
	if c.Pattern == "" {
		return nil, fmt.Errorf("%w: %s: empty pattern", ErrInvalidPattern, c.Symbol)
	}

	bare, err := regexp.Compile(c.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, c.Symbol, err)
	}
	if bare.MatchString("") {
		return nil, fmt.Errorf("%w: %s: pattern matches the empty string", ErrInvalidPattern, c.Symbol)
	}
	bounded, err := regexp.Compile(`\b(?:` + c.Pattern + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, c.Symbol, err)
	}

	return &CurrencyPattern{
		Symbol:      c.Symbol,
		Name:        c.Name,
		Patterns:    []Pattern{{Expr: bounded, Strict: true}, {Expr: bare}},
		MinLength:   CustomMinLength,
		MaxLength:   CustomMaxLength,
		Description: "Custom: " + c.Name,
		Family:      validator.FamilyGeneric,
		Custom:      true,
	}, nil
}

// RegisterCustom compiles and registers each custom currency in order,
// stopping at the first failure.
func (r *Registry) RegisterCustom(customs ...CustomCurrency) error {
	for _, c := range customs {
		cp, err := c.Compile()
		if err != nil {
			return err
		}
		register := r.Register
		if c.ReplaceAlias {
			register = r.ReplaceAlias
		}
		if err := register(cp); err != nil {
			return err
		}
	}
	return nil
}

// LoadCustomFile reads custom currencies from a TOML file. Unknown keys are
// rejected so typos surface as configuration errors.
func LoadCustomFile(path string) ([]CustomCurrency, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat custom currency file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidTOML, path)
	}
	if info.Size() > maxCustomFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidTOML, path, maxCustomFileSize)
	}

	var f customFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidTOML, undecoded)
	}
	return f.Currency, nil
}
