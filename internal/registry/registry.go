// Package registry holds the currency patterns the extraction engine scans
// for.
//
// A Registry maps a currency symbol to its CurrencyPattern: an ordered set of
// regular expressions, each tagged strict (token-bounded) or permissive, plus
// length bounds, checksum availability, a confidence bias and the validator
// family. Aliases ("RIPPLE" for "XRP") resolve to their canonical entry but
// are never scanned on their own.
//
// The registry is built once at startup. Registration is only legal until the
// registry is sealed, which the extraction engine does before the first cell
// is scanned.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/fyrsmithlabs/coinscan/internal/validator"
)

// Errors for registry operations.
var (
	ErrDuplicateSymbol = errors.New("symbol already registered")
	ErrUnknownSymbol   = errors.New("unknown symbol")
	ErrInvalidSymbol   = errors.New("invalid symbol: must be 1-32 letters, digits, spaces, hyphens or underscores")
	ErrInvalidName     = errors.New("invalid currency name")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrRegistrySealed  = errors.New("registry sealed: registration must happen before extraction")
	ErrInvalidTOML     = errors.New("invalid custom currency file")
)

// symbolPattern allows inner spaces so multi-word aliases like "SHIBA INU"
// can be registered.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9_-]([A-Za-z0-9 _-]{0,30}[A-Za-z0-9_-])?$`)

// Pattern is one compiled expression of a currency.
type Pattern struct {
	Expr *regexp.Regexp
	// Strict patterns only match at token boundaries.
	Strict bool
}

// CurrencyPattern describes one currency. It is immutable once registered.
type CurrencyPattern struct {
	Symbol      string
	Name        string
	Patterns    []Pattern
	MinLength   int
	MaxLength   int
	HasChecksum bool
	// Bias is added to the base confidence after scaling, in [-1, 1].
	Bias        float64
	Description string
	Family      validator.Family
	Custom      bool
}

// InBounds reports whether n lies within the currency's length bounds.
func (c *CurrencyPattern) InBounds(n int) bool {
	return n >= c.MinLength && n <= c.MaxLength
}

func (c *CurrencyPattern) validate() error {
	if err := ValidateSymbol(c.Symbol); err != nil {
		return err
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: %s has no name", ErrInvalidName, c.Symbol)
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("%w: %s has no patterns", ErrInvalidPattern, c.Symbol)
	}
	for i, p := range c.Patterns {
		if p.Expr == nil {
			return fmt.Errorf("%w: %s pattern %d is nil", ErrInvalidPattern, c.Symbol, i)
		}
	}
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return fmt.Errorf("%w: %s length bounds [%d, %d]", ErrInvalidPattern, c.Symbol, c.MinLength, c.MaxLength)
	}
	if c.Bias < -1 || c.Bias > 1 {
		return fmt.Errorf("%w: %s bias %.2f outside [-1, 1]", ErrInvalidPattern, c.Symbol, c.Bias)
	}
	return nil
}

// ValidateSymbol checks that a symbol is usable as a registry key.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return nil
}

// Registry is safe for concurrent reads. Writes are rejected once sealed.
type Registry struct {
	mu         sync.RWMutex
	order      []string // canonical keys in registration order
	currencies map[string]*CurrencyPattern
	aliases    map[string]string // alias key -> canonical key
	sealed     bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		currencies: make(map[string]*CurrencyPattern),
		aliases:    make(map[string]string),
	}
}

// NewDefault returns a registry holding the built-in currencies and aliases.
func NewDefault() *Registry {
	r := New()
	for _, c := range builtins() {
		if err := r.Register(c); err != nil {
			panic(fmt.Sprintf("registry: built-in %s: %v", c.Symbol, err))
		}
	}
	for _, a := range builtinAliases {
		if err := r.RegisterAlias(a.alias, a.symbol); err != nil {
			panic(fmt.Sprintf("registry: built-in alias %s: %v", a.alias, err))
		}
	}
	return r
}

func key(symbol string) string {
	return strings.ToUpper(symbol)
}

// Register adds a currency. The symbol must not already be registered,
// either as a currency or as an alias.
func (r *Registry) Register(c *CurrencyPattern) error {
	return r.register(c, false)
}

// ReplaceAlias registers c under a symbol that is currently an alias. The
// alias stops resolving to its old target.
func (r *Registry) ReplaceAlias(c *CurrencyPattern) error {
	return r.register(c, true)
}

func (r *Registry) register(c *CurrencyPattern, replaceAlias bool) error {
	if c == nil {
		return fmt.Errorf("%w: nil currency", ErrInvalidPattern)
	}
	if err := c.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}
	k := key(c.Symbol)
	if _, ok := r.currencies[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, c.Symbol)
	}
	_, isAlias := r.aliases[k]
	switch {
	case isAlias && !replaceAlias:
		return fmt.Errorf("%w: %s is an alias of %s", ErrDuplicateSymbol, c.Symbol, r.currencies[r.aliases[k]].Symbol)
	case !isAlias && replaceAlias:
		return fmt.Errorf("%w: %s is not an alias", ErrUnknownSymbol, c.Symbol)
	}
	delete(r.aliases, k)

	r.currencies[k] = c
	r.order = append(r.order, k)
	return nil
}

// RegisterAlias makes alias resolve to the canonical entry of symbol.
func (r *Registry) RegisterAlias(alias, symbol string) error {
	if err := ValidateSymbol(alias); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}
	a := key(alias)
	if _, ok := r.currencies[a]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, alias)
	}
	if _, ok := r.aliases[a]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, alias)
	}

	target, ok := r.canonical(key(symbol))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	r.aliases[a] = target
	return nil
}

// canonical resolves k through at most one alias hop. Callers hold r.mu.
func (r *Registry) canonical(k string) (string, bool) {
	if _, ok := r.currencies[k]; ok {
		return k, true
	}
	if target, ok := r.aliases[k]; ok {
		return target, true
	}
	return "", false
}

// Resolve returns the currency registered under symbol or one of its aliases.
// Lookup is case-insensitive.
func (r *Registry) Resolve(symbol string) (*CurrencyPattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.canonical(key(symbol))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return r.currencies[k], nil
}

// All returns the canonical currencies in registration order. Aliases are
// not included.
func (r *Registry) All() []*CurrencyPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*CurrencyPattern, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.currencies[k])
	}
	return out
}

// Aliases returns a copy of the alias table, keyed by upper-cased alias.
func (r *Registry) Aliases() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.aliases))
	for a, k := range r.aliases {
		out[a] = r.currencies[k].Symbol
	}
	return out
}

// Len returns the number of canonical currencies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Seal rejects all further registration. It is idempotent.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
