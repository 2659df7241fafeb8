// Package filter rejects pattern matches that are probably not addresses.
//
// Dense exports are full of identifiers and prose that happen to fit an
// address alphabet. The filter looks at the candidate itself (dictionary
// words, identifier fragments, character diversity) and at a short window
// of surrounding text (file names, version strings, glued alphanumerics).
package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reason names the check that rejected a candidate.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonWord      Reason = "word"
	ReasonIndicator Reason = "indicator"
	ReasonDiversity Reason = "low_diversity"
	ReasonContext   Reason = "context"
	ReasonBoundary  Reason = "boundary"
)

// Verdict is the outcome of Check.
type Verdict struct {
	Rejected bool
	Reason   Reason
	// Detail is the word or indicator that triggered the rejection.
	Detail string
}

func reject(r Reason, detail string) Verdict {
	return Verdict{Rejected: true, Reason: r, Detail: detail}
}

// Filter applies the heuristics in Config. It is safe for concurrent use.
type Filter struct {
	cfg *Config
}

// New validates cfg and returns a Filter. A nil cfg uses DefaultConfig.
func New(cfg *Config) (*Filter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Filter{cfg: cfg}, nil
}

// Enabled reports whether the filter rejects anything.
func (f *Filter) Enabled() bool {
	return f.cfg.Enabled
}

// Window returns the configured context width.
func (f *Filter) Window() int {
	return f.cfg.ContextWindow
}

// Check decides whether addr, found between before and after, is a false
// positive for symbol.
//
// Stellar account IDs (G + 56 characters) skip the content checks; their
// Base32 alphabet is all capitals and routinely spells words.
func (f *Filter) Check(symbol, addr, before, after string) Verdict {
	if !f.cfg.Enabled || addr == "" {
		return Verdict{}
	}

	stellar := isStellarAccount(addr)
	if !stellar {
		if v := f.checkContent(symbol, addr); v.Rejected {
			return v
		}
		if v := f.checkContext(before, after); v.Rejected {
			return v
		}
	}
	return f.checkBoundary(addr, before, after, stellar)
}

func (f *Filter) checkContent(symbol, addr string) Verdict {
	lower := strings.ToLower(addr)
	for _, w := range f.cfg.Words {
		if len(w) >= f.cfg.MinWordLength && strings.Contains(lower, w) {
			return reject(ReasonWord, w)
		}
	}

	for _, ind := range f.cfg.Indicators {
		if containsIndicator(addr, ind) {
			return reject(ReasonIndicator, ind)
		}
	}

	if distinctChars(addr) < f.minDistinct(symbol) {
		return reject(ReasonDiversity, "")
	}
	return Verdict{}
}

func (f *Filter) checkContext(before, after string) Verdict {
	if before == "" && after == "" {
		return Verdict{}
	}
	combined := strings.ToLower(before + after)
	for _, ind := range f.cfg.ContextIndicators {
		if strings.Contains(combined, ind) {
			return reject(ReasonContext, ind)
		}
	}
	return Verdict{}
}

// checkBoundary rejects a candidate glued to alphanumerics on either side;
// it is then most likely a slice of a longer token.
func (f *Filter) checkBoundary(addr, before, after string, stellar bool) Verdict {
	first, _ := utf8.DecodeRuneInString(addr)
	last, _ := utf8.DecodeLastRuneInString(addr)

	if prev, _ := utf8.DecodeLastRuneInString(before); before != "" && isAlnum(prev) && isAlnum(first) {
		return reject(ReasonBoundary, string(prev))
	}
	if stellar && f.cfg.MemoSeparator != "" && strings.HasPrefix(after, f.cfg.MemoSeparator) {
		return Verdict{}
	}
	if next, _ := utf8.DecodeRuneInString(after); after != "" && isAlnum(next) && isAlnum(last) {
		return reject(ReasonBoundary, string(next))
	}
	return Verdict{}
}

func (f *Filter) minDistinct(symbol string) int {
	if n, ok := f.cfg.DistinctCharOverrides[strings.ToUpper(symbol)]; ok {
		return n
	}
	return f.cfg.MinDistinctChars
}

// containsIndicator reports whether ind occurs in s. Indicators that start
// with an upper-case letter only count after a lower-case letter.
func containsIndicator(s, ind string) bool {
	r, _ := utf8.DecodeRuneInString(ind)
	if !unicode.IsUpper(r) {
		return strings.Contains(s, ind)
	}
	for off := 0; ; {
		i := strings.Index(s[off:], ind)
		if i < 0 {
			return false
		}
		at := off + i
		if prev, _ := utf8.DecodeLastRuneInString(s[:at]); at > 0 && unicode.IsLower(prev) {
			return true
		}
		off = at + 1
	}
}

func distinctChars(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isStellarAccount(addr string) bool {
	return len(addr) == 56 && addr[0] == 'G'
}

// Context returns up to window runes of text on each side of the byte span
// [start, end). Offsets are clamped to the text.
func Context(text string, start, end, window int) (before, after string) {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))

	b := start
	for n := 0; n < window && b > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:b])
		b -= size
	}
	a := end
	for n := 0; n < window && a < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[a:])
		a += size
	}
	return text[b:start], text[end:a]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
