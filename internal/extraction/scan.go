package extraction

import (
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/registry"
)

// Candidate is one pattern hit in a cell. Start and End are byte offsets
// into the original cell text.
type Candidate struct {
	Address      string
	PatternIndex int
	Strict       bool
	Start        int
	End          int
}

// delimiterPadder surrounds structural delimiters with spaces so strict
// patterns can anchor inside dense JSON or CSV fragments.
var delimiterPadder = strings.NewReplacer(
	"=", " = ",
	":", " : ",
	",", " , ",
	";", " ; ",
	">", " > ",
	"<", " < ",
	`"`, ` " `,
	"'", " ' ",
	"[", " [ ",
	"]", " ] ",
	"{", " { ",
	"}", " } ",
	"|", " | ",
)

// Preprocess pads delimiters and collapses whitespace runs to one space.
func Preprocess(text string) string {
	return strings.Join(strings.Fields(delimiterPadder.Replace(text)), " ")
}

// Scan runs every pattern of c over text and its preprocessed form. Matches
// outside c's length bounds are dropped, and each distinct address string is
// reported once, attributed to the first pattern that found it. Offsets
// point at the address's first occurrence in text.
func Scan(text string, c *registry.CurrencyPattern) []Candidate {
	if text == "" {
		return nil
	}

	inputs := []string{text}
	if pre := Preprocess(text); pre != text {
		inputs = append(inputs, pre)
	}

	var out []Candidate
	seen := make(map[string]struct{})
	for _, in := range inputs {
		for idx, p := range c.Patterns {
			for _, loc := range p.Expr.FindAllStringIndex(in, -1) {
				addr := in[loc[0]:loc[1]]
				if !c.InBounds(len(addr)) {
					continue
				}
				if _, dup := seen[addr]; dup {
					continue
				}
				start := strings.Index(text, addr)
				if start < 0 {
					continue
				}
				seen[addr] = struct{}{}
				out = append(out, Candidate{
					Address:      addr,
					PatternIndex: idx,
					Strict:       p.Strict,
					Start:        start,
					End:          start + len(addr),
				})
			}
		}
	}
	return out
}
