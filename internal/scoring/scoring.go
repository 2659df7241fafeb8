// Package scoring turns a pattern match and its validation outcome into a
// 0-100 confidence score.
package scoring

import (
	"fmt"
	"math"
)

// Weights are the tunable constants of the scorer.
type Weights struct {
	StrictBase          float64 `koanf:"strict_base"`
	PermissiveBase      float64 `koanf:"permissive_base"`
	PrimaryPatternBonus float64 `koanf:"primary_pattern_bonus"`
	// LengthBonus is awarded in full for an address exactly at the midpoint
	// of the currency's length range, falling linearly to zero at the edges.
	LengthBonus float64 `koanf:"length_bonus"`
	BiasScale   float64 `koanf:"bias_scale"`
	// BaseCap bounds the score before validation adds its delta.
	BaseCap float64 `koanf:"base_cap"`
	// PermissiveFailurePenalty is subtracted when a permissive match fails
	// validation. Strict matches that fail are dropped instead.
	PermissiveFailurePenalty float64 `koanf:"permissive_failure_penalty"`
}

// DefaultWeights returns the standard weights.
func DefaultWeights() Weights {
	return Weights{
		StrictBase:               80,
		PermissiveBase:           60,
		PrimaryPatternBonus:      10,
		LengthBonus:              10,
		BiasScale:                100,
		BaseCap:                  95,
		PermissiveFailurePenalty: 30,
	}
}

// Validate checks that the weights keep scores inside [0, 100].
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"strict_base":                w.StrictBase,
		"permissive_base":            w.PermissiveBase,
		"primary_pattern_bonus":      w.PrimaryPatternBonus,
		"length_bonus":               w.LengthBonus,
		"bias_scale":                 w.BiasScale,
		"base_cap":                   w.BaseCap,
		"permissive_failure_penalty": w.PermissiveFailurePenalty,
	} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%s must be >= 0, got %v", name, v)
		}
	}
	if w.BaseCap > MaxScore {
		return fmt.Errorf("base_cap must be <= %v, got %v", MaxScore, w.BaseCap)
	}
	return nil
}

// MaxScore is the upper bound of every score.
const MaxScore = 100.0

// Match describes one pattern hit for scoring.
type Match struct {
	Symbol       string
	Address      string
	PatternIndex int
	Strict       bool
	MinLength    int
	MaxLength    int
	Bias         float64
}

// Rule adjusts a base score for one currency's address quirks.
type Rule func(addr string) float64

// Scorer computes confidence scores.
type Scorer struct {
	weights Weights
	rules   map[string]Rule
}

// New returns a Scorer with the built-in currency rules.
func New(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: w, rules: DefaultRules()}, nil
}

// Base scores a match before validation. The result lies in [0, BaseCap].
func (s *Scorer) Base(m Match) float64 {
	w := s.weights
	score := w.PermissiveBase
	if m.Strict {
		score = w.StrictBase
	}
	if m.PatternIndex == 0 {
		score += w.PrimaryPatternBonus
	}
	score += s.lengthScore(len(m.Address), m.MinLength, m.MaxLength)
	score += m.Bias * w.BiasScale

	if rule, ok := s.rules[m.Symbol]; ok {
		score += rule(m.Address)
	}
	return clamp(score, 0, w.BaseCap)
}

// lengthScore uses whole-number midpoints so a currency with a fixed length
// gets no bonus at all.
func (s *Scorer) lengthScore(n, lo, hi int) float64 {
	optimal := (lo + hi) / 2
	maxDiff := (hi - lo) / 2
	if maxDiff <= 0 {
		return 0
	}
	diff := math.Abs(float64(n - optimal))
	return math.Max(0, (1-diff/float64(maxDiff))*s.weights.LengthBonus)
}

// ApplyValidation folds a validator outcome into a base score.
//
// A valid address gains delta, capped at MaxScore. An invalid strict match
// is dropped (keep == false). An invalid permissive match keeps its place
// at score minus PermissiveFailurePenalty, clamped to [0, MaxScore]; there is
// no floor, so it always ends below the score it would have had if valid.
func (s *Scorer) ApplyValidation(score float64, strict, valid bool, delta float64) (result float64, keep bool) {
	switch {
	case valid:
		return clamp(score+delta, 0, MaxScore), true
	case strict:
		return 0, false
	default:
		return clamp(score-s.weights.PermissiveFailurePenalty, 0, MaxScore), true
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
