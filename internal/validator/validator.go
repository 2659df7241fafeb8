// Package validator checks candidate addresses against the rules of their
// currency family.
//
// Validators never fail with an error. Malformed input yields an invalid
// Outcome, and a panic inside a family's rules is recovered and reported
// the same way so one pathological cell cannot stop a batch.
package validator

import (
	"context"
	"fmt"

	"github.com/fyrsmithlabs/coinscan/internal/logging"
	"go.uber.org/zap"
)

type familyFunc func(addr string) Outcome

// rules is indexed by Family; every family must have an entry.
var rules = [familyCount]familyFunc{
	FamilyGeneric:  validateGeneric,
	FamilyBitcoin:  validateBitcoin,
	FamilyLitecoin: validateLitecoin,
	FamilyDogecoin: validateDogecoin,
	FamilyTron:     validateTron,
	FamilyEthereum: validateEthereum,
	FamilyTether:   validateTether,
	FamilyRipple:   validateRipple,
	FamilyStellar:  validateStellar,
	FamilyMonero:   validateMonero,
	FamilyCardano:  validateCardano,
	FamilySolana:   validateSolana,
}

// Validator dispatches addresses to their family's rules.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	logger *logging.Logger
}

// New returns a Validator. A nil logger discards output.
func New(logger *logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Validator{logger: logger.Named("validator")}
}

// Validate checks addr under family f.
func (v *Validator) Validate(ctx context.Context, f Family, addr string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = invalid("internal error")
			v.logger.Debug(ctx, "validator panic recovered",
				zap.Stringer("family", f),
				zap.String("address", addr),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	if f < 0 || f >= familyCount {
		return invalid("unknown family")
	}

	out = rules[f](addr)
	switch {
	case !out.Valid:
		v.logger.Debug(ctx, "validation failed",
			zap.Stringer("family", f),
			zap.String("address", addr),
			zap.String("reason", out.Reason),
		)
	case out.Strength == StrengthDegraded:
		v.logger.Debug(ctx, "checksum not computable, accepted on format",
			zap.Stringer("family", f),
			zap.String("address", addr),
			zap.String("classification", out.Classification),
		)
	default:
		v.logger.Trace(ctx, "validation passed",
			zap.Stringer("family", f),
			zap.Stringer("strength", out.Strength),
			zap.String("classification", out.Classification),
		)
	}
	return out
}

func validateGeneric(string) Outcome {
	return Outcome{Valid: true, Classification: "Unchecked", Strength: StrengthUnchecked}
}
