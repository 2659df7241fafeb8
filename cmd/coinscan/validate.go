package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/fyrsmithlabs/coinscan/internal/validator"
	"github.com/spf13/cobra"
)

// errInvalidAddresses is returned when at least one argument failed.
var errInvalidAddresses = errors.New("one or more addresses are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate SYMBOL ADDRESS...",
	Short: "Check addresses against a currency's rules",
	Long: `Validate checks each address against the length bounds and checksum rules
of the named currency. SYMBOL may be a ticker or an alias such as "ripple".

The command fails if any address is invalid.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, cleanup, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry(e.cfg, "")
	if err != nil {
		return err
	}
	c, err := reg.Resolve(args[0])
	if err != nil {
		return err
	}

	v := validator.New(e.logger)
	out := cmd.OutOrStdout()
	failed := 0

	for _, addr := range args[1:] {
		if !c.InBounds(len(addr)) {
			failed++
			fmt.Fprintf(out, "%s %s: length %d outside %d-%d\n",
				color.RedString("INVALID"), addr, len(addr), c.MinLength, c.MaxLength)
			continue
		}

		o := v.Validate(cmd.Context(), c.Family, addr)
		if !o.Valid {
			failed++
			fmt.Fprintf(out, "%s %s: %s\n", color.RedString("INVALID"), addr, o.Reason)
			continue
		}

		status := color.GreenString("VALID")
		if o.Strength == validator.StrengthDegraded {
			status = color.YellowString("VALID")
		}
		fmt.Fprintf(out, "%s %s %s (%s, %s)\n", status, c.Symbol, addr, o.Classification, o.Strength)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidAddresses, failed, len(args)-1)
	}
	return nil
}
