package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies coinscan recognises",
	Args:  cobra.NoArgs,
	RunE:  runCurrencies,
}

func runCurrencies(cmd *cobra.Command, args []string) error {
	e, cleanup, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry(e.cfg, "")
	if err != nil {
		return err
	}

	aliases := make(map[string][]string)
	for alias, symbol := range reg.Aliases() {
		aliases[symbol] = append(aliases[symbol], strings.ToLower(alias))
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tLENGTH\tCHECKSUM\tALIASES")
	for _, c := range reg.All() {
		names := aliases[c.Symbol]
		sort.Strings(names)

		checksum := "no"
		if c.HasChecksum {
			checksum = "yes"
		}
		name := c.Name
		if c.Custom {
			name += " (custom)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%s\t%s\n",
			c.Symbol, name, c.MinLength, c.MaxLength, checksum, strings.Join(names, ", "))
	}
	return tw.Flush()
}
