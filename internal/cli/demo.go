package cli

import (
	"fmt"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/factorial"
	"github.com/spf13/cobra"
)

const (
	demoPresieve = 100
	demoN        = 50

	// 50/2 + 50/4 + 50/8 + 50/16 + 50/32 = 25 + 12 + 6 + 3 + 1
	demoExponentOf2 = 47
)

func newDemoCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Factorize 50! with an engine pre-sieved to 100",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Initializing engine...")
			engine := factorial.New(
				factorial.WithPresieve(demoPresieve),
				factorial.WithLogger(cli.Logger.Slog()),
			)

			fmt.Fprintf(out, "\nCalculating prime factorization of %d!...\n", demoN)
			start := time.Now()
			factors := engine.Factorize(demoN)
			elapsed := time.Since(start)

			fmt.Fprintf(out, "Calculation complete in %s.\n", elapsed)
			fmt.Fprintf(out, "Result for %d!: %s\n", demoN, factors)
			fmt.Fprintf(out, "Exponent of 2 is: %d\n", factors[2])

			if factors[2] != demoExponentOf2 {
				return errors.Newf(errors.CodeInternal,
					"exponent of 2 in %d! is %d, expected %d", demoN, factors[2], demoExponentOf2)
			}
			return nil
		},
	}
}
