// Command factorial prints the prime factorization of n!.
package main

import (
	"fmt"
	"os"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/factorial/internal/cli"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := cli.NewRootCmd(version, commit, buildDate).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.GetCode(err) == errors.CodeInvalidInput || errors.GetCode(err) == errors.CodeInvalidConfig {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
