// Package cli provides the command-line interface for factorial.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/factorial"
	"github.com/jmgilman/go/factorial/internal/config"
	"github.com/jmgilman/go/factorial/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI holds the resolved configuration shared by all commands.
type CLI struct {
	Config *config.Config
	Logger *logging.Logger
}

// NewEngine creates an engine configured from the CLI settings.
func (c *CLI) NewEngine() *factorial.Engine {
	opts := []factorial.Option{factorial.WithLogger(c.Logger.Slog())}
	if c.Config.Presieve > 0 {
		opts = append(opts, factorial.WithPresieve(c.Config.Presieve))
	}
	return factorial.New(opts...)
}

// NewRootCmd creates the root command for factorial.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	v := config.NewViper()
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print the prime factorization of n!",
		Long: `Computes the prime factorization of n! with Legendre's formula,
without ever computing n! itself.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			level, err := logging.ParseLogLevel(cfg.Log.Level)
			if err != nil {
				return err
			}

			logCfg := logging.DefaultLogConfig()
			logCfg.Level = level
			logCfg.JSON = cfg.Log.JSON
			logCfg.EnableCallerInfo = cfg.Log.Caller
			logCfg.Output = cmd.ErrOrStderr()

			cli.Config = cfg
			cli.Logger = logging.NewLogger(logCfg)
			cli.Logger.Info("configuration loaded",
				"log_level", level.String(),
				"format", cfg.Format,
				"presieve", cfg.Presieve,
				"max_n", cfg.MaxN,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFactorize(cmd, cli, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Uint64("presieve", 0, "Sieve primes up to this limit before factorizing")
	flags.Uint64("max-n", config.Default().MaxN, "Largest accepted value of n")
	flags.StringP("format", "o", config.FormatText, "Output format: text, json or yaml")
	flags.Bool("verify", false, "Check the factorization against n! computed with arbitrary precision")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Emit logs as JSON")
	flags.Bool("log-caller", false, "Include the source location in log records")

	bindFlags(v, rootCmd, map[string]string{
		config.KeyPresieve:  "presieve",
		config.KeyMaxN:      "max-n",
		config.KeyFormat:    "format",
		config.KeyVerify:    "verify",
		config.KeyLogLevel:  "log-level",
		config.KeyLogJSON:   "log-json",
		config.KeyLogCaller: "log-caller",
	})

	rootCmd.AddCommand(newDemoCmd(cli))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "factorial %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
		},
	})

	return rootCmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		// Lookup only fails for a misspelled flag name above.
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", flag, err))
		}
	}
}

func runFactorize(cmd *cobra.Command, cli *CLI, arg string) error {
	n, err := ParseN(arg, cli.Config.MaxN)
	if err != nil {
		return err
	}

	if cli.Config.Presieve > 0 && n > cli.Config.Presieve {
		cli.Logger.Warn("n exceeds the presieve limit, the prime cache will be re-sieved",
			"n", n,
			"presieve", cli.Config.Presieve,
		)
	}

	factors := cli.NewEngine().Factorize(n)

	result := NewResult(n, factors)
	if cli.Config.Verify {
		verified := factors.Product().Cmp(factorial.Factorial(n)) == 0
		result.Verified = &verified
		if !verified {
			cli.Logger.Error("factorization does not match n!", "n", n)
			return errors.WithContext(
				errors.Newf(errors.CodeInternal, "factorization of %d! does not match n!", n),
				"n", n,
			)
		}
	}

	return Render(cmd.OutOrStdout(), cli.Config.Format, result)
}

// ParseN parses the factorial argument and checks it against limit.
// Underscore digit separators are accepted.
func ParseN(arg string, limit uint64) (uint64, error) {
	n, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(arg), "_", ""), 10, 64)
	if err != nil {
		return 0, errors.WithContext(
			errors.Wrapf(err, errors.CodeInvalidInput, "invalid value for n: %q", arg),
			"argument", arg,
		)
	}

	if n > limit {
		return 0, errors.WithContextMap(
			errors.Newf(errors.CodeInvalidInput, "n = %d exceeds the configured maximum of %d", n, limit),
			map[string]interface{}{"n": n, "max_n": limit},
		)
	}

	return n, nil
}
