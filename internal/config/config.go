// Package config loads settings for the factorial command.
//
// Values are resolved by viper in the usual order: explicit flags, then
// FACTORIAL_* environment variables, then an optional factorial.yaml file,
// then defaults.
package config

import (
	stderrors "errors"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Configuration keys.
const (
	KeyPresieve  = "presieve"
	KeyMaxN      = "max_n"
	KeyFormat    = "format"
	KeyVerify    = "verify"
	KeyLogLevel  = "log.level"
	KeyLogJSON   = "log.json"
	KeyLogCaller = "log.caller"
)

// EnvPrefix is prepended to every environment variable, e.g. FACTORIAL_MAX_N.
const EnvPrefix = "FACTORIAL"

// Config holds the resolved settings.
type Config struct {
	// Presieve is the limit primes are sieved to before the first request.
	Presieve uint64 `mapstructure:"presieve"`

	// MaxN is the largest factorial argument accepted. The sieve allocates
	// one byte per integer up to n, so this bounds memory use.
	MaxN uint64 `mapstructure:"max_n"`

	// Format selects the output encoding: text, json or yaml.
	Format string `mapstructure:"format"`

	// Verify recomputes n! with arbitrary precision and compares it with the
	// product of the factorization.
	Verify bool `mapstructure:"verify"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	Caller bool   `mapstructure:"caller"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Presieve: 0,
		MaxN:     10_000_000,
		Format:   FormatText,
		Verify:   false,
		Log: LogConfig{
			Level:  "warn",
			JSON:   false,
			Caller: false,
		},
	}
}

// NewViper returns a viper instance with defaults, environment binding and
// config file search paths applied.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyPresieve, defaults.Presieve)
	v.SetDefault(KeyMaxN, defaults.MaxN)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyVerify, defaults.Verify)
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogJSON, defaults.Log.JSON)
	v.SetDefault(KeyLogCaller, defaults.Log.Caller)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("factorial")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return v
}

// Load reads the optional config file and unmarshals and validates the
// result. A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var problems []string

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		problems = append(problems, "format must be one of: text, json, yaml (got: "+c.Format+")")
	}

	if c.MaxN < 2 {
		problems = append(problems, "max_n must be at least 2")
	}

	if c.Presieve > c.MaxN {
		problems = append(problems, "presieve must not exceed max_n")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, "log.level must be one of: debug, info, warn, error (got: "+c.Log.Level+")")
	}

	if len(problems) > 0 {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "invalid configuration: %s", strings.Join(problems, "; ")),
			"problems", problems,
		)
	}

	return nil
}
