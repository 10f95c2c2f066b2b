// Package config resolves CLI settings from flags, CDK2ENV_* environment
// variables and an optional dotenv file.
package config

import (
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cdk2env/internal/errors"
	"cdk2env/pkg/shellenv"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "CDK2ENV"

// Flag names shared with the root command
const (
	FlagPrefix  = "prefix"
	FlagVerbose = "verbose"
	FlagEnvFile = "env-file"
)

var validPrefix = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Settings are the resolved CLI settings
type Settings struct {
	Prefix  string
	Verbose bool
	EnvFile string
}

// BindFlags registers the settings flags on flags
func BindFlags(flags *pflag.FlagSet) {
	flags.String(FlagPrefix, shellenv.DefaultPrefix, "prefix for generated variable names (env: CDK2ENV_PREFIX)")
	flags.Bool(FlagVerbose, false, "print diagnostics to stderr (env: CDK2ENV_VERBOSE)")
	flags.String(FlagEnvFile, "", "dotenv file with CDK2ENV_* settings")
}

// Load resolves settings with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Variables from the --env-file dotenv file
// 4. Default values (lowest priority)
func Load(flags *pflag.FlagSet) (*Settings, error) {
	envFile, _ := flags.GetString(FlagEnvFile)
	if envFile != "" {
		// Load never overrides variables already present in the environment
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.ConfigErrorWithCause("failed to load env file", err).
				WithContext("envFile", envFile)
		}
	}

	parser := viper.New()
	parser.SetEnvPrefix(EnvPrefix)
	parser.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	parser.AutomaticEnv()
	parser.SetDefault(FlagPrefix, shellenv.DefaultPrefix)

	if err := parser.BindPFlags(flags); err != nil {
		return nil, errors.ConfigErrorWithCause("failed to bind flags", err)
	}

	settings := &Settings{
		Prefix:  parser.GetString(FlagPrefix),
		Verbose: parser.GetBool(FlagVerbose),
		EnvFile: envFile,
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that the prefix can start a shell variable name.
// An empty prefix is accepted and means the default.
func (s *Settings) Validate() error {
	if s.Prefix == "" {
		s.Prefix = shellenv.DefaultPrefix
		return nil
	}
	if !validPrefix.MatchString(s.Prefix) {
		return errors.ConfigError("invalid prefix: " + s.Prefix).
			WithContext("prefix", s.Prefix).
			WithSuggestion("Use letters, digits and underscores, not starting with a digit")
	}
	return nil
}
