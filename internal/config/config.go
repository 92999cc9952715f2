// Package config provides Viper-based configuration loading for the ladders
// benchmark.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SimulationConfig holds trial-driver settings.
type SimulationConfig struct {
	// Trials is the number of games to play when Seconds is zero.
	Trials int `mapstructure:"trials"`
	// Seconds, when positive, selects a timed run: keep playing until at
	// least this much wall-clock time has elapsed. Takes precedence over
	// Trials.
	Seconds int `mapstructure:"seconds"`
	// Workers is the number of goroutines trials are fanned out across.
	// Each worker owns an independent dice source.
	Workers int `mapstructure:"workers"`
	// Timing is the measurement granularity: "batch" records one elapsed
	// duration for the whole run, "per-game" records one per game.
	Timing string `mapstructure:"timing"`
}

// Budget returns the timed-run budget, zero when Seconds is unset.
func (s SimulationConfig) Budget() time.Duration {
	return time.Duration(s.Seconds) * time.Second
}

// DiceConfig holds random-source settings.
type DiceConfig struct {
	// Source selects the generator strategy: "pcg", "chacha", or "crypto".
	Source string `mapstructure:"source"`
	// Sides is the die face count.
	Sides int `mapstructure:"sides"`
	// Seed seeds the "pcg" source; 0 draws a seed from crypto/rand.
	Seed uint64 `mapstructure:"seed"`
}

// ReportConfig holds output settings.
type ReportConfig struct {
	// JSON dumps the full benchmark result to stdout as JSON.
	JSON bool `mapstructure:"json"`
	// Verbose plays a single game with every roll logged, then exits.
	Verbose bool `mapstructure:"verbose"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Dice       DiceConfig       `mapstructure:"dice"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDice(c.Dice); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Trials < 0 {
		errs = append(errs, fmt.Sprintf("simulation.trials must be >= 0, got %d", s.Trials))
	}
	if s.Seconds < 0 {
		errs = append(errs, fmt.Sprintf("simulation.seconds must be >= 0, got %d", s.Seconds))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 1, got %d", s.Workers))
	}
	validTiming := map[string]bool{"batch": true, "per-game": true}
	if !validTiming[s.Timing] {
		errs = append(errs, fmt.Sprintf("simulation.timing must be one of [batch, per-game], got %q", s.Timing))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDice(d DiceConfig) error {
	var errs []string
	validSources := map[string]bool{"pcg": true, "chacha": true, "crypto": true}
	if !validSources[d.Source] {
		errs = append(errs, fmt.Sprintf("dice.source must be one of [pcg, chacha, crypto], got %q", d.Source))
	}
	if d.Sides < 2 {
		errs = append(errs, fmt.Sprintf("dice.sides must be >= 2, got %d", d.Sides))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Default returns the built-in configuration used when no config file is given.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// The default keys mirror the struct tags, so this cannot fail.
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: unmarshalling defaults: " + err.Error())
	}
	return cfg
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with LADDERS_ prefix
	v.SetEnvPrefix("LADDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.trials", 1_000_000)
	v.SetDefault("simulation.seconds", 0)
	v.SetDefault("simulation.workers", 1)
	v.SetDefault("simulation.timing", "batch")

	v.SetDefault("dice.source", "pcg")
	v.SetDefault("dice.sides", 6)
	v.SetDefault("dice.seed", 0)

	v.SetDefault("report.json", false)
	v.SetDefault("report.verbose", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
