// Package config loads the settings shared by the table generator and the benchmark: flags bound
// into viper, on top of an optional config file, STABLEMARRIAGE_* environment variables and defaults.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "STABLEMARRIAGE"

// Config holds the settings of the table generator and the benchmark.
type Config struct {
	Seed        int64  `mapstructure:"seed"`
	Sizes       []int  `mapstructure:"sizes"`
	Reps        int    `mapstructure:"reps"`
	TablesDir   string `mapstructure:"tables-dir"`
	Output      string `mapstructure:"output"`
	Matcher     string `mapstructure:"matcher"`
	Development bool   `mapstructure:"development"`
}

// DefaultSizes is the ladder of group sizes the tables are generated and timed for
func DefaultSizes() []int {
	sizes := []int{4, 50}
	sizes = append(sizes, lo.RangeWithSteps(100, 1001, 100)...)
	sizes = append(sizes, lo.RangeWithSteps(2000, 5001, 1000)...)
	return sizes
}

// Flags declares the flags understood by Load
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "Path to a config file (json, yaml or toml)")
	flags.Int64("seed", 5, "Seed of the random source used to generate preference tables")
	flags.IntSlice("sizes", DefaultSizes(), "Group sizes")
	flags.Int("reps", 10, "Repetitions per size when timing")
	flags.String("tables-dir", "test_tables", "Directory holding the preference tables")
	flags.String("output", "execution_time.csv", "Path of the CSV file with the timings")
	flags.String("matcher", "rank", fmt.Sprintf("Matcher to time, one of %q", marriage.MatcherNames()))
	flags.Bool("development", false, "Human readable debug logging")
	return flags
}

// Load parses args against flags and resolves the configuration.
func Load(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("cannot bind flags: %w", err)
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	return config, config.Validate()
}

// Validate rejects non-positive repetitions, empty or negative sizes and unknown matchers.
func (config Config) Validate() error {
	if config.Reps < 1 {
		return fmt.Errorf("reps must be at least 1: %v", config.Reps)
	} else if len(config.Sizes) == 0 {
		return fmt.Errorf("at least one size must be given")
	} else if lo.SomeBy(config.Sizes, func(size int) bool { return size < 0 }) {
		return fmt.Errorf("sizes must not be negative: %v", config.Sizes)
	} else if !slices.Contains(marriage.MatcherNames(), config.Matcher) {
		return fmt.Errorf("%v is not a valid matcher", config.Matcher)
	}
	return nil
}
