package taxipark

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// configFileEnv names the env var holding an optional YAML config path
	configFileEnv = "TAXIPARK_CONFIG"
	envPrefix     = "TAXIPARK_"
)

// Config holds the thresholds of the analysis and the ambient settings of the Analyzer
type Config struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// PeriodWidth is the width in minutes of a trip duration period
	PeriodWidth int `koanf:"period_width"`

	// ParetoDriverShare is the share of top drivers, ParetoIncomeShare the share of
	// the total income they must reach
	ParetoDriverShare float64 `koanf:"pareto_driver_share"`
	ParetoIncomeShare float64 `koanf:"pareto_income_share"`

	MetricsNamespace string `koanf:"metrics_namespace"`
}

// DefaultConfig returns the classic setup: 10 minute periods and the 20/80 Pareto rule
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		PeriodWidth:       10,
		ParetoDriverShare: 0.2,
		ParetoIncomeShare: 0.8,
		MetricsNamespace:  "taxipark",
	}
}

func (c Config) Validate() error {
	switch {
	case c.PeriodWidth <= 0:
		return fmt.Errorf("%w: PeriodWidth should be greater than 0", ErrInvalidConfig)
	case c.ParetoDriverShare <= 0 || c.ParetoDriverShare > 1:
		return fmt.Errorf("%w: ParetoDriverShare should be in (0,1]", ErrInvalidConfig)
	case c.ParetoIncomeShare <= 0 || c.ParetoIncomeShare > 1:
		return fmt.Errorf("%w: ParetoIncomeShare should be in (0,1]", ErrInvalidConfig)
	case c.MetricsNamespace == "":
		return fmt.Errorf("%w: MetricsNamespace should not be empty", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig builds a Config by layering, from low to high precedence:
//  1. DefaultConfig
//  2. the YAML file named by TAXIPARK_CONFIG, if set
//  3. env vars prefixed with TAXIPARK_, e.g. TAXIPARK_PERIOD_WIDTH
func LoadConfig(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// keep underscores so TAXIPARK_PERIOD_WIDTH maps to period_width
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load config env: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
