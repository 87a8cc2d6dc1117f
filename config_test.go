package taxipark

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		config   func(c *Config)
		hasError bool
	}{
		{
			name:     "defaults ok",
			config:   func(c *Config) {},
			hasError: false,
		},
		{
			name:     "period width is zero - error",
			config:   func(c *Config) { c.PeriodWidth = 0 },
			hasError: true,
		},
		{
			name:     "driver share is zero - error",
			config:   func(c *Config) { c.ParetoDriverShare = 0 },
			hasError: true,
		},
		{
			name:     "income share above one - error",
			config:   func(c *Config) { c.ParetoIncomeShare = 1.5 },
			hasError: true,
		},
		{
			name:     "empty namespace - error",
			config:   func(c *Config) { c.MetricsNamespace = "" },
			hasError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := DefaultConfig()
			test.config(c)
			err := c.Validate()
			assert.Equal(t, test.hasError, err != nil)
			if test.hasError {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := LoadConfig(ctx)

			convey.Convey("Then it should match the default config", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, DefaultConfig())
			})
		})

		convey.Convey("When loading with environment variables", func() {
			_ = os.Setenv("TAXIPARK_PERIOD_WIDTH", "15")
			_ = os.Setenv("TAXIPARK_PARETO_DRIVER_SHARE", "0.1")
			_ = os.Setenv("TAXIPARK_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := LoadConfig(ctx)

			convey.Convey("Then env vars should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.PeriodWidth, convey.ShouldEqual, 15)
				convey.So(cfg.ParetoDriverShare, convey.ShouldEqual, 0.1)
				convey.So(cfg.ParetoIncomeShare, convey.ShouldEqual, 0.8)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading with a YAML file and env vars", func() {
			path := filepath.Join(t.TempDir(), "taxipark.yaml")
			yamlContent := `
period_width: 5
pareto_income_share: 0.9
metrics_namespace: fleet
`
			convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("TAXIPARK_CONFIG", path)
			_ = os.Setenv("TAXIPARK_PERIOD_WIDTH", "20")
			defer clearConfigEnvVars()

			cfg, err := LoadConfig(ctx)

			convey.Convey("Then env vars should win over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.PeriodWidth, convey.ShouldEqual, 20)           // env
				convey.So(cfg.ParetoIncomeShare, convey.ShouldEqual, 0.9)    // file
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "fleet") // file
				convey.So(cfg.ParetoDriverShare, convey.ShouldEqual, 0.2)    // default
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("TAXIPARK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			defer clearConfigEnvVars()

			_, err := LoadConfig(ctx)

			convey.Convey("Then it should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the loaded values are invalid", func() {
			_ = os.Setenv("TAXIPARK_PERIOD_WIDTH", "0")
			defer clearConfigEnvVars()

			_, err := LoadConfig(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, name := range []string{
		"TAXIPARK_CONFIG",
		"TAXIPARK_LOG_LEVEL",
		"TAXIPARK_PERIOD_WIDTH",
		"TAXIPARK_PARETO_DRIVER_SHARE",
		"TAXIPARK_PARETO_INCOME_SHARE",
		"TAXIPARK_METRICS_NAMESPACE",
	} {
		_ = os.Unsetenv(name)
	}
}
