package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Fixtures FixturesConfig
	Locale   LocaleConfig
	Metrics  MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Locale.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SITTA_APP_ENV" required:"true"`
	Port         string `envconfig:"SITTA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SITTA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SITTA_LOG_WARN_STACK" default:"false"`

	CORSAllowedOrigins []string `envconfig:"SITTA_CORS_ALLOWED_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// FixturesConfig points at an optional YAML reference-data file. The embedded
// fixtures are used when Path is empty.
type FixturesConfig struct {
	Path string `envconfig:"SITTA_FIXTURES_PATH"`
}

type LocaleConfig struct {
	DateLocale         string `envconfig:"SITTA_DATE_LOCALE" default:"id-ID"`
	ThousandsSeparator string `envconfig:"SITTA_THOUSANDS_SEPARATOR" default:"."`
	Collation          string `envconfig:"SITTA_COLLATION" default:"id"`
}

func (l LocaleConfig) validate() error {
	if l.ThousandsSeparator == "" {
		return fmt.Errorf("%s must not be empty", EnvThousandsSeparator)
	}
	return nil
}

type MetricsConfig struct {
	Enabled bool `envconfig:"SITTA_METRICS_ENABLED" default:"true"`
}
