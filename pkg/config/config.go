// Package config collects the HEAT_* environment knobs into one typed
// struct so main does not parse env vars inline.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/heat"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

type Config struct {
	DBType       string
	DBPath       string
	HTTPHostPort string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	City               string

	AlertInterval  time.Duration
	WeatherTimeout time.Duration

	DefaultRate  float64
	DefaultBurst int

	AdminToken string
}

// Load reads the environment. Required keys are the DB type and the
// OpenWeatherMap API key; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		DBType:             strings.TrimSpace(os.Getenv(common.EnvKeyHeatDBType)),
		DBPath:             strings.TrimSpace(os.Getenv(common.EnvKeyHeatDBPath)),
		HTTPHostPort:       strings.TrimSpace(os.Getenv(common.EnvKeyHeatHTTPHostPort)),
		OpenWeatherAPIKey:  strings.TrimSpace(os.Getenv(common.EnvKeyHeatOpenWeatherKey)),
		OpenWeatherBaseURL: strings.TrimSpace(os.Getenv(common.EnvKeyHeatOpenWeatherBaseURL)),
		City:               strings.TrimSpace(os.Getenv(common.EnvKeyHeatCity)),
		AlertInterval:      heat.DefaultAlertInterval,
		WeatherTimeout:     weather.DefaultFetchTimeout,
		AdminToken:         strings.TrimSpace(os.Getenv(common.EnvKeyHeatAdminToken)),
	}

	if cfg.DBType != "file" && cfg.DBType != "memory" {
		return nil, fmt.Errorf("unknown %s: %q", common.EnvKeyHeatDBType, cfg.DBType)
	}
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("%s is not set", common.EnvKeyHeatOpenWeatherKey)
	}

	if cfg.HTTPHostPort == "" {
		cfg.HTTPHostPort = ":1080"
	}
	if cfg.OpenWeatherBaseURL == "" {
		cfg.OpenWeatherBaseURL = weather.DefaultBaseURL
	}
	if cfg.City == "" {
		cfg.City = "Cartagena"
	}

	if raw := os.Getenv(common.EnvKeyHeatAlertInterval); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyHeatAlertInterval, err)
		}
		cfg.AlertInterval = interval
	}

	if raw := os.Getenv(common.EnvKeyHeatWeatherTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyHeatWeatherTimeout, err)
		}
		cfg.WeatherTimeout = timeout
	}

	var err error
	if cfg.DefaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHeatDefaultRate), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value", common.EnvKeyHeatDefaultRate)
	}
	if cfg.DefaultBurst, err = strconv.Atoi(os.Getenv(common.EnvKeyHeatDefaultBurst)); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value", common.EnvKeyHeatDefaultBurst)
	}

	return cfg, nil
}
