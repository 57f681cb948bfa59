package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/heat"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(common.EnvKeyHeatDBType, "memory")
	t.Setenv(common.EnvKeyHeatOpenWeatherKey, "test-api-key")
	t.Setenv(common.EnvKeyHeatDefaultRate, "5")
	t.Setenv(common.EnvKeyHeatDefaultBurst, "10")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, ":1080", cfg.HTTPHostPort)
	assert.Equal(t, weather.DefaultBaseURL, cfg.OpenWeatherBaseURL)
	assert.Equal(t, "Cartagena", cfg.City)
	assert.Equal(t, heat.DefaultAlertInterval, cfg.AlertInterval)
	assert.Equal(t, weather.DefaultFetchTimeout, cfg.WeatherTimeout)
	assert.Equal(t, 5.0, cfg.DefaultRate)
	assert.Equal(t, 10, cfg.DefaultBurst)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(common.EnvKeyHeatHTTPHostPort, ":9090")
	t.Setenv(common.EnvKeyHeatCity, "Barranquilla")
	t.Setenv(common.EnvKeyHeatAlertInterval, "30m")
	t.Setenv(common.EnvKeyHeatWeatherTimeout, "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPHostPort)
	assert.Equal(t, "Barranquilla", cfg.City)
	assert.Equal(t, 30*time.Minute, cfg.AlertInterval)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
}

func TestLoad_EdgeCases(t *testing.T) {
	{
		setRequiredEnv(t)
		t.Setenv(common.EnvKeyHeatDBType, "postgres")
		_, err := Load()
		require.Error(t, err)
	}

	{
		setRequiredEnv(t)
		t.Setenv(common.EnvKeyHeatOpenWeatherKey, "")
		_, err := Load()
		require.Error(t, err)
	}

	{
		setRequiredEnv(t)
		t.Setenv(common.EnvKeyHeatAlertInterval, "ten minutes")
		_, err := Load()
		require.Error(t, err)
	}

	{
		setRequiredEnv(t)
		t.Setenv(common.EnvKeyHeatDefaultBurst, "not-an-int")
		_, err := Load()
		require.Error(t, err)
	}
}
