// Package weather fetches current meteorological observations from the
// OpenWeatherMap current-weather API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"calorsos.xyz/heat-alert-service/pkg/common"
)

const DefaultBaseURL = "https://api.openweathermap.org"

// DefaultFetchTimeout bounds a single provider call; a scheduler run has no
// other cancellation point.
const DefaultFetchTimeout = 10 * time.Second

var (
	// ErrTimeout marks a provider call that hit its deadline. Retryable on
	// the next tick.
	ErrTimeout = errors.New("weather provider timeout")
	// ErrBadStatus marks a non-200 provider response.
	ErrBadStatus = errors.New("weather provider returned bad status")
)

// Observation is the raw input to the risk calculator. It is never persisted.
type Observation struct {
	Ciudad      string  `json:"ciudad"`
	Temperatura float64 `json:"temperatura"`
	Humedad     float64 `json:"humedad"`
	// Sensacion is the feels-like temperature; defaults to Temperatura when
	// the provider omits it.
	Sensacion float64 `json:"sensacion_termica"`
	IndiceUV  float64 `json:"indice_uv"`
	Condicion string  `json:"condicion"`
}

// Source is the capability the scheduler and the /clima route consume.
type Source interface {
	Current(ctx context.Context, city string) (*Observation, error)
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type currentPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64  `json:"temp"`
		Humidity  float64  `json:"humidity"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	UVI *float64 `json:"uvi"`
}

func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHeatCore,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryWeather),
	)

	endpoint := fmt.Sprintf(
		"%s/data/2.5/weather?q=%s&appid=%s&units=metric&lang=es",
		c.BaseURL, url.QueryEscape(city), url.QueryEscape(c.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("fetch weather for %q: %w", city, ErrTimeout)
		}
		return nil, fmt.Errorf("fetch weather for %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch weather for %q: status %d: %w", city, resp.StatusCode, ErrBadStatus)
	}

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather payload for %q: %w", city, err)
	}

	obs := &Observation{
		Ciudad:      payload.Name,
		Temperatura: payload.Main.Temp,
		Humedad:     payload.Main.Humidity,
		Sensacion:   payload.Main.Temp,
		Condicion:   "",
	}
	if payload.Main.FeelsLike != nil {
		obs.Sensacion = *payload.Main.FeelsLike
	}
	if payload.UVI != nil {
		obs.IndiceUV = *payload.UVI
	}
	if len(payload.Weather) > 0 {
		obs.Condicion = payload.Weather[0].Description
	}
	if obs.Ciudad == "" {
		obs.Ciudad = city
	}

	logger.Info("Fetched weather observation", zap.Reflect("observation", obs))

	return obs, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
