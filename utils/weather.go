package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sshah229/Comcast/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	UrlOpenWeather = "https://api.openweathermap.org/data/2.5/weather"
	Units          = "metric"
	RequestTimeout = 12 * time.Second
)

var (
	ErrAPIKeyNotSet = errors.New("API key is not set")
	ErrCityNotFound = errors.New("city not found")
)

type WeatherAPIClient interface {
	GetWeather(ctx context.Context, city string) (models.Weather, error)
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	tracer     trace.Tracer
}

// NewWeatherClient builds a client for the current weather endpoint. A nil
// httpClient falls back to http.DefaultClient.
func NewWeatherClient(apiKey string, httpClient HTTPDoer) *WeatherClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &WeatherClient{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    UrlOpenWeather,
		httpClient: httpClient,
		tracer:     otel.Tracer("weather-client"),
	}
}

func (c *WeatherClient) WithBaseURL(baseURL string) *WeatherClient {
	c.baseURL = baseURL
	return c
}

func (c *WeatherClient) RequestURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", Units)
	return c.baseURL + "?" + params.Encode()
}

func (c *WeatherClient) GetWeather(ctx context.Context, city string) (models.Weather, error) {
	ctx, span := c.tracer.Start(ctx, "get-weather")
	defer span.End()

	city = strings.TrimSpace(city)
	span.SetAttributes(attribute.String("city", city))

	if c.apiKey == "" {
		span.RecordError(ErrAPIKeyNotSet)
		span.SetStatus(codes.Error, "API key is not set")
		return models.Weather{}, ErrAPIKeyNotSet
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(city), nil)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to create request: %w", err))
		span.SetStatus(codes.Error, "failed to create request")
		return models.Weather{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to get weather: %w", err))
		span.SetStatus(codes.Error, "failed to get weather")
		return models.Weather{}, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		err := fmt.Errorf("%w: %s", ErrCityNotFound, city)
		span.RecordError(err)
		span.SetStatus(codes.Error, "city not found")
		return models.Weather{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("weather API returned status %d: %s", resp.StatusCode, errorMessage(resp.Body))
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather API returned error status")
		return models.Weather{}, err
	}

	var payload models.OpenWeather
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(fmt.Errorf("failed to decode response: %w", err))
		span.SetStatus(codes.Error, "failed to decode response")
		return models.Weather{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload.ToWeather(), nil
}

func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "unknown error"
	}

	var apiErr models.OpenWeatherError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return "unknown error"
}
