// Package weather fetches current conditions from OpenWeather and maps them
// to the internal condition taxonomy used by presentation.
package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agroyield-server/entities"
)

const (
	// DefaultEndpoint is the OpenWeather current-weather API.
	DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

	requestTimeout = 10 * time.Second
	userAgent      = "agroyield-server"
)

// ErrUnavailable covers every weather failure mode: network error, timeout,
// non-200 response, or a payload missing the expected fields. Callers match
// it with errors.Is and degrade instead of crashing.
var ErrUnavailable = errors.New("weather service unavailable")

// Client looks up current conditions for a free-text location. Repeated
// calls may return different snapshots; results are never cached.
type Client interface {
	Fetch(location string) (*entities.WeatherSnapshot, error)
}

// openWeatherResponse is the subset of the OpenWeather payload we read.
type openWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// conditionMap folds provider condition labels into the internal taxonomy.
// Unmapped labels default to clear.
var conditionMap = map[string]string{
	"clear":  "clear",
	"clouds": "cloudy",
	"rain":   "rainy",
	"mist":   "fog",
	"haze":   "fog",
	"fog":    "fog",
}

type openWeatherClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewOpenWeatherClient(apiKey string) Client {
	return &openWeatherClient{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

func (c *openWeatherClient) Fetch(location string) (*entities.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key not configured", ErrUnavailable)
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequest("GET", c.endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: error creating request: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching weather data: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: received non-200 response: %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response body: %v", ErrUnavailable, err)
	}

	var out openWeatherResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: error unmarshaling weather data: %v", ErrUnavailable, err)
	}

	if len(out.Weather) == 0 {
		return nil, fmt.Errorf("%w: no weather conditions returned from API", ErrUnavailable)
	}

	condition := out.Weather[0].Main
	category, ok := conditionMap[strings.ToLower(condition)]
	if !ok {
		category = "clear"
	}

	return &entities.WeatherSnapshot{
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		Condition:   condition,
		Image:       "weather/" + category + ".jpg",
	}, nil
}
