package weather

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T, apiKey string) *openWeatherClient {
	t.Helper()
	c := NewOpenWeatherClient(apiKey).(*openWeatherClient)
	httpmock.ActivateNonDefault(c.http)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func registerResponder(status int, body string) {
	httpmock.RegisterResponder("GET", `=~^https://api\.openweathermap\.org/data/2\.5/weather`,
		httpmock.NewStringResponder(status, body))
}

func payload(condition string, temp float64, humidity int) string {
	return fmt.Sprintf(`{"weather":[{"main":%q}],"main":{"temp":%g,"humidity":%d}}`, condition, temp, humidity)
}

func TestFetch_Success(t *testing.T) {
	c := newMockedClient(t, "test-key")
	registerResponder(http.StatusOK, payload("Clouds", 24.5, 71))

	snapshot, err := c.Fetch("Helsinki")

	require.NoError(t, err)
	assert.InDelta(t, 24.5, snapshot.Temperature, 0.001)
	assert.Equal(t, 71, snapshot.Humidity)
	assert.Equal(t, "Clouds", snapshot.Condition)
	assert.Equal(t, "weather/cloudy.jpg", snapshot.Image)
}

func TestFetch_ConditionMapping(t *testing.T) {
	tests := []struct {
		condition string
		image     string
	}{
		{"Clear", "weather/clear.jpg"},
		{"Clouds", "weather/cloudy.jpg"},
		{"Rain", "weather/rainy.jpg"},
		{"Mist", "weather/fog.jpg"},
		{"Haze", "weather/fog.jpg"},
		{"Fog", "weather/fog.jpg"},
		// Unmapped labels default to clear
		{"Drizzle", "weather/clear.jpg"},
		{"Thunderstorm", "weather/clear.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			c := newMockedClient(t, "test-key")
			registerResponder(http.StatusOK, payload(tt.condition, 20, 50))

			snapshot, err := c.Fetch("Austin")

			require.NoError(t, err)
			assert.Equal(t, tt.condition, snapshot.Condition, "raw provider label is preserved")
			assert.Equal(t, tt.image, snapshot.Image)
		})
	}
}

func TestFetch_NoAPIKey(t *testing.T) {
	c := newMockedClient(t, "")

	snapshot, err := c.Fetch("Austin")

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 0, httpmock.GetTotalCallCount(), "no request should be made without a key")
}

func TestFetch_Non200Response(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			c := newMockedClient(t, "test-key")
			registerResponder(status, `{"cod":"404","message":"city not found"}`)

			snapshot, err := c.Fetch("Nowhere")

			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestFetch_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not_json", "<html>gateway error</html>"},
		{"empty_weather_array", `{"weather":[],"main":{"temp":20,"humidity":50}}`},
		{"missing_weather_field", `{"main":{"temp":20,"humidity":50}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMockedClient(t, "test-key")
			registerResponder(http.StatusOK, tt.body)

			snapshot, err := c.Fetch("Austin")

			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestFetch_NetworkError(t *testing.T) {
	c := newMockedClient(t, "test-key")
	httpmock.RegisterResponder("GET", `=~^https://api\.openweathermap\.org/data/2\.5/weather`,
		httpmock.NewErrorResponder(fmt.Errorf("connection refused")))

	snapshot, err := c.Fetch("Austin")

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrUnavailable)
}
