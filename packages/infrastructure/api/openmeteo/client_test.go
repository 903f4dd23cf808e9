package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geocodingBody = `{"results":[{"name":"São Paulo","country":"Brasil","latitude":-23.55,"longitude":-46.63}]}`
const currentBody = `{"current":{"temperature_2m":24.5,"relative_humidity_2m":60,"pressure_msl":1012.3,"wind_speed_10m":3.2,"weather_code":61}}`
const dailyBody = `{"daily":{"time":["2026-01-01","2026-01-02"],"temperature_2m_max":[30.1,28],"temperature_2m_min":[20,19.5],"precipitation_sum":[0,4.2],"weather_code":[0,95]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Options{
		GeocodingURL:    srv.URL + "/geo",
		ForecastURL:     srv.URL + "/forecast",
		Timeout:         time.Second,
		BreakerFailures: 2,
		BreakerCooldown: time.Minute,
	})
}

func weatherHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		switch r.URL.Path {
		case "/geo":
			assert.Equal(t, "1", q.Get("count"))
			assert.Equal(t, "pt", q.Get("language"))
			if q.Get("name") == "Atlantida" {
				w.Write([]byte(`{"generationtime_ms":0.5}`))
				return
			}
			w.Write([]byte(geocodingBody))
		case "/forecast":
			assert.Equal(t, "auto", q.Get("timezone"))
			if q.Get("daily") != "" {
				assert.Equal(t, "2", q.Get("forecast_days"))
				w.Write([]byte(dailyBody))
				return
			}
			assert.Equal(t, currentFields, q.Get("current"))
			assert.Equal(t, "ms", q.Get("wind_speed_unit"))
			w.Write([]byte(currentBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestCurrent(t *testing.T) {
	c := newTestClient(t, weatherHandler(t))

	t.Run("found", func(t *testing.T) {
		w, err := c.Current(context.Background(), "sao paulo", "BR")
		require.NoError(t, err)

		assert.Equal(t, "São Paulo", w.City)
		assert.Equal(t, "Brasil", w.Country)
		assert.Equal(t, 24.5, w.Temperature)
		assert.Equal(t, float64(60), w.Humidity)
		assert.Equal(t, 1012.3, w.Pressure)
		assert.Equal(t, 61, w.Code)
		assert.Equal(t, "Chuva leve", w.Description)
	})

	t.Run("city not found", func(t *testing.T) {
		_, err := c.Current(context.Background(), "Atlantida", "")
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("coordinates", func(t *testing.T) {
		w, err := c.AtCoordinates(context.Background(), -23.55, -46.63)
		require.NoError(t, err)
		assert.Equal(t, -23.55, w.Latitude)
		assert.Equal(t, 24.5, w.Temperature)
	})
}

func TestDaily(t *testing.T) {
	c := newTestClient(t, weatherHandler(t))

	forecast, err := c.Daily(context.Background(), "São Paulo", "", 2)
	require.NoError(t, err)
	require.Len(t, forecast, 2)

	assert.Equal(t, DailyForecast{
		Date:          "2026-01-02",
		Max:           28,
		Min:           19.5,
		Precipitation: 4.2,
		Code:          95,
		Description:   "Tempestade",
	}, forecast[1])

	_, err = c.Daily(context.Background(), "São Paulo", "", 0)
	assert.ErrorIs(t, err, ErrInvalidDays)
	_, err = c.Daily(context.Background(), "São Paulo", "", MaxForecastDays+1)
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.Current(context.Background(), "Recife", "")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		var calls atomic.Int32

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		for range 2 {
			_, err := c.Current(context.Background(), "Recife", "")
			var apiErr *APIError
			assert.ErrorAs(t, err, &apiErr)
		}

		_, err := c.Current(context.Background(), "Recife", "")

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("connection error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		c := NewClient(Options{
			GeocodingURL:    srv.URL,
			ForecastURL:     srv.URL,
			Timeout:         time.Second,
			BreakerFailures: 5,
			BreakerCooldown: time.Minute,
		})

		_, err := c.Current(context.Background(), "Recife", "")

		var connErr *ConnectionError
		assert.ErrorAs(t, err, &connErr)
	})
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Céu limpo", Describe(0))
	assert.Equal(t, "Nevoeiro", Describe(48))
	assert.Equal(t, UnknownDescription, Describe(99))
}

type fakeProvider map[string]*Weather

func (p fakeProvider) Current(ctx context.Context, city string, country string) (*Weather, error) {
	if w, ok := p[city]; ok {
		return w, nil
	}
	return nil, ErrCityNotFound
}

func TestCompare(t *testing.T) {
	provider := fakeProvider{
		"Recife":   {City: "Recife", Temperature: 30, Description: "Céu limpo"},
		"Curitiba": {City: "Curitiba", Temperature: 12, Description: "Chuva leve"},
		"Natal":    {City: "Natal", Temperature: 28, Description: "Pancadas de chuva"},
	}

	res := Compare(context.Background(), provider, []string{"Recife", "Atlantida", "Curitiba", "Natal"})
	require.Len(t, res, 4)

	assert.Equal(t, "Recife", res[0].City)
	assert.True(t, errors.Is(res[1].Err, ErrCityNotFound))
	assert.Equal(t, "Curitiba", res[2].Weather.City)

	list := Succeeded(res)
	require.Len(t, list, 3)

	hottest, ok := Hottest(list)
	require.True(t, ok)
	assert.Equal(t, "Recife", hottest.City)

	coldest, ok := Coldest(list)
	require.True(t, ok)
	assert.Equal(t, "Curitiba", coldest.City)

	assert.InDelta(t, 23.33, AverageTemperature(list), 0.01)
	assert.Len(t, FilterByTemperature(list, 25, 35), 2)
	assert.Len(t, FilterByCondition(list, "CHUVA"), 2)

	_, ok = Hottest(nil)
	assert.False(t, ok)
	assert.Zero(t, AverageTemperature(nil))
}
