package openmeteo

import (
	"classroom/packages/common/config"
	"classroom/packages/common/logger"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

var log = logger.NewSource("OPEN-METEO", logger.Default)

const MaxForecastDays = 16

const currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,pressure_msl"
const dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code"

type Weather struct {
	City        string  `json:"cidade"`
	Country     string  `json:"pais"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature float64 `json:"temperatura"`
	Humidity    float64 `json:"umidade"`
	Pressure    float64 `json:"pressao"`
	WindSpeed   float64 `json:"vento"`
	Code        int     `json:"codigo"`
	Description string  `json:"descricao"`
}

type DailyForecast struct {
	Date          string  `json:"data"`
	Max           float64 `json:"maxima"`
	Min           float64 `json:"minima"`
	Precipitation float64 `json:"precipitacao"`
	Code          int     `json:"codigo"`
	Description   string  `json:"descricao"`
}

type location struct {
	name      string
	country   string
	latitude  float64
	longitude float64
}

type Client struct {
	http         *http.Client
	geocodingURL string
	forecastURL  string
	breaker      *gobreaker.CircuitBreaker[[]byte]
}

type Options struct {
	GeocodingURL    string
	ForecastURL     string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

func NewClient(opt Options) *Client {
	return &Client{
		http:         &http.Client{Timeout: opt.Timeout},
		geocodingURL: opt.GeocodingURL,
		forecastURL:  opt.ForecastURL,
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "Open-Meteo",
			MaxRequests: 1,
			Timeout:     opt.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= opt.BreakerFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warning("Circuit breaker state changed: "+from.String()+" -> "+to.String(), nil)
			},
		}),
	}
}

// Creates client using endpoints and timeouts from config.API.
func New() *Client {
	return NewClient(Options{
		GeocodingURL:    config.API.GeocodingURL,
		ForecastURL:     config.API.ForecastURL,
		Timeout:         config.API.Timeout(),
		BreakerFailures: config.API.BreakerFailures,
		BreakerCooldown: config.API.BreakerCooldown(),
	})
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}
		defer res.Body.Close()

		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, &APIError{Status: res.StatusCode}
		}

		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}

		return body, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		log.Error("Request blocked by circuit breaker", err.Error(), nil)
		return nil, &ConnectionError{Err: err}
	}

	return body, err
}

func (c *Client) geocode(ctx context.Context, city string, country string) (*location, error) {
	log.Trace("Geocoding "+city+"...", nil)

	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "pt")
	params.Set("format", "json")
	if country != "" {
		params.Set("country_code", country)
	}

	body, err := c.fetch(ctx, c.geocodingURL, params)
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(body, "results.0")
	if !result.Exists() {
		return nil, ErrCityNotFound
	}

	loc := &location{
		name:      result.Get("name").String(),
		country:   result.Get("country").String(),
		latitude:  result.Get("latitude").Float(),
		longitude: result.Get("longitude").Float(),
	}
	if loc.name == "" {
		loc.name = city
	}

	log.Trace("Geocoding "+city+": OK", nil)

	return loc, nil
}

func coordinates(lat float64, lon float64) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("timezone", "auto")
	return params
}

func (c *Client) current(ctx context.Context, loc *location) (*Weather, error) {
	params := coordinates(loc.latitude, loc.longitude)
	params.Set("current", currentFields)
	params.Set("temperature_unit", "celsius")
	params.Set("wind_speed_unit", "ms")

	body, err := c.fetch(ctx, c.forecastURL, params)
	if err != nil {
		return nil, err
	}

	current := gjson.GetBytes(body, "current")
	code := int(current.Get("weather_code").Int())

	return &Weather{
		City:        loc.name,
		Country:     loc.country,
		Latitude:    loc.latitude,
		Longitude:   loc.longitude,
		Temperature: current.Get("temperature_2m").Float(),
		Humidity:    current.Get("relative_humidity_2m").Float(),
		Pressure:    current.Get("pressure_msl").Float(),
		WindSpeed:   current.Get("wind_speed_10m").Float(),
		Code:        code,
		Description: Describe(code),
	}, nil
}

// Returns current weather in specified city.
// Country is an optional ISO-3166 code, e.g. "BR".
func (c *Client) Current(ctx context.Context, city string, country string) (*Weather, error) {
	loc, err := c.geocode(ctx, city, country)
	if err != nil {
		return nil, err
	}
	return c.current(ctx, loc)
}

// Returns current weather at specified coordinates.
func (c *Client) AtCoordinates(ctx context.Context, lat float64, lon float64) (*Weather, error) {
	return c.current(ctx, &location{latitude: lat, longitude: lon})
}

// Returns forecast for next days (1 to MaxForecastDays).
func (c *Client) Daily(ctx context.Context, city string, country string, days int) ([]DailyForecast, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, ErrInvalidDays
	}

	loc, err := c.geocode(ctx, city, country)
	if err != nil {
		return nil, err
	}

	params := coordinates(loc.latitude, loc.longitude)
	params.Set("daily", dailyFields)
	params.Set("forecast_days", strconv.Itoa(days))

	body, err := c.fetch(ctx, c.forecastURL, params)
	if err != nil {
		return nil, err
	}

	daily := gjson.GetBytes(body, "daily")
	dates := daily.Get("time").Array()
	highs := daily.Get("temperature_2m_max").Array()
	lows := daily.Get("temperature_2m_min").Array()
	precipitation := daily.Get("precipitation_sum").Array()
	codes := daily.Get("weather_code").Array()

	at := func(values []gjson.Result, i int) gjson.Result {
		if i < len(values) {
			return values[i]
		}
		return gjson.Result{}
	}

	forecast := make([]DailyForecast, len(dates))
	for i, date := range dates {
		code := int(at(codes, i).Int())
		forecast[i] = DailyForecast{
			Date:          date.String(),
			Max:           at(highs, i).Float(),
			Min:           at(lows, i).Float(),
			Precipitation: at(precipitation, i).Float(),
			Code:          code,
			Description:   Describe(code),
		}
	}

	return forecast, nil
}
