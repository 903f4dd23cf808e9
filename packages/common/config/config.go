package config

import (
	"classroom/packages/common/logger"
	"errors"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configLogger = logger.NewSource("CONFIG", logger.Default)

const DefaultPath = "classroom.config.yaml"

// Wrapper for time.ParseDuration. Panics on error.
// All durations are checked by validator on load, so it shouldn't happen.
func parseDuration(raw string) time.Duration {
	v, e := time.ParseDuration(raw)

	if e != nil {
		panic(e)
	}

	return v
}

type dbConfig struct {
	Path               string `yaml:"db-path" validate:"required"`
	RawQueryTimeout    string `yaml:"db-query-timeout" validate:"required,duration"`
	MaxOpenConnections int    `yaml:"db-max-open-conns" validate:"gte=1"`
}

func (c *dbConfig) QueryTimeout() time.Duration {
	return parseDuration(c.RawQueryTimeout)
}

type httpServerConfig struct {
	Port           string   `yaml:"http-port" validate:"required"`
	AllowedOrigins []string `yaml:"http-allowed-origins" validate:"required,min=1"`
	BodyLimit      string   `yaml:"http-body-limit" validate:"required"`
	RateLimiting   bool     `yaml:"http-rate-limiting" validate:"exists"`
}

type authConfig struct {
	RawAccessTokenTTL    string `yaml:"access-token-ttl" validate:"required,duration"`
	MaxLoginAttempts     int    `yaml:"max-login-attempts" validate:"gte=1"`
	RawLoginLockDuration string `yaml:"login-lock-duration" validate:"required,duration"`
}

func (c *authConfig) AccessTokenTTL() time.Duration {
	return parseDuration(c.RawAccessTokenTTL)
}

func (c *authConfig) LoginLockDuration() time.Duration {
	return parseDuration(c.RawLoginLockDuration)
}

type cacheConfig struct {
	Enabled             bool   `yaml:"cache-enabled" validate:"exists"`
	RawSocketTimeout    string `yaml:"cache-socket-timeout" validate:"required,duration"`
	RawOperationTimeout string `yaml:"cache-operation-timeout" validate:"required,duration"`
	RawTTL              string `yaml:"cache-ttl" validate:"required,duration"`
}

func (c *cacheConfig) SocketTimeout() time.Duration {
	return parseDuration(c.RawSocketTimeout)
}

func (c *cacheConfig) OperationTimeout() time.Duration {
	return parseDuration(c.RawOperationTimeout)
}

func (c *cacheConfig) TTL() time.Duration {
	return parseDuration(c.RawTTL)
}

type postsConfig struct {
	DefaultPageSize int `yaml:"posts-default-page-size" validate:"gte=1,ltefield=MaxPageSize"`
	MaxPageSize     int `yaml:"posts-max-page-size" validate:"gte=1"`
}

type apiConfig struct {
	GeocodingURL       string `yaml:"openmeteo-geocoding-url" validate:"required,url"`
	ForecastURL        string `yaml:"openmeteo-forecast-url" validate:"required,url"`
	OpenLibraryURL     string `yaml:"openlibrary-search-url" validate:"required,url"`
	RawTimeout         string `yaml:"api-timeout" validate:"required,duration"`
	BreakerFailures    uint32 `yaml:"api-breaker-failures" validate:"gte=1"`
	RawBreakerCooldown string `yaml:"api-breaker-cooldown" validate:"required,duration"`
}

func (c *apiConfig) Timeout() time.Duration {
	return parseDuration(c.RawTimeout)
}

func (c *apiConfig) BreakerCooldown() time.Duration {
	return parseDuration(c.RawBreakerCooldown)
}

type sentryConfig struct {
	TraceSampleRate float64 `yaml:"sentry-trace-sample-rate" validate:"gte=0,lte=1"`
}

type debugConfig struct {
	Enabled      bool `yaml:"debug-mode" validate:"exists"`
	LogDbQueries bool `yaml:"debug-log-db-queries" validate:"exists"`
}

type appConfig struct {
	ShowLogs         bool   `yaml:"show-logs" validate:"exists"`
	TraceLogsEnabled bool   `yaml:"trace-logs" validate:"exists"`
	ServiceID        string `yaml:"service-id" validate:"required"`
	// Empty value disables file logs
	LogDir string `yaml:"log-dir" validate:"exists"`
}

type Configs struct {
	dbConfig         `yaml:",inline"`
	httpServerConfig `yaml:",inline"`
	authConfig       `yaml:",inline"`
	cacheConfig      `yaml:",inline"`
	postsConfig      `yaml:",inline"`
	apiConfig        `yaml:",inline"`
	sentryConfig     `yaml:",inline"`
	debugConfig      `yaml:",inline"`
	appConfig        `yaml:",inline"`
}

// Returns configs with default value for every option.
// Config file only needs to contain options which differ from defaults.
func Defaults() *Configs {
	return &Configs{
		dbConfig: dbConfig{
			Path:               "blog.db",
			RawQueryTimeout:    "5s",
			MaxOpenConnections: 4,
		},
		httpServerConfig: httpServerConfig{
			Port:           "5000",
			AllowedOrigins: []string{"*"},
			BodyLimit:      "1M",
			RateLimiting:   true,
		},
		authConfig: authConfig{
			RawAccessTokenTTL:    "60m",
			MaxLoginAttempts:     3,
			RawLoginLockDuration: "15m",
		},
		cacheConfig: cacheConfig{
			Enabled:             false,
			RawSocketTimeout:    "3s",
			RawOperationTimeout: "1s",
			RawTTL:              "5m",
		},
		postsConfig: postsConfig{
			DefaultPageSize: 10,
			MaxPageSize:     50,
		},
		apiConfig: apiConfig{
			GeocodingURL:       "https://geocoding-api.open-meteo.com/v1/search",
			ForecastURL:        "https://api.open-meteo.com/v1/forecast",
			OpenLibraryURL:     "https://openlibrary.org/search.json",
			RawTimeout:         "5s",
			BreakerFailures:    5,
			RawBreakerCooldown: "30s",
		},
		sentryConfig: sentryConfig{
			TraceSampleRate: 0.2,
		},
		appConfig: appConfig{
			ShowLogs:  true,
			ServiceID: "classroom",
			LogDir:    "",
		},
	}
}

var DB *dbConfig
var HTTP *httpServerConfig
var Auth *authConfig
var Cache *cacheConfig
var Posts *postsConfig
var API *apiConfig
var Sentry *sentryConfig
var Debug *debugConfig
var App *appConfig

var isInit bool = false

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("exists", func(fl validator.FieldLevel) bool {
		return true // Always pass (just ensure that the field exists)
	})
	validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})

	return validate
}

// Reads config file at path on top of Defaults().
// Missing file isn't an error, in that case defaults are used.
func Load(path string) (*Configs, error) {
	dest := Defaults()

	configLogger.Info("Reading config file...", nil)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			configLogger.Warning("Config file "+path+" not found, using defaults", nil)
			return dest, Validate(dest)
		}
		return nil, err
	}
	defer file.Close()

	rawConfig, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	configLogger.Info("Reading config file: OK", nil)

	configLogger.Info("Parsing config file...", nil)

	if err := yaml.Unmarshal(rawConfig, dest); err != nil {
		return nil, err
	}

	configLogger.Info("Parsing config file: OK", nil)

	return dest, Validate(dest)
}

func Validate(c *Configs) error {
	configLogger.Info("Validating config...", nil)

	if err := newValidator().Struct(c); err != nil {
		return err
	}

	configLogger.Info("Validating config: OK", nil)

	return nil
}

// Makes c the active configuration.
func Apply(c *Configs) {
	DB = &c.dbConfig
	HTTP = &c.httpServerConfig
	Auth = &c.authConfig
	Cache = &c.cacheConfig
	Posts = &c.postsConfig
	API = &c.apiConfig
	Sentry = &c.sentryConfig
	Debug = &c.debugConfig
	App = &c.appConfig

	logger.ServiceName = c.ServiceID
}

func Init(path string) {
	if isInit {
		configLogger.Fatal("Failed to initialize config", "Config already initialized", nil)
	}

	configLogger.Info("Initializing...", nil)

	configs, err := Load(path)
	if err != nil {
		configLogger.Fatal("Failed to load config", err.Error(), nil)
	}

	if err := loadSecrets(configs); err != nil {
		configLogger.Fatal("Failed to load secrets", err.Error(), nil)
	}

	Apply(configs)

	configLogger.Info("Initializing: OK", nil)

	isInit = true
}
