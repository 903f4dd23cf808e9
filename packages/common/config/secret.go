package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type secrets struct {
	JWTSecret []byte `validate:"required,min=16"`

	CacheURI      string
	CachePassword string
	CacheDB       int `validate:"gte=0"`

	// Empty value disables sentry
	SentryDSN string
}

var Secret secrets

func getEnv(key string) (string, bool) {
	env, exists := os.LookupEnv(key)

	if exists {
		configLogger.Trace("Loaded: "+key, nil)
	}

	return strings.TrimSpace(env), exists
}

// Loads secrets from environment (and from .env file if it exists)
// and applies env overrides to c.
func loadSecrets(c *Configs) error {
	configLogger.Info("Loading environment variables...", nil)

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		configLogger.Trace(".env file not found, using process environment only", nil)
	}

	s, err := secretsFromEnv(c)
	if err != nil {
		return err
	}

	configLogger.Info("Loading environment variables: OK", nil)

	configLogger.Info("Validating secrets...", nil)

	if err := validateSecrets(s, c); err != nil {
		return err
	}

	configLogger.Info("Validating secrets: OK", nil)

	Secret = *s

	return nil
}

func secretsFromEnv(c *Configs) (*secrets, error) {
	s := new(secrets)

	if v, ok := getEnv("BLOG_JWT_SECRET"); ok {
		s.JWTSecret = []byte(v)
	}

	if v, ok := getEnv("BLOG_DB_PATH"); ok && v != "" {
		c.Path = v
	}

	if v, ok := getEnv("BLOG_JWT_EXP_MINUTES"); ok && v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 1 {
			return nil, errors.New("BLOG_JWT_EXP_MINUTES must be a positive integer, got: " + v)
		}
		c.RawAccessTokenTTL = strconv.Itoa(minutes) + "m"
	}

	s.CacheURI, _ = getEnv("CACHE_URI")
	s.CachePassword, _ = getEnv("CACHE_PASSWORD")

	if v, ok := getEnv("CACHE_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("Failed to parse CACHE_DB env variable: " + err.Error())
		}
		s.CacheDB = db
	}

	s.SentryDSN, _ = getEnv("SENTRY_DSN")

	return s, nil
}

func validateSecrets(s *secrets, c *Configs) error {
	if err := newValidator().Struct(s); err != nil {
		return err
	}

	if c.cacheConfig.Enabled && s.CacheURI == "" {
		return errors.New("Missing required env variable: CACHE_URI (cache is enabled)")
	}

	return nil
}
