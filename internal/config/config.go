package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/zakat-calculator/internal/source"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	RateSource   string
	FetchTimeout time.Duration
	DefaultCity  string
	UserAgent    string

	GoldURLTemplate          string
	SilverURLTemplate        string
	CrawlerGoldURLTemplate   string
	CrawlerSilverURLTemplate string

	FeedURL    string
	FeedAPIKey string
	FeedMarkup float64
}

// Load reads configuration from the environment. A .env file in the working
// directory, if present, fills in variables that are not already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RateSource:   getEnv("RATE_SOURCE", "browser"),
		FetchTimeout: getDuration("FETCH_TIMEOUT", source.DefaultTimeout),
		DefaultCity:  getEnv("DEFAULT_CITY", source.DefaultCity),
		UserAgent:    getEnv("USER_AGENT", ""),

		GoldURLTemplate:          getEnv("GOLD_URL_TEMPLATE", source.DefaultGoldURLTemplate),
		SilverURLTemplate:        getEnv("SILVER_URL_TEMPLATE", source.DefaultSilverURLTemplate),
		CrawlerGoldURLTemplate:   getEnv("CRAWLER_GOLD_URL_TEMPLATE", source.DefaultGoldURLTemplate),
		CrawlerSilverURLTemplate: getEnv("CRAWLER_SILVER_URL_TEMPLATE", source.DefaultSilverURLTemplate),

		FeedURL:    getEnv("FEED_URL", ""),
		FeedAPIKey: getEnv("FEED_API_KEY", ""),
		FeedMarkup: getFloat("FEED_MARKUP", source.DefaultMarkup),
	}
}

func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Timeout:                  c.FetchTimeout,
		DefaultCity:              c.DefaultCity,
		UserAgent:                c.UserAgent,
		GoldURLTemplate:          c.GoldURLTemplate,
		SilverURLTemplate:        c.SilverURLTemplate,
		CrawlerGoldURLTemplate:   c.CrawlerGoldURLTemplate,
		CrawlerSilverURLTemplate: c.CrawlerSilverURLTemplate,
		FeedURL:                  c.FeedURL,
		FeedAPIKey:               c.FeedAPIKey,
		FeedMarkup:               c.FeedMarkup,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid number, using default")
		return fallback
	}
	return v
}
