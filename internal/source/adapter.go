// Package source fetches per-gram gold and silver prices from upstream price
// sites and feeds. Adapters never return errors: any failure resolves to
// model.Unknown so callers can always produce an answer.
package source

import (
	"context"
	"strings"
	"time"

	"github.com/anyulbade/zakat-calculator/internal/model"
)

// Adapter is one way of sourcing prices. Exactly one is active per deployment.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, q model.RateQuery) model.ResolvedRate
}

type Options struct {
	Timeout     time.Duration
	DefaultCity string
	UserAgent   string

	GoldURLTemplate   string
	SilverURLTemplate string

	CrawlerGoldURLTemplate   string
	CrawlerSilverURLTemplate string

	FeedURL    string
	FeedAPIKey string
	FeedMarkup float64
}

// NewByName builds the adapter named by configuration. Unknown names fall
// back to the browser scraper.
func NewByName(name string, opts Options) Adapter {
	cities := NewCityResolver(opts.DefaultCity)

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crawler":
		client := NewClient(CrawlerPolicy.WithUserAgent(opts.UserAgent), opts.Timeout)
		return NewScrapeAdapter("crawler", client, cities, Pages{
			Gold:   orDefault(opts.CrawlerGoldURLTemplate, DefaultGoldURLTemplate),
			Silver: orDefault(opts.CrawlerSilverURLTemplate, DefaultSilverURLTemplate),
		})
	case "feed":
		client := NewClient(FeedPolicy.WithUserAgent(opts.UserAgent), opts.Timeout)
		return NewFeedAdapter(client, opts.FeedURL, opts.FeedAPIKey, opts.FeedMarkup)
	default:
		client := NewClient(BrowserPolicy.WithUserAgent(opts.UserAgent), opts.Timeout)
		return NewScrapeAdapter("browser", client, cities, Pages{
			Gold:   orDefault(opts.GoldURLTemplate, DefaultGoldURLTemplate),
			Silver: orDefault(opts.SilverURLTemplate, DefaultSilverURLTemplate),
		})
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
