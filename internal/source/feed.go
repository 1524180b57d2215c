package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/zakat-calculator/internal/model"
)

const (
	GramsPerTroyOunce = 31.1034768

	// DefaultMarkup lifts spot prices toward local retail prices, which carry
	// duties and dealer margins.
	DefaultMarkup = 1.12

	// FeedUnit is the only quote unit the conversion understands.
	FeedUnit = "toz"
)

// FeedQuote is the numeric feed payload: spot prices per troy ounce in the
// deployment currency.
type FeedQuote struct {
	Currency string `json:"currency"`
	Unit     string `json:"unit"`
	Metals   struct {
		Gold   float64 `json:"gold"`
		Silver float64 `json:"silver"`
	} `json:"metals"`
}

// FeedAdapter reads a national spot feed instead of scraping city pages, so
// the city in a query is ignored.
type FeedAdapter struct {
	client *Client
	url    string
	apiKey string
	markup float64
}

func NewFeedAdapter(client *Client, feedURL, apiKey string, markup float64) *FeedAdapter {
	if markup <= 0 {
		markup = DefaultMarkup
	}
	return &FeedAdapter{client: client, url: feedURL, apiKey: apiKey, markup: markup}
}

func (a *FeedAdapter) Name() string { return "feed" }

func (a *FeedAdapter) Fetch(ctx context.Context, q model.RateQuery) (rate model.ResolvedRate) {
	logger := log.With().
		Str("adapter", "feed").
		Str("instrument", string(q.Instrument)).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("feed decoding panicked")
			rate = model.Unknown
		}
	}()

	endpoint, err := a.endpoint()
	if err != nil {
		logger.Warn().Err(err).Msg("feed url invalid")
		return model.Unknown
	}

	body, err := a.client.Get(ctx, endpoint)
	if err != nil {
		logger.Warn().Err(err).Msg("feed unavailable")
		return model.Unknown
	}

	var quote FeedQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		logger.Warn().Err(err).Msg("feed payload unparseable")
		return model.Unknown
	}
	if !strings.EqualFold(strings.TrimSpace(quote.Unit), FeedUnit) {
		logger.Warn().Str("unit", quote.Unit).Msg("feed quotes in an unsupported unit")
		return model.Unknown
	}

	return model.Known(a.perGram(quote, q))
}

func (a *FeedAdapter) perGram(quote FeedQuote, q model.RateQuery) float64 {
	if q.Instrument == model.Silver {
		return quote.Metals.Silver / GramsPerTroyOunce * a.markup
	}
	return quote.Metals.Gold / GramsPerTroyOunce * a.markup * q.Carat.Purity()
}

func (a *FeedAdapter) endpoint() (string, error) {
	if a.url == "" {
		return "", errors.New("feed url not configured")
	}
	u, err := url.Parse(a.url)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	if a.apiKey != "" {
		params := u.Query()
		params.Set("api_key", a.apiKey)
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}
