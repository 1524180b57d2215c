package source

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/zakat-calculator/internal/model"
)

const (
	DefaultGoldURLTemplate   = "https://www.goodreturns.in/gold-rates/{city}.html"
	DefaultSilverURLTemplate = "https://www.goodreturns.in/silver-rates/{city}.html"
)

// Pages holds URL templates; "{city}" is replaced by the city slug.
type Pages struct {
	Gold   string
	Silver string
}

func (p Pages) URL(q model.RateQuery, slug string) string {
	tmpl := p.Gold
	if q.Instrument == model.Silver {
		tmpl = p.Silver
	}
	return strings.ReplaceAll(tmpl, "{city}", slug)
}

// GoldStrategies: exact carat id, 24K scaled by purity, then a table scan.
func GoldStrategies() Chain {
	return Chain{
		CaratID(),
		PurityFrom24K(),
		TableScan{Unit: "1 gram", Context: GoldTableWords, Rivals: GoldRivalWords},
	}
}

// SilverStrategies: exact 1g id, 1kg and 10g quotes divided down, then a
// table scan.
func SilverStrategies() Chain {
	return Chain{
		FixedID("silver-1g-price"),
		PerGramFrom("silver-1kg-price", 1000),
		PerGramFrom("silver-10g-price", 10),
		TableScan{Unit: "1 gram", Context: SilverTableWords},
	}
}

// ScrapeAdapter reads prices out of city rate pages.
type ScrapeAdapter struct {
	name   string
	client *Client
	cities *CityResolver
	pages  Pages
	gold   Chain
	silver Chain
}

func NewScrapeAdapter(name string, client *Client, cities *CityResolver, pages Pages) *ScrapeAdapter {
	return &ScrapeAdapter{
		name:   name,
		client: client,
		cities: cities,
		pages:  pages,
		gold:   GoldStrategies(),
		silver: SilverStrategies(),
	}
}

func (a *ScrapeAdapter) Name() string { return a.name }

func (a *ScrapeAdapter) Fetch(ctx context.Context, q model.RateQuery) (rate model.ResolvedRate) {
	url := a.pages.URL(q, a.cities.Slug(q.City))
	logger := log.With().
		Str("adapter", a.name).
		Str("instrument", string(q.Instrument)).
		Str("url", url).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("price extraction panicked")
			rate = model.Unknown
		}
	}()

	body, err := a.client.Get(ctx, url)
	if err != nil {
		logger.Warn().Err(err).Msg("price page unavailable")
		return model.Unknown
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logger.Warn().Err(err).Msg("price page unparseable")
		return model.Unknown
	}

	chain := a.gold
	if q.Instrument == model.Silver {
		chain = a.silver
	}

	v, strategy, ok := chain.Extract(doc, q)
	if !ok {
		logger.Warn().Msg("no extraction strategy matched")
		return model.Unknown
	}

	logger.Debug().Str("strategy", strategy).Float64("value", v).Msg("price extracted")
	return model.Known(v)
}
