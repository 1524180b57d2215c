package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/zakat-calculator/internal/model"
	"github.com/anyulbade/zakat-calculator/internal/source"
)

type RateService struct {
	adapter source.Adapter
}

func NewRateService(adapter source.Adapter) *RateService {
	return &RateService{adapter: adapter}
}

func (s *RateService) SourceName() string {
	return s.adapter.Name()
}

// Resolve fetches gold at the requested carat, 24K gold and silver. The three
// lookups are independent; a failed one leaves its rate unknown.
func (s *RateService) Resolve(ctx context.Context, city string, carat model.Carat) model.RateSet {
	var (
		g     errgroup.Group
		rates model.RateSet
	)

	g.Go(func() error {
		rates.GoldUser = s.fetch(ctx, model.GoldQuery(city, carat))
		return nil
	})
	g.Go(func() error {
		rates.Gold24K = s.fetch(ctx, model.GoldQuery(city, model.Carat24))
		return nil
	})
	g.Go(func() error {
		rates.Silver = s.fetch(ctx, model.SilverQuery(city))
		return nil
	})
	_ = g.Wait()

	log.Info().
		Str("adapter", s.adapter.Name()).
		Str("city", city).
		Int("carat", int(carat)).
		Float64("gold_user", rates.GoldUser.Value).
		Float64("gold_24k", rates.Gold24K.Value).
		Float64("silver", rates.Silver.Value).
		Bool("degraded", rates.Degraded()).
		Msg("rates resolved")

	return rates
}

func (s *RateService) fetch(ctx context.Context, q model.RateQuery) model.ResolvedRate {
	rate := s.adapter.Fetch(ctx, q)
	if !rate.Present {
		return model.Unknown
	}
	return model.Known(rate.Value)
}
