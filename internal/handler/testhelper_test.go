package handler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/zakat-calculator/internal/middleware"
	"github.com/anyulbade/zakat-calculator/internal/model"
	"github.com/anyulbade/zakat-calculator/internal/service"
)

type stubAdapter struct {
	gold   map[model.Carat]float64
	silver float64
	calls  atomic.Int32
}

func (s *stubAdapter) Name() string { return "stub" }

func (s *stubAdapter) Fetch(_ context.Context, q model.RateQuery) model.ResolvedRate {
	s.calls.Add(1)
	if q.Instrument == model.Silver {
		return model.Known(s.silver)
	}
	return model.Known(s.gold[q.Carat])
}

func setupRouter(t *testing.T, adapter *stubAdapter) *gin.Engine {
	t.Helper()

	ratesHandler := NewRatesHandler(service.NewRateService(adapter))
	zakatHandler := NewZakatHandler(service.NewZakatService())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())

	router.POST("/get_initial_rates", ratesHandler.GetRates)
	router.POST("/calculate", zakatHandler.Calculate)
	api := router.Group("/api/v1")
	api.POST("/rates", ratesHandler.GetRates)
	api.POST("/zakat", zakatHandler.Calculate)

	return router
}
