package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/zakat-calculator/internal/config"
	"github.com/anyulbade/zakat-calculator/internal/handler"
	"github.com/anyulbade/zakat-calculator/internal/middleware"
	"github.com/anyulbade/zakat-calculator/internal/service"
	"github.com/anyulbade/zakat-calculator/internal/source"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	adapter := source.NewByName(cfg.RateSource, cfg.SourceOptions())
	log.Info().
		Str("rate_source", adapter.Name()).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Str("default_city", cfg.DefaultCity).
		Msg("rate source configured")

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(adapter.Name())
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, adapter)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, adapter source.Adapter) {
	rateService := service.NewRateService(adapter)
	zakatService := service.NewZakatService()

	ratesHandler := handler.NewRatesHandler(rateService)
	zakatHandler := handler.NewZakatHandler(zakatService)

	// Paths used by the existing calculator page.
	router.POST("/get_initial_rates", ratesHandler.GetRates)
	router.POST("/calculate", zakatHandler.Calculate)

	api := router.Group("/api/v1")
	{
		api.POST("/rates", ratesHandler.GetRates)
		api.POST("/zakat", zakatHandler.Calculate)
	}
}
