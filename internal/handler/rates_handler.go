package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/zakat-calculator/internal/dto"
	"github.com/anyulbade/zakat-calculator/internal/middleware"
	"github.com/anyulbade/zakat-calculator/internal/model"
	"github.com/anyulbade/zakat-calculator/internal/service"
)

const RatesDegradedHeader = "X-Rates-Degraded"

type RatesHandler struct {
	svc *service.RateService
}

func NewRatesHandler(svc *service.RateService) *RatesHandler {
	return &RatesHandler{svc: svc}
}

// GetRates resolves gold at the requested carat, 24K gold and silver for a
// city. Unresolved rates are reported as 0.
func (h *RatesHandler) GetRates(c *gin.Context) {
	var req dto.RatesRequest
	if !bindLenient(c, &req) {
		return
	}

	carat, ok := model.ParseCarat(string(req.Carat))
	if !ok && req.Carat != "" {
		log.Warn().Str("carat", string(req.Carat)).Msg("unsupported carat, using default")
	}

	rates := h.svc.Resolve(c.Request.Context(), req.Location(), carat)
	if rates.Degraded() {
		c.Header(RatesDegradedHeader, "true")
	}

	c.JSON(http.StatusOK, dto.RatesResponse{
		GoldRateUser: rates.GoldUser.Value,
		GoldRate24K:  rates.Gold24K.Value,
		SilverRate:   rates.Silver.Value,
	})
}

// bindLenient treats an empty body as {} and reports anything that is not a
// JSON object through the error middleware.
func bindLenient(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	_ = c.Error(fmt.Errorf("%w: %w", middleware.ErrInvalidBody, err))
	return false
}
