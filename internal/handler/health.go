package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/zakat-calculator/internal/dto"
)

type HealthHandler struct {
	rateSource string
}

func NewHealthHandler(rateSource string) *HealthHandler {
	return &HealthHandler{rateSource: rateSource}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "healthy",
		RateSource: h.rateSource,
	})
}
