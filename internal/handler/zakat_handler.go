package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/zakat-calculator/internal/dto"
	"github.com/anyulbade/zakat-calculator/internal/model"
	"github.com/anyulbade/zakat-calculator/internal/service"
)

const NisabDegradedHeader = "X-Nisab-Degraded"

type ZakatHandler struct {
	svc *service.ZakatService
}

func NewZakatHandler(svc *service.ZakatService) *ZakatHandler {
	return &ZakatHandler{svc: svc}
}

func (h *ZakatHandler) Calculate(c *gin.Context) {
	var req dto.EvaluateRequest
	if !bindLenient(c, &req) {
		return
	}

	assets := model.AssetDeclaration{
		GoldWeight:   req.GoldWeight.Float64(),
		SilverWeight: req.SilverWeight.Float64(),
		SilverValue:  req.SilverValue.Float64(),
		Cash:         req.Cash.Float64(),
		Investments:  req.Investments.Float64(),
		Business:     req.Business.Float64(),
		Liabilities:  req.Liabilities.Float64(),
	}

	res := h.svc.Evaluate(assets, req.RateGoldUser.Float64(), req.RateSilver.Float64())
	if res.NisabDegraded {
		c.Header(NisabDegradedHeader, "true")
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		NetWorth:        res.NetWorth,
		ZakatPayable:    res.ZakatPayable,
		IsEligible:      res.IsEligible,
		NisabThreshold:  res.NisabThreshold,
		GoldValueCalc:   res.GoldValueCalc,
		SilverValueCalc: res.SilverValueCalc,
	})
}
