package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/anyulbade/zakat-calculator/internal/model"
)

// NisabSilverGrams is the weight of silver whose value sets the nisab.
const NisabSilverGrams = 595

var zakatRate = decimal.RequireFromString("0.025")

type ZakatService struct{}

func NewZakatService() *ZakatService {
	return &ZakatService{}
}

// Evaluate decides whether zakat is due on the declared assets. It never
// fails: unknown rates count as zero and the result degrades instead.
func (s *ZakatService) Evaluate(assets model.AssetDeclaration, goldRate, silverRate float64) model.EligibilityResult {
	a := assets.Normalized()
	gold := decimal.NewFromFloat(model.NonNegative(goldRate))
	silver := decimal.NewFromFloat(model.NonNegative(silverRate))

	goldValue := decimal.NewFromFloat(a.GoldWeight).Mul(gold)

	// A declared silver value overrides weight × rate.
	silverValue := decimal.NewFromFloat(a.SilverValue)
	if silverValue.IsZero() {
		silverValue = decimal.NewFromFloat(a.SilverWeight).Mul(silver)
	}

	netWorth := goldValue.
		Add(silverValue).
		Add(decimal.NewFromFloat(a.Cash)).
		Add(decimal.NewFromFloat(a.Investments)).
		Add(decimal.NewFromFloat(a.Business)).
		Sub(decimal.NewFromFloat(a.Liabilities))

	nisab := decimal.NewFromInt(NisabSilverGrams).Mul(silver)
	// A threshold that rounds to 0 would be reported as 0, so it counts as no
	// silver rate at all.
	if nisab.Round(2).IsZero() {
		nisab = decimal.Zero
	}

	var eligible bool
	if nisab.IsPositive() {
		eligible = netWorth.GreaterThanOrEqual(nisab)
	} else {
		// No silver rate: fall back to any positive net worth.
		eligible = netWorth.IsPositive()
	}

	payable := decimal.Zero
	if eligible {
		payable = netWorth.Mul(zakatRate)
	}

	return model.EligibilityResult{
		NetWorth:        round2(netWorth),
		NisabThreshold:  round2(nisab),
		IsEligible:      eligible,
		ZakatPayable:    round2(payable),
		GoldValueCalc:   round2(goldValue),
		SilverValueCalc: round2(silverValue),
		NisabDegraded:   !nisab.IsPositive(),
	}
}

// round2 rounds half away from zero and saturates at the float64 range.
func round2(d decimal.Decimal) float64 {
	v := d.Round(2).InexactFloat64()
	if math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, v)
	}
	return v
}
