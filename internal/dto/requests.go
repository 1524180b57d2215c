package dto

type RatesRequest struct {
	City  Text `json:"city"`
	State Text `json:"state"`
	Carat Text `json:"carat"`
}

// Location prefers "city" and falls back to the legacy "state" key.
func (r RatesRequest) Location() string {
	if r.City != "" {
		return string(r.City)
	}
	return string(r.State)
}

type EvaluateRequest struct {
	GoldWeight   Number `json:"gold_weight"`
	SilverWeight Number `json:"silver_weight"`
	SilverValue  Number `json:"silver_value"`
	Cash         Number `json:"cash"`
	Investments  Number `json:"investments"`
	Business     Number `json:"business"`
	Liabilities  Number `json:"liabilities"`
	RateGoldUser Number `json:"rate_gold_user"`
	RateSilver   Number `json:"rate_silver"`
	RateGold24K  Number `json:"rate_gold_24k"`
}
