package dto

type RatesResponse struct {
	GoldRateUser float64 `json:"gold_rate_user"`
	GoldRate24K  float64 `json:"gold_rate_24k"`
	SilverRate   float64 `json:"silver_rate"`
}

type EligibilityResponse struct {
	NetWorth        float64 `json:"net_worth"`
	ZakatPayable    float64 `json:"zakat_payable"`
	IsEligible      bool    `json:"is_eligible"`
	NisabThreshold  float64 `json:"nisab_threshold"`
	GoldValueCalc   float64 `json:"gold_value_calc"`
	SilverValueCalc float64 `json:"silver_value_calc"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	RateSource string `json:"rate_source"`
}
