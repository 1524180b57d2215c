package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Instrument string

const (
	Gold   Instrument = "GOLD"
	Silver Instrument = "SILVER"
)

type Carat int

const (
	Carat18 Carat = 18
	Carat22 Carat = 22
	Carat24 Carat = 24

	DefaultCarat = Carat22
)

// ParseCarat accepts "18", "22", "24" with an optional K suffix, also
// written as whole-number floats such as "18.0".
// Anything else yields DefaultCarat and false.
func ParseCarat(s string) (Carat, bool) {
	s = strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "K")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultCarat, false
	}
	switch f {
	case 18, 22, 24:
		return Carat(f), true
	}
	return DefaultCarat, false
}

// Purity is the fraction of 24 parts.
func (c Carat) Purity() float64 {
	return float64(c) / 24
}

func (c Carat) String() string {
	return fmt.Sprintf("%dK", int(c))
}

type RateQuery struct {
	City       string
	Instrument Instrument
	Carat      Carat
}

func GoldQuery(city string, carat Carat) RateQuery {
	return RateQuery{City: city, Instrument: Gold, Carat: carat}
}

func SilverQuery(city string) RateQuery {
	return RateQuery{City: city, Instrument: Silver}
}

// ResolvedRate is a per-gram price. The zero value means "unknown".
type ResolvedRate struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

var Unknown = ResolvedRate{}

// Known returns Unknown for zero, negative or non-finite values.
func Known(v float64) ResolvedRate {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown
	}
	return ResolvedRate{Value: v, Present: true}
}

type RateSet struct {
	GoldUser ResolvedRate
	Gold24K  ResolvedRate
	Silver   ResolvedRate
}

func (r RateSet) Degraded() bool {
	return !r.GoldUser.Present || !r.Gold24K.Present || !r.Silver.Present
}

type AssetDeclaration struct {
	GoldWeight   float64
	SilverWeight float64
	SilverValue  float64
	Cash         float64
	Investments  float64
	Business     float64
	Liabilities  float64
}

// Normalized clamps every field to a finite, non-negative number.
func (a AssetDeclaration) Normalized() AssetDeclaration {
	return AssetDeclaration{
		GoldWeight:   NonNegative(a.GoldWeight),
		SilverWeight: NonNegative(a.SilverWeight),
		SilverValue:  NonNegative(a.SilverValue),
		Cash:         NonNegative(a.Cash),
		Investments:  NonNegative(a.Investments),
		Business:     NonNegative(a.Business),
		Liabilities:  NonNegative(a.Liabilities),
	}
}

func NonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

type EligibilityResult struct {
	NetWorth        float64
	NisabThreshold  float64
	IsEligible      bool
	ZakatPayable    float64
	GoldValueCalc   float64
	SilverValueCalc float64

	// NisabDegraded is set when no silver rate was available and eligibility
	// was decided against zero instead of the nisab.
	NisabDegraded bool
}
