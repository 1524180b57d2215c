// Package pricetext turns quoted prices such as "₹ 6,245.50" into numbers.
package pricetext

import (
	"math"
	"strconv"
	"strings"
)

// Normalize keeps only digits and decimal points and parses the rest.
// It returns 0 for anything it cannot read.
func Normalize(text string) float64 {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	if clean == "" {
		return 0
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
