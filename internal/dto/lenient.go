package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number decodes numbers, numeric strings and null alike. Anything it cannot
// read, including negative and non-finite values, becomes 0 instead of a
// decoding error.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(parseNumber(b))
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

func parseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}

	var raw string
	switch b[0] {
	case '"':
		if err := json.Unmarshal(b, &raw); err != nil {
			return 0
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(b)
	default:
		return 0
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Text decodes a JSON string or number into its textual form. Other values
// decode to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = ""
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*t = Text(strings.TrimSpace(s))
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(b)
	}
	return nil
}
