package service

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts raw form text into a number. Blank, unparsable and
// non-finite input yields fallback. A single decimal comma is accepted.
func ParseNumber(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	s = strings.Replace(s, ",", ".", 1)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}

// clampFinite keeps a derived value representable. Overflow saturates at
// ±math.MaxFloat64 and NaN becomes 0.
func clampFinite(value float64) float64 {
	switch {
	case math.IsNaN(value):
		return 0
	case math.IsInf(value, 1):
		return math.MaxFloat64
	case math.IsInf(value, -1):
		return -math.MaxFloat64
	}
	return value
}

// maxFractionalMagnitude is 2^52; larger float64 values have no fractional part.
const maxFractionalMagnitude = 1 << 52

// roundTo1Decimal redondea un float64 a 1 decimal, alejándose de cero en .5
func roundTo1Decimal(value float64) float64 {
	if math.Abs(value) >= maxFractionalMagnitude {
		return value
	}
	return math.Round(value*10) / 10
}
