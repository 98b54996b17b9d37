package service

import (
	"context"
	"fmt"
	"strconv"

	"pricing-estimator/domain"
	"pricing-estimator/repository"
)

type ROIService struct {
	cache repository.CacheRepository
}

// NewROIService creates a new ROIService backed by the given result cache.
func NewROIService(cache repository.CacheRepository) *ROIService {
	return &ROIService{cache: cache}
}

// NewROIInput coerces raw form values. Revenue and hours fall back to 0,
// the hourly rate to DefaultHourlyRate.
func NewROIInput(revenue, hours, rate string) domain.ROIInput {
	return domain.ROIInput{
		MonthlyRevenue:  ParseNumber(revenue, DefaultMonthlyRevenue),
		AutomationHours: ParseNumber(hours, DefaultAutomationHours),
		HourlyRate:      ParseNumber(rate, DefaultHourlyRate),
	}
}

// CalculateROI derives savings, ROI and payback period from the input.
//
// Without revenue both ROI and payback are 0. With revenue but no savings
// the payback period is reported as unavailable instead of infinite.
// Results that overflow float64 saturate at ±math.MaxFloat64.
func CalculateROI(input domain.ROIInput) domain.ROIResult {
	monthlySavings := input.AutomationHours * input.HourlyRate
	annualSavings := monthlySavings * MonthsPerYear

	result := domain.ROIResult{
		MonthlySavings:   clampFinite(monthlySavings),
		AnnualSavings:    clampFinite(annualSavings),
		PaybackAvailable: true,
	}

	if !(input.MonthlyRevenue > 0) {
		return result
	}

	result.ROI = clampFinite(roundTo1Decimal(annualSavings / input.MonthlyRevenue * 100))

	if monthlySavings == 0 {
		result.PaybackAvailable = false
		return result
	}
	result.PaybackMonths = clampFinite(roundTo1Decimal(input.MonthlyRevenue / monthlySavings))

	return result
}

// Estimate returns the ROI for input, reusing a cached result when present.
func (s *ROIService) Estimate(ctx context.Context, input domain.ROIInput) domain.ROIResult {
	return cachedEstimate(ctx, s.cache, roiCacheKey(input), func() domain.ROIResult {
		return CalculateROI(input)
	})
}

func roiCacheKey(input domain.ROIInput) string {
	return fmt.Sprintf("roi:%s:%s:%s",
		formatKeyNumber(input.MonthlyRevenue),
		formatKeyNumber(input.AutomationHours),
		formatKeyNumber(input.HourlyRate),
	)
}

func formatKeyNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
