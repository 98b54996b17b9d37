package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricing-estimator/domain"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw      string
		fallback float64
		want     float64
	}{
		{"42", 0, 42},
		{" 12.5 ", 0, 12.5},
		{"12,5", 0, 12.5},
		{"-3", 0, -3},
		{"", 50, 50},
		{"   ", 50, 50},
		{"abc", 50, 50},
		{"1.000,50", 0, 0},
		{"NaN", 7, 7},
		{"Inf", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.raw, tt.fallback))
		})
	}
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "0 €", FormatEuro(0))
	assert.Equal(t, "500 €", FormatEuro(500))
	assert.Equal(t, "9.750 €", FormatEuro(9750))
	assert.Equal(t, "12.000 €", FormatEuro(12000))
}

func TestFormatEuro_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "1 €", FormatEuro(0.5))
	assert.Equal(t, "3 €", FormatEuro(2.5))
	assert.Equal(t, "12 €", FormatEuro(12.25))
	assert.Equal(t, "23 €", FormatEuro(22.5))
	assert.Equal(t, "-3 €", FormatEuro(-2.5))

	// 0,5 h × 45 €
	view := NewROIView(CalculateROI(domain.ROIInput{AutomationHours: 0.5, HourlyRate: 45}))
	assert.Equal(t, "23 €", view.MonthlySavings)
	assert.Equal(t, "270 €", view.AnnualSavings)
}

func TestFormatPercent_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "0,3 %", FormatPercent(0.25))
	assert.Equal(t, "12,3 %", FormatPercent(12.25))
}

func TestFormatPercentAndMonths(t *testing.T) {
	assert.Equal(t, "120,0 %", FormatPercent(120))
	assert.Equal(t, "0,0 %", FormatPercent(0))
	assert.Equal(t, "10,0 Monate", FormatMonths(10, true))
	assert.Equal(t, "N/A", FormatMonths(0, false))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "20", FormatQuantity(20))
	assert.Equal(t, "0,5", FormatQuantity(0.5))
	assert.Equal(t, "1.500", FormatQuantity(1500))
}

func TestNewROIView(t *testing.T) {
	view := NewROIView(CalculateROI(domain.ROIInput{MonthlyRevenue: 10000, AutomationHours: 20, HourlyRate: 50}))

	assert.Equal(t, ROIView{
		MonthlySavings: "1.000 €",
		AnnualSavings:  "12.000 €",
		ROI:            "120,0 %",
		PaybackMonths:  "10,0 Monate",
	}, view)
}

func TestNewVideoView(t *testing.T) {
	view := NewVideoView(CalculateVideoCost(domain.VideoInput{Category: domain.VideoCategoryCommercial, DurationMinutes: 5}))

	assert.Equal(t, VideoView{
		BaseCost:           "7.500 €",
		PostProductionCost: "2.250 €",
		Total:              "9.750 €",
	}, view)
}
