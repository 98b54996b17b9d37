package service

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"pricing-estimator/domain"
)

const (
	currencySuffix = " €"
	percentSuffix  = " %"
	monthsSuffix   = " Monate"
	notAvailable   = "N/A"
)

var displayPrinter = message.NewPrinter(language.German)

// FormatEuro renders an amount in whole euros, e.g. "9.750 €". Halves are
// rounded away from zero.
func FormatEuro(v float64) string {
	return displayPrinter.Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0))) + currencySuffix
}

// FormatPercent renders a percentage with one decimal, e.g. "120,0 %".
func FormatPercent(v float64) string {
	return formatOneDecimal(v) + percentSuffix
}

// FormatMonths renders a payback period, or "N/A" when there is none.
func FormatMonths(v float64, available bool) string {
	if !available {
		return notAvailable
	}
	return formatOneDecimal(v) + monthsSuffix
}

func formatOneDecimal(v float64) string {
	return displayPrinter.Sprint(number.Decimal(roundTo1Decimal(v),
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
}

type ROIView struct {
	MonthlySavings string `json:"monthlySavings"`
	AnnualSavings  string `json:"annualSavings"`
	ROI            string `json:"roi"`
	PaybackMonths  string `json:"paybackMonths"`
}

func NewROIView(result domain.ROIResult) ROIView {
	return ROIView{
		MonthlySavings: FormatEuro(result.MonthlySavings),
		AnnualSavings:  FormatEuro(result.AnnualSavings),
		ROI:            FormatPercent(result.ROI),
		PaybackMonths:  FormatMonths(result.PaybackMonths, result.PaybackAvailable),
	}
}

type VideoView struct {
	BaseCost           string `json:"baseCost"`
	PostProductionCost string `json:"postProductionCost"`
	Total              string `json:"total"`
}

func NewVideoView(result domain.VideoResult) VideoView {
	return VideoView{
		BaseCost:           FormatEuro(result.BaseCost),
		PostProductionCost: FormatEuro(result.PostProductionCost),
		Total:              FormatEuro(result.Total),
	}
}

// FormatQuantity renders a plain quantity such as hours or minutes with German
// separators and up to two decimals.
func FormatQuantity(v float64) string {
	return displayPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
