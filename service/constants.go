package service

import "pricing-estimator/domain"

const (
	DefaultMonthlyRevenue  = 0.0
	DefaultAutomationHours = 0.0
	DefaultHourlyRate      = 50.0
	DefaultDurationMinutes = 0.0

	MonthsPerYear = 12

	// Recargo fijo de postproducción sobre el coste base
	PostProductionRate = 0.3
)

// DefaultVideoCategory is preselected in the form and used for unknown keys.
const DefaultVideoCategory = domain.VideoCategoryCorporate

// videoRates holds the production price per minute in euros.
var videoRates = map[domain.VideoCategory]float64{
	domain.VideoCategoryCorporate:  1200,
	domain.VideoCategoryEvent:      1200,
	domain.VideoCategoryCommercial: 1500,
	domain.VideoCategorySocial:     800,
}
