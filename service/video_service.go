package service

import (
	"context"
	"fmt"

	"pricing-estimator/domain"
	"pricing-estimator/repository"
)

type VideoService struct {
	cache repository.CacheRepository
}

// NewVideoService creates a new VideoService backed by the given result cache.
func NewVideoService(cache repository.CacheRepository) *VideoService {
	return &VideoService{cache: cache}
}

// NewVideoInput coerces raw form values. Unknown categories resolve to
// DefaultVideoCategory and an unparsable duration to 0 minutes.
func NewVideoInput(category, minutes string) domain.VideoInput {
	c, ok := domain.ParseVideoCategory(category)
	if !ok {
		c = DefaultVideoCategory
	}
	return domain.VideoInput{
		Category:        c,
		DurationMinutes: ParseNumber(minutes, DefaultDurationMinutes),
	}
}

// RatePerMinute returns the production price per minute for a category.
func RatePerMinute(c domain.VideoCategory) float64 {
	rate, ok := videoRates[c]
	if !ok {
		return videoRates[DefaultVideoCategory]
	}
	return rate
}

// CalculateVideoCost prices a production. Intermediate values are not
// rounded; values that overflow float64 saturate at ±math.MaxFloat64.
func CalculateVideoCost(input domain.VideoInput) domain.VideoResult {
	baseCost := clampFinite(input.DurationMinutes * RatePerMinute(input.Category))
	postProductionCost := clampFinite(baseCost * PostProductionRate)

	return domain.VideoResult{
		BaseCost:           baseCost,
		PostProductionCost: postProductionCost,
		Total:              clampFinite(baseCost + postProductionCost),
	}
}

// Estimate returns the cost for input, reusing a cached result when present.
func (s *VideoService) Estimate(ctx context.Context, input domain.VideoInput) domain.VideoResult {
	key := fmt.Sprintf("video:%s:%s", input.Category, formatKeyNumber(input.DurationMinutes))
	return cachedEstimate(ctx, s.cache, key, func() domain.VideoResult {
		return CalculateVideoCost(input)
	})
}
