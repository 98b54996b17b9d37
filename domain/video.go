package domain

import "fmt"

// VideoCategory is the closed set of productions the video estimator prices.
// The zero value is VideoCategoryCorporate.
type VideoCategory int

const (
	VideoCategoryCorporate VideoCategory = iota
	VideoCategoryEvent
	VideoCategoryCommercial
	VideoCategorySocial

	videoCategoryCount
)

var videoCategoryKeys = [videoCategoryCount]string{
	VideoCategoryCorporate:  "corporate",
	VideoCategoryEvent:      "event",
	VideoCategoryCommercial: "commercial",
	VideoCategorySocial:     "social",
}

var videoCategoryLabels = [videoCategoryCount]string{
	VideoCategoryCorporate:  "Unternehmensvideo",
	VideoCategoryEvent:      "Eventvideo",
	VideoCategoryCommercial: "Werbespot",
	VideoCategorySocial:     "Social-Media-Clip",
}

// VideoCategories returns every category in display order.
func VideoCategories() []VideoCategory {
	categories := make([]VideoCategory, 0, videoCategoryCount)
	for c := VideoCategory(0); c < videoCategoryCount; c++ {
		categories = append(categories, c)
	}
	return categories
}

// ParseVideoCategory resolves a category key such as "commercial".
func ParseVideoCategory(key string) (VideoCategory, bool) {
	for c, k := range videoCategoryKeys {
		if k == key {
			return VideoCategory(c), true
		}
	}
	return VideoCategoryCorporate, false
}

func (c VideoCategory) Valid() bool {
	return c >= 0 && c < videoCategoryCount
}

func (c VideoCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("VideoCategory(%d)", int(c))
	}
	return videoCategoryKeys[c]
}

// Label is the human readable name shown in the category selector.
func (c VideoCategory) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return videoCategoryLabels[c]
}

func (c VideoCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid video category %d", int(c))
	}
	return []byte(videoCategoryKeys[c]), nil
}

func (c *VideoCategory) UnmarshalText(text []byte) error {
	parsed, ok := ParseVideoCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown video category %q", string(text))
	}
	*c = parsed
	return nil
}

type VideoInput struct {
	Category        VideoCategory `json:"category"`
	DurationMinutes float64       `json:"durationMinutes"`
}

type VideoResult struct {
	BaseCost           float64 `json:"baseCost"`
	PostProductionCost float64 `json:"postProductionCost"`
	Total              float64 `json:"total"`
}

// VideoRequest is the JSON body accepted by the video API. A missing
// category means corporate; an unknown one fails decoding.
type VideoRequest struct {
	Category        VideoCategory `json:"category"`
	DurationMinutes RawNumber     `json:"durationMinutes"`
}
