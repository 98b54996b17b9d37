package http

import (
	"net/http"

	"pricing-estimator/domain"
	"pricing-estimator/service"
)

type VideoHandler struct {
	service *service.VideoService
}

func NewVideoHandler(service *service.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

type videoResponse struct {
	Input     domain.VideoInput  `json:"input"`
	Result    domain.VideoResult `json:"result"`
	Formatted service.VideoView  `json:"formatted"`
}

// CalculateVideoCost serves POST /api/v1/video. Unknown categories are
// rejected while decoding.
func (h *VideoHandler) CalculateVideoCost(w http.ResponseWriter, r *http.Request) {
	if !requireJSONPost(w, r) {
		return
	}

	var req domain.VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := domain.VideoInput{
		Category:        req.Category,
		DurationMinutes: service.ParseNumber(req.DurationMinutes.String(), service.DefaultDurationMinutes),
	}
	result := h.service.Estimate(r.Context(), input)

	writeJSON(w, r, videoResponse{
		Input:     input,
		Result:    result,
		Formatted: service.NewVideoView(result),
	})
}

type videoForm struct {
	Category string
	Duration string
}

type categoryOption struct {
	Key      string
	Label    string
	Rate     string
	Selected bool
}

type videoPage struct {
	page
	Form       videoForm
	Categories []categoryOption
	View       service.VideoView
}

// Page serves the video form and recomputes the cost from the query string.
func (h *VideoHandler) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	form := videoForm{
		Category: query.Get("category"),
		Duration: query.Get("duration"),
	}

	input := service.NewVideoInput(form.Category, form.Duration)
	form.Category = input.Category.String()
	result := h.service.Estimate(r.Context(), input)

	renderPage(w, r, http.StatusOK, "video.html", videoPage{
		page:       page{Title: "Videokosten-Rechner"},
		Form:       form,
		Categories: categoryOptions(input.Category),
		View:       service.NewVideoView(result),
	})
}

func categoryOptions(selected domain.VideoCategory) []categoryOption {
	categories := domain.VideoCategories()
	options := make([]categoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, categoryOption{
			Key:      c.String(),
			Label:    c.Label(),
			Rate:     service.FormatEuro(service.RatePerMinute(c)),
			Selected: c == selected,
		})
	}
	return options
}
