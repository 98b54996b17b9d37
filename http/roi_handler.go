package http

import (
	"net/http"

	"pricing-estimator/domain"
	"pricing-estimator/service"
)

// defaultRateText prefills the hourly rate field on a fresh form.
const defaultRateText = "50"

type ROIHandler struct {
	service *service.ROIService
}

func NewROIHandler(service *service.ROIService) *ROIHandler {
	return &ROIHandler{service: service}
}

type roiResponse struct {
	Input     domain.ROIInput  `json:"input"`
	Result    domain.ROIResult `json:"result"`
	Formatted service.ROIView  `json:"formatted"`
}

// CalculateROI serves POST /api/v1/roi.
func (h *ROIHandler) CalculateROI(w http.ResponseWriter, r *http.Request) {
	if !requireJSONPost(w, r) {
		return
	}

	var req domain.ROIRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := service.NewROIInput(
		req.MonthlyRevenue.String(),
		req.AutomationHours.String(),
		req.HourlyRate.String(),
	)
	result := h.service.Estimate(r.Context(), input)

	writeJSON(w, r, roiResponse{
		Input:     input,
		Result:    result,
		Formatted: service.NewROIView(result),
	})
}

type roiForm struct {
	Revenue string
	Hours   string
	Rate    string
}

type roiPage struct {
	page
	Form roiForm
	View service.ROIView
}

// Page serves the ROI form and recomputes the result from the query string.
func (h *ROIHandler) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	form := roiForm{
		Revenue: query.Get("revenue"),
		Hours:   query.Get("hours"),
		Rate:    query.Get("rate"),
	}
	if !query.Has("rate") {
		form.Rate = defaultRateText
	}

	input := service.NewROIInput(form.Revenue, form.Hours, form.Rate)
	result := h.service.Estimate(r.Context(), input)

	renderPage(w, r, http.StatusOK, "roi.html", roiPage{
		page: page{Title: "ROI-Rechner"},
		Form: form,
		View: service.NewROIView(result),
	})
}
