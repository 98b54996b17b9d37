package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"pricing-estimator/service"
)

type Dependencies struct {
	ROI         *service.ROIService
	Video       *service.VideoService
	RateLimiter *RateLimiter
	Logger      zerolog.Logger
}

// NewRouter wires the estimator pages, the JSON API and the not found
// fallback.
func NewRouter(deps Dependencies) *chi.Mux {
	roiHandler := NewROIHandler(deps.ROI)
	videoHandler := NewVideoHandler(deps.Video)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(RequestLogger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Get("/", Home)
	router.Get("/roi", roiHandler.Page)
	router.Get("/video", videoHandler.Page)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(RateLimit(deps.RateLimiter))
		}
		r.Post("/roi", roiHandler.CalculateROI)
		r.Post("/video", videoHandler.CalculateVideoCost)
	})

	router.NotFound(NotFound)

	return router
}
