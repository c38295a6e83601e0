package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ktiva/ktiva-api/internal/api"
	apiMiddleware "github.com/ktiva/ktiva-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	generationHandler := api.NewGenerationHandler(app.generationService, app.logger)
	textHandler := api.NewTextHandler(app.textStore, app.logger)
	learningHandler := api.NewLearningHandler(app.learningStore, app.logger)
	analyticsHandler := api.NewAnalyticsHandler(app.textStore, app.learningStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		// AI endpoints
		r.Post("/ai/generate", generationHandler.Generate)
		r.Post("/ai/improve", generationHandler.Improve)

		// Text record endpoints
		r.Post("/texts", textHandler.Create)
		r.Get("/texts", textHandler.List)
		r.Get("/texts/{id}", textHandler.Get)
		r.Patch("/texts/{id}", textHandler.Update)
		r.Delete("/texts/{id}", textHandler.Delete)

		// Learning data endpoints
		r.Post("/learning", learningHandler.Create)
		r.Get("/learning", learningHandler.List)

		// Analytics endpoints
		r.Get("/analytics/texts", analyticsHandler.TextAnalytics)
		r.Get("/analytics/learning/{userId}", analyticsHandler.LearningInsights)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
