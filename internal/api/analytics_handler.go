package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ktiva/ktiva-api/internal/analytics"
	"github.com/ktiva/ktiva-api/internal/api/shared"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/store"
)

// AnalyticsHandler serves aggregate views over stored texts and
// learning data. Aggregates are computed on demand from a snapshot read
// through the stores; nothing is cached.
type AnalyticsHandler struct {
	texts    store.TextStore
	learning store.LearningStore
	logger   *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler reading through the
// given stores. If log is nil, the default logger is used.
func NewAnalyticsHandler(
	texts store.TextStore,
	learning store.LearningStore,
	log *slog.Logger,
) *AnalyticsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AnalyticsHandler{
		texts:    texts,
		learning: learning,
		logger:   log.With(slog.String("component", "analytics_handler")),
	}
}

// TextAnalytics handles GET /api/analytics/texts. An optional textType
// query parameter scopes the aggregates to records of that type.
func (h *AnalyticsHandler) TextAnalytics(w http.ResponseWriter, r *http.Request) {
	filter := store.TextFilter{
		TextType: domain.TextType(r.URL.Query().Get("textType")),
	}

	records, err := h.texts.ListTexts(r.Context(), filter)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, MsgTextAnalyticsFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextAnalyticsResponse{
		Success: true,
		Data:    analytics.ComputeTextAnalytics(records),
	})
}

// LearningInsights handles GET /api/analytics/learning/{userId}. A user
// with no learning data gets zeroed aggregates, not an error.
func (h *AnalyticsHandler) LearningInsights(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		err := errors.New("missing userId route parameter")
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "מזהה משתמש חסר", err)
		return
	}

	records, err := h.learning.ListLearningData(r.Context(), userID, 0)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, MsgLearningInsightsFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LearningInsightsResponse{
		Success: true,
		Data:    analytics.ComputeLearningInsights(records),
	})
}
