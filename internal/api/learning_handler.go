package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ktiva/ktiva-api/internal/api/shared"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/store"
)

// LearningHandler serves the learning data endpoints.
type LearningHandler struct {
	store  store.LearningStore
	logger *slog.Logger
}

// NewLearningHandler creates a new LearningHandler backed by the given
// store. If log is nil, the default logger is used.
func NewLearningHandler(learningStore store.LearningStore, log *slog.Logger) *LearningHandler {
	if log == nil {
		log = slog.Default()
	}
	return &LearningHandler{
		store:  learningStore,
		logger: log.With(slog.String("component", "learning_handler")),
	}
}

// Create handles POST /api/learning.
func (h *LearningHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLearningRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	record, err := domain.NewLearningData(
		req.UserID,
		req.TextID,
		domain.ImprovementType(req.ImprovementType),
		req.OriginalText,
		req.ImprovedText,
		req.Feedback,
		req.Rating,
		createdAt,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := h.store.CreateLearningData(r.Context(), record); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgSaveLearningFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, LearningResponse{Success: true, Data: record})
}

// List handles GET /api/learning. The userId query parameter is
// required; limit is optional.
func (h *LearningHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := query.Get("userId")
	if userID == "" {
		err := errors.New("missing userId query parameter")
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "מזהה משתמש חסר", err)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest,
				strconvError("limit", raw, err))
			return
		}
		limit = parsed
	}

	records, err := h.store.ListLearningData(r.Context(), userID, limit)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgLoadLearningFailed), err)
		return
	}
	if records == nil {
		records = []*domain.LearningData{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LearningListResponse{
		Success: true,
		Data:    records,
		Count:   len(records),
	})
}
