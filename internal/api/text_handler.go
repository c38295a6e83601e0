package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ktiva/ktiva-api/internal/api/shared"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/store"
)

// TextHandler serves the text record CRUD endpoints.
type TextHandler struct {
	store  store.TextStore
	logger *slog.Logger
}

// NewTextHandler creates a new TextHandler backed by the given store.
// If log is nil, the default logger is used.
func NewTextHandler(textStore store.TextStore, log *slog.Logger) *TextHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TextHandler{
		store:  textStore,
		logger: log.With(slog.String("component", "text_handler")),
	}
}

// Create handles POST /api/texts.
func (h *TextHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	record, err := domain.NewTextRecord(
		req.Title,
		req.Content,
		domain.TextType(req.TextType),
		domain.Style(req.Style),
		tags,
		req.Metadata,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := h.store.CreateText(r.Context(), record); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgSaveTextFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TextResponse{Success: true, Data: record})
}

// List handles GET /api/texts. Filters come from query parameters:
// textType, tags (comma-joined), limit, offset.
func (h *TextHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTextFilter(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	records, err := h.store.ListTexts(r.Context(), filter)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgLoadTextsFailed), err)
		return
	}
	if records == nil {
		records = []*domain.TextRecord{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextListResponse{
		Success: true,
		Data:    records,
		Count:   len(records),
	})
}

// Get handles GET /api/texts/{id}.
func (h *TextHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTextID(w, r)
	if !ok {
		return
	}

	record, err := h.store.GetText(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgLoadTextFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextResponse{Success: true, Data: record})
}

// Update handles PATCH /api/texts/{id}.
func (h *TextHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTextID(w, r)
	if !ok {
		return
	}

	var req UpdateTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	update := domain.TextUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	}
	if req.TextType != nil {
		textType := domain.TextType(*req.TextType)
		update.TextType = &textType
	}
	if req.Style != nil {
		style := domain.Style(*req.Style)
		update.Style = &style
	}

	record, err := h.store.UpdateText(r.Context(), id, update)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgUpdateTextFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextResponse{Success: true, Data: record})
}

// Delete handles DELETE /api/texts/{id}. Deleting an unknown id responds
// 404; a repeated delete of the same id therefore fails.
func (h *TextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTextID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteText(r.Context(), id); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgDeleteTextFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success: true,
		Message: "הטקסט נמחק בהצלחה",
	})
}

// parseTextID extracts and parses the {id} route parameter. On failure
// it writes the error response itself and reports ok=false.
func parseTextID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

// parseTextFilter builds a store.TextFilter from list query parameters.
func parseTextFilter(r *http.Request) (store.TextFilter, error) {
	query := r.URL.Query()

	filter := store.TextFilter{
		TextType: domain.TextType(query.Get("textType")),
	}

	if raw := query.Get("tags"); raw != "" {
		filter.Tags = strings.Split(raw, ",")
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return store.TextFilter{}, strconvError("limit", raw, err)
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return store.TextFilter{}, strconvError("offset", raw, err)
		}
		filter.Offset = offset
	}

	return filter, nil
}

// strconvError normalizes query parameter parse failures, covering both
// non-numeric and negative values.
func strconvError(param, value string, err error) error {
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", param, value, err)
	}
	return fmt.Errorf("invalid %s %q: must be non-negative", param, value)
}
