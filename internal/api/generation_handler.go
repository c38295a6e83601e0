package api

import (
	"log/slog"
	"net/http"

	"github.com/ktiva/ktiva-api/internal/api/shared"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/generation"
	"github.com/ktiva/ktiva-api/internal/service"
)

// GenerationHandler serves the AI text generation and improvement
// endpoints.
type GenerationHandler struct {
	service *service.GenerationService
	logger  *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler with the provided
// service. If log is nil, the default logger is used.
func NewGenerationHandler(svc *service.GenerationService, log *slog.Logger) *GenerationHandler {
	if log == nil {
		log = slog.Default()
	}
	return &GenerationHandler{
		service: svc,
		logger:  log.With(slog.String("component", "generation_handler")),
	}
}

// Generate handles POST /api/ai/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	result, err := h.service.Generate(r.Context(), generation.GenerationRequest{
		Prompt:         req.Prompt,
		TextType:       domain.TextType(req.TextType),
		Context:        req.Context,
		Style:          domain.Style(req.Style),
		Length:         domain.Length(req.Length),
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgGenerationFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Success:  true,
		Text:     result.Text,
		Metadata: result.Metadata,
	})
}

// Improve handles POST /api/ai/improve.
func (h *GenerationHandler) Improve(w http.ResponseWriter, r *http.Request) {
	var req ImproveRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	result, err := h.service.Improve(r.Context(), generation.ImprovementRequest{
		Text:            req.Text,
		ImprovementType: domain.ImprovementType(req.ImprovementType),
		TargetAudience:  req.TargetAudience,
		Context:         req.Context,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, SafeErrorMessage(err, MsgImprovementFailed), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImproveResponse{
		Success:         true,
		OriginalText:    result.OriginalText,
		ImprovedText:    result.ImprovedText,
		ImprovementType: result.Metadata.ImprovementType,
		Metadata:        result.Metadata,
	})
}
