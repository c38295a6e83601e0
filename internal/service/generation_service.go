package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/generation"
	"github.com/ktiva/ktiva-api/internal/platform/logger"
)

// GenerationMetadata describes how a text was generated.
type GenerationMetadata struct {
	TextType   domain.TextType `json:"textType"`
	Style      domain.Style    `json:"style,omitempty"`
	Length     domain.Length   `json:"length,omitempty"`
	TokensUsed int             `json:"tokens"`
}

// GenerationResult is the normalized outcome of a generate operation.
type GenerationResult struct {
	Text     string             `json:"text"`
	Metadata GenerationMetadata `json:"metadata"`
}

// ImprovementMetadata describes how a text was improved.
type ImprovementMetadata struct {
	ImprovementType domain.ImprovementType `json:"improvementType"`
	TokensUsed      int                    `json:"tokens"`
}

// ImprovementResult is the normalized outcome of an improve operation.
// OriginalText echoes the input unchanged.
type ImprovementResult struct {
	OriginalText string              `json:"originalText"`
	ImprovedText string              `json:"improvedText"`
	Metadata     ImprovementMetadata `json:"metadata"`
}

// GenerationService orchestrates prompt construction and the completion
// gateway for the generate and improve operations. It holds no state
// beyond its injected dependencies, performs no persistence, and never
// retries: the gateway or the caller own any retry policy.
type GenerationService struct {
	gateway generation.Gateway
	logger  *slog.Logger
}

// NewGenerationService creates a GenerationService with the provided
// gateway. If log is nil, the default logger is used.
func NewGenerationService(gateway generation.Gateway, log *slog.Logger) *GenerationService {
	if log == nil {
		log = slog.Default()
	}
	return &GenerationService{
		gateway: gateway,
		logger:  log.With(slog.String("component", "generation_service")),
	}
}

// Generate validates the request, builds the generation prompt, and runs
// a single completion call. Validation failures return a
// *ValidationError listing the offending fields; gateway failures are
// logged with detail and surface only as ErrGenerationFailed.
func (s *GenerationService) Generate(
	ctx context.Context,
	req generation.GenerationRequest,
) (*GenerationResult, error) {
	if s.gateway == nil {
		return nil, ErrNotConfigured
	}

	if err := validateGenerationRequest(req); err != nil {
		return nil, err
	}

	systemInstruction, userContent := generation.BuildGenerationPrompt(req)

	completion, err := s.gateway.Complete(ctx, generation.CompletionRequest{
		SystemInstruction: systemInstruction,
		UserContent:       userContent,
		MaxTokens:         generation.MaxTokensForLength(req.Length),
		Temperature:       generation.GenerationTemperature,
	})
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("completion call failed during generation",
			slog.String("error", err.Error()),
			slog.String("text_type", string(req.TextType)))
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, req.TextType)
	}

	return &GenerationResult{
		Text: completion.Text,
		Metadata: GenerationMetadata{
			TextType:   req.TextType,
			Style:      req.Style,
			Length:     req.Length,
			TokensUsed: completion.TokensUsed,
		},
	}, nil
}

// Improve validates the request, builds the improvement prompt, and runs
// a single completion call. The result carries the original text back
// unchanged alongside the improved version.
func (s *GenerationService) Improve(
	ctx context.Context,
	req generation.ImprovementRequest,
) (*ImprovementResult, error) {
	if s.gateway == nil {
		return nil, ErrNotConfigured
	}

	if err := validateImprovementRequest(req); err != nil {
		return nil, err
	}

	systemInstruction, userContent := generation.BuildImprovementPrompt(req)

	completion, err := s.gateway.Complete(ctx, generation.CompletionRequest{
		SystemInstruction: systemInstruction,
		UserContent:       userContent,
		MaxTokens:         generation.ImprovementMaxTokens,
		Temperature:       generation.ImprovementTemperature,
	})
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("completion call failed during improvement",
			slog.String("error", err.Error()),
			slog.String("improvement_type", string(req.ImprovementType)))
		return nil, fmt.Errorf("%w: %s", ErrImprovementFailed, req.ImprovementType)
	}

	return &ImprovementResult{
		OriginalText: req.Text,
		ImprovedText: completion.Text,
		Metadata: ImprovementMetadata{
			ImprovementType: req.ImprovementType,
			TokensUsed:      completion.TokensUsed,
		},
	}, nil
}

// validateGenerationRequest checks the request eagerly, before any
// external call is attempted.
func validateGenerationRequest(req generation.GenerationRequest) error {
	fields := make(map[string]string)

	if req.Prompt == "" {
		fields["prompt"] = "cannot be empty"
	}
	if !req.TextType.Valid() {
		fields["textType"] = fmt.Sprintf("must be one of %v", domain.TextTypeValues())
	}
	if req.Style != "" && !req.Style.Valid() {
		fields["style"] = "unknown style"
	}
	if req.Length != "" && !req.Length.Valid() {
		fields["length"] = "unknown length"
	}

	return newValidationError(fields)
}

// validateImprovementRequest checks the request eagerly, before any
// external call is attempted.
func validateImprovementRequest(req generation.ImprovementRequest) error {
	fields := make(map[string]string)

	if req.Text == "" {
		fields["text"] = "cannot be empty"
	}
	if !req.ImprovementType.Valid() {
		fields["improvementType"] = fmt.Sprintf("must be one of %v", domain.ImprovementTypeValues())
	}

	return newValidationError(fields)
}
