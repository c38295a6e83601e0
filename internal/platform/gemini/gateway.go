package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/internal/generation"
	"google.golang.org/genai"
)

// GeminiGateway implements the generation.Gateway interface using
// Google's Gemini API.
type GeminiGateway struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewGeminiGateway creates a gateway from LLM configuration. The client
// is built once here and reused for every completion call. Returns
// generation.ErrInvalidConfig if the API key or model name is missing.
func NewGeminiGateway(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*GeminiGateway, error) {
	if log == nil {
		log = slog.Default()
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGateway{
		logger: log.With(slog.String("component", "gemini_gateway")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure GeminiGateway implements generation.Gateway interface
var _ generation.Gateway = (*GeminiGateway)(nil)

// Complete implements generation.Gateway.Complete
// It sends one GenerateContent call with the system instruction and the
// requested sampling parameters, and normalizes failures into the
// generation package's sentinel errors.
func (g *GeminiGateway) Complete(
	ctx context.Context,
	req generation.CompletionRequest,
) (*generation.Completion, error) {
	g.logger.DebugContext(ctx, "sending completion request",
		slog.String("model", g.model),
		slog.Int("max_tokens", int(req.MaxTokens)))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		MaxOutputTokens:   req.MaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserContent), cfg)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			slog.String("error", err.Error()),
			slog.String("model", g.model))
		return nil, fmt.Errorf("%w: %v", generation.ErrGatewayFailure, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: no text in response", generation.ErrEmptyCompletion)
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	g.logger.DebugContext(ctx, "completion request succeeded",
		slog.Int("tokens_used", tokensUsed))

	return &generation.Completion{
		Text:       text,
		TokensUsed: tokensUsed,
	}, nil
}
