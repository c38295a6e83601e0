package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/internal/generation"
)

// OpenAIGateway implements the generation.Gateway interface using the
// OpenAI chat completions API.
type OpenAIGateway struct {
	logger *slog.Logger
	client openai.Client
	model  string
}

// NewOpenAIGateway creates a gateway from LLM configuration. Returns
// generation.ErrInvalidConfig if the API key or model name is missing.
func NewOpenAIGateway(log *slog.Logger, cfg config.LLMConfig) (*OpenAIGateway, error) {
	if log == nil {
		log = slog.Default()
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &OpenAIGateway{
		logger: log.With(slog.String("component", "openai_gateway")),
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.ModelName,
	}, nil
}

// Ensure OpenAIGateway implements generation.Gateway interface
var _ generation.Gateway = (*OpenAIGateway)(nil)

// Complete implements generation.Gateway.Complete
// The system instruction and user content become the two chat messages
// of a single completion call; token usage comes from the response
// usage block.
func (g *OpenAIGateway) Complete(
	ctx context.Context,
	req generation.CompletionRequest,
) (*generation.Completion, error) {
	g.logger.DebugContext(ctx, "sending completion request",
		slog.String("model", g.model),
		slog.Int("max_tokens", int(req.MaxTokens)))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.UserContent),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(float64(req.Temperature)),
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "OpenAI API call failed",
			slog.String("error", err.Error()),
			slog.String("model", g.model))
		return nil, fmt.Errorf("%w: %v", generation.ErrGatewayFailure, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: no choices in response", generation.ErrEmptyCompletion)
	}

	tokensUsed := int(resp.Usage.TotalTokens)

	g.logger.DebugContext(ctx, "completion request succeeded",
		slog.Int("tokens_used", tokensUsed))

	return &generation.Completion{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: tokensUsed,
	}, nil
}
