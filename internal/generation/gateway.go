package generation

import (
	"context"

	"github.com/ktiva/ktiva-api/internal/domain"
)

// GenerationRequest carries the parameters for producing a new text.
// Style, Length, Context, and TargetAudience are optional; zero values
// mean "not requested".
type GenerationRequest struct {
	Prompt         string
	TextType       domain.TextType
	Context        string
	Style          domain.Style
	Length         domain.Length
	TargetAudience string
}

// ImprovementRequest carries the parameters for improving an existing
// text. TargetAudience and Context are optional.
type ImprovementRequest struct {
	Text            string
	ImprovementType domain.ImprovementType
	TargetAudience  string
	Context         string
}

// CompletionRequest is the vendor-neutral input to a completion call.
type CompletionRequest struct {
	SystemInstruction string
	UserContent       string
	MaxTokens         int32
	Temperature       float32
}

// Completion is the result of a successful completion call.
type Completion struct {
	Text       string
	TokensUsed int
}

// Gateway wraps an external text-completion capability. Implementations
// translate CompletionRequest into a vendor API call and normalize
// failures into the package's sentinel errors.
type Gateway interface {
	// Complete sends the prompt pair to the completion service and
	// returns the generated text with its token usage. Fails with
	// ErrGatewayFailure (or a wrapped variant) on transport, auth, or
	// quota errors, and ErrEmptyCompletion when the model returns no
	// usable text.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// Completion parameter policy. Token budgets are derived from the
// requested length; temperatures are fixed per operation kind so that
// generation favors variety and improvement favors fidelity.
const (
	GenerationTemperature  float32 = 0.7
	ImprovementTemperature float32 = 0.3

	// ImprovementMaxTokens is the fixed budget for improvement calls.
	ImprovementMaxTokens int32 = 1500

	defaultMaxTokens int32 = 1000
)

// MaxTokensForLength maps a requested length to the completion token
// budget. An absent or unknown length gets the medium budget.
func MaxTokensForLength(length domain.Length) int32 {
	switch length {
	case domain.LengthShort:
		return 500
	case domain.LengthMedium:
		return 1000
	case domain.LengthLong:
		return 2000
	default:
		return defaultMaxTokens
	}
}
