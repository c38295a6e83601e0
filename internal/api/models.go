package api

import (
	"time"

	"github.com/ktiva/ktiva-api/internal/analytics"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/service"
)

// GenerateRequest is the payload for POST /api/ai/generate.
type GenerateRequest struct {
	Prompt         string `json:"prompt" validate:"required"`
	TextType       string `json:"textType" validate:"required"`
	Context        string `json:"context,omitempty"`
	Style          string `json:"style,omitempty"`
	Length         string `json:"length,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
}

// GenerateResponse is the success envelope for POST /api/ai/generate.
type GenerateResponse struct {
	Success  bool                       `json:"success"`
	Text     string                     `json:"text"`
	Metadata service.GenerationMetadata `json:"metadata"`
}

// ImproveRequest is the payload for POST /api/ai/improve.
type ImproveRequest struct {
	Text            string `json:"text" validate:"required"`
	ImprovementType string `json:"improvementType" validate:"required"`
	TargetAudience  string `json:"targetAudience,omitempty"`
	Context         string `json:"context,omitempty"`
}

// ImproveResponse is the success envelope for POST /api/ai/improve.
// ImprovementType is duplicated at the top level for client convenience.
type ImproveResponse struct {
	Success         bool                        `json:"success"`
	OriginalText    string                      `json:"originalText"`
	ImprovedText    string                      `json:"improvedText"`
	ImprovementType domain.ImprovementType      `json:"improvementType"`
	Metadata        service.ImprovementMetadata `json:"metadata"`
}

// CreateTextRequest is the payload for POST /api/texts.
type CreateTextRequest struct {
	Title    string         `json:"title" validate:"required"`
	Content  string         `json:"content" validate:"required"`
	TextType string         `json:"textType" validate:"required,oneof=legal business academic creative technical"`
	Style    string         `json:"style" validate:"required,oneof=formal casual professional persuasive"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateTextRequest is the payload for PATCH /api/texts/{id}. All fields
// are optional; absent fields leave the record untouched.
type UpdateTextRequest struct {
	Title    *string        `json:"title,omitempty" validate:"omitempty,min=1"`
	Content  *string        `json:"content,omitempty" validate:"omitempty,min=1"`
	TextType *string        `json:"textType,omitempty" validate:"omitempty,oneof=legal business academic creative technical"`
	Style    *string        `json:"style,omitempty" validate:"omitempty,oneof=formal casual professional persuasive"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CreateLearningRequest is the payload for POST /api/learning. CreatedAt
// is optional; when absent the server stamps the submission time.
type CreateLearningRequest struct {
	UserID          string     `json:"userId" validate:"required"`
	TextID          string     `json:"textId" validate:"required"`
	ImprovementType string     `json:"improvementType" validate:"required,oneof=grammar style clarity professional comprehensive"`
	OriginalText    string     `json:"originalText" validate:"required"`
	ImprovedText    string     `json:"improvedText" validate:"required"`
	Feedback        string     `json:"feedback,omitempty"`
	Rating          int        `json:"rating" validate:"required,min=1,max=5"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

// TextResponse is the success envelope carrying a single text record.
type TextResponse struct {
	Success bool               `json:"success"`
	Data    *domain.TextRecord `json:"data"`
}

// TextListResponse is the success envelope for GET /api/texts.
type TextListResponse struct {
	Success bool                 `json:"success"`
	Data    []*domain.TextRecord `json:"data"`
	Count   int                  `json:"count"`
}

// DeleteResponse is the success envelope for DELETE /api/texts/{id}.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LearningResponse is the success envelope carrying a single learning
// data record.
type LearningResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.LearningData `json:"data"`
}

// LearningListResponse is the success envelope for GET /api/learning.
type LearningListResponse struct {
	Success bool                   `json:"success"`
	Data    []*domain.LearningData `json:"data"`
	Count   int                    `json:"count"`
}

// TextAnalyticsResponse is the success envelope for GET /api/analytics/texts.
type TextAnalyticsResponse struct {
	Success bool                    `json:"success"`
	Data    analytics.TextAnalytics `json:"data"`
}

// LearningInsightsResponse is the success envelope for
// GET /api/analytics/learning/{userId}.
type LearningInsightsResponse struct {
	Success bool                       `json:"success"`
	Data    analytics.LearningInsights `json:"data"`
}
