package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TextRecord represents a persisted document produced or edited by a user.
// Tags carry free-form labels; Metadata is an open mapping validated at
// the boundary (see ValidateMetadata) to keep untyped data out of the core.
type TextRecord struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	TextType  TextType       `json:"textType"`
	Style     Style          `json:"style"`
	Tags      []string       `json:"tags"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TextUpdate carries a partial update to a text record. Nil fields are
// left untouched by ApplyUpdate.
type TextUpdate struct {
	Title    *string
	Content  *string
	TextType *TextType
	Style    *Style
	Tags     []string
	Metadata map[string]any
}

// NewTextRecord creates a new TextRecord with a fresh ID and identical
// creation/update timestamps. Returns an error if validation fails.
func NewTextRecord(
	title, content string,
	textType TextType,
	style Style,
	tags []string,
	metadata map[string]any,
) (*TextRecord, error) {
	now := time.Now().UTC()
	record := &TextRecord{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		TextType:  textType,
		Style:     style,
		Tags:      tags,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the TextRecord has valid data.
// Returns an error if any field fails validation.
func (t *TextRecord) Validate() error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("%w: text record ID cannot be empty", ErrInvalidID)
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if t.Content == "" {
		return ErrEmptyContent
	}

	if !t.TextType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTextType, t.TextType)
	}

	if !t.Style.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, t.Style)
	}

	if err := ValidateMetadata(t.Metadata); err != nil {
		return err
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("%w: updatedAt precedes createdAt", ErrValidation)
	}

	return nil
}

// ApplyUpdate merges the provided fields into the record and refreshes
// the UpdatedAt timestamp. The record is left unchanged if the merged
// result fails validation.
func (t *TextRecord) ApplyUpdate(update TextUpdate) error {
	merged := *t

	if update.Title != nil {
		merged.Title = *update.Title
	}
	if update.Content != nil {
		merged.Content = *update.Content
	}
	if update.TextType != nil {
		merged.TextType = *update.TextType
	}
	if update.Style != nil {
		merged.Style = *update.Style
	}
	if update.Tags != nil {
		merged.Tags = update.Tags
	}
	if update.Metadata != nil {
		merged.Metadata = update.Metadata
	}

	merged.UpdatedAt = time.Now().UTC()

	if err := merged.Validate(); err != nil {
		return err
	}

	*t = merged
	return nil
}
