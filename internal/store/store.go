package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/ktiva/ktiva-api/internal/domain"
)

// TextFilter narrows and paginates a text record listing. Zero values
// mean "no constraint"; Tags matches records containing any of the
// given tags.
type TextFilter struct {
	TextType domain.TextType
	Tags     []string
	Limit    int
	Offset   int
}

// TextStore defines the interface for text record persistence.
type TextStore interface {
	// CreateText saves a new text record to the store. The record must
	// already carry its store-independent fields (ID, timestamps) from
	// the domain constructor. Returns ErrInvalidEntity (wrapped) if the
	// record violates a constraint.
	CreateText(ctx context.Context, record *domain.TextRecord) error

	// ListTexts returns text records matching the filter, ordered by
	// creation time descending. An empty filter returns all records.
	ListTexts(ctx context.Context, filter TextFilter) ([]*domain.TextRecord, error)

	// GetText retrieves a text record by its unique ID.
	// Returns ErrTextNotFound if the record does not exist.
	GetText(ctx context.Context, id uuid.UUID) (*domain.TextRecord, error)

	// UpdateText merges the provided fields into an existing record,
	// refreshes its UpdatedAt timestamp, and returns the updated record.
	// Returns ErrTextNotFound if the record does not exist.
	UpdateText(ctx context.Context, id uuid.UUID, update domain.TextUpdate) (*domain.TextRecord, error)

	// DeleteText removes a text record by its ID. Deleting an unknown id
	// fails with ErrTextNotFound; the operation is deliberately not
	// idempotent. Learning data referencing the text is left in place.
	DeleteText(ctx context.Context, id uuid.UUID) error
}

// LearningStore defines the interface for learning data persistence.
type LearningStore interface {
	// CreateLearningData saves a new feedback record. CreatedAt is
	// caller-supplied and stored as-is, unlike text record timestamps.
	CreateLearningData(ctx context.Context, record *domain.LearningData) error

	// ListLearningData returns the feedback records of a user, ordered
	// by creation time descending. A limit of 0 means no limit.
	ListLearningData(ctx context.Context, userID string, limit int) ([]*domain.LearningData, error)
}
