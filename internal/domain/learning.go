package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Learning data validation errors.
var (
	// ErrLearningUserIDEmpty is returned when a learning record's user ID is empty.
	ErrLearningUserIDEmpty = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)

	// ErrLearningTextIDEmpty is returned when a learning record's text ID is empty.
	ErrLearningTextIDEmpty = fmt.Errorf("%w: text ID cannot be empty", ErrValidation)
)

// LearningData is a feedback record pairing an original text with its
// improved version, rated by the user. It is a historical log: TextID
// need not resolve to a live TextRecord, since text deletions are not
// cascaded into the log.
type LearningData struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"userId"`
	TextID          string          `json:"textId"`
	ImprovementType ImprovementType `json:"improvementType"`
	OriginalText    string          `json:"originalText"`
	ImprovedText    string          `json:"improvedText"`
	Feedback        string          `json:"feedback,omitempty"`
	Rating          int             `json:"rating"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewLearningData creates a new LearningData record with a fresh ID.
// CreatedAt is caller-supplied: feedback is stamped with the submission
// time chosen by the client, unlike TextRecord timestamps which the
// store assigns. Returns an error if validation fails.
func NewLearningData(
	userID, textID string,
	improvementType ImprovementType,
	originalText, improvedText, feedback string,
	rating int,
	createdAt time.Time,
) (*LearningData, error) {
	record := &LearningData{
		ID:              uuid.New(),
		UserID:          userID,
		TextID:          textID,
		ImprovementType: improvementType,
		OriginalText:    originalText,
		ImprovedText:    improvedText,
		Feedback:        feedback,
		Rating:          rating,
		CreatedAt:       createdAt.UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the LearningData has valid data.
// Returns an error if any field fails validation.
func (l *LearningData) Validate() error {
	if l.ID == uuid.Nil {
		return fmt.Errorf("%w: learning data ID cannot be empty", ErrInvalidID)
	}

	if l.UserID == "" {
		return ErrLearningUserIDEmpty
	}

	if l.TextID == "" {
		return ErrLearningTextIDEmpty
	}

	if !l.ImprovementType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidImprovementType, l.ImprovementType)
	}

	if l.OriginalText == "" {
		return fmt.Errorf("%w: original text", ErrEmptyContent)
	}

	if l.ImprovedText == "" {
		return fmt.Errorf("%w: improved text", ErrEmptyContent)
	}

	if l.Rating < 1 || l.Rating > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, l.Rating)
	}

	if l.CreatedAt.IsZero() {
		return fmt.Errorf("%w: createdAt cannot be zero", ErrValidation)
	}

	return nil
}
