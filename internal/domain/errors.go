package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every domain validation error. Callers
// that only care whether an entity was rejected check against this;
// the specific sentinels below all wrap it.
var ErrValidation = errors.New("validation failed")

// Specific validation errors.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrEmptyTitle is returned when a text record's title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = fmt.Errorf("%w: content cannot be empty", ErrValidation)

	// ErrInvalidTextType is returned when a text type is not one of the
	// known values.
	ErrInvalidTextType = fmt.Errorf("%w: invalid text type", ErrValidation)

	// ErrInvalidStyle is returned when a writing style is not one of the
	// known values.
	ErrInvalidStyle = fmt.Errorf("%w: invalid style", ErrValidation)

	// ErrInvalidLength is returned when a length hint is not one of the
	// known values.
	ErrInvalidLength = fmt.Errorf("%w: invalid length", ErrValidation)

	// ErrInvalidImprovementType is returned when an improvement type is
	// not one of the known values.
	ErrInvalidImprovementType = fmt.Errorf("%w: invalid improvement type", ErrValidation)

	// ErrInvalidRating is returned when a learning rating falls outside
	// the 1..5 range.
	ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)

	// ErrInvalidMetadata is returned when a metadata value is not one of
	// the allowed leaf types.
	ErrInvalidMetadata = fmt.Errorf("%w: invalid metadata value", ErrValidation)
)
