package api

import (
	"errors"
	"net/http"

	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/generation"
	"github.com/ktiva/ktiva-api/internal/service"
	"github.com/ktiva/ktiva-api/internal/store"
)

// User-facing error messages. These are short Hebrew strings; the
// detailed internal errors behind them are logged server-side only.
const (
	MsgGenerationFailed       = "שגיאה ביצירת הטקסט"
	MsgImprovementFailed      = "שגיאה בשיפור הטקסט"
	MsgSaveTextFailed         = "שגיאה בשמירת הטקסט"
	MsgLoadTextsFailed        = "שגיאה בטעינת הטקסטים"
	MsgLoadTextFailed         = "שגיאה בטעינת הטקסט"
	MsgUpdateTextFailed       = "שגיאה בעדכון הטקסט"
	MsgDeleteTextFailed       = "שגיאה במחיקת הטקסט"
	MsgSaveLearningFailed     = "שגיאה בשמירת נתוני הלמידה"
	MsgLoadLearningFailed     = "שגיאה בטעינת נתוני הלמידה"
	MsgTextAnalyticsFailed    = "שגיאה בטעינת נתוני הניתוח"
	MsgLearningInsightsFailed = "שגיאה בטעינת תובנות הלמידה"
	MsgTextNotFound           = "הטקסט לא נמצא"
	MsgInvalidRequest         = "בקשה לא תקינה"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *service.ValidationError

	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.As(err, &validationErr),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Configuration preconditions surface as server errors: the caller
	// cannot fix them.
	case errors.Is(err, store.ErrNotConfigured),
		errors.Is(err, service.ErrNotConfigured),
		errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the user-facing message for an error:
// validation errors keep their field-level detail, not-found errors get
// the standard Hebrew message, and everything else collapses to the
// operation's generic fallback.
func SafeErrorMessage(err error, fallback string) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	if errors.Is(err, store.ErrNotFound) {
		return MsgTextNotFound
	}
	return fallback
}
