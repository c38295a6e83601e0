package superdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/store"
)

// SuperdataTextStore implements the store.TextStore interface against
// the record service.
type SuperdataTextStore struct {
	client *Client
}

// NewSuperdataTextStore creates a TextStore backed by the given client.
func NewSuperdataTextStore(client *Client) *SuperdataTextStore {
	if client == nil {
		panic("client cannot be nil")
	}
	return &SuperdataTextStore{client: client}
}

// Ensure SuperdataTextStore implements store.TextStore interface
var _ store.TextStore = (*SuperdataTextStore)(nil)

// buildTextPatch assembles the PATCH payload for the record service:
// only the fields the update carries, plus the refreshed update
// timestamp. Non-nil empty tags and metadata are sent as-is, so
// clearing them behaves the same as on the relational backend.
func buildTextPatch(update domain.TextUpdate, updatedAt time.Time) map[string]any {
	patch := map[string]any{"updatedAt": updatedAt}

	if update.Title != nil {
		patch["title"] = *update.Title
	}
	if update.Content != nil {
		patch["content"] = *update.Content
	}
	if update.TextType != nil {
		patch["textType"] = *update.TextType
	}
	if update.Style != nil {
		patch["style"] = *update.Style
	}
	if update.Tags != nil {
		patch["tags"] = update.Tags
	}
	if update.Metadata != nil {
		patch["metadata"] = update.Metadata
	}

	return patch
}

// CreateText implements store.TextStore.CreateText
func (s *SuperdataTextStore) CreateText(ctx context.Context, record *domain.TextRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	return s.client.do(ctx, http.MethodPost, "texts", nil, record, nil)
}

// ListTexts implements store.TextStore.ListTexts
// Filters are passed through as query parameters; ordering by creation
// time descending is part of the service contract.
func (s *SuperdataTextStore) ListTexts(
	ctx context.Context,
	filter store.TextFilter,
) ([]*domain.TextRecord, error) {
	query := url.Values{}
	if filter.TextType != "" {
		query.Set("textType", string(filter.TextType))
	}
	if len(filter.Tags) > 0 {
		query.Set("tags", strings.Join(filter.Tags, ","))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var records []*domain.TextRecord
	if err := s.client.do(ctx, http.MethodGet, "texts", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetText implements store.TextStore.GetText
func (s *SuperdataTextStore) GetText(ctx context.Context, id uuid.UUID) (*domain.TextRecord, error) {
	var record domain.TextRecord
	err := s.client.do(ctx, http.MethodGet, "texts/"+id.String(), nil, nil, &record)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrTextNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdateText implements store.TextStore.UpdateText
// The service merges the patch and returns the updated record; the
// refreshed updatedAt is stamped here so both backends agree on who
// owns text timestamps.
func (s *SuperdataTextStore) UpdateText(
	ctx context.Context,
	id uuid.UUID,
	update domain.TextUpdate,
) (*domain.TextRecord, error) {
	patch := buildTextPatch(update, time.Now().UTC())

	var record domain.TextRecord
	err := s.client.do(ctx, http.MethodPatch, "texts/"+id.String(), nil, patch, &record)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrTextNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteText implements store.TextStore.DeleteText
func (s *SuperdataTextStore) DeleteText(ctx context.Context, id uuid.UUID) error {
	err := s.client.do(ctx, http.MethodDelete, "texts/"+id.String(), nil, nil, nil)
	if errors.Is(err, store.ErrNotFound) {
		return store.ErrTextNotFound
	}
	return err
}
