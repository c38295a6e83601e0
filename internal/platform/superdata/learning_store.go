package superdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/store"
)

// SuperdataLearningStore implements the store.LearningStore interface
// against the record service.
type SuperdataLearningStore struct {
	client *Client
}

// NewSuperdataLearningStore creates a LearningStore backed by the given
// client.
func NewSuperdataLearningStore(client *Client) *SuperdataLearningStore {
	if client == nil {
		panic("client cannot be nil")
	}
	return &SuperdataLearningStore{client: client}
}

// Ensure SuperdataLearningStore implements store.LearningStore interface
var _ store.LearningStore = (*SuperdataLearningStore)(nil)

// CreateLearningData implements store.LearningStore.CreateLearningData
// The record's caller-supplied CreatedAt is sent through unchanged.
func (s *SuperdataLearningStore) CreateLearningData(
	ctx context.Context,
	record *domain.LearningData,
) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	return s.client.do(ctx, http.MethodPost, "learning", nil, record, nil)
}

// ListLearningData implements store.LearningStore.ListLearningData
func (s *SuperdataLearningStore) ListLearningData(
	ctx context.Context,
	userID string,
	limit int,
) ([]*domain.LearningData, error) {
	query := url.Values{}
	query.Set("userId", userID)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var records []*domain.LearningData
	if err := s.client.do(ctx, http.MethodGet, "learning", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
