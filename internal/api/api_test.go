package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ktiva/ktiva-api/internal/api"
	"github.com/ktiva/ktiva-api/internal/api/middleware"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/generation"
	"github.com/ktiva/ktiva-api/internal/service"
	"github.com/ktiva/ktiva-api/internal/store"
)

// fakeGateway returns a canned completion or error.
type fakeGateway struct {
	completion *generation.Completion
	err        error
}

func (f *fakeGateway) Complete(
	_ context.Context,
	_ generation.CompletionRequest,
) (*generation.Completion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

// fakeTextStore is an in-memory store.TextStore. A non-nil err fails
// every operation.
type fakeTextStore struct {
	records map[uuid.UUID]*domain.TextRecord
	err     error
}

func newFakeTextStore() *fakeTextStore {
	return &fakeTextStore{records: make(map[uuid.UUID]*domain.TextRecord)}
}

func (s *fakeTextStore) CreateText(_ context.Context, record *domain.TextRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records[record.ID] = record
	return nil
}

func (s *fakeTextStore) ListTexts(
	_ context.Context,
	filter store.TextFilter,
) ([]*domain.TextRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*domain.TextRecord
	for _, record := range s.records {
		if filter.TextType != "" && record.TextType != filter.TextType {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *fakeTextStore) GetText(_ context.Context, id uuid.UUID) (*domain.TextRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	record, ok := s.records[id]
	if !ok {
		return nil, store.ErrTextNotFound
	}
	return record, nil
}

func (s *fakeTextStore) UpdateText(
	_ context.Context,
	id uuid.UUID,
	update domain.TextUpdate,
) (*domain.TextRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	record, ok := s.records[id]
	if !ok {
		return nil, store.ErrTextNotFound
	}
	if err := record.ApplyUpdate(update); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *fakeTextStore) DeleteText(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.records[id]; !ok {
		return store.ErrTextNotFound
	}
	delete(s.records, id)
	return nil
}

// fakeLearningStore is an in-memory store.LearningStore.
type fakeLearningStore struct {
	records []*domain.LearningData
	err     error
}

func (s *fakeLearningStore) CreateLearningData(
	_ context.Context,
	record *domain.LearningData,
) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func (s *fakeLearningStore) ListLearningData(
	_ context.Context,
	userID string,
	limit int,
) ([]*domain.LearningData, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*domain.LearningData
	for _, record := range s.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// testEnv bundles the fakes behind a routed test server.
type testEnv struct {
	router   http.Handler
	texts    *fakeTextStore
	learning *fakeLearningStore
	gateway  *fakeGateway
}

// newTestEnv wires handlers to fakes under the same routes the server
// registers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		texts:    newFakeTextStore(),
		learning: &fakeLearningStore{},
		gateway: &fakeGateway{
			completion: &generation.Completion{Text: "טקסט שנוצר", TokensUsed: 128},
		},
	}

	generationHandler := api.NewGenerationHandler(
		service.NewGenerationService(env.gateway, nil), nil)
	textHandler := api.NewTextHandler(env.texts, nil)
	learningHandler := api.NewLearningHandler(env.learning, nil)
	analyticsHandler := api.NewAnalyticsHandler(env.texts, env.learning, nil)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/ai/generate", generationHandler.Generate)
		r.Post("/ai/improve", generationHandler.Improve)
		r.Post("/texts", textHandler.Create)
		r.Get("/texts", textHandler.List)
		r.Get("/texts/{id}", textHandler.Get)
		r.Patch("/texts/{id}", textHandler.Update)
		r.Delete("/texts/{id}", textHandler.Delete)
		r.Post("/learning", learningHandler.Create)
		r.Get("/learning", learningHandler.List)
		r.Get("/analytics/texts", analyticsHandler.TextAnalytics)
		r.Get("/analytics/learning/{userId}", analyticsHandler.LearningInsights)
	})

	env.router = r
	return env
}

// doRequest executes one request against the test router and returns the
// recorded response.
func (env *testEnv) doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// seedText stores one valid record directly in the fake store.
func (env *testEnv) seedText(t *testing.T) *domain.TextRecord {
	t.Helper()

	record, err := domain.NewTextRecord(
		"חוזה שכירות", "תוכן החוזה", domain.TextTypeLegal, domain.StyleFormal,
		[]string{"חוזה"}, nil)
	require.NoError(t, err)
	env.texts.records[record.ID] = record
	return record
}
