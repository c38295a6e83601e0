package superdata_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/platform/superdata"
	"github.com/ktiva/ktiva-api/internal/store"
)

// newTestClient points a Client at the given test server.
func newTestClient(t *testing.T, baseURL string) *superdata.Client {
	t.Helper()

	client, err := superdata.NewClient(config.SuperdataConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		DatabaseID: "db-1",
	}, nil)
	require.NoError(t, err)
	return client
}

func validRecord(t *testing.T) *domain.TextRecord {
	t.Helper()

	record, err := domain.NewTextRecord(
		"title", "content", domain.TextTypeLegal, domain.StyleFormal, []string{"tag"}, nil)
	require.NoError(t, err)
	return record
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.SuperdataConfig
	}{
		{
			name: "missing base URL",
			cfg:  config.SuperdataConfig{APIKey: "k", DatabaseID: "d"},
		},
		{
			name: "missing API key",
			cfg:  config.SuperdataConfig{BaseURL: "https://example.com", DatabaseID: "d"},
		},
		{
			name: "missing database ID",
			cfg:  config.SuperdataConfig{BaseURL: "https://example.com", APIKey: "k"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := superdata.NewClient(tc.cfg, nil)

			assert.Nil(t, client)
			assert.ErrorIs(t, err, store.ErrNotConfigured)
		})
	}
}

func TestSuperdataTextStore(t *testing.T) {
	t.Parallel()

	t.Run("create sends record with bearer auth", func(t *testing.T) {
		t.Parallel()

		var gotAuth, gotPath, gotMethod string
		var gotBody domain.TextRecord
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			gotMethod = r.Method
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))
		record := validRecord(t)

		err := textStore.CreateText(context.Background(), record)

		require.NoError(t, err)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "/databases/db-1/texts", gotPath)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, record.ID, gotBody.ID)
	})

	t.Run("create rejects invalid record locally", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))
		record := validRecord(t)
		record.Title = ""

		err := textStore.CreateText(context.Background(), record)

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("list passes filters as query parameters", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		records, err := textStore.ListTexts(context.Background(), store.TextFilter{
			TextType: domain.TextTypeLegal,
			Tags:     []string{"a", "b"},
			Limit:    10,
			Offset:   20,
		})

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, []string{"legal"}, gotQuery["textType"])
		assert.Equal(t, []string{"a,b"}, gotQuery["tags"])
		assert.Equal(t, []string{"10"}, gotQuery["limit"])
		assert.Equal(t, []string{"20"}, gotQuery["offset"])
	})

	t.Run("get maps 404 to text not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		record, err := textStore.GetText(context.Background(), uuid.New())

		assert.Nil(t, record)
		assert.ErrorIs(t, err, store.ErrTextNotFound)
	})

	t.Run("get decodes the record", func(t *testing.T) {
		t.Parallel()

		want := validRecord(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(want))
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		got, err := textStore.GetText(context.Background(), want.ID)

		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Title, got.Title)
	})

	t.Run("update sends a patch with refreshed timestamp", func(t *testing.T) {
		t.Parallel()

		existing := validRecord(t)
		var patch struct {
			Title     *string   `json:"title"`
			UpdatedAt time.Time `json:"updatedAt"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(existing))
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))
		newTitle := "updated"

		_, err := textStore.UpdateText(context.Background(), existing.ID,
			domain.TextUpdate{Title: &newTitle})

		require.NoError(t, err)
		require.NotNil(t, patch.Title)
		assert.Equal(t, "updated", *patch.Title)
		assert.False(t, patch.UpdatedAt.IsZero())
	})

	t.Run("update carries an explicit empty tags list", func(t *testing.T) {
		t.Parallel()

		existing := validRecord(t)
		var body map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(existing))
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		_, err := textStore.UpdateText(context.Background(), existing.ID,
			domain.TextUpdate{Tags: []string{}})

		require.NoError(t, err)
		require.Contains(t, body, "tags")
		assert.JSONEq(t, "[]", string(body["tags"]))
		assert.NotContains(t, body, "title")
		assert.NotContains(t, body, "metadata")
	})

	t.Run("delete maps 404 to text not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		err := textStore.DeleteText(context.Background(), uuid.New())

		assert.ErrorIs(t, err, store.ErrTextNotFound)
	})

	t.Run("server errors become store errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		textStore := superdata.NewSuperdataTextStore(newTestClient(t, server.URL))

		_, err := textStore.ListTexts(context.Background(), store.TextFilter{})

		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestSuperdataLearningStore(t *testing.T) {
	t.Parallel()

	t.Run("create sends the record as-is", func(t *testing.T) {
		t.Parallel()

		createdAt := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
		record, err := domain.NewLearningData(
			"user-1", "text-1", domain.ImprovementGrammar, "a", "b", "", 4, createdAt)
		require.NoError(t, err)

		var gotBody domain.LearningData
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/databases/db-1/learning", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		learningStore := superdata.NewSuperdataLearningStore(newTestClient(t, server.URL))

		require.NoError(t, learningStore.CreateLearningData(context.Background(), record))
		assert.Equal(t, record.ID, gotBody.ID)
		assert.True(t, createdAt.Equal(gotBody.CreatedAt))
	})

	t.Run("list sends userId and optional limit", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		defer server.Close()

		learningStore := superdata.NewSuperdataLearningStore(newTestClient(t, server.URL))

		_, err := learningStore.ListLearningData(context.Background(), "user-1", 25)

		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, gotQuery["userId"])
		assert.Equal(t, []string{"25"}, gotQuery["limit"])
	})

	t.Run("zero limit is omitted", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		defer server.Close()

		learningStore := superdata.NewSuperdataLearningStore(newTestClient(t, server.URL))

		_, err := learningStore.ListLearningData(context.Background(), "user-1", 0)

		require.NoError(t, err)
		assert.NotContains(t, gotQuery, "limit")
	})
}
