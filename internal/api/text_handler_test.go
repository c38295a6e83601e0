package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktiva/ktiva-api/internal/domain"
)

func TestCreateTextEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates a record and responds 201", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodPost, "/api/texts",
			`{"title":"חוזה","content":"תוכן","textType":"legal","style":"formal","tags":["a"]}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    domain.TextRecord `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEqual(t, uuid.Nil, resp.Data.ID)
		assert.Equal(t, "חוזה", resp.Data.Title)
		assert.Equal(t, resp.Data.CreatedAt, resp.Data.UpdatedAt)
		assert.Len(t, env.texts.records, 1)
	})

	t.Run("rejects unknown text type", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodPost, "/api/texts",
			`{"title":"חוזה","content":"תוכן","textType":"poetry","style":"formal"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, env.texts.records)
	})

	t.Run("store failure responds 500 with Hebrew message", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.texts.err = errors.New("connection refused")
		rec := env.doRequest(t, http.MethodPost, "/api/texts",
			`{"title":"חוזה","content":"תוכן","textType":"legal","style":"formal"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		errMsg := assertFailureEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "שגיאה בשמירת הטקסט", errMsg)
	})
}

func TestListTextsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns records with count", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.seedText(t)
		env.seedText(t)

		rec := env.doRequest(t, http.MethodGet, "/api/texts", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool                `json:"success"`
			Data    []domain.TextRecord `json:"data"`
			Count   int                 `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Count)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("empty store yields empty list, not null", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodGet, "/api/texts", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("rejects malformed limit", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodGet, "/api/texts?limit=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodGet, "/api/texts?offset=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTextEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns the record", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		record := env.seedText(t)

		rec := env.doRequest(t, http.MethodGet, "/api/texts/"+record.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    domain.TextRecord `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, record.ID, resp.Data.ID)
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodGet, "/api/texts/"+uuid.NewString(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		errMsg := assertFailureEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "הטקסט לא נמצא", errMsg)
	})

	t.Run("malformed id responds 400", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodGet, "/api/texts/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTextEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("merges provided fields and returns updated record", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		record := env.seedText(t)
		originalContent := record.Content

		rec := env.doRequest(t, http.MethodPatch, "/api/texts/"+record.ID.String(),
			`{"title":"כותרת חדשה"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    domain.TextRecord `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "כותרת חדשה", resp.Data.Title)
		assert.Equal(t, originalContent, resp.Data.Content)
		assert.True(t, resp.Data.UpdatedAt.After(resp.Data.CreatedAt))
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodPatch, "/api/texts/"+uuid.NewString(),
			`{"title":"כותרת"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		record := env.seedText(t)

		rec := env.doRequest(t, http.MethodPatch, "/api/texts/"+record.ID.String(),
			`{"title":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "חוזה שכירות", env.texts.records[record.ID].Title)
	})
}

func TestDeleteTextEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("deletes the record", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		record := env.seedText(t)

		rec := env.doRequest(t, http.MethodDelete, "/api/texts/"+record.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "הטקסט נמחק בהצלחה")
		assert.Empty(t, env.texts.records)
	})

	t.Run("deleting an unknown id responds 404", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.doRequest(t, http.MethodDelete, "/api/texts/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("repeated delete responds 404", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		record := env.seedText(t)
		path := "/api/texts/" + record.ID.String()

		first := env.doRequest(t, http.MethodDelete, path, "")
		second := env.doRequest(t, http.MethodDelete, path, "")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusNotFound, second.Code)
	})
}
