// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// newTestAdapter builds an adapter pointed at the test server with a token set.
func newTestAdapter(t *testing.T, serverURL string) *httpDocumentAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second, Token: "test-token"}

	a, err := NewHTTPDocumentAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDocumentAdapter)
}

func writeDocument(t *testing.T, w http.ResponseWriter, status int, doc models.Document) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(doc))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPDocumentAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDocumentAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://keeper.example/", want: "https://keeper.example"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// ── Create / Update ─────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/documents", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body models.DocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Row", body.Title)
		assert.Equal(t, []string{"🌸"}, body.Content)

		writeDocument(t, w, http.StatusCreated, models.Document{
			ID: "durable-1", Owner: "acc", Title: body.Title, Content: body.Content, CreatedAt: now, UpdatedAt: now,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.Create(context.Background(), models.DocumentRequest{Title: "Row", Content: []string{"🌸"}})

	require.NoError(t, err)
	assert.Equal(t, "durable-1", doc.ID)
	assert.Equal(t, "acc", doc.Owner)
	assert.True(t, doc.Durable)
	assert.True(t, now.Equal(doc.UpdatedAt))
}

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/documents/durable-1", r.URL.Path)
		writeDocument(t, w, http.StatusOK, models.Document{ID: "durable-1", Title: "New"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.Update(context.Background(), "durable-1", models.DocumentRequest{Title: "New", Content: []string{}})

	require.NoError(t, err)
	assert.Equal(t, "New", doc.Title)
	assert.Equal(t, []string{}, doc.Content)
}

func TestWrite_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		wantClass error
	}{
		{name: "400", status: http.StatusBadRequest, wantErr: ErrBadRequest, wantClass: app.ErrValidation},
		{name: "422", status: http.StatusUnprocessableEntity, wantErr: ErrBadRequest, wantClass: app.ErrValidation},
		{name: "401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantClass: app.ErrAuthExpired},
		{name: "404", status: http.StatusNotFound, wantErr: ErrNotFound, wantClass: app.ErrNotFound},
		{name: "429", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests, wantClass: app.ErrTransient},
		{name: "500", status: http.StatusInternalServerError, wantErr: ErrServerError, wantClass: app.ErrTransient},
		{name: "503", status: http.StatusServiceUnavailable, wantErr: ErrServerError, wantClass: app.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Create(context.Background(), models.DocumentRequest{Content: []string{}})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantClass)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestCreate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Create(context.Background(), models.DocumentRequest{})

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, app.ErrTransient)
}

func TestCreate_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetToken("")

	_, err := a.Create(context.Background(), models.DocumentRequest{})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, err, app.ErrAuthExpired)
}

// ── Delete / List / Version ─────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/documents/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Delete(context.Background(), "doc-1"))
	assert.ErrorIs(t, a.Delete(context.Background(), "gone"), app.ErrNotFound)
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[{"id":"a","ownerId":"acc","title":"A","content":null},{"id":"b","ownerId":"acc","title":"B","content":["🌸"]}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	docs, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []string{}, docs[0].Content)
	assert.True(t, docs[1].Durable)
}

func TestVersion_NoAuthRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("")

	v, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

// ── SetToken / Describe ─────────────────────────────────────────────────────

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

func TestDescribe(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	req := models.DocumentRequest{Title: "T", Content: []string{"🌸"}}

	create, err := a.Describe(models.OperationCreate, "tmp-1", req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, create.Method)
	assert.Equal(t, "http://localhost:8080/documents", create.TargetURL)
	assert.JSONEq(t, `{"title":"T","content":["🌸"]}`, string(create.Body))
	assert.NotContains(t, create.Headers, "Authorization")

	update, err := a.Describe(models.OperationUpdate, "d 1", req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/documents/d%201", update.TargetURL)

	del, err := a.Describe(models.OperationDelete, "d1", req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, del.Method)
	assert.Empty(t, del.Body)

	_, err = a.Describe("patch", "d1", req)
	assert.Error(t, err)
}
