package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type fakeRequest struct {
	Method string
	Path   string
	Body   models.DocumentRequest
}

// fakeDocumentServer is an in-memory document server. Writes can be made to
// fail with queued status codes.
type fakeDocumentServer struct {
	*httptest.Server

	mu       sync.Mutex
	docs     map[string]models.Document
	order    []string
	seq      int
	writes   []fakeRequest
	failures []int
}

func newFakeDocumentServer(t *testing.T) *fakeDocumentServer {
	t.Helper()

	f := &fakeDocumentServer{docs: make(map[string]models.Document)}

	r := chi.NewRouter()
	r.Get("/api/version/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("test"))
	})
	r.Get("/documents", f.list)
	r.Post("/documents", f.create)
	r.Put("/documents/{id}", f.update)
	r.Delete("/documents/{id}", f.delete)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Close)
	return f
}

// failNext makes the next len(statuses) writes answer with those statuses.
func (f *fakeDocumentServer) failNext(statuses ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, statuses...)
}

// forget drops a document as if another client had deleted it.
func (f *fakeDocumentServer) forget(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
}

func (f *fakeDocumentServer) Writes() []fakeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeRequest{}, f.writes...)
}

func (f *fakeDocumentServer) Documents() []models.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Document, 0, len(f.order))
	for _, id := range f.order {
		if d, ok := f.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// record logs the write and reports the failure status to answer with, or 0.
func (f *fakeDocumentServer) record(r *http.Request, body models.DocumentRequest) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, fakeRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	if len(f.failures) == 0 {
		return 0
	}
	status := f.failures[0]
	f.failures = f.failures[1:]
	return status
}

func decodeRequest(r *http.Request) models.DocumentRequest {
	var body models.DocumentRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}

func (f *fakeDocumentServer) list(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.DocumentListResponse{Documents: f.Documents()}, http.StatusOK)
}

func (f *fakeDocumentServer) create(w http.ResponseWriter, r *http.Request) {
	body := decodeRequest(r)
	if status := f.record(r, body); status != 0 {
		utils.WriteError(w, "injected failure", status)
		return
	}

	f.mu.Lock()
	f.seq++
	now := time.Now().UTC()
	doc := models.Document{
		ID:        "srv-" + strconv.Itoa(f.seq),
		Owner:     "acc-1",
		Title:     body.Title,
		Content:   body.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.docs[doc.ID] = doc
	f.order = append(f.order, doc.ID)
	f.mu.Unlock()

	_, _ = utils.WriteJSON(w, doc, http.StatusCreated)
}

func (f *fakeDocumentServer) update(w http.ResponseWriter, r *http.Request) {
	body := decodeRequest(r)
	if status := f.record(r, body); status != 0 {
		utils.WriteError(w, "injected failure", status)
		return
	}

	id := chi.URLParam(r, "id")
	f.mu.Lock()
	doc, ok := f.docs[id]
	if ok {
		doc.Title = body.Title
		doc.Content = body.Content
		doc.UpdatedAt = time.Now().UTC()
		f.docs[id] = doc
	}
	f.mu.Unlock()

	if !ok {
		utils.WriteError(w, "document not found", http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (f *fakeDocumentServer) delete(w http.ResponseWriter, r *http.Request) {
	if status := f.record(r, models.DocumentRequest{}); status != 0 {
		utils.WriteError(w, "injected failure", status)
		return
	}

	id := chi.URLParam(r, "id")
	f.mu.Lock()
	_, ok := f.docs[id]
	delete(f.docs, id)
	f.mu.Unlock()

	if !ok {
		utils.WriteError(w, "document not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// testEngine is a fully wired client engine against a fake server and a
// temporary SQLite file.
type testEngine struct {
	*ClientServices
	storages *store.ClientStorages
	adapter  adapter.DocumentAdapter
	server   *fakeDocumentServer
}

type engineOption func(cfg *config.ClientConfig)

func withToken(token string) engineOption {
	return func(cfg *config.ClientConfig) { cfg.Adapter.Token = token }
}

func withDebounce(d time.Duration) engineOption {
	return func(cfg *config.ClientConfig) { cfg.Autosave.Debounce = d }
}

func newTestEngine(t *testing.T, opts ...engineOption) *testEngine {
	t.Helper()

	srv := newFakeDocumentServer(t)
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 2 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "keeper.db")}},
		Retry:   config.ClientRetry{BaseDelay: time.Millisecond, MaxAttempts: 3},
		Workers: config.ClientWorkers{SyncInterval: time.Hour, ProbeInterval: time.Hour},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)

	documentAdapter, err := adapter.NewHTTPDocumentAdapter(cfg.Adapter, logger.Nop())
	require.NoError(t, err)

	svc, err := NewClientServices(storages, documentAdapter, cfg, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		svc.Close()
		_ = storages.Close()
	})

	return &testEngine{ClientServices: svc, storages: storages, adapter: documentAdapter, server: srv}
}

// goOnline marks the server reachable the way a successful probe does.
func (e *testEngine) goOnline() {
	e.Connectivity.Restored()
	e.Connectivity.Drained(0)
}

// edit applies content to the open document and waits for every save.
func (e *testEngine) edit(t *testing.T, content ...string) models.Document {
	t.Helper()
	doc, err := e.Session.Mutate(content)
	require.NoError(t, err)
	e.Scheduler.Flush()
	return doc
}

func (e *testEngine) unsynced(t *testing.T) []models.PendingMutation {
	t.Helper()
	entries, err := e.storages.OutboxRepository.ListUnsynced(context.Background())
	require.NoError(t, err)
	return entries
}

func testToken(t *testing.T, accountID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("pattern-keeper", accountID, time.Hour, "secret")
	require.NoError(t, err)
	return token.SignedString
}
