package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

const (
	documentsPath = "/documents"
	versionPath   = "/api/version/"
)

type httpDocumentAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDocumentAdapter constructs the resty implementation of
// [DocumentAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the client timeout. A token in cfg is
// installed right away.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDocumentAdapter(cfg config.ClientAdapter, logger *logger.Logger) (DocumentAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpDocumentAdapter{client: client, baseURL: baseURL, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// all subsequent document requests.
func (h *httpDocumentAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDocumentAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDocumentAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpDocumentAdapter) Create(ctx context.Context, req models.DocumentRequest) (models.Document, error) {
	return h.write(ctx, "httpDocumentAdapter.Create", http.MethodPost, documentsPath, req)
}

func (h *httpDocumentAdapter) Update(ctx context.Context, id string, req models.DocumentRequest) (models.Document, error) {
	return h.write(ctx, "httpDocumentAdapter.Update", http.MethodPut, documentPath(id), req)
}

func (h *httpDocumentAdapter) write(ctx context.Context, fn, method, path string, body models.DocumentRequest) (models.Document, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&doc).
		Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", fn).Str("path", path).Msg("request failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err := mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", fn).Int("status", resp.StatusCode()).Msg("server rejected write")
		return models.Document{}, err
	}

	doc.Durable = true
	if doc.Content == nil {
		doc.Content = []string{}
	}
	return doc, nil
}

// Delete removes a document. A 404 is returned as [ErrNotFound]; callers
// treat it as already deleted.
func (h *httpDocumentAdapter) Delete(ctx context.Context, id string) error {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.Delete(documentPath(id))
	if err != nil {
		h.logger.Err(err).Str("func", "httpDocumentAdapter.Delete").Str("document_id", id).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpDocumentAdapter) List(ctx context.Context) ([]models.Document, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var list models.DocumentListResponse
	resp, err := r.SetResult(&list).Get(documentsPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpDocumentAdapter.List").Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	docs := list.Documents
	if docs == nil {
		docs = []models.Document{}
	}
	for i := range docs {
		docs[i].Durable = true
		if docs[i].Content == nil {
			docs[i].Content = []string{}
		}
	}
	return docs, nil
}

func (h *httpDocumentAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpDocumentAdapter) Describe(kind models.OperationKind, id string, req models.DocumentRequest) (models.PendingMutation, error) {
	m := models.PendingMutation{
		Kind:    kind,
		Headers: map[string]string{},
	}

	switch kind {
	case models.OperationCreate:
		m.Method = http.MethodPost
		m.TargetURL = h.baseURL + documentsPath
	case models.OperationUpdate:
		m.Method = http.MethodPut
		m.TargetURL = h.baseURL + documentPath(id)
	case models.OperationDelete:
		m.Method = http.MethodDelete
		m.TargetURL = h.baseURL + documentPath(id)
		return m, nil
	default:
		return models.PendingMutation{}, fmt.Errorf("unknown operation kind %q", kind)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.PendingMutation{}, fmt.Errorf("error encoding request body: %w", err)
	}
	m.Body = body
	m.Headers["Content-Type"] = "application/json"

	return m, nil
}

func documentPath(id string) string {
	return documentsPath + "/" + url.PathEscape(id)
}
