package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/mock"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type handlerMocks struct {
	documents *mock.MockDocumentService
	auth      *mock.MockAuthService
	info      *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		documents: mock.NewMockDocumentService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		info:      mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:     m.auth,
		DocumentService: m.documents,
		AppInfoService:  m.info,
	}, logger.Nop())

	return h.Init(), m
}

// expectAccount makes any bearer token resolve to accountID.
func (m handlerMocks) expectAccount(accountID string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{AccountID: accountID}, nil)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}
