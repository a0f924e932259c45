package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/mock"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestDocumentService(t *testing.T) (*documentService, *mock.MockDocumentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)

	validator, err := validators.NewDocumentValidator()
	require.NoError(t, err)

	svc := NewDocumentService(repo, validator, fixedIDs("doc-1"), logger.Nop()).(*documentService)
	svc.clock = func() time.Time { return time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC) }
	return svc, repo
}

func accountCtx(accountID string) context.Context {
	return context.WithValue(context.Background(), utils.AccountIDCtxKey, accountID)
}

func TestDocumentService_Create(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	want := models.Document{
		ID:        "doc-1",
		Owner:     "acc-1",
		Title:     "flowers",
		Content:   []string{"🌸", "🌼"},
		CreatedAt: at,
		UpdatedAt: at,
	}
	repo.EXPECT().Create(gomock.Any(), want).Return(want, nil)

	got, err := svc.Create(accountCtx("acc-1"), models.DocumentRequest{Title: "flowers", Content: []string{"🌸", "🌼"}})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDocumentService_Create_NilContentIsEmpty(t *testing.T) {
	svc, repo := newTestDocumentService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Document) (models.Document, error) { return d, nil })

	got, err := svc.Create(accountCtx("acc-1"), models.DocumentRequest{Title: "blank"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Content)
}

func TestDocumentService_Create_Invalid(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Create(accountCtx("acc-1"), models.DocumentRequest{Title: "x", Content: []string{""}})
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestDocumentService_NoAccount(t *testing.T) {
	svc, _ := newTestDocumentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.DocumentRequest{})
	assert.ErrorIs(t, err, ErrNoAccountID)
	_, err = svc.Update(ctx, "doc-1", models.DocumentRequest{})
	assert.ErrorIs(t, err, ErrNoAccountID)
	assert.ErrorIs(t, svc.Delete(ctx, "doc-1"), ErrNoAccountID)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrNoAccountID)
}

func TestDocumentService_Update(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	req := models.DocumentRequest{Title: "t", Content: []string{"🌊"}}

	repo.EXPECT().Update(gomock.Any(), "acc-1", "doc-1", req, at).Return(models.Document{ID: "doc-1"}, nil)

	got, err := svc.Update(accountCtx("acc-1"), "doc-1", req)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
}

func TestDocumentService_Update_NotFound(t *testing.T) {
	svc, repo := newTestDocumentService(t)

	repo.EXPECT().Update(gomock.Any(), "acc-1", "missing", gomock.Any(), gomock.Any()).Return(models.Document{}, app.ErrNotFound)

	_, err := svc.Update(accountCtx("acc-1"), "missing", models.DocumentRequest{Title: "t", Content: []string{}})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDocumentService_DeleteAndList(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	ctx := accountCtx("acc-1")

	repo.EXPECT().Delete(gomock.Any(), "acc-1", "doc-1").Return(nil)
	repo.EXPECT().List(gomock.Any(), "acc-1").Return([]models.Document{{ID: "doc-2"}}, nil)

	require.NoError(t, svc.Delete(ctx, "doc-1"))

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docs[0].ID)
}

func TestDocumentService_RepositoryErrorPassesThrough(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	boom := errors.New("db down")

	repo.EXPECT().List(gomock.Any(), "acc-1").Return(nil, boom)

	_, err := svc.List(accountCtx("acc-1"))
	assert.ErrorIs(t, err, boom)
}
