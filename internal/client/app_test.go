package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f fakeUI) Run(ctx context.Context) error { return f.run(ctx) }

func newTestServices(t *testing.T, dsn string) (*service.ClientServices, *store.ClientStorages) {
	t.Helper()

	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "127.0.0.1:1", RequestTimeout: 100 * time.Millisecond},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
		Retry:   config.ClientRetry{BaseDelay: time.Millisecond, MaxAttempts: 1},
		Workers: config.ClientWorkers{SyncInterval: time.Hour, ProbeInterval: time.Hour},
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	documentAdapter, err := adapter.NewHTTPDocumentAdapter(cfg.Adapter, logger.Nop())
	require.NoError(t, err)

	svc, err := service.NewClientServices(storages, documentAdapter, cfg, logger.Nop())
	require.NoError(t, err)
	return svc, storages
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, fakeUI{}, "", logger.Nop())
	assert.Error(t, err)
}

func TestApp_RunLoadsDocumentsAndFlushesOnExit(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	// a previous run left one document on this device
	prev, prevStorages := newTestServices(t, dsn)
	_, err := prevStorages.DocumentRepository.Create(ctx, models.Document{
		ID:        "local-1",
		Owner:     models.AnonymousOwner,
		Title:     "kept",
		Content:   []string{"📌"},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	prev.Close()
	require.NoError(t, prevStorages.Close())

	svc, storages := newTestServices(t, dsn)

	ui := fakeUI{run: func(context.Context) error {
		known := svc.Session.Known()
		require.Len(t, known, 1)
		assert.Equal(t, "kept", known[0].Title)

		require.NoError(t, svc.Session.Open("local-1"))
		_, err := svc.Session.Mutate([]string{"📌", "📎"})
		return err
	}}

	app, err := NewApp(svc, ui, "", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(ctx))

	docs, err := storages.DocumentRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"📌", "📎"}, docs[0].Content)
}

func TestApp_RunReturnsUIError(t *testing.T) {
	svc, _ := newTestServices(t, filepath.Join(t.TempDir(), "client.db"))
	boom := errors.New("terminal gone")

	app, err := NewApp(svc, fakeUI{run: func(context.Context) error { return boom }}, "", logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}

func TestApp_StartupSignInFailureKeepsRunning(t *testing.T) {
	svc, _ := newTestServices(t, filepath.Join(t.TempDir(), "client.db"))

	called := false
	app, err := NewApp(svc, fakeUI{run: func(context.Context) error {
		called = true
		return nil
	}}, "not-a-jwt", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, called)
	assert.False(t, svc.AuthService.SignedIn())
}
