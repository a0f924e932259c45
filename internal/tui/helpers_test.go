package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// newTestModel wires an anonymous client: every save lands in a temporary
// SQLite file and the server address is never dialed.
func newTestModel(t *testing.T) (appModel, *service.ClientServices, *store.ClientStorages) {
	t.Helper()

	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "127.0.0.1:1", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "tui.db")}},
		Retry:   config.ClientRetry{BaseDelay: time.Millisecond, MaxAttempts: 1},
		Workers: config.ClientWorkers{SyncInterval: time.Hour, ProbeInterval: time.Hour},
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)

	documentAdapter, err := adapter.NewHTTPDocumentAdapter(cfg.Adapter, logger.Nop())
	require.NoError(t, err)

	svc, err := service.NewClientServices(storages, documentAdapter, cfg, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		svc.Close()
		_ = storages.Close()
	})

	return newAppModel(context.Background(), svc, models.NewAppBuildInfo("1.0.0", "", "abc123")), svc, storages
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to m and returns the resulting model and the last command.
func press(t *testing.T, m appModel, keys ...string) (appModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(appModel)
		require.True(t, ok)
	}
	return m, cmd
}

func send(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out
}
