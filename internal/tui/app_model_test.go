package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

func TestAppModel_EditDocument(t *testing.T) {
	m, svc, storages := newTestModel(t)

	m, _ = press(t, m, "n")
	require.Equal(t, screenEditor, m.currentScreen)
	require.True(t, m.editingTitle, "a new document starts with the title")

	m, _ = press(t, m, "sky", "enter")
	assert.False(t, m.editingTitle)

	m, _ = press(t, m, "🌙", "enter", "⭐", "enter", "☁", "enter", "backspace")

	doc, ok := svc.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "sky", doc.Title)
	assert.Equal(t, []string{"🌙", "⭐"}, doc.Content)
	assert.Contains(t, m.View(), "EDIT DOCUMENT")

	svc.Scheduler.Flush()
	stored, err := storages.DocumentRepository.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"🌙", "⭐"}, stored[0].Content)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenList, m.currentScreen)
	assert.Contains(t, m.View(), "sky (2)")
}

func TestAppModel_BlankTokenIsIgnored(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = press(t, m, "n", "enter", "   ", "enter")

	doc, _ := svc.Session.Current()
	assert.Empty(t, doc.Content)
	assert.False(t, m.showError)
}

func TestAppModel_RenameDocument(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = press(t, m, "n", "old", "enter", "ctrl+t")
	require.True(t, m.editingTitle)
	assert.Equal(t, "old", m.titleInput.Value())

	m, _ = press(t, m, "backspace", "backspace", "backspace", "new", "enter")

	doc, _ := svc.Session.Current()
	assert.Equal(t, "new", doc.Title)
}

func TestAppModel_DeleteWithConfirmation(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = press(t, m, "n", "a", "enter", "🅰", "enter", "esc")
	require.Len(t, svc.Session.Known(), 1)

	m, _ = press(t, m, "d")
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Delete")

	m, _ = press(t, m, "n")
	assert.False(t, m.showConfirm)
	assert.Len(t, svc.Session.Known(), 1)

	m, _ = press(t, m, "d", "y")
	assert.False(t, m.showConfirm)
	assert.Empty(t, svc.Session.Known())
	assert.Contains(t, m.View(), "No documents yet")
}

func TestAppModel_OpenSecondDocument(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = press(t, m, "n", "first", "enter", "esc")
	m, _ = press(t, m, "n", "second", "enter", "esc")
	m, _ = press(t, m, "up", "enter")

	doc, ok := svc.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "first", doc.Title)
	assert.Equal(t, screenEditor, m.currentScreen)
}

func TestAppModel_SignInErrorIsShown(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "i")
	require.Equal(t, screenSignIn, m.currentScreen)

	m, cmd := press(t, m, "enter")
	require.True(t, m.signingIn)
	require.NotNil(t, cmd)

	m = send(t, m, m.cmdSignIn("")())
	assert.True(t, m.showError)
	assert.Equal(t, "token is empty", m.errorOverlay.message)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
	assert.Equal(t, screenSignIn, m.currentScreen)
}

func TestAppModel_SyncWhileOffline(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "s")
	require.True(t, m.syncing)

	m = send(t, m, syncDoneMsg{err: app.ErrOffline})
	assert.False(t, m.syncing)
	assert.Contains(t, m.notice, "unreachable")

	m = send(t, m, clearNoticeMsg{})
	assert.Empty(t, m.notice)
}

func TestAppModel_StatusMessages(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(t, m, statusMsg{status: models.SaveStatus{
		SaveError:  "autosave failed: boom",
		SyncStatus: models.SyncOnline,
	}})
	view := m.View()
	assert.Contains(t, view, "[online]")
	assert.Contains(t, view, "autosave failed: boom")

	m = send(t, m, statusMsg{status: models.SaveStatus{
		SaveError:        app.MsgTokenIsExpired,
		IsSessionExpired: true,
		SyncStatus:       models.SyncOnline,
	}})
	assert.Contains(t, m.View(), "session expired")
}

func TestAppModel_AboutOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "?")
	require.True(t, m.showAbout)
	view := m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "N/A")

	m, _ = press(t, m, "esc")
	assert.False(t, m.showAbout)
}

func TestAppModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
