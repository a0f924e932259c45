package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

const noticeTTL = 3 * time.Second

type screen int

const (
	screenList screen = iota
	screenEditor
	screenSignIn
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	info     models.AppBuildInfo

	currentScreen screen
	idx           int
	status        models.SaveStatus

	tokenInput   textinput.Model
	titleInput   textinput.Model
	editingTitle bool
	signInInput  textinput.Model

	spinner   spinner.Model
	syncing   bool
	signingIn bool
	notice    string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showAbout     bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, info models.AppBuildInfo) appModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "type a token, enter to append"

	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 200

	signInInput := textinput.New()
	signInInput.Placeholder = "bearer token"
	signInInput.EchoMode = textinput.EchoPassword

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:         ctx,
		services:    services,
		info:        info,
		status:      services.Session.Status(),
		tokenInput:  tokenInput,
		titleInput:  titleInput,
		signInInput: signInInput,
		spinner:     s,
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showAbout {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showAbout = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case statusMsg:
		m.status = msg.status
		return m, nil
	case signedInMsg:
		m.signingIn = false
		if msg.err != nil {
			m.showErrorf("%s", humanizeError(msg.err))
			return m, nil
		}
		m.signInInput.Reset()
		m.signInInput.Blur()
		m.currentScreen = screenList
		m.notice = fmt.Sprintf("signed in as %s: %d migrated, %d kept locally",
			m.services.Session.Owner(), len(msg.report.Migrated), len(msg.report.Failed))
		return m, cmdClearNotice()
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.notice = humanizeError(msg.err)
		} else {
			m.notice = fmt.Sprintf("synced: %d replayed, %d pending", msg.report.Replayed, msg.report.Pending)
		}
		return m, cmdClearNotice()
	case copiedMsg:
		if msg.err != nil {
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.notice = "copied"
		}
		return m, cmdClearNotice()
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if !m.syncing && !m.signingIn {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenEditor:
		return m.updateEditor(msg)
	case screenSignIn:
		return m.updateSignIn(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	docs := m.services.Session.Known()
	m.idx = clampIndex(m.idx, len(docs))

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(docs)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(docs) == 0 {
			return m, nil
		}
		if err := m.services.Session.Open(docs[m.idx].ID); err != nil {
			m.showErrorf("%s", err.Error())
			return m, nil
		}
		return m.openEditor(false)
	case key.Matches(keyMsg, keys.newDoc):
		m.services.Session.NewDocument("")
		m.idx = len(docs)
		return m.openEditor(true)
	case key.Matches(keyMsg, keys.delete):
		if len(docs) == 0 {
			return m, nil
		}
		m.pendingDelete = docs[m.idx].ID
		m.confirm.message = documentLabel(docs[m.idx])
		m.showConfirm = true
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.signIn):
		m.currentScreen = screenSignIn
		m.signInInput.Reset()
		cmd := m.signInInput.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.about):
		m.showAbout = true
	case key.Matches(keyMsg, keys.dismiss):
		m.services.Session.Dismiss()
	}

	return m, nil
}

func (m appModel) openEditor(withTitle bool) (tea.Model, tea.Cmd) {
	m.currentScreen = screenEditor
	m.tokenInput.Reset()
	if withTitle {
		return m.beginTitleEdit()
	}
	m.editingTitle = false
	m.titleInput.Blur()
	cmd := m.tokenInput.Focus()
	return m, cmd
}

func (m appModel) beginTitleEdit() (tea.Model, tea.Cmd) {
	doc, _ := m.services.Session.Current()
	m.editingTitle = true
	m.tokenInput.Blur()
	m.titleInput.SetValue(doc.Title)
	m.titleInput.CursorEnd()
	cmd := m.titleInput.Focus()
	return m, cmd
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editingTitle {
		return m.updateTitle(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return m, cmd
	}

	doc, open := m.services.Session.Current()
	if !open {
		m.currentScreen = screenList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.tokenInput.Blur()
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		token := strings.TrimSpace(m.tokenInput.Value())
		if token == "" {
			return m, nil
		}
		content := append(append([]string{}, doc.Content...), token)
		if _, err := m.services.Session.Mutate(content); err != nil {
			m.showErrorf("%s", err.Error())
			return m, nil
		}
		m.tokenInput.Reset()
		return m, nil
	case key.Matches(keyMsg, keys.pop) && m.tokenInput.Value() == "":
		if len(doc.Content) == 0 {
			return m, nil
		}
		if _, err := m.services.Session.Mutate(doc.Content[:len(doc.Content)-1]); err != nil {
			m.showErrorf("%s", err.Error())
		}
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if err := m.services.Session.SaveNow(); err != nil {
			m.showErrorf("%s", err.Error())
		}
		return m, nil
	case key.Matches(keyMsg, keys.title):
		return m.beginTitleEdit()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(doc.Content)
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m appModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.editingTitle = false
			m.titleInput.Blur()
			cmd := m.tokenInput.Focus()
			return m, cmd
		case key.Matches(keyMsg, keys.enter):
			doc, _ := m.services.Session.Current()
			title := strings.TrimSpace(m.titleInput.Value())
			if title != doc.Title {
				if _, err := m.services.Session.MutateTitle(title); err != nil {
					m.showErrorf("%s", err.Error())
					return m, nil
				}
			}
			m.editingTitle = false
			m.titleInput.Blur()
			cmd := m.tokenInput.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.signingIn {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.signInInput.Blur()
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.signingIn = true
			return m, tea.Batch(m.cmdSignIn(m.signInInput.Value()), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.signInInput, cmd = m.signInInput.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id := m.pendingDelete
		m.pendingDelete = ""
		if id == "" {
			return m, nil
		}
		if err := m.services.Session.Delete(id); err != nil {
			m.showErrorf("%s", err.Error())
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m *appModel) showErrorf(format string, args ...any) {
	m.showError = true
	if len(args) == 0 {
		m.errorOverlay.message = format
		return
	}
	m.errorOverlay.message = fmt.Sprintf(format, args...)
}

func (m appModel) cmdSignIn(token string) tea.Cmd {
	return func() tea.Msg {
		report, err := m.services.AuthService.SignIn(m.ctx, token)
		return signedInMsg{report: report, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		report, err := m.services.SyncService.Drain(m.ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func cmdCopy(content []string) tea.Cmd {
	text := strings.Join(content, " ")
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
