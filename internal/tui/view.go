package tui

import (
	"strings"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

func (m appModel) View() string {
	switch {
	case m.showError:
		return appStyle.Render(m.errorOverlay.View())
	case m.showConfirm:
		return appStyle.Render(m.confirm.View())
	case m.showAbout:
		return appStyle.Render(renderBuildInfo(m.info))
	}

	switch m.currentScreen {
	case screenEditor:
		return m.viewEditor()
	case screenSignIn:
		return m.viewSignIn()
	default:
		return m.viewList()
	}
}

func (m appModel) statusLine() string {
	line := renderStatusBar(m.status)
	if m.syncing || m.signingIn {
		line = m.spinner.View() + " " + line
	}
	if m.notice != "" {
		line += "\n" + m.notice
	}
	return line
}

func (m appModel) identity() string {
	owner := m.services.Session.Owner()
	if owner == models.AnonymousOwner || owner == "" {
		return "anonymous, saved on this device"
	}
	return "account " + owner
}

func (m appModel) viewList() string {
	docs := m.services.Session.Known()
	idx := clampIndex(m.idx, len(docs))

	var b strings.Builder
	b.WriteString(helpStyle.Render(m.identity()))
	b.WriteString("\n\n")
	if len(docs) == 0 {
		b.WriteString("No documents yet")
	}
	for i, doc := range docs {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(documentLabel(doc))
		if i < len(docs)-1 {
			b.WriteString("\n")
		}
	}

	return renderPage("PATTERN KEEPER", b.String(),
		"enter open  n new  d delete  s sync  i sign in  x dismiss  ? about  q quit",
		m.statusLine())
}

func (m appModel) viewEditor() string {
	doc, ok := m.services.Session.Current()
	if !ok {
		return renderPage("PATTERN KEEPER", "", "esc back", m.statusLine())
	}

	var b strings.Builder
	if m.editingTitle {
		b.WriteString("Title: ")
		b.WriteString(m.titleInput.View())
	} else {
		b.WriteString("Title: ")
		b.WriteString(valueOrUntitled(doc.Title))
	}
	b.WriteString("\n\n")
	b.WriteString(renderTokens(doc.Content))
	b.WriteString("\n\n")
	b.WriteString(m.tokenInput.View())

	hotKeys := "enter append  backspace pop  ctrl+t title  ctrl+s save now  ctrl+y copy  esc back"
	if m.editingTitle {
		hotKeys = "enter rename  esc cancel"
	}
	return renderPage("EDIT DOCUMENT", b.String(), hotKeys, m.statusLine())
}

func (m appModel) viewSignIn() string {
	data := "Paste a bearer token. Documents saved on this device move to the account.\n\n" + m.signInInput.View()
	return renderPage("SIGN IN", data, "enter sign in  esc back", m.statusLine())
}

func valueOrUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return "untitled"
	}
	return title
}
