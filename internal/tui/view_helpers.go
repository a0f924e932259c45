// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys, statusBar string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if statusBar != "" {
		b.WriteString(statusBar)
		b.WriteString("\n")
	}
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// renderStatusBar shows sync state, save progress and the most important
// message. Session expiry is rendered before anything else.
func renderStatusBar(st models.SaveStatus) string {
	parts := []string{"[" + string(st.SyncStatus) + "]"}

	switch {
	case st.IsAutoSaving:
		parts = append(parts, "saving...")
	case st.LastSaved != nil:
		parts = append(parts, "saved "+st.LastSaved.Local().Format(time.TimeOnly))
	}

	line := strings.Join(parts, " ")
	if msg := st.Message(); msg != "" {
		style := errorStyle
		if st.IsSessionExpired {
			style = expiredStyle
		}
		line += "  " + style.Render(msg)
	}
	return line
}

func renderTokens(content []string) string {
	if len(content) == 0 {
		return helpStyle.Render("(empty)")
	}
	rendered := make([]string, 0, len(content))
	for _, token := range content {
		rendered = append(rendered, tokenStyle.Render(token))
	}
	return strings.Join(rendered, " ")
}

func documentLabel(doc models.Document) string {
	title := doc.Title
	if strings.TrimSpace(title) == "" {
		title = "untitled"
	}
	marker := ""
	if !doc.Durable {
		marker = " *"
	}
	return fmt.Sprintf("%s (%d)%s", fitText(title, 40), len(doc.Content), marker)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
