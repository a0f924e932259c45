// Package tui is the terminal editor of the pattern keeper client.
//
// It renders the document list and the token editor with bubbletea, drives
// the edit session through [service.ClientServices] and shows the save
// status surface in a status bar. The UI never waits on persistence: every
// edit is applied to the session and rendered immediately, and status changes
// arrive asynchronously from the session subscription.
package tui
