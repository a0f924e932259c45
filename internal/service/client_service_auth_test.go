// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

func TestClientAuthService_SignInMigratesEverything(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.Session.NewDocument("apple")
	e.edit(t, "🍎")
	e.Session.NewDocument("banana")
	e.edit(t, "🍌")
	open, _ := e.Session.Current()
	require.True(t, models.IsLocalID(open.ID))

	assert.False(t, e.AuthService.SignedIn())

	report, err := e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)

	assert.True(t, e.AuthService.SignedIn())
	assert.Len(t, report.Migrated, 2)
	assert.Empty(t, report.Failed)
	assert.Len(t, report.Known, 2)
	assert.Equal(t, "srv-2", report.Renamed[open.ID])

	local, err := e.storages.DocumentRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, local, "local store is cleared after a full migration")

	assert.Len(t, e.server.Documents(), 2)
	assert.Equal(t, "acc-1", e.Session.Owner())

	cur, ok := e.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "srv-2", cur.ID, "the open document follows its new id")
	assert.Equal(t, []string{"🍌"}, cur.Content)

	// signing in again migrates nothing twice
	report, err = e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)
	assert.Empty(t, report.Migrated)
	assert.Len(t, e.server.Writes(), 2)
}

func TestClientAuthService_MigratedDocumentMatchesLocalRecord(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// selectors, joiners, flags and skin tones must survive byte for byte
	tokens := []string{"❤️", "👨‍👩‍👧", "🏳️‍🌈", "🇺🇦", "👍🏽"}
	e.Session.NewDocument("family ❤️ portrait")
	e.edit(t, tokens...)

	local, err := e.storages.DocumentRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, local, 1)
	require.Equal(t, tokens, local[0].Content)

	_, err = e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)

	remote := e.server.Documents()
	require.Len(t, remote, 1)
	assert.Equal(t, local[0].Title, remote[0].Title)
	assert.Equal(t, local[0].Content, remote[0].Content)
	assert.Equal(t, "acc-1", remote[0].Owner)

	known := e.Session.Known()
	require.Len(t, known, 1)
	assert.Equal(t, remote[0].ID, known[0].ID)
	assert.Equal(t, local[0].Title, known[0].Title)
	assert.Equal(t, local[0].Content, known[0].Content)
}

func TestClientAuthService_PartialMigrationKeepsFailedDocuments(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.Session.NewDocument("apple")
	e.edit(t, "🍎")
	e.Session.NewDocument("banana")
	e.edit(t, "🍌")

	e.server.failNext(http.StatusInternalServerError)

	report, err := e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)

	require.Len(t, report.Migrated, 1)
	require.Len(t, report.Failed, 1)
	assert.Len(t, report.Known, 2)
	assert.Len(t, report.Renamed, 1)
	assert.Len(t, e.server.Writes(), 2)

	local, err := e.storages.DocumentRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, report.Failed[0].ID, local[0].ID)

	ids := make([]string, 0)
	for _, d := range e.Session.Known() {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{report.Migrated[0].ID, report.Failed[0].ID}, ids)

	// the next sign-in picks up what was left
	report, err = e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)
	assert.Len(t, report.Migrated, 1)
	assert.Empty(t, report.Failed)
	assert.Len(t, e.server.Documents(), 2)
}

func TestClientAuthService_SignInFlushesPendingEdits(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.Session.NewDocument("draft")
	_, err := e.Session.Mutate([]string{"✏"})
	require.NoError(t, err)

	_, err = e.AuthService.SignIn(ctx, testToken(t, "acc-1"))
	require.NoError(t, err)

	docs := e.server.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"✏"}, docs[0].Content)
}

func TestClientAuthService_RejectsBadTokens(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken("pattern-keeper", "acc-1", -time.Hour, "secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "  ", ErrInvalidDataProvided},
		{"garbage", "not-a-jwt", ErrTokenIsExpiredOrInvalid},
		{"expired", expired.SignedString, ErrTokenIsExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.AuthService.SignIn(ctx, tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, e.AuthService.SignedIn())
		})
	}
}
