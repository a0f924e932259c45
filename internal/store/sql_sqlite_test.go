package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
)

func TestMapSQLiteError(t *testing.T) {
	full := sqlite3.Error{Code: sqlite3.ErrFull}
	assert.ErrorIs(t, mapSQLiteError(fmt.Errorf("wrapped: %w", full)), app.ErrLocalStoreExhausted)

	other := errors.New("boom")
	assert.Same(t, other, mapSQLiteError(other))
	assert.NoError(t, mapSQLiteError(nil))

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	assert.NotErrorIs(t, mapSQLiteError(busy), app.ErrLocalStoreExhausted)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrFull}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}
