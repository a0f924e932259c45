package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

// sqliteTimeFormat is fixed-width ISO-8601 so that text ordering matches
// chronological ordering.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

type rowScanner interface {
	Scan(dest ...any) error
}

// timeArg renders t for the dialect: ISO-8601 text in SQLite, a native
// timestamp in PostgreSQL.
func (db *DB) timeArg(t time.Time) any {
	if db.dialect == dialectPostgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeFormat)
}

func (db *DB) documentRow(doc models.Document) (documentRow, error) {
	content := doc.Content
	if content == nil {
		content = []string{}
	}
	encoded, err := json.Marshal(content)
	if err != nil {
		return documentRow{}, fmt.Errorf("error encoding document content: %w", err)
	}

	return documentRow{
		ID:        doc.ID,
		OwnerID:   doc.Owner,
		Title:     doc.Title,
		Content:   string(encoded),
		CreatedAt: db.timeArg(doc.CreatedAt),
		UpdatedAt: db.timeArg(doc.UpdatedAt),
	}, nil
}

// scanDocument reads one documents row. Every stored document carries a
// backend-assigned id, so it is returned as durable.
func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc     models.Document
		content []byte
	)

	if err := row.Scan(&doc.ID, &doc.Owner, &doc.Title, &content, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return models.Document{}, err
	}

	if len(content) > 0 {
		if err := json.Unmarshal(content, &doc.Content); err != nil {
			return models.Document{}, fmt.Errorf("error decoding document content: %w", err)
		}
	}
	if doc.Content == nil {
		doc.Content = []string{}
	}
	doc.Durable = true
	doc.CreatedAt = doc.CreatedAt.UTC()
	doc.UpdatedAt = doc.UpdatedAt.UTC()

	return doc, nil
}

func (db *DB) outboxRow(m models.PendingMutation) (outboxRow, error) {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return outboxRow{}, fmt.Errorf("error encoding mutation payload: %w", err)
	}
	base, err := json.Marshal(m.Base)
	if err != nil {
		return outboxRow{}, fmt.Errorf("error encoding mutation base: %w", err)
	}
	headers := m.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	encodedHeaders, err := json.Marshal(headers)
	if err != nil {
		return outboxRow{}, fmt.Errorf("error encoding mutation headers: %w", err)
	}

	return outboxRow{
		ID:               m.ID,
		TargetDocumentID: m.TargetDocumentID,
		Kind:             string(m.Kind),
		Payload:          string(payload),
		Base:             string(base),
		TargetURL:        m.TargetURL,
		Method:           m.Method,
		Headers:          string(encodedHeaders),
		Body:             m.Body,
		EnqueuedAt:       db.timeArg(m.EnqueuedAt),
	}, nil
}

func scanMutation(row rowScanner) (models.PendingMutation, error) {
	var (
		m                      models.PendingMutation
		kind                   string
		payload, base, headers []byte
		synced                 int
	)

	err := row.Scan(
		&m.ID,
		&m.TargetDocumentID,
		&kind,
		&payload,
		&base,
		&m.TargetURL,
		&m.Method,
		&headers,
		&m.Body,
		&m.EnqueuedAt,
		&synced,
	)
	if err != nil {
		return models.PendingMutation{}, err
	}

	m.Kind = models.OperationKind(kind)
	m.Synced = synced != 0
	m.EnqueuedAt = m.EnqueuedAt.UTC()

	if err := json.Unmarshal(payload, &m.Payload); err != nil {
		return models.PendingMutation{}, fmt.Errorf("error decoding mutation payload: %w", err)
	}
	if err := json.Unmarshal(base, &m.Base); err != nil {
		return models.PendingMutation{}, fmt.Errorf("error decoding mutation base: %w", err)
	}
	if len(headers) > 0 {
		if err := json.Unmarshal(headers, &m.Headers); err != nil {
			return models.PendingMutation{}, fmt.Errorf("error decoding mutation headers: %w", err)
		}
	}

	return m, nil
}
