package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	documentsTable  = "documents"
	outboxTable     = "outbox"
	idMappingsTable = "id_mappings"
)

var documentColumns = []string{
	"id",
	"owner_id",
	"title",
	"content",
	"created_at",
	"updated_at",
}

var outboxColumns = []string{
	"id",
	"target_document_id",
	"kind",
	"payload",
	"base",
	"target_url",
	"method",
	"headers",
	"body",
	"enqueued_at",
	"synced",
}

// documentRow holds the column values of one documents row as they are
// written: content is JSON and timestamps are driver-ready.
type documentRow struct {
	ID        string
	OwnerID   string
	Title     string
	Content   string
	CreatedAt any
	UpdatedAt any
}

// outboxRow holds the column values of one outbox row as they are written.
type outboxRow struct {
	ID               string
	TargetDocumentID string
	Kind             string
	Payload          string
	Base             string
	TargetURL        string
	Method           string
	Headers          string
	Body             []byte
	EnqueuedAt       any
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// buildSelectDocumentsQuery lists documents ordered by id, optionally
// restricted to one owner.
func buildSelectDocumentsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	q := b.Select(documentColumns...).From(documentsTable)
	if ownerID != "" {
		q = q.Where(sq.Eq{"owner_id": ownerID})
	}

	query, args, err := q.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildSelectDocumentQuery fetches a single document. An empty ownerID skips
// the owner check (the local store has a single owner).
func buildSelectDocumentQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	where := sq.Eq{"id": id}
	if ownerID != "" {
		where["owner_id"] = ownerID
	}

	query, args, err := b.Select(documentColumns...).From(documentsTable).Where(where).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildInsertDocumentQuery inserts row. With returning set the statement
// echoes the stored columns back (PostgreSQL).
func buildInsertDocumentQuery(b sq.StatementBuilderType, row documentRow, returning bool) (string, []any, error) {
	q := b.Insert(documentsTable).
		Columns(documentColumns...).
		Values(row.ID, row.OwnerID, row.Title, row.Content, row.CreatedAt, row.UpdatedAt)
	if returning {
		q = q.Suffix("RETURNING id, owner_id, title, content, created_at, updated_at")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildUpdateDocumentQuery replaces title, content and updated_at of one
// document.
func buildUpdateDocumentQuery(b sq.StatementBuilderType, row documentRow, returning bool) (string, []any, error) {
	where := sq.Eq{"id": row.ID}
	if row.OwnerID != "" {
		where["owner_id"] = row.OwnerID
	}

	q := b.Update(documentsTable).
		Set("title", row.Title).
		Set("content", row.Content).
		Set("updated_at", row.UpdatedAt).
		Where(where)
	if returning {
		q = q.Suffix("RETURNING id, owner_id, title, content, created_at, updated_at")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	where := sq.Eq{"id": id}
	if ownerID != "" {
		where["owner_id"] = ownerID
	}

	query, args, err := b.Delete(documentsTable).Where(where).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildClearDocumentsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(documentsTable).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildCountDocumentsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(documentsTable).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertOutboxQuery(b sq.StatementBuilderType, row outboxRow) (string, []any, error) {
	query, args, err := b.Insert(outboxTable).
		Columns(outboxColumns...).
		Values(row.ID, row.TargetDocumentID, row.Kind, row.Payload, row.Base, row.TargetURL,
			row.Method, row.Headers, row.Body, row.EnqueuedAt, 0).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildSelectUnsyncedOutboxQuery lists pending entries in enqueue order; seq
// breaks ties between entries enqueued within the same clock tick.
func buildSelectUnsyncedOutboxQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(outboxColumns...).
		From(outboxTable).
		Where(sq.Eq{"synced": 0}).
		OrderBy("enqueued_at", "seq").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildMarkSyncedQuery(b sq.StatementBuilderType, ids []string) (string, []any, error) {
	query, args, err := b.Update(outboxTable).
		Set("synced", 1).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildRetargetOutboxQuery points unsynced entries of fromID at toID.
func buildRetargetOutboxQuery(b sq.StatementBuilderType, fromID, toID string) (string, []any, error) {
	query, args, err := b.Update(outboxTable).
		Set("target_document_id", toID).
		Where(sq.Eq{"target_document_id": fromID, "synced": 0}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildCountUnsyncedQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(outboxTable).Where(sq.Eq{"synced": 0}).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildPurgeSyncedQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(outboxTable).Where(sq.Eq{"synced": 1}).ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildInsertIDMappingQuery records a temporary to durable id transition.
// The first mapping for a temporary id wins.
func buildInsertIDMappingQuery(b sq.StatementBuilderType, temporaryID, durableID string, at any) (string, []any, error) {
	query, args, err := b.Insert(idMappingsTable).
		Options("OR IGNORE").
		Columns("temporary_id", "durable_id", "created_at").
		Values(temporaryID, durableID, at).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectIDMappingQuery(b sq.StatementBuilderType, temporaryID string) (string, []any, error) {
	query, args, err := b.Select("durable_id").
		From(idMappingsTable).
		Where(sq.Eq{"temporary_id": temporaryID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
