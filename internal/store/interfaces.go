package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the document server's PostgreSQL collection. Every
// call is scoped to one owner.
type DocumentRepository interface {
	Create(ctx context.Context, doc models.Document) (models.Document, error)
	Update(ctx context.Context, ownerID, id string, req models.DocumentRequest, at time.Time) (models.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string) ([]models.Document, error)
}
