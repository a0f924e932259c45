package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

// DocumentService is the document server's business layer. Every call is
// scoped to the account id carried by ctx.
type DocumentService interface {
	Create(ctx context.Context, req models.DocumentRequest) (models.Document, error)
	Update(ctx context.Context, id string, req models.DocumentRequest) (models.Document, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Document, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, accountID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
