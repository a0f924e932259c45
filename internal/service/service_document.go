package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	validator          validators.Validator
	ids                utils.IDGenerator
	clock              func() time.Time

	logger *logger.Logger
}

// NewDocumentService builds the server-side document service. Ids are UUIDv7
// minted here, not by the database.
func NewDocumentService(documentRepository store.DocumentRepository, validator validators.Validator, ids utils.IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		validator:          validator,
		ids:                ids,
		clock:              time.Now,
		logger:             logger,
	}
}

func (d *documentService) accountID(ctx context.Context) (string, error) {
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return "", ErrNoAccountID
	}
	return accountID, nil
}

// validate normalises a missing content array to an empty pattern before
// checking it against the document schema.
func (d *documentService) validate(ctx context.Context, req *models.DocumentRequest) error {
	if req.Content == nil {
		req.Content = []string{}
	}
	if err := d.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", app.ErrValidation, err)
	}
	return nil
}

func (d *documentService) Create(ctx context.Context, req models.DocumentRequest) (models.Document, error) {
	accountID, err := d.accountID(ctx)
	if err != nil {
		return models.Document{}, err
	}
	if err := d.validate(ctx, &req); err != nil {
		return models.Document{}, err
	}

	now := d.clock().UTC()
	doc := models.Document{
		ID:        d.ids.Generate(),
		Owner:     accountID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return d.documentRepository.Create(ctx, doc)
}

func (d *documentService) Update(ctx context.Context, id string, req models.DocumentRequest) (models.Document, error) {
	accountID, err := d.accountID(ctx)
	if err != nil {
		return models.Document{}, err
	}
	if err := d.validate(ctx, &req); err != nil {
		return models.Document{}, err
	}

	return d.documentRepository.Update(ctx, accountID, id, req, d.clock().UTC())
}

func (d *documentService) Delete(ctx context.Context, id string) error {
	accountID, err := d.accountID(ctx)
	if err != nil {
		return err
	}
	return d.documentRepository.Delete(ctx, accountID, id)
}

func (d *documentService) List(ctx context.Context) ([]models.Document, error) {
	accountID, err := d.accountID(ctx)
	if err != nil {
		return nil, err
	}
	return d.documentRepository.List(ctx, accountID)
}
