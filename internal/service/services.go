package service

import (
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
)

// Services groups the document server's services.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	validator, err := validators.NewDocumentValidator()
	if err != nil {
		return nil, fmt.Errorf("document validator: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, validator, utils.NewUUIDGenerator(), logger),
		AppInfoService:  appInfo,
	}, nil
}
