package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// tokenHolder is the part of the document adapter sign-in needs.
type tokenHolder interface {
	CredentialSource
	SetToken(token string)
}

type clientAuthService struct {
	creds     tokenHolder
	scheduler *Scheduler
	session   *Session
	migration ClientMigrationService
	syncJob   ClientSyncJob
	clock     func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(
	creds tokenHolder,
	scheduler *Scheduler,
	session *Session,
	migration ClientMigrationService,
	syncJob ClientSyncJob,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		creds:     creds,
		scheduler: scheduler,
		session:   session,
		migration: migration,
		syncJob:   syncJob,
		clock:     time.Now,
		logger:    logger,
	}
}

// SignIn implements ClientAuthService. The token is only decoded here, never
// verified: the server does that on every request. Pending anonymous saves
// are flushed to the local store first so migration sees them.
func (a *clientAuthService) SignIn(ctx context.Context, token string) (models.MigrationReport, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.MigrationReport{}, ErrInvalidDataProvided
	}

	accountID, err := utils.ParseAccountIDFromJWT(token)
	if err != nil {
		return models.MigrationReport{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if utils.TokenExpired(token, a.clock()) {
		return models.MigrationReport{}, ErrTokenIsExpired
	}

	a.scheduler.Flush()

	a.creds.SetToken(token)
	a.scheduler.Resume()
	a.session.SetIdentity(accountID)

	a.logger.Info().Str("account_id", accountID).Msg("signed in, migrating local documents")

	report, err := a.migration.Migrate(ctx)
	if report.Known != nil {
		a.session.ReplaceKnown(report.Known, report.Renamed)
	}
	if a.syncJob != nil {
		a.syncJob.Trigger()
	}
	if err != nil {
		return report, fmt.Errorf("identity migration: %w", err)
	}
	return report, nil
}

func (a *clientAuthService) SignedIn() bool {
	return strings.TrimSpace(a.creds.Token()) != ""
}
