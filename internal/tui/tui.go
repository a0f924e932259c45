package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type TUI struct {
	services *service.ClientServices
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, info: info, logger: logger}, nil
}

// Run blocks until the user quits or ctx is canceled. Save status changes are
// forwarded into the program as they happen.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(newAppModel(ctx, t.services, t.info), tea.WithAltScreen(), tea.WithContext(ctx))

	statuses, unsubscribe := t.services.Session.Subscribe()
	defer unsubscribe()

	go func() {
		for st := range statuses {
			p.Send(statusMsg{status: st})
		}
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped")
		return err
	}
	return nil
}
