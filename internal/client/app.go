package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/kolpakovda/go-journal-client/internal/config"
	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/internal/store"
	"github.com/kolpakovda/go-journal-client/internal/tui"
	"github.com/kolpakovda/go-journal-client/internal/workers"
	"github.com/kolpakovda/go-journal-client/models"
)

// App ties the session lifecycle together: restore or login, run the main
// loop with the badge job ticking in the background, and start over after a
// logout.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	badge    workers.BadgeJob
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, badge workers.BadgeJob, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are not provided")
	}
	if ui == nil {
		return nil, errors.New("ui is not provided")
	}
	if badge == nil {
		return nil, errors.New("badge job is not provided")
	}

	return &App{services: services, ui: ui, badge: badge, cfg: cfg, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) {
			return fmt.Errorf("restore session: %w", err)
		}

		user, err = a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return a.runSession(ctx, user)
}

func (a *App) runSession(ctx context.Context, user models.User) error {
	a.logger.Info().Int64("user_id", user.ID).Msg("session started")

	a.badge.Start(ctx, a.cfg.BadgeRefreshInterval)
	defer a.badge.Stop()

	logout, err := a.ui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if !logout {
		return nil
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("logout cleanup failed")
	}
	a.badge.Stop()

	return a.Run()
}
