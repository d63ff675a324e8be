package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/internal/utils"
	"github.com/kolpakovda/go-journal-client/internal/workers"
	"github.com/kolpakovda/go-journal-client/models"
)

// TUI runs the terminal client as two consecutive Bubble Tea programs: the
// login flow and, once a session exists, the main loop. A logout from the
// main loop hands control back to the caller so the login flow can run
// again.
type TUI struct {
	services *service.ClientServices
	badge    workers.BadgeJob
	resolver *utils.MediaURLResolver
}

func New(services *service.ClientServices, badge workers.BadgeJob, resolver *utils.MediaURLResolver, _ *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are not provided")
	}
	if resolver == nil {
		return nil, errors.New("media url resolver is not provided")
	}
	return &TUI{services: services, badge: badge, resolver: resolver}, nil
}

// LoginFlow runs the welcome, sign-in and registration screens until the
// user authenticates or quits. On quit, [ErrUserQuit] is returned.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.logout || result.resultUser.ID == 0 {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the journal screens for the signed-in user. It reports
// whether the user logged out (as opposed to quitting the program).
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, t.badge, t.resolver, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
