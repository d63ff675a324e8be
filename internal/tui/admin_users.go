package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

// adminUsersModel is the moderation view over every account. The backend
// rejects each action for non-admin sessions; the role check that gates
// opening this screen is cosmetic.
type adminUsersModel struct {
	users   []models.User
	idx     int
	loading bool
	status  string
}

func newAdminUsersModel() adminUsersModel {
	return adminUsersModel{loading: true}
}

func (m adminUsersModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m adminUsersModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.users) == 0:
		b.WriteString("No users.\n")
	default:
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			flags := onOff(user.Enabled, "active", "blocked")
			if user.IsAdmin() {
				flags += ", admin"
			}
			b.WriteString(cursor + fmt.Sprintf("%-4d %s <%s>  [%s]\n", user.ID, fitText(valueOrDash(user.Name), 24), user.Email, flags))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ADMIN: USERS", strings.TrimRight(b.String(), "\n"),
		"p promote  b block/unblock  d delete  r reload  esc: back")
}

func (m appModel) updateAdminUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.adminUsers.idx > 0 {
			m.adminUsers.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.adminUsers.idx < len(m.adminUsers.users)-1 {
			m.adminUsers.idx++
		}
	case key.Matches(keyMsg, keys.publish):
		user, ok := m.adminUsers.current()
		if !ok || user.IsAdmin() {
			return m, nil
		}
		m.adminUsers.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.Promote(m.ctx, user.ID) })
	case keyMsg.String() == "b":
		user, ok := m.adminUsers.current()
		if !ok || user.ID == m.user.ID {
			return m, nil
		}
		m.adminUsers.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.ToggleStatus(m.ctx, user.ID) })
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.adminUsers.current()
		if !ok || user.ID == m.user.ID {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = user.Email
		m.confirmKind = confirmDeleteUser
		m.confirmID = user.ID
	case key.Matches(keyMsg, keys.reload):
		m.adminUsers.loading = true
		return m, m.cmdAdminLoadUsers()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdAdminLoadUsers() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService
	return func() tea.Msg {
		users, err := svc.Users(ctx)
		return adminUsersLoadedMsg{users: users, err: err}
	}
}

// cmdAdminUserAction wraps one moderation call; the user list is reloaded
// once the action lands.
func (m appModel) cmdAdminUserAction(action func() error) tea.Cmd {
	return func() tea.Msg {
		return adminActionDoneMsg{err: action()}
	}
}
