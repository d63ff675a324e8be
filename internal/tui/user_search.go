package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

// userSearchModel finds other users by name or email. Relationship status
// is fetched lazily per user, so browsing a long result list does not fan
// out a request per row.
type userSearchModel struct {
	queryInput textinput.Model
	typing     bool

	users     []models.User
	relations map[int64]models.RelationshipStatus
	idx       int
	loading   bool
	status    string
}

func newUserSearchModel() userSearchModel {
	query := textinput.New()
	query.Placeholder = "name or email"
	query.Width = 40
	query.Focus()

	return userSearchModel{
		queryInput: query,
		typing:     true,
		relations:  map[int64]models.RelationshipStatus{},
	}
}

func (m userSearchModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func relationLabel(status models.RelationshipStatus) string {
	switch status {
	case models.RelationFriends:
		return "friends"
	case models.RelationRequestSent:
		return "request sent"
	case models.RelationRequestReceived:
		return "wants to be friends"
	case models.RelationRejected:
		return "rejected"
	case models.RelationNone:
		return "not connected"
	default:
		return string(status)
	}
}

func (m userSearchModel) View() string {
	var b strings.Builder
	b.WriteString("Find: [" + m.queryInput.View() + "]\n\n")

	switch {
	case m.loading:
		b.WriteString("Searching...\n")
	case len(m.users) == 0 && !m.typing:
		b.WriteString("Nobody found.\n")
	default:
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s <%s>", valueOrDash(user.Name), user.Email)
			if status, ok := m.relations[user.ID]; ok {
				line += "  [" + relationLabel(status) + "]"
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "esc: back │ enter: search"
	if !m.typing {
		hotKeys = "i status  s send request  d unfriend  enter: open journal  /: new search  esc: back"
	}
	return renderPage("FIND PEOPLE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateUserSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.userSearch.typing {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenDashboard
			return m, nil
		case "enter":
			query := strings.TrimSpace(m.userSearch.queryInput.Value())
			if query == "" {
				return m, nil
			}
			m.userSearch.typing = false
			m.userSearch.queryInput.Blur()
			m.userSearch.loading = true
			return m, m.cmdSearchUsers(query)
		}

		var cmd tea.Cmd
		m.userSearch.queryInput, cmd = m.userSearch.queryInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.userSearch.idx > 0 {
			m.userSearch.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.userSearch.idx < len(m.userSearch.users)-1 {
			m.userSearch.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.userSearch.typing = true
		m.userSearch.queryInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.info):
		user, ok := m.userSearch.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLoadRelation(user.ID)
	case key.Matches(keyMsg, keys.sortKey):
		user, ok := m.userSearch.current()
		if !ok || user.ID == m.user.ID {
			return m, nil
		}
		return m, m.cmdSendRequest(user.ID)
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.userSearch.current()
		if !ok {
			return m, nil
		}
		delete(m.userSearch.relations, user.ID)
		return m, m.cmdRemoveFriend(user.ID)
	case key.Matches(keyMsg, keys.enter):
		user, ok := m.userSearch.current()
		if !ok {
			return m, nil
		}
		m.userJournals = newUserJournalsModel(user)
		m.currentScreen = screenUserJournals
		return m, m.cmdLoadUserJournals(user)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdSearchUsers(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		users, err := svc.Search(ctx, query)
		return usersFoundMsg{users: users, err: err}
	}
}

func (m appModel) cmdLoadRelation(userID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		status, err := svc.Status(ctx, userID)
		return relationLoadedMsg{userID: userID, status: status, err: err}
	}
}

func (m appModel) cmdSendRequest(userID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		err := svc.Send(ctx, userID)
		return requestSentMsg{userID: userID, err: err}
	}
}

func (m appModel) cmdRemoveFriend(userID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		err := svc.Remove(ctx, userID)
		return friendActionDoneMsg{err: err}
	}
}
