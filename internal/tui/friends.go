// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/models"
)

const (
	friendsSectionPending = 0
	friendsSectionSent    = 1
	friendsSectionFriends = 2

	friendsSections = 3
)

// friendsModel shows the incoming and outgoing request lists plus the
// established friends. Accept and reject decrement the badge counter
// optimistically; the next timer refresh overwrites whatever guess was
// wrong.
type friendsModel struct {
	overview service.FriendOverview
	friends  []models.User
	section  int
	idx      int
	loading  bool
	status   string
}

func newFriendsModel() friendsModel {
	return friendsModel{loading: true}
}

func (m friendsModel) list() []models.FriendRequest {
	if m.section == friendsSectionSent {
		return m.overview.Sent
	}
	return m.overview.Pending
}

func (m friendsModel) listLen() int {
	if m.section == friendsSectionFriends {
		return len(m.friends)
	}
	return len(m.list())
}

func (m friendsModel) current() (models.FriendRequest, bool) {
	list := m.list()
	if len(list) == 0 || m.idx < 0 || m.idx >= len(list) {
		return models.FriendRequest{}, false
	}
	return list[m.idx], true
}

func (m friendsModel) currentFriend() (models.User, bool) {
	if len(m.friends) == 0 || m.idx < 0 || m.idx >= len(m.friends) {
		return models.User{}, false
	}
	return m.friends[m.idx], true
}

func (m friendsModel) View() string {
	var b strings.Builder

	tabs := []string{
		fmt.Sprintf("Incoming (%d)", len(m.overview.Pending)),
		fmt.Sprintf("Sent (%d)", len(m.overview.Sent)),
		fmt.Sprintf("Friends (%d)", len(m.friends)),
	}
	tabs[m.section] = badgeStyle.Render(tabs[m.section])
	b.WriteString(strings.Join(tabs, "   ") + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.section == friendsSectionFriends:
		if len(m.friends) == 0 {
			b.WriteString("Nothing here.\n")
		}
		for i, user := range m.friends {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + fmt.Sprintf("%s <%s>\n", valueOrDash(user.Name), user.Email))
		}
	default:
		list := m.list()
		if len(list) == 0 {
			b.WriteString("Nothing here.\n")
		}
		for i, req := range list {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			who := req.Sender
			if m.section == friendsSectionSent {
				who = req.Receiver
			}
			b.WriteString(cursor + fmt.Sprintf("%s <%s>\n", valueOrDash(who.Name), who.Email))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "tab: switch list │ r: reload │ esc: back"
	switch m.section {
	case friendsSectionPending:
		hotKeys = "y accept  x reject  " + hotKeys
	case friendsSectionFriends:
		hotKeys = "x remove  " + hotKeys
	}
	return renderPage("FRIENDS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateFriends(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.friends.idx > 0 {
			m.friends.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.friends.idx < m.friends.listLen()-1 {
			m.friends.idx++
		}
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.right):
		m.friends.section = (m.friends.section + 1) % friendsSections
		m.friends.idx = 0
	case key.Matches(keyMsg, keys.left):
		m.friends.section = (m.friends.section + friendsSections - 1) % friendsSections
		m.friends.idx = 0
	case key.Matches(keyMsg, keys.accept):
		if m.friends.section != friendsSectionPending {
			return m, nil
		}
		req, ok := m.friends.current()
		if !ok {
			return m, nil
		}
		m.badgeDecrement()
		m.friends.loading = true
		return m, m.cmdAnswerRequest(req.ID, true)
	case key.Matches(keyMsg, keys.reject):
		if m.friends.section == friendsSectionFriends {
			user, ok := m.friends.currentFriend()
			if !ok {
				return m, nil
			}
			m.friends.loading = true
			return m, m.cmdUnfriend(user.ID)
		}
		if m.friends.section != friendsSectionPending {
			return m, nil
		}
		req, ok := m.friends.current()
		if !ok {
			return m, nil
		}
		m.badgeDecrement()
		m.friends.loading = true
		return m, m.cmdAnswerRequest(req.ID, false)
	case key.Matches(keyMsg, keys.reload):
		m.friends.loading = true
		return m, tea.Batch(m.cmdLoadFriends(), m.cmdLoadFriendList())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdLoadFriends() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		overview, err := svc.Overview(ctx)
		return friendsLoadedMsg{overview: overview, err: err}
	}
}

func (m appModel) cmdLoadFriendList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	userID := m.user.ID
	return func() tea.Msg {
		friends, err := svc.FriendsOf(ctx, userID)
		return friendListLoadedMsg{friends: friends, err: err}
	}
}

func (m appModel) cmdUnfriend(friendID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		err := svc.Remove(ctx, friendID)
		return friendRemovedMsg{err: err}
	}
}

func (m appModel) cmdAnswerRequest(requestID int64, accept bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FriendService
	return func() tea.Msg {
		var err error
		if accept {
			err = svc.Accept(ctx, requestID)
		} else {
			err = svc.Reject(ctx, requestID)
		}
		return friendActionDoneMsg{err: err}
	}
}
