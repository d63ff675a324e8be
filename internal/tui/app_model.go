// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/internal/utils"
	"github.com/kolpakovda/go-journal-client/internal/workers"
	"github.com/kolpakovda/go-journal-client/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenBuildInfo
	screenDashboard
	screenEntryForm
	screenEntryDetail
	screenPublished
	screenFriends
	screenUserSearch
	screenUserJournals
	screenProfile
	screenAdminUsers
	screenAdminJournals
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type confirmKind int

const (
	confirmDeleteEntry confirmKind = iota
	confirmDeleteUser
	confirmDeleteJournalAdmin
)

// appModel is the single Bubble Tea model for the whole client. One screen
// is active at a time; asynchronous work flows back in as typed messages
// handled here before the per-screen dispatch.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	badge    workers.BadgeJob
	resolver *utils.MediaURLResolver

	mode          appMode
	currentScreen screen
	user          models.User
	version       string

	welcome       welcomeModel
	login         loginModel
	register      registerModel
	dashboard     dashboardModel
	entryForm     entryFormModel
	formReturn    screen
	detail        entryDetailModel
	detailReturn  screen
	published     publishedModel
	friends       friendsModel
	userSearch    userSearchModel
	userJournals  userJournalsModel
	profile       profileModel
	adminUsers    adminUsersModel
	adminJournals adminJournalsModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	confirmKind  confirmKind
	confirmID    int64

	logout     bool
	resultUser models.User
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		version:       services.AppInfoService.GetAppVersion(ctx),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, badge workers.BadgeJob, resolver *utils.MediaURLResolver, user models.User) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		badge:         badge,
		resolver:      resolver,
		mode:          modeMain,
		currentScreen: screenDashboard,
		user:          user,
		dashboard:     newDashboardModel(),
		formReturn:    screenDashboard,
		detailReturn:  screenDashboard,
	}
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadDashboard()
	}
	return nil
}

func (m appModel) badgeCount() int {
	if m.badge == nil {
		return 0
	}
	return m.badge.Count()
}

func (m appModel) badgeDecrement() {
	if m.badge != nil {
		m.badge.Decrement()
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m.confirmAccepted()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}

	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			text := humanizeServerUnavailableError(msg.err)
			if m.currentScreen == screenRegister {
				m.register.errMsg = text
			} else {
				m.login.errMsg = text
			}
			return m, nil
		}
		m.resultUser = msg.user
		return m, tea.Quit

	case entriesLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.dashboard.entries = msg.entries
		m.dashboard.refresh()
		return m, nil

	case entrySavedMsg:
		m.entryForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard.loading = true
		m.dashboard.status = "Saved"
		return m, tea.Batch(m.cmdLoadDashboard(), cmdClearStatus())

	case entryDeletedMsg:
		delete(m.dashboard.pending, msg.id)
		if msg.err != nil {
			m.dashboard.restoreEntry(msg.id)
			m.showErrorf("Could not delete the entry: " + msg.err.Error())
			return m, nil
		}
		m.dashboard.forgetRemoved(msg.id)
		m.dashboard.status = "Entry deleted"
		return m, cmdClearStatus()

	case publishToggledMsg:
		delete(m.dashboard.pending, msg.id)
		m.detail.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.detail.entry.ID == msg.id {
			m.detail.entry.IsPublished = msg.published
		}
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()

	case entryPatchedMsg:
		m.detail.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.detail.entry.ID == msg.entry.ID {
			m.detail.entry = msg.entry
			if m.detail.mediaIdx >= len(msg.entry.MediaURLs) {
				m.detail.mediaIdx = len(msg.entry.MediaURLs) - 1
			}
			if m.detail.mediaIdx < 0 {
				m.detail.mediaIdx = 0
			}
		}
		m.dashboard.patchEntry(msg.entry)
		m.detail.status = "Attachments updated"
		if len(msg.oversized) > 0 {
			m.detail.status += " (large: " + strings.Join(msg.oversized, ", ") + ")"
		}
		return m, cmdClearStatus()

	case publishedLoadedMsg:
		m.published.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.published.entries = msg.entries
		if m.published.idx >= len(msg.entries) {
			m.published.idx = 0
		}
		return m, nil

	case friendsLoadedMsg:
		m.friends.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.friends.overview = msg.overview
		if m.friends.idx >= len(m.friends.list()) {
			m.friends.idx = 0
		}
		return m, nil

	case friendActionDoneMsg:
		if msg.err != nil {
			m.friends.loading = false
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenFriends {
			m.friends.loading = true
			return m, tea.Batch(m.cmdLoadFriends(), m.cmdLoadFriendList())
		}
		m.userSearch.status = "Done"
		return m, cmdClearStatus()

	case friendListLoadedMsg:
		m.friends.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.friends.friends = msg.friends
		if m.friends.section == friendsSectionFriends && m.friends.idx >= len(msg.friends) {
			m.friends.idx = 0
		}
		return m, nil

	case friendRemovedMsg:
		if msg.err != nil {
			m.friends.loading = false
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.friends.loading = true
		return m, m.cmdLoadFriendList()

	case requestSentMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.userSearch.relations[msg.userID] = models.RelationRequestSent
		m.userSearch.status = "Request sent"
		return m, cmdClearStatus()

	case usersFoundMsg:
		m.userSearch.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.userSearch.users = msg.users
		m.userSearch.idx = 0
		return m, nil

	case relationLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.userSearch.relations[msg.userID] = msg.status
		return m, nil

	case userJournalsLoadedMsg:
		m.userJournals.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.userJournals.owner = msg.owner
		m.userJournals.entries = msg.entries
		if m.userJournals.idx >= len(msg.entries) {
			m.userJournals.idx = 0
		}
		return m, nil

	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.user = msg.user
		m.profile.status = "Saved"
		return m, cmdClearStatus()

	case adminUsersLoadedMsg:
		m.adminUsers.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.adminUsers.users = msg.users
		if m.adminUsers.idx >= len(msg.users) {
			m.adminUsers.idx = 0
		}
		return m, nil

	case adminJournalsLoadedMsg:
		m.adminJournals.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.adminJournals.publishedOnly = msg.published
		m.adminJournals.entries = msg.entries
		if m.adminJournals.idx >= len(msg.entries) {
			m.adminJournals.idx = 0
		}
		return m, nil

	case adminActionDoneMsg:
		if msg.err != nil {
			m.adminUsers.loading = false
			m.adminJournals.loading = false
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenAdminJournals {
			return m, m.cmdAdminLoadJournals(m.adminJournals.publishedOnly)
		}
		return m, m.cmdAdminLoadUsers()

	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.dashboard.status = ""
		m.detail.status = ""
		m.friends.status = ""
		m.userSearch.status = ""
		m.profile.status = ""
		m.adminUsers.status = ""
		m.adminJournals.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenEntryForm:
		return m.updateEntryForm(msg)
	case screenEntryDetail:
		return m.updateEntryDetail(msg)
	case screenPublished:
		return m.updatePublished(msg)
	case screenFriends:
		return m.updateFriends(msg)
	case screenUserSearch:
		return m.updateUserSearch(msg)
	case screenUserJournals:
		return m.updateUserJournals(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenAdminUsers:
		return m.updateAdminUsers(msg)
	case screenAdminJournals:
		return m.updateAdminJournals(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.version)
	case screenDashboard:
		m.dashboard.badge = m.badgeCount()
		body = m.dashboard.View()
	case screenEntryForm:
		body = m.entryForm.View()
	case screenEntryDetail:
		body = m.viewEntryDetail()
	case screenPublished:
		body = m.published.View()
	case screenFriends:
		body = m.friends.View()
	case screenUserSearch:
		body = m.userSearch.View()
	case screenUserJournals:
		body = m.userJournals.View()
	case screenProfile:
		body = m.viewProfile()
	case screenAdminUsers:
		body = m.adminUsers.View()
	case screenAdminJournals:
		body = m.adminJournals.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) confirmAccepted() (tea.Model, tea.Cmd) {
	id := m.confirmID
	switch m.confirmKind {
	case confirmDeleteEntry:
		m.dashboard.removeEntry(id)
		m.currentScreen = screenDashboard
		return m, m.cmdDeleteEntry(id)
	case confirmDeleteUser:
		m.adminUsers.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.DeleteUser(m.ctx, id) })
	case confirmDeleteJournalAdmin:
		m.adminJournals.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.DeleteJournal(m.ctx, id) })
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case keyMsg.String() == "v":
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.quit):
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenWelcome
	case key.Matches(keyMsg, keys.quit):
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.logout = true
			return m, tea.Quit
		case "esc":
			m.login.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case "tab":
			m.login.focusNext()
			return m, nil
		case "shift+tab":
			m.login.focusPrev()
			return m, nil
		case "enter":
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.logout = true
			return m, tea.Quit
		case "esc":
			m.register.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case "tab":
			m.register.focusNext()
			return m, nil
		case "shift+tab":
			m.register.focusPrev()
			return m, nil
		case "enter":
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.register.errMsg = "Name, email and password are required"
				return m, nil
			}
			if pass != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(name, email, pass)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(name, email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Register(ctx, name, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
