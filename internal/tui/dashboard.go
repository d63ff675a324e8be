// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/models"
)

// dashboardModel is the signed-in user's entry list. entries is the last
// server snapshot; visible is what the filter and sort pipeline currently
// lets through. An optimistic delete parks the spliced entry in removed,
// keyed by id, so a rejection of one delete rolls back only that entry
// while deletes on other ids stay in flight.
type dashboardModel struct {
	entries []models.JournalEntry
	visible []models.JournalEntry
	query   service.ListQuery
	moodIdx int

	searchInput textinput.Model
	searching   bool

	idx     int
	loading bool
	pending map[int64]bool
	removed map[int64]removedEntry
	status  string
	badge   int
}

// removedEntry is the rollback record of one optimistic delete.
type removedEntry struct {
	entry models.JournalEntry
	idx   int
}

func newDashboardModel() dashboardModel {
	search := textinput.New()
	search.Placeholder = "search title, content, tags or mood"
	search.Width = 44

	return dashboardModel{
		searchInput: search,
		loading:     true,
		pending:     map[int64]bool{},
		removed:     map[int64]removedEntry{},
	}
}

// moodChoices is the cycling order of the mood filter: the match-everything
// sentinel first, then every mood present in the snapshot.
func (m dashboardModel) moodChoices() []string {
	return append([]string{service.MoodFilterAll}, service.Moods(m.entries)...)
}

func (m *dashboardModel) refresh() {
	m.visible = m.query.Apply(m.entries)
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) current() (models.JournalEntry, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.JournalEntry{}, false
	}
	return m.visible[m.idx], true
}

func (m dashboardModel) sortLabel() string {
	sortBy := m.query.SortBy
	if sortBy == "" {
		sortBy = service.SortByDate
	}
	arrow := "↓"
	if m.query.Order == service.SortAsc {
		arrow = "↑"
	}
	return sortBy + " " + arrow
}

func entryLine(entry models.JournalEntry, pending bool) string {
	flags := ""
	if entry.IsPrivate {
		flags += " [private]"
	}
	if entry.IsPublished {
		flags += " [published]"
	}
	if entry.HiddenByAdmin {
		flags += " [hidden]"
	}
	if pending {
		flags += " …"
	}

	mood := ""
	if entry.Mood != "" {
		mood = "  " + moodStyle(entry.Mood).Render("("+entry.Mood+")")
	}

	chips := ""
	for _, tag := range entry.TagList() {
		chips += " " + tagStyle.Render("#"+tag)
	}

	return fmt.Sprintf("%-10s  %s%s%s%s", valueOrDash(entry.Date), fitText(entry.Title, 34), mood, chips, flags)
}

func (m dashboardModel) View() string {
	var b strings.Builder

	mood := m.query.Mood
	if mood == "" {
		mood = service.MoodFilterAll
	}
	b.WriteString(fmt.Sprintf("sort: %s │ mood: %s │ friends: %d pending\n", m.sortLabel(), mood, m.badge))

	if m.searching {
		b.WriteString("search: [" + m.searchInput.View() + "]\n")
	} else if m.query.Search != "" {
		b.WriteString("search: " + m.query.Search + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.visible) == 0 && len(m.entries) == 0:
		b.WriteString("No entries yet. Press n to write the first one.\n")
	case len(m.visible) == 0:
		b.WriteString("Nothing matches the current filter.\n")
	default:
		for i, entry := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + entryLine(entry, m.pending[entry.ID]) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "n new  e edit  d delete  p publish  u unpublish  /: search  m mood  s sort  o order  r reload"
	if m.searching {
		hotKeys = "esc: close search │ enter: keep filter"
	}
	return renderPage("MY JOURNAL", strings.TrimRight(b.String(), "\n"),
		hotKeys+"\n  f friends  g feed  w find people  t profile  l logout")
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.dashboard.searching {
		switch keyMsg.String() {
		case "esc":
			m.dashboard.searching = false
			m.dashboard.searchInput.Blur()
			return m, nil
		case "enter":
			m.dashboard.searching = false
			m.dashboard.searchInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.dashboard.searchInput, cmd = m.dashboard.searchInput.Update(msg)
		m.dashboard.query.Search = m.dashboard.searchInput.Value()
		m.dashboard.refresh()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.visible)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.detail = newEntryDetailModel(entry, true)
		m.detailReturn = screenDashboard
		m.currentScreen = screenEntryDetail
	case key.Matches(keyMsg, keys.newItem):
		m.entryForm = newEntryFormModel(nil)
		m.formReturn = screenDashboard
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.edit):
		entry, ok := m.dashboard.current()
		if !ok || m.dashboard.pending[entry.ID] {
			return m, nil
		}
		m.entryForm = newEntryFormModel(&entry)
		m.formReturn = screenDashboard
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.dashboard.current()
		if !ok || m.dashboard.pending[entry.ID] {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = entry.Title
		m.confirmKind = confirmDeleteEntry
		m.confirmID = entry.ID
	case key.Matches(keyMsg, keys.publish):
		entry, ok := m.dashboard.current()
		if !ok || m.dashboard.pending[entry.ID] || entry.IsPublished {
			return m, nil
		}
		m.dashboard.pending[entry.ID] = true
		return m, m.cmdTogglePublish(entry.ID, true)
	case key.Matches(keyMsg, keys.unpublish):
		entry, ok := m.dashboard.current()
		if !ok || m.dashboard.pending[entry.ID] || !entry.IsPublished {
			return m, nil
		}
		m.dashboard.pending[entry.ID] = true
		return m, m.cmdTogglePublish(entry.ID, false)
	case key.Matches(keyMsg, keys.search):
		m.dashboard.searching = true
		m.dashboard.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.mood):
		choices := m.dashboard.moodChoices()
		m.dashboard.moodIdx = (m.dashboard.moodIdx + 1) % len(choices)
		m.dashboard.query.Mood = choices[m.dashboard.moodIdx]
		m.dashboard.refresh()
	case key.Matches(keyMsg, keys.sortKey):
		switch m.dashboard.query.SortBy {
		case service.SortByTitle:
			m.dashboard.query.SortBy = service.SortByMood
		case service.SortByMood:
			m.dashboard.query.SortBy = service.SortByDate
		default:
			m.dashboard.query.SortBy = service.SortByTitle
		}
		m.dashboard.refresh()
	case key.Matches(keyMsg, keys.sortOrder):
		if m.dashboard.query.Order == service.SortAsc {
			m.dashboard.query.Order = service.SortDesc
		} else {
			m.dashboard.query.Order = service.SortAsc
		}
		m.dashboard.refresh()
	case key.Matches(keyMsg, keys.reload):
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.friends):
		m.friends = newFriendsModel()
		m.currentScreen = screenFriends
		return m, tea.Batch(m.cmdLoadFriends(), m.cmdLoadFriendList())
	case key.Matches(keyMsg, keys.feed):
		m.published = newPublishedModel()
		m.currentScreen = screenPublished
		return m, m.cmdLoadPublished("")
	case key.Matches(keyMsg, keys.findUsers):
		m.userSearch = newUserSearchModel()
		m.currentScreen = screenUserSearch
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.profile):
		m.profile = newProfileModel(m.user)
		m.currentScreen = screenProfile
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.adminU):
		if !m.user.IsAdmin() {
			return m, nil
		}
		m.adminUsers = newAdminUsersModel()
		m.currentScreen = screenAdminUsers
		return m, m.cmdAdminLoadUsers()
	case key.Matches(keyMsg, keys.adminJ):
		if !m.user.IsAdmin() {
			return m, nil
		}
		m.adminJournals = newAdminJournalsModel()
		m.currentScreen = screenAdminJournals
		return m, m.cmdAdminLoadJournals(false)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// removeEntry splices one entry out of the snapshot optimistically,
// remembering the entry and its position for a per-id rollback.
func (m *dashboardModel) removeEntry(id int64) {
	for i, entry := range m.entries {
		if entry.ID != id {
			continue
		}
		m.removed[id] = removedEntry{entry: entry, idx: i}
		m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
		break
	}
	m.pending[id] = true
	m.refresh()
}

// restoreEntry puts one optimistically removed entry back where it was.
// A full reload may already have brought the entry back; then the stale
// rollback record is just dropped.
func (m *dashboardModel) restoreEntry(id int64) {
	r, ok := m.removed[id]
	if !ok {
		return
	}
	delete(m.removed, id)

	for _, entry := range m.entries {
		if entry.ID == id {
			return
		}
	}

	idx := r.idx
	if idx > len(m.entries) {
		idx = len(m.entries)
	}
	next := make([]models.JournalEntry, 0, len(m.entries)+1)
	next = append(next, m.entries[:idx]...)
	next = append(next, r.entry)
	next = append(next, m.entries[idx:]...)
	m.entries = next
	m.refresh()
}

// forgetRemoved discards the rollback record once the delete is confirmed.
func (m *dashboardModel) forgetRemoved(id int64) {
	delete(m.removed, id)
}

// patchEntry replaces the snapshot copy of a re-fetched entry in place.
func (m *dashboardModel) patchEntry(entry models.JournalEntry) {
	for i := range m.entries {
		if m.entries[i].ID == entry.ID {
			m.entries[i] = entry
			break
		}
	}
	m.refresh()
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.user.ID
	return func() tea.Msg {
		entries, err := svc.Load(ctx, userID, userID)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdDeleteEntry(journalID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		err := svc.Delete(ctx, journalID)
		return entryDeletedMsg{id: journalID, err: err}
	}
}

func (m appModel) cmdTogglePublish(journalID int64, publish bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		var err error
		if publish {
			err = svc.Publish(ctx, journalID)
		} else {
			err = svc.Unpublish(ctx, journalID)
		}
		return publishToggledMsg{id: journalID, published: publish, err: err}
	}
}
