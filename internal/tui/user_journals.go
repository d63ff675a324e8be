package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

// userJournalsModel lists another user's entries. The server already
// applies the visibility policy, only public entries ever arrive here.
type userJournalsModel struct {
	owner   models.User
	entries []models.JournalEntry
	idx     int
	loading bool
}

func newUserJournalsModel(owner models.User) userJournalsModel {
	return userJournalsModel{owner: owner, loading: true}
}

func (m userJournalsModel) current() (models.JournalEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m userJournalsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("No public entries.\n")
	default:
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + fmt.Sprintf("%-10s  %s\n", valueOrDash(entry.Date), fitText(entry.Title, 40)))
		}
	}

	title := "JOURNAL OF " + strings.ToUpper(valueOrDash(m.owner.Name))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: open │ esc: back")
}

func (m appModel) updateUserJournals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.userJournals.idx > 0 {
			m.userJournals.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.userJournals.idx < len(m.userJournals.entries)-1 {
			m.userJournals.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.userJournals.current()
		if !ok {
			return m, nil
		}
		m.detail = newEntryDetailModel(entry, false)
		m.detailReturn = screenUserJournals
		m.currentScreen = screenEntryDetail
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenUserSearch
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdLoadUserJournals(owner models.User) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	viewerID := m.user.ID
	return func() tea.Msg {
		entries, err := svc.Load(ctx, viewerID, owner.ID)
		return userJournalsLoadedMsg{owner: owner, entries: entries, err: err}
	}
}
