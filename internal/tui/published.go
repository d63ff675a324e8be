package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

// publishedModel is the shared feed of published entries. Search here is
// server-side: the query goes to the backend instead of the local pipeline.
type publishedModel struct {
	entries []models.JournalEntry
	idx     int
	loading bool

	searchInput textinput.Model
	searching   bool
	query       string
}

func newPublishedModel() publishedModel {
	search := textinput.New()
	search.Placeholder = "search the feed"
	search.Width = 44

	return publishedModel{searchInput: search, loading: true}
}

func (m publishedModel) current() (models.JournalEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m publishedModel) View() string {
	var b strings.Builder

	if m.searching {
		b.WriteString("search: [" + m.searchInput.View() + "]\n\n")
	} else if m.query != "" {
		b.WriteString("search: " + m.query + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("Nothing published yet.\n")
	default:
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + fmt.Sprintf("%-10s  %s  by %s\n",
				valueOrDash(entry.Date), fitText(entry.Title, 30), valueOrDash(entry.UserName)))
		}
	}

	hotKeys := "enter: open │ /: search │ r: reload │ esc: back"
	if m.searching {
		hotKeys = "esc: cancel │ enter: search"
	}
	return renderPage("PUBLIC FEED", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updatePublished(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.published.searching {
		switch keyMsg.String() {
		case "esc":
			m.published.searching = false
			m.published.searchInput.Blur()
			return m, nil
		case "enter":
			m.published.searching = false
			m.published.searchInput.Blur()
			m.published.query = strings.TrimSpace(m.published.searchInput.Value())
			m.published.loading = true
			return m, m.cmdLoadPublished(m.published.query)
		}

		var cmd tea.Cmd
		m.published.searchInput, cmd = m.published.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.published.idx > 0 {
			m.published.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.published.idx < len(m.published.entries)-1 {
			m.published.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.published.current()
		if !ok {
			return m, nil
		}
		m.detail = newEntryDetailModel(entry, entry.UserID == m.user.ID)
		m.detailReturn = screenPublished
		m.currentScreen = screenEntryDetail
	case key.Matches(keyMsg, keys.search):
		m.published.searching = true
		m.published.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reload):
		m.published.loading = true
		return m, m.cmdLoadPublished(m.published.query)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdLoadPublished(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		entries, err := svc.Published(ctx, query)
		return publishedLoadedMsg{entries: entries, err: err}
	}
}
