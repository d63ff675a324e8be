package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

// adminJournalsModel is the moderation view over entries. It switches
// between the complete listing and the published-only listing; hide and
// restore only make sense on the published side but are accepted anywhere,
// the server answers with the authoritative state either way.
type adminJournalsModel struct {
	entries       []models.JournalEntry
	idx           int
	loading       bool
	publishedOnly bool
	status        string
}

func newAdminJournalsModel() adminJournalsModel {
	return adminJournalsModel{loading: true}
}

func (m adminJournalsModel) current() (models.JournalEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m adminJournalsModel) View() string {
	var b strings.Builder

	scope := "all entries"
	if m.publishedOnly {
		scope = "published only"
	}
	b.WriteString("scope: " + scope + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("Nothing to moderate.\n")
	default:
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			flags := ""
			if entry.IsPublished {
				flags += " [published]"
			}
			if entry.HiddenByAdmin {
				flags += " [hidden]"
			}
			b.WriteString(cursor + fmt.Sprintf("%-4d %s  by %s%s\n",
				entry.ID, fitText(entry.Title, 30), valueOrDash(entry.UserName), flags))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ADMIN: JOURNALS", strings.TrimRight(b.String(), "\n"),
		"tab: scope  h hide  u restore  d delete  r reload  esc: back")
}

func (m appModel) updateAdminJournals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.adminJournals.idx > 0 {
			m.adminJournals.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.adminJournals.idx < len(m.adminJournals.entries)-1 {
			m.adminJournals.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.adminJournals.publishedOnly = !m.adminJournals.publishedOnly
		m.adminJournals.idx = 0
		m.adminJournals.loading = true
		return m, m.cmdAdminLoadJournals(m.adminJournals.publishedOnly)
	case key.Matches(keyMsg, keys.hide):
		entry, ok := m.adminJournals.current()
		if !ok || entry.HiddenByAdmin {
			return m, nil
		}
		m.adminJournals.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.Hide(m.ctx, entry.ID) })
	case key.Matches(keyMsg, keys.unpublish):
		entry, ok := m.adminJournals.current()
		if !ok || !entry.HiddenByAdmin {
			return m, nil
		}
		m.adminJournals.loading = true
		return m, m.cmdAdminUserAction(func() error { return m.services.AdminService.Restore(m.ctx, entry.ID) })
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.adminJournals.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = entry.Title
		m.confirmKind = confirmDeleteJournalAdmin
		m.confirmID = entry.ID
	case key.Matches(keyMsg, keys.reload):
		m.adminJournals.loading = true
		return m, m.cmdAdminLoadJournals(m.adminJournals.publishedOnly)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdAdminLoadJournals(publishedOnly bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService
	return func() tea.Msg {
		var (
			entries []models.JournalEntry
			err     error
		)
		if publishedOnly {
			entries, err = svc.PublishedJournals(ctx)
		} else {
			entries, err = svc.Journals(ctx)
		}
		return adminJournalsLoadedMsg{published: publishedOnly, entries: entries, err: err}
	}
}
