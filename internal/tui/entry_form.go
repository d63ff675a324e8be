package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/models"
)

type entryFormModel struct {
	inputs     []textinput.Model
	focus      int
	private    bool
	editing    bool
	entryID    int64
	submitting bool
	errMsg     string
}

func newEntryFormModel(entry *models.JournalEntry) entryFormModel {
	labels := []string{"title", "how was your day", "mood", "comma-separated tags", "YYYY-MM-DD"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = label
		inputs[i].Width = 50
	}
	inputs[0].CharLimit = 200
	inputs[0].Focus()

	m := entryFormModel{inputs: inputs}
	if entry == nil {
		m.inputs[4].SetValue(time.Now().Format("2006-01-02"))
		return m
	}

	m.editing = true
	m.entryID = entry.ID
	m.private = entry.IsPrivate
	m.inputs[0].SetValue(entry.Title)
	m.inputs[1].SetValue(entry.Content)
	m.inputs[2].SetValue(entry.Mood)
	m.inputs[3].SetValue(entry.Tags)
	m.inputs[4].SetValue(entry.Date)
	return m
}

func (m entryFormModel) toEntry() models.JournalEntry {
	return models.JournalEntry{
		ID:        m.entryID,
		Title:     strings.TrimSpace(m.inputs[0].Value()),
		Content:   m.inputs[1].Value(),
		Mood:      strings.TrimSpace(m.inputs[2].Value()),
		Tags:      strings.TrimSpace(m.inputs[3].Value()),
		Date:      strings.TrimSpace(m.inputs[4].Value()),
		IsPrivate: m.private,
	}
}

func (m entryFormModel) View() string {
	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT ENTRY"
	}

	var b strings.Builder
	b.WriteString("Title:   [" + m.inputs[0].View() + "]\n")
	b.WriteString("Content: [" + m.inputs[1].View() + "]\n")
	b.WriteString("Mood:    [" + m.inputs[2].View() + "]\n")
	b.WriteString("Tags:    [" + m.inputs[3].View() + "]\n")
	b.WriteString("Date:    [" + m.inputs[4].View() + "]\n")
	b.WriteString("Private: " + onOff(m.private, "yes", "no") + "\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab: next field │ ctrl+p: toggle private │ enter: save")
}

func (m appModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = m.formReturn
			return m, nil
		case "tab":
			m.entryForm.focusNext()
			return m, nil
		case "shift+tab":
			m.entryForm.focusPrev()
			return m, nil
		case "ctrl+p":
			m.entryForm.private = !m.entryForm.private
			return m, nil
		case "enter":
			if m.entryForm.submitting {
				return m, nil
			}
			entry := m.entryForm.toEntry()
			if entry.Title == "" {
				m.entryForm.errMsg = "Title is required"
				return m, nil
			}
			m.entryForm.errMsg = ""
			m.entryForm.submitting = true
			return m, m.cmdSaveEntry(entry, m.entryForm.editing)
		}
	}

	var cmd tea.Cmd
	m.entryForm.inputs[m.entryForm.focus], cmd = m.entryForm.inputs[m.entryForm.focus].Update(msg)
	return m, cmd
}

func (m *entryFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *entryFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m appModel) cmdSaveEntry(entry models.JournalEntry, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	userID := m.user.ID
	return func() tea.Msg {
		var (
			saved models.JournalEntry
			err   error
		)
		if editing {
			saved, err = svc.Update(ctx, entry.ID, entry)
		} else {
			saved, err = svc.Create(ctx, userID, entry)
		}
		return entrySavedMsg{entry: saved, err: err}
	}
}
