package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/models"
)

type profileModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func newProfileModel(user models.User) profileModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "display name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.SetValue(user.Name)
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.SetValue(user.Email)

	photoInput := textinput.New()
	photoInput.Placeholder = "path to a new photo (optional)"
	photoInput.Width = 40

	return profileModel{inputs: []textinput.Model{nameInput, emailInput, photoInput}}
}

func (m appModel) viewProfile() string {
	p := m.profile

	var b strings.Builder
	b.WriteString("Name:  [" + p.inputs[0].View() + "]\n")
	b.WriteString("Email: [" + p.inputs[1].View() + "]\n")
	b.WriteString("Photo: [" + p.inputs[2].View() + "]\n\n")

	if picture := m.user.ProfilePicture; picture != "" {
		b.WriteString("Current photo: " + m.resolver.ResolveProfilePicture(picture) + "\n")
	}
	if m.user.IsAdmin() {
		b.WriteString("Role: administrator\n")
	}

	if p.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if p.status != "" {
		b.WriteString("\n" + p.status + "\n")
	}
	if p.errMsg != "" {
		b.WriteString("\nError: " + p.errMsg + "\n")
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+u: upload photo │ enter: save")
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenDashboard
			return m, nil
		case "tab":
			m.profile.focusNext()
			return m, nil
		case "shift+tab":
			m.profile.focusPrev()
			return m, nil
		case "ctrl+u":
			path := strings.TrimSpace(m.profile.inputs[2].Value())
			if path == "" {
				m.profile.errMsg = "Give a photo path first"
				return m, nil
			}
			m.profile.errMsg = ""
			m.profile.submitting = true
			return m, m.cmdUploadPhoto(path)
		case "enter":
			if m.profile.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.profile.inputs[0].Value())
			email := strings.TrimSpace(m.profile.inputs[1].Value())
			if name == "" || email == "" {
				m.profile.errMsg = "Name and email are required"
				return m, nil
			}
			updated := m.user
			updated.Name = name
			updated.Email = email
			m.profile.errMsg = ""
			m.profile.submitting = true
			return m, m.cmdUpdateProfile(updated)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m *profileModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *profileModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m appModel) cmdUpdateProfile(user models.User) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		saved, err := svc.UpdateProfile(ctx, user)
		return profileSavedMsg{user: saved, err: err}
	}
}

func (m appModel) cmdUploadPhoto(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return profileSavedMsg{err: err}
		}
		defer f.Close()

		upload := adapter.FileUpload{Filename: filepath.Base(path), Content: f}
		if stat, err := f.Stat(); err == nil {
			upload.Size = stat.Size()
		}

		saved, err := svc.UploadPhoto(ctx, upload)
		return profileSavedMsg{user: saved, err: err}
	}
}
