// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/models"
)

// entryDetailModel shows one entry in full. own marks whether the viewer is
// the author; read-only views hide every mutating hot key.
type entryDetailModel struct {
	entry    models.JournalEntry
	own      bool
	mediaIdx int

	adding    bool
	pathInput textinput.Model

	busy   bool
	status string
}

func newEntryDetailModel(entry models.JournalEntry, own bool) entryDetailModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "comma-separated file paths"
	pathInput.Width = 50

	return entryDetailModel{entry: entry, own: own, pathInput: pathInput}
}

func (m entryDetailModel) currentMedia() (string, bool) {
	if len(m.entry.MediaURLs) == 0 || m.mediaIdx < 0 || m.mediaIdx >= len(m.entry.MediaURLs) {
		return "", false
	}
	return m.entry.MediaURLs[m.mediaIdx], true
}

func (m entryDetailModel) renderMedia(resolve func(string) string) string {
	if len(m.entry.MediaURLs) == 0 {
		return "Attachments: none\n"
	}

	out := "Attachments:\n"
	for i, ref := range m.entry.MediaURLs {
		cursor := "  "
		if i == m.mediaIdx {
			cursor = "> "
		}
		out += cursor + resolve(ref) + "\n"
	}
	return out
}

func (m appModel) viewEntryDetail() string {
	d := m.detail
	entry := d.entry

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s │ mood: %s │ by %s\n", valueOrDash(entry.Date), moodStyle(entry.Mood).Render(valueOrDash(entry.Mood)), valueOrDash(entry.UserName)))

	flags := make([]string, 0, 3)
	if entry.IsPrivate {
		flags = append(flags, "private")
	}
	if entry.IsPublished {
		flags = append(flags, "published")
	}
	if entry.HiddenByAdmin {
		flags = append(flags, "hidden by admin")
	}
	if len(flags) > 0 {
		b.WriteString(strings.Join(flags, ", ") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(entry.Content + "\n\n")

	if tags := entry.TagList(); len(tags) > 0 {
		b.WriteString("Tags: " + strings.Join(tags, ", ") + "\n")
	}
	b.WriteString(m.detail.renderMedia(m.resolver.Resolve))

	if d.adding {
		b.WriteString("\nAdd files: [" + d.pathInput.View() + "]\n")
	}
	if d.busy {
		b.WriteString("\nWorking...\n")
	}
	if d.status != "" {
		b.WriteString("\n" + d.status + "\n")
	}

	hotKeys := "esc: back │ c: copy link │ C: copy text"
	if d.own {
		hotKeys = "e edit  d delete  p publish  u unpublish  a add files  x remove file  c copy link  C copy text  esc: back"
	}
	if d.adding {
		hotKeys = "esc: cancel │ enter: upload"
	}
	return renderPage("ENTRY", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) updateEntryDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.adding {
		switch keyMsg.String() {
		case "esc":
			m.detail.adding = false
			m.detail.pathInput.Blur()
			return m, nil
		case "enter":
			paths := splitPathList(m.detail.pathInput.Value())
			if len(paths) == 0 {
				m.detail.status = "No files given"
				return m, cmdClearStatus()
			}
			m.detail.adding = false
			m.detail.pathInput.Blur()
			m.detail.pathInput.SetValue("")
			m.detail.busy = true
			oversized := oversizedOnDisk(paths)
			if len(oversized) > 0 {
				m.detail.status = "Large files: " + strings.Join(oversized, ", ")
			}
			return m, m.cmdAddFiles(m.detail.entry.ID, paths, oversized)
		}

		var cmd tea.Cmd
		m.detail.pathInput, cmd = m.detail.pathInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.detailReturn
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.detail.mediaIdx > 0 {
			m.detail.mediaIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.mediaIdx < len(m.detail.entry.MediaURLs)-1 {
			m.detail.mediaIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		ref, ok := m.detail.currentMedia()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.resolver.Resolve(ref))
	case keyMsg.String() == "C":
		return m, cmdCopyToClipboard(m.detail.entry.Content)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	if !m.detail.own || m.detail.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		entry := m.detail.entry
		m.entryForm = newEntryFormModel(&entry)
		m.formReturn = screenEntryDetail
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.entry.Title
		m.confirmKind = confirmDeleteEntry
		m.confirmID = m.detail.entry.ID
	case key.Matches(keyMsg, keys.publish):
		if m.detail.entry.IsPublished {
			return m, nil
		}
		m.detail.busy = true
		m.dashboard.pending[m.detail.entry.ID] = true
		return m, m.cmdTogglePublish(m.detail.entry.ID, true)
	case key.Matches(keyMsg, keys.unpublish):
		if !m.detail.entry.IsPublished {
			return m, nil
		}
		m.detail.busy = true
		m.dashboard.pending[m.detail.entry.ID] = true
		return m, m.cmdTogglePublish(m.detail.entry.ID, false)
	case key.Matches(keyMsg, keys.addFiles):
		m.detail.adding = true
		m.detail.pathInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.dropFile):
		ref, ok := m.detail.currentMedia()
		if !ok {
			return m, nil
		}
		m.detail.busy = true
		return m, m.cmdDeleteFile(m.detail.entry.ID, ref)
	}

	return m, nil
}

func splitPathList(raw string) []string {
	parts := strings.Split(raw, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if path := strings.TrimSpace(p); path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// oversizedOnDisk applies the soft size ceiling to the paths before any
// upload is attempted. Paths that cannot be stated are skipped; the open
// inside the upload command reports those.
func oversizedOnDisk(paths []string) []string {
	files := make([]adapter.FileUpload, 0, len(paths))
	for _, path := range paths {
		if stat, err := os.Stat(path); err == nil {
			files = append(files, adapter.FileUpload{Filename: filepath.Base(path), Size: stat.Size()})
		}
	}
	return service.OversizedFilenames(files)
}

func (m appModel) cmdAddFiles(journalID int64, paths []string, oversized []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		files := make([]adapter.FileUpload, 0, len(paths))
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return entryPatchedMsg{err: err}
			}
			defer f.Close()

			upload := adapter.FileUpload{Filename: filepath.Base(path), Content: f}
			if stat, err := f.Stat(); err == nil {
				upload.Size = stat.Size()
			}
			files = append(files, upload)
		}

		entry, err := svc.AddFiles(ctx, journalID, files)
		return entryPatchedMsg{entry: entry, oversized: oversized, err: err}
	}
}

func (m appModel) cmdDeleteFile(journalID int64, ref string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		entry, err := svc.DeleteFile(ctx, journalID, ref)
		return entryPatchedMsg{entry: entry, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
