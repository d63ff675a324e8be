package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
	labels := []string{"name", "email", "password", "repeat password"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = label
		inputs[i].Width = 40
	}
	inputs[0].CharLimit = 100
	inputs[1].CharLimit = 254
	for _, i := range []int{2, 3} {
		inputs[i].CharLimit = 256
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Name:            [" + m.inputs[0].View() + "]\n")
	b.WriteString("Email:           [" + m.inputs[1].View() + "]\n")
	b.WriteString("Password:        [" + m.inputs[2].View() + "]\n")
	b.WriteString("Repeat password: [" + m.inputs[3].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
