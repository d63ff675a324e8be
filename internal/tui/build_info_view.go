package tui

import "strings"

func renderBuildInfoWindow(version string) string {
	var b strings.Builder

	b.WriteString("Application: Journal TUI client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(version))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
