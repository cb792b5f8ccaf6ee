package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Success styles final confirmation lines.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Errorf styles fatal error lines.
	Errorf = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Muted styles secondary listing text.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
