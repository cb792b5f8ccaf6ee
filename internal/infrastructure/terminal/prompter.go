// Package terminal implements the interactive prompter on top of huh and
// holds the lipgloss styles used for CLI output.
package terminal

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks questions on the controlling terminal.
type Prompter struct{}

// NewPrompter returns a terminal-backed prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Input implements ports.Prompter. An empty submission yields the default.
func (*Prompter) Input(question, defaultAnswer string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(question).
		Placeholder(defaultAnswer).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return defaultAnswer, nil
	}
	return value, nil
}

// Confirm implements ports.Prompter.
func (*Prompter) Confirm(question string, defaultAnswer bool) (bool, error) {
	value := defaultAnswer
	err := huh.NewConfirm().
		Title(question).
		Value(&value).
		Run()
	return value, err
}

// Select implements ports.Prompter.
func (*Prompter) Select(question string, options []string, defaultOption string) (string, error) {
	value := defaultOption
	err := huh.NewSelect[string]().
		Title(question).
		Options(huh.NewOptions(options...)...).
		Value(&value).
		Run()
	return value, err
}
