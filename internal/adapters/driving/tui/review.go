// Package tui provides the interactive change review screen used by
// import --review. Each pending change can be toggled on or off before
// applying.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// keyMap defines the review screen keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply selected"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// Model is the bubbletea model for the review screen.
type Model struct {
	changes  []domain.ChangeRecord
	selected []bool
	cursor   int
	keys     keyMap

	confirmed bool
	done      bool
}

// NewModel creates a review model with every change selected.
func NewModel(changes []domain.ChangeRecord) Model {
	selected := make([]bool, len(changes))
	for i := range selected {
		selected[i] = true
	}
	return Model{
		changes:  changes,
		selected: selected,
		keys:     defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.changes)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.selected) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(keyMsg, m.keys.All):
		all := m.allSelected()
		for i := range m.selected {
			m.selected[i] = !all
		}
	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Review %d change(s)", len(m.changes))))
	b.WriteString("\n\n")

	for i, change := range m.changes {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		check := "[ ]"
		style := excludedStyle
		if m.selected[i] {
			check = "[x]"
			style = checkedStyle
		}

		label := fmt.Sprintf("Slide %d", change.SlideNumber)
		if change.SlideTitle != "" {
			label += ": " + change.SlideTitle
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%s)\n", cursor, style.Render(check), label, change.Type))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space toggle · a toggle all · enter apply · q cancel"))
	b.WriteString("\n")
	return b.String()
}

// SelectedSlides returns the slide numbers still selected.
func (m Model) SelectedSlides() []int {
	var slides []int
	for i, change := range m.changes {
		if m.selected[i] {
			slides = append(slides, change.SlideNumber)
		}
	}
	return slides
}

// Confirmed reports whether the user chose to apply.
func (m Model) Confirmed() bool {
	return m.confirmed
}

func (m Model) allSelected() bool {
	for _, sel := range m.selected {
		if !sel {
			return false
		}
	}
	return true
}

// Review runs the interactive screen and returns the selected slide
// numbers. The second return is false when the user cancelled.
func Review(changes []domain.ChangeRecord) ([]int, bool, error) {
	program := tea.NewProgram(NewModel(changes))
	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("running review: %w", err)
	}

	model, ok := final.(Model)
	if !ok || !model.Confirmed() {
		return nil, false, nil
	}
	return model.SelectedSlides(), true, nil
}
