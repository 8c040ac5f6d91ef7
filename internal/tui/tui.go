// Package tui provides a terminal user interface for interactive oneliner
// selection. It uses the Bubble Tea framework for a keyboard-driven picker
// with live fuzzy filtering over the stored snippets.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/toozej/oneliners/internal/snippet"
)

type model struct {
	textInput textinput.Model
	oneliners []string
	filtered  []string
	cursor    int
	sink      snippet.Sink
	err       error
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Run starts the terminal user interface over the given oneliners. The user
// can fuzzy filter, navigate with arrow or vim keys, and press enter to send
// the selection to the clipboard sink. Returns an error if the TUI fails to
// start or encounters runtime errors.
func Run(oneliners []string, sink snippet.Sink) error {
	ti := textinput.New()
	ti.Placeholder = "Search oneliners..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 50

	m := model{
		textInput: ti,
		oneliners: oneliners,
		filtered:  oneliners,
		sink:      sink,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				if err := m.sink.Copy(m.filtered[m.cursor]); err != nil {
					m.err = err
					return m, nil
				}
				return m, tea.Quit
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}

		default:
			m.textInput, cmd = m.textInput.Update(msg)
			m.filterResults()
			if m.cursor >= len(m.filtered) {
				m.cursor = len(m.filtered) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}

	case tea.WindowSizeMsg:
		// Handle window resize if needed
	}

	return m, cmd
}

func (m *model) filterResults() {
	query := m.textInput.Value()
	if query == "" {
		m.filtered = m.oneliners
		return
	}

	matches := fuzzy.RankFindNormalizedFold(query, m.oneliners)
	m.filtered = make([]string, len(matches))
	for i, match := range matches {
		m.filtered[i] = m.oneliners[match.OriginalIndex]
	}
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress Ctrl+C to exit", m.err)
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("Oneliners"))
	b.WriteString("\n\n")

	// Search input
	b.WriteString("Search: ")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Results
	if len(m.filtered) == 0 {
		b.WriteString("No oneliners found.\n")
	} else {
		b.WriteString(fmt.Sprintf("Found %d oneliner(s):\n\n", len(m.filtered)))

		maxDisplay := 10
		if len(m.filtered) < maxDisplay {
			maxDisplay = len(m.filtered)
		}

		for i := 0; i < maxDisplay; i++ {
			line := m.filtered[i]
			cursor := " "
			if m.cursor == i {
				cursor = "▶"
				line = selectedStyle.Render(line)
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, line))
		}

		if len(m.filtered) > maxDisplay {
			b.WriteString(fmt.Sprintf("\n... and %d more\n", len(m.filtered)-maxDisplay))
		}
	}

	// Help
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter select & copy • ctrl+c/esc quit"))

	return b.String()
}
