// Package ui renders the interactive hex viewer.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type hexViewModel struct {
	title    string
	lines    []string
	viewport viewport.Model
	ready    bool
	width    int
}

// NewHexView returns a Bubble Tea model paging over a rendered hex dump.
func NewHexView(title, dump string) tea.Model {
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	return &hexViewModel{
		title: title,
		lines: lines,
		width: 80,
	}
}

func (m *hexViewModel) Init() tea.Cmd {
	return nil
}

func (m *hexViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *hexViewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	header := titleStyle.Render(truncate(m.title, m.width))
	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  q to quit", m.viewport.ScrollPercent()*100))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
