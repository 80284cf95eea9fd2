package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// returns a new welcome screen
func NewWelcome(mode string, styles *Styles) *Welcome {
	commands := []Command{
		{Name: "showcase", Description: "browse the feature showcase", Available: true},
		{Name: "chat", Description: "talk to Frontend AI", Available: true},
		{Name: "theme", Description: "switch to the next colour theme", Available: true},
		{Name: "start", Description: "start the crumbs server", Available: mode == "development"},
		{Name: "quit", Description: "exit crumbs", Available: true},
	}

	return &Welcome{
		mode:     mode,
		styles:   styles,
		commands: commands,
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand()
			m.input = ""
			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
		}

	case ServerStartedMsg:
		m.input = ""
		return m, nil
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(logo))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("ship interfaces faster with Frontend AI"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Info.Render(fmt.Sprintf("mode: %s | theme: %s", strings.ToUpper(m.mode), m.styles.Theme())))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Command.Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		if !cmd.Available {
			continue
		}

		line := fmt.Sprintf("  %s %s",
			m.styles.Command.Render(cmd.Name),
			m.styles.CommandDesc.Render("- "+cmd.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Prompt.Render("> ") + m.styles.Input.Render(m.input+"_"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Help.Render("type a command and press enter. ctrl+t cycles the theme, ctrl+c quits."))

	return b.String()
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)

	switch cmd {
	case "quit", "exit":
		return tea.Quit

	case "showcase":
		return func() tea.Msg { return EnterShowcaseMsg{} }

	case "chat":
		return func() tea.Msg { return EnterChatMsg{} }

	case "theme":
		return func() tea.Msg { return ThemeChangedMsg{theme: m.styles.Theme().Next()} }

	case "start":
		if m.mode == "development" {
			return startServer
		}

		return func() tea.Msg {
			return ErrorMsg{err: fmt.Errorf("start is only available in development mode")}
		}

	default:
		if cmd != "" {
			return func() tea.Msg {
				return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
			}
		}

		return nil
	}
}
