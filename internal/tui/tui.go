package tui

import (
	"fmt"
	"time"

	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/logger"
	"codeberg.org/crumbs/server/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// now is swapped in tests
var now = time.Now

func NewApp(mode, endpoint string, site *content.Site, store theme.Store) *Model {
	current := store.Load()
	styles := NewStyles(current)

	prompts := make([]string, len(site.Suggestions))
	for i, s := range site.Suggestions {
		prompts[i] = s.Prompt
	}

	return &Model{
		state:    StateWelcome,
		mode:     mode,
		styles:   styles,
		theme:    current,
		store:    store,
		welcome:  NewWelcome(mode, styles),
		showcase: NewShowcaseModel(site.Showcase.Title, site.Showcase.Slides, styles),
		chat:     NewChatModel(NewRESTClient(endpoint), prompts, styles),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// only quit from the welcome screen; elsewhere go back to it
			if m.state == StateWelcome {
				return m, tea.Quit
			}

			return m, m.goHome()

		case "esc":
			if m.err != nil {
				m.err = nil
				return m, nil
			}

			if m.state != StateWelcome {
				return m, m.goHome()
			}

		case "ctrl+t":
			return m, m.setTheme(m.theme.Next())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.showcase, _ = m.showcase.Update(msg)
		m.chat, _ = m.chat.Update(msg)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case ThemeChangedMsg:
		return m, m.setTheme(msg.theme)

	case EnterShowcaseMsg:
		m.state = StateShowcase
		return m, m.showcase.Enter(now())

	case EnterChatMsg:
		m.state = StateChat
		return m, m.chat.Init()

	case FrameMsg:
		// frames are only meaningful while the showcase is mounted
		var cmd tea.Cmd
		m.showcase, cmd = m.showcase.Update(msg)
		return m, cmd

	case ChatResponseMsg, ChatErrorMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateWelcome:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd

	case StateShowcase:
		var cmd tea.Cmd
		m.showcase, cmd = m.showcase.Update(msg)
		return m, cmd

	case StateChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.styles, m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateShowcase:
		return m.showcase.View()

	case StateChat:
		return m.chat.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) State() AppState {
	return m.state
}

func (m *Model) Theme() theme.Theme {
	return m.theme
}

func (m *Model) goHome() tea.Cmd {
	if m.state == StateShowcase {
		m.showcase.Leave()
	}

	m.state = StateWelcome
	return nil
}

// applies and persists a theme; persistence failures are logged, not fatal
func (m *Model) setTheme(t theme.Theme) tea.Cmd {
	if !t.Valid() {
		return nil
	}

	m.theme = t
	*m.styles = *NewStyles(t)
	m.showcase.Restyle()
	m.chat.Restyle()

	if err := m.store.Save(t); err != nil {
		logger.ErrorErr(err, "failed to persist theme", "theme", t.String())
	}

	return nil
}

func errorView(styles *Styles, err error) string {
	return fmt.Sprintf("\n  %s\n\n  %s\n",
		styles.Error.Render(fmt.Sprintf("Error: %v", err)),
		styles.Help.Render("press esc to dismiss, ctrl+c to go back"),
	)
}
