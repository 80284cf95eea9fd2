package tui

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/logger"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// replays an answer that already arrived, so the conversation applies its
// usual append and fallback rules on the update goroutine
type settledReply struct {
	reply chat.Message
	err   error
}

func (s settledReply) Complete(context.Context, []chat.Message) (chat.Message, error) {
	return s.reply, s.err
}

// returns a new chat screen
func NewChatModel(client *RESTClient, suggestions []string, styles *Styles) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "ask Frontend AI to build something..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &ChatModel{
		input:        ti,
		viewport:     viewport.New(80, 12),
		spinner:      sp,
		styles:       styles,
		client:       client,
		conversation: chat.NewConversation(),
		suggestions:  suggestions,
		width:        80,
		height:       24,
	}

	m.Restyle()
	return m
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// picks up the current palette after a theme change
func (m *ChatModel) Restyle() {
	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.Input
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.styles.Accent)
	m.renderer = nil
	m.refresh()
}

func (m *ChatModel) Messages() []chat.Message {
	return m.conversation.Messages()
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.send()

		case "tab":
			// cycles through the suggestion prompts while the conversation is empty
			if m.conversation.Len() == 0 && len(m.suggestions) > 0 {
				m.input.SetValue(m.nextSuggestion())
				m.input.CursorEnd()
			}

			return m, nil

		case "ctrl+l":
			m.conversation = chat.NewConversation()
			m.toast = ""
			m.input.SetValue("")
			m.refresh()
			return m, nil
		}

	case ChatResponseMsg:
		m.settle(settledReply{reply: msg.message})
		return m, nil

	case ChatErrorMsg:
		logger.ErrorErr(msg.err, "chat request failed")
		m.settle(settledReply{err: msg.err})
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-10)
		m.viewport.Width = max(10, msg.Width-4)
		m.viewport.Height = max(3, msg.Height-10)
		m.refresh()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) send() tea.Cmd {
	if m.isFetching {
		return nil
	}

	if _, err := m.conversation.AddUser(m.input.Value(), nil); err != nil {
		return nil
	}

	m.input.SetValue("")
	m.isFetching = true
	m.toast = ""
	m.refresh()

	return tea.Batch(m.client.SendCmd(m.conversation.Messages()), m.spinner.Tick)
}

func (m *ChatModel) settle(answer settledReply) {
	if _, err := m.conversation.Reply(context.Background(), answer); err != nil {
		m.toast = err.Error()
	}

	m.isFetching = false
	m.input.Focus()
	m.refresh()
}

func (m *ChatModel) nextSuggestion() string {
	current := m.input.Value()
	for i, s := range m.suggestions {
		if s == current {
			return m.suggestions[(i+1)%len(m.suggestions)]
		}
	}

	return m.suggestions[0]
}

// re-renders the conversation into the viewport
func (m *ChatModel) refresh() {
	var b strings.Builder

	for _, msg := range m.conversation.Messages() {
		if msg.Role == chat.RoleUser {
			b.WriteString(m.styles.UserMessage.Render("you: "))
			b.WriteString(msg.Content)
			b.WriteString("\n\n")
			continue
		}

		b.WriteString(m.renderMarkdown(msg.Content))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderMarkdown(content string) string {
	width := max(20, m.viewport.Width-2)

	if m.renderer == nil || m.rendererTheme != m.styles.Theme() || m.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.styles.glamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logger.ErrorErr(err, "failed to create markdown renderer")
			return content
		}

		m.renderer = r
		m.rendererTheme = m.styles.Theme()
		m.rendererWidth = width
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}

	return out
}

func (m *ChatModel) View() string {
	var b strings.Builder

	header := m.styles.Command.Render("FRONTEND AI")
	help := m.styles.Info.Render("[enter: send] [tab: suggestion] [ctrl+l: clear] [esc: back]")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		header,
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	))
	b.WriteString("\n\n")

	if m.conversation.Len() == 0 {
		b.WriteString(m.styles.Info.Render("what can I help you build? press tab for ideas."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Box.Width(max(10, m.width-4)).Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.isFetching:
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Info.Render("thinking...")))
	case m.toast != "":
		b.WriteString(m.styles.Toast.Render(m.toast))
	}

	return b.String()
}
