package tui

import (
	"time"

	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/showcase"
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateShowcase
	StateChat
)

// main TUI application model
type Model struct {
	state    AppState
	mode     string
	width    int
	height   int
	err      error
	styles   *Styles
	theme    theme.Theme
	store    theme.Store
	welcome  *Welcome
	showcase *ShowcaseModel
	chat     *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to switch screens
type EnterShowcaseMsg struct{}
type EnterChatMsg struct{}

// sent after the theme preference changed
type ThemeChangedMsg struct {
	theme theme.Theme
}

// drives the showcase frame scheduler; gen ties it to one visit of the screen
type FrameMsg struct {
	gen int
	at  time.Time
}

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	styles   *Styles
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
	Available   bool
}

// render surface for the showcase carousel
type ShowcaseModel struct {
	styles     *Styles
	slides     []showcase.Slide
	title      string
	scheduler  *showcase.FrameScheduler
	controller *showcase.Controller
	bar        progress.Model
	gen        int
	width      int
}

// chat screen
type ChatModel struct {
	input         textinput.Model
	viewport      viewport.Model
	spinner       spinner.Model
	renderer      *glamour.TermRenderer
	styles        *Styles
	client        *RESTClient
	conversation  *chat.Conversation
	suggestions   []string
	isFetching    bool
	toast         string
	width         int
	height        int
	ready         bool
	rendererTheme theme.Theme
	rendererWidth int
}

// sent when the chat API answered
type ChatResponseMsg struct {
	message chat.Message
}

// sent when the chat API failed
type ChatErrorMsg struct {
	err error
}

// sent when the server started from the welcome screen
type ServerStartedMsg struct{}
