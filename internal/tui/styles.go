package tui

import (
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	faint  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	danger lipgloss.Color
}

// one palette per site theme, approximating the web colours
var palettes = map[theme.Theme]palette{
	theme.Light: {
		text: "#1F2937", muted: "#4B5563", faint: "#9CA3AF",
		accent: "#EA580C", border: "#D1D5DB", danger: "#B91C1C",
	},
	theme.LightAlt: {
		text: "#1E293B", muted: "#475569", faint: "#94A3B8",
		accent: "#4F46E5", border: "#CBD5E1", danger: "#B91C1C",
	},
	theme.Dark: {
		text: "#FFFFFF", muted: "#CCCCCC", faint: "#888888",
		accent: "#FB923C", border: "#444444", danger: "#F87171",
	},
	theme.DarkAlt: {
		text: "#E2E8F0", muted: "#A0AEC0", faint: "#718096",
		accent: "#8524A6", border: "#2D3748", danger: "#FC8181",
	},
	theme.DarkAlt2: {
		text: "#E6FFFA", muted: "#81E6D9", faint: "#4FD1C5",
		accent: "#38B2AC", border: "#020F0E", danger: "#FEB2B2",
	},
}

// all styles for one theme; rebuilt when the theme changes
type Styles struct {
	theme theme.Theme
	pal   palette

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Command     lipgloss.Style
	CommandDesc lipgloss.Style
	Prompt      lipgloss.Style
	Input       lipgloss.Style
	Info        lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Badge       lipgloss.Style
	SlideTitle  lipgloss.Style
	ActiveSlide lipgloss.Style
	Box         lipgloss.Style
	UserMessage lipgloss.Style
	Toast       lipgloss.Style
	Accent      lipgloss.Color
}

func NewStyles(t theme.Theme) *Styles {
	pal, ok := palettes[t]
	if !ok {
		t = theme.Default()
		pal = palettes[t]
	}

	return &Styles{
		theme: t,
		pal:   pal,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(pal.accent).
			MarginTop(1).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(pal.muted).
			MarginBottom(1),

		Command: lipgloss.NewStyle().
			Foreground(pal.text).
			Bold(true),

		CommandDesc: lipgloss.NewStyle().
			Foreground(pal.faint).
			PaddingLeft(1),

		Prompt: lipgloss.NewStyle().
			Foreground(pal.muted),

		Input: lipgloss.NewStyle().
			Foreground(pal.text).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(pal.faint).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(pal.faint).
			Italic(true).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Foreground(pal.danger).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(pal.text).
			Background(pal.accent).
			Padding(0, 1).
			Bold(true),

		SlideTitle: lipgloss.NewStyle().
			Foreground(pal.muted).
			PaddingLeft(2),

		ActiveSlide: lipgloss.NewStyle().
			Foreground(pal.text).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(pal.accent).
			PaddingLeft(1),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(pal.border).
			Padding(0, 1),

		UserMessage: lipgloss.NewStyle().
			Foreground(pal.accent).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Foreground(pal.danger).
			Italic(true),

		Accent: pal.accent,
	}
}

func (s *Styles) Theme() theme.Theme {
	return s.theme
}

// glamour style name matching the theme brightness
func (s *Styles) glamourStyle() string {
	if s.theme.IsDark() {
		return "dark"
	}

	return "light"
}

const logo = `
   ██████╗██████╗ ██╗   ██╗███╗   ███╗██████╗ ███████╗
  ██╔════╝██╔══██╗██║   ██║████╗ ████║██╔══██╗██╔════╝
  ██║     ██████╔╝██║   ██║██╔████╔██║██████╔╝███████╗
  ██║     ██╔══██╗██║   ██║██║╚██╔╝██║██╔══██╗╚════██║
  ╚██████╗██║  ██║╚██████╔╝██║ ╚═╝ ██║██████╔╝███████║
   ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚═════╝ ╚══════╝
`
