package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"codeberg.org/crumbs/server/internal/logger"
	"codeberg.org/crumbs/server/internal/showcase"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func NewShowcaseModel(title string, slides []showcase.Slide, styles *Styles) *ShowcaseModel {
	return &ShowcaseModel{
		styles: styles,
		slides: slides,
		title:  title,
		bar:    newBar(styles, 40),
	}
}

func newBar(styles *Styles, width int) progress.Model {
	bar := progress.New(progress.WithSolidFill(string(styles.Accent)), progress.WithoutPercentage())
	bar.Width = width

	return bar
}

// picks up the current palette after a theme change
func (m *ShowcaseModel) Restyle() {
	m.bar = newBar(m.styles, m.bar.Width)
}

func frameTick(gen int) tea.Cmd {
	return tea.Tick(showcase.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{gen: gen, at: t}
	})
}

// mounts a fresh controller and starts the frame loop
func (m *ShowcaseModel) Enter(now time.Time, opts ...showcase.Option) tea.Cmd {
	m.Leave()

	m.scheduler = showcase.NewFrameScheduler(now)
	ctrl, err := showcase.New(m.slides, m.scheduler, opts...)
	if err != nil {
		return func() tea.Msg { return ErrorMsg{err: fmt.Errorf("showcase unavailable: %w", err)} }
	}

	m.controller = ctrl
	m.controller.Mount()
	m.gen++

	logger.Debug("showcase screen entered", "gen", m.gen)
	return frameTick(m.gen)
}

// unmounts the controller; frames still in flight are ignored
func (m *ShowcaseModel) Leave() {
	if m.controller != nil {
		m.controller.Unmount()
	}

	m.gen++
}

func (m *ShowcaseModel) Snapshot() showcase.Snapshot {
	if m.controller == nil {
		return showcase.Snapshot{}
	}

	return m.controller.Snapshot()
}

func (m *ShowcaseModel) Mounted() bool {
	return m.controller != nil && m.controller.Mounted()
}

func (m *ShowcaseModel) Update(msg tea.Msg) (*ShowcaseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.gen != m.gen || !m.Mounted() {
			return m, nil
		}

		m.scheduler.Frame(msg.at)
		return m, frameTick(m.gen)

	case tea.KeyMsg:
		if !m.Mounted() {
			return m, nil
		}

		active := m.Snapshot().ActiveIndex
		n := len(m.slides)

		switch key := msg.String(); key {
		case "down", "j", "tab":
			m.controller.Select((active + 1) % n)
		case "up", "k", "shift+tab":
			m.controller.Select((active - 1 + n) % n)
		default:
			if idx, err := strconv.Atoi(key); err == nil {
				m.controller.Select(idx - 1)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(10, min(60, msg.Width-8))
	}

	return m, nil
}

func (m *ShowcaseModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(strings.ToUpper(m.title)))
	b.WriteString("\n")

	snap := m.Snapshot()
	for i, slide := range m.slides {
		heading := fmt.Sprintf("%d. %s", i+1, slide.Title)
		if slide.HasBadge() {
			heading += " " + m.styles.Badge.Render(*slide.Badge)
		}

		if i != snap.ActiveIndex {
			b.WriteString(m.styles.SlideTitle.Render(heading))
			b.WriteString("\n")
			continue
		}

		lines := []string{heading}
		if slide.Description != "" {
			lines = append(lines, m.styles.Subtitle.UnsetMarginBottom().Render(slide.Description))
		}

		lines = append(lines, m.bar.ViewAs(snap.Progress/100))
		b.WriteString(m.styles.ActiveSlide.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("up/down or 1-" + strconv.Itoa(len(m.slides)) + ": select slide | esc: back | ctrl+t: theme"))

	return b.String()
}
