package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/showcase"
	"codeberg.org/crumbs/server/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testSlides() []showcase.Slide {
	return []showcase.Slide{
		{Title: "Roles", Description: "who can do what", Badge: strPtr("NEW")},
		{Title: "Themes", Description: "five of them"},
		{Title: "Chat"},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestShowcaseAdvancesOnFrames(t *testing.T) {
	m := NewShowcaseModel("Showcase", testSlides(), NewStyles(theme.Light))
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	cmd := m.Enter(start, showcase.WithDwell(time.Second), showcase.WithAdvanceDelay(100*time.Millisecond))
	require.NotNil(t, cmd)
	require.True(t, m.Mounted())

	frame := func(d time.Duration) tea.Cmd {
		_, next := m.Update(FrameMsg{gen: m.gen, at: start.Add(d)})
		return next
	}

	assert.NotNil(t, frame(500*time.Millisecond))
	assert.Equal(t, 0, m.Snapshot().ActiveIndex)
	assert.InDelta(t, 50, m.Snapshot().Progress, 0.001)

	// full bar holds for the advance delay
	frame(time.Second)
	assert.Equal(t, 0, m.Snapshot().ActiveIndex)
	assert.InDelta(t, 100, m.Snapshot().Progress, 0.001)

	frame(1100 * time.Millisecond)
	assert.Equal(t, 1, m.Snapshot().ActiveIndex)
	assert.Zero(t, m.Snapshot().Progress)

	assert.Contains(t, m.View(), "2. Themes")
	assert.Contains(t, m.View(), "five of them")
}

func TestShowcaseKeysSelectSlides(t *testing.T) {
	m := NewShowcaseModel("Showcase", testSlides(), NewStyles(theme.Dark))
	m.Enter(time.Now())

	m.Update(runes("3"))
	assert.Equal(t, 2, m.Snapshot().ActiveIndex)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Snapshot().ActiveIndex)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.Snapshot().ActiveIndex)

	// out of range digits are ignored
	m.Update(runes("9"))
	assert.Equal(t, 2, m.Snapshot().ActiveIndex)
}

func TestShowcaseIgnoresStaleFrames(t *testing.T) {
	m := NewShowcaseModel("Showcase", testSlides(), NewStyles(theme.Light))
	start := time.Now()

	m.Enter(start, showcase.WithDwell(time.Second))
	staleGen := m.gen

	m.Leave()
	assert.False(t, m.Mounted())

	_, cmd := m.Update(FrameMsg{gen: staleGen, at: start.Add(500 * time.Millisecond)})
	assert.Nil(t, cmd)
	assert.Zero(t, m.Snapshot().Progress)

	// re-entering starts a fresh visit on the first slide
	m.Enter(start.Add(time.Second), showcase.WithDwell(time.Second))
	assert.NotEqual(t, staleGen, m.gen)
	assert.Equal(t, 0, m.Snapshot().ActiveIndex)
}

func TestShowcaseEnterWithoutSlides(t *testing.T) {
	m := NewShowcaseModel("Empty", nil, NewStyles(theme.Light))

	cmd := m.Enter(time.Now())
	require.NotNil(t, cmd)

	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.err, showcase.ErrNoSlides)
	assert.False(t, m.Mounted())
}

func TestWelcomeCommands(t *testing.T) {
	tests := []struct {
		input string
		want  tea.Msg
	}{
		{"showcase", EnterShowcaseMsg{}},
		{"chat", EnterChatMsg{}},
		{"theme", ThemeChangedMsg{theme: theme.LightAlt}},
		{"quit", tea.QuitMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w := NewWelcome("production", NewStyles(theme.Light))
			w.Update(runes(tt.input))

			_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
			assert.Empty(t, w.input)
		})
	}
}

func TestWelcomeRejectsUnknownAndDevOnlyCommands(t *testing.T) {
	w := NewWelcome("production", NewStyles(theme.Light))

	w.Update(runes("dance"))
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.err, "unknown command: dance")

	w.Update(runes("start"))
	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok = cmd().(ErrorMsg)
	require.True(t, ok)
	assert.Contains(t, msg.err.Error(), "development mode")

	assert.NotContains(t, w.View(), "start the crumbs server")

	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func newTestApp(t *testing.T, endpoint string) (*Model, *theme.LocalStore) {
	t.Helper()

	site, err := content.Load()
	require.NoError(t, err)

	store := theme.NewLocalStore(nil)
	return NewApp("production", endpoint, site, store), store
}

func TestAppThemeCyclesAndPersists(t *testing.T) {
	app, store := newTestApp(t, "http://127.0.0.1:1")
	assert.Equal(t, theme.Light, app.Theme())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.LightAlt, app.Theme())
	assert.Equal(t, theme.LightAlt, store.Load())
	assert.Equal(t, theme.LightAlt, app.styles.Theme())

	app.Update(ThemeChangedMsg{theme: theme.DarkAlt2})
	assert.Equal(t, theme.DarkAlt2, store.Load())
	assert.Equal(t, "dark", app.styles.glamourStyle())

	// the screens share the restyled palette
	assert.Same(t, app.styles, app.welcome.styles)
	assert.Same(t, app.styles, app.chat.styles)

	app.Update(ThemeChangedMsg{theme: theme.Theme("neon")})
	assert.Equal(t, theme.DarkAlt2, app.Theme())
}

func TestAppStartsFromStoredTheme(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	store := theme.NewLocalStore(nil)
	require.NoError(t, store.Save(theme.Dark))

	app := NewApp("production", "http://127.0.0.1:1", site, store)
	assert.Equal(t, theme.Dark, app.Theme())
	assert.Contains(t, app.View(), "theme: dark")
}

func TestAppNavigation(t *testing.T) {
	app, _ := newTestApp(t, "http://127.0.0.1:1")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now = func() time.Time { return start }
	t.Cleanup(func() { now = time.Now })

	_, cmd := app.Update(EnterShowcaseMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, StateShowcase, app.State())
	assert.True(t, app.showcase.Mounted())

	app.Update(FrameMsg{gen: app.showcase.gen, at: start.Add(4 * time.Second)})
	assert.InDelta(t, 50, app.showcase.Snapshot().Progress, 0.001)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateWelcome, app.State())
	assert.False(t, app.showcase.Mounted())

	app.Update(EnterChatMsg{})
	assert.Equal(t, StateChat, app.State())

	// ctrl+c leaves a screen before it quits
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.Equal(t, StateWelcome, app.State())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppErrorView(t *testing.T) {
	app, _ := newTestApp(t, "http://127.0.0.1:1")

	app.Update(ErrorMsg{err: assert.AnError})
	assert.Contains(t, app.View(), "Error: "+assert.AnError.Error())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, app.View(), "Error:")
}

func TestChatSettlesReplies(t *testing.T) {
	m := NewChatModel(NewRESTClient("http://127.0.0.1:1"), nil, NewStyles(theme.Light))

	m.input.SetValue("build a navbar")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.isFetching)
	assert.Empty(t, m.input.Value())
	require.Len(t, m.Messages(), 1)
	assert.Equal(t, chat.RoleUser, m.Messages()[0].Role)

	// a second send is ignored while a reply is pending
	m.input.SetValue("again")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m.Update(ChatResponseMsg{message: chat.Message{Role: chat.RoleAssistant, Content: "here you go"}})
	assert.False(t, m.isFetching)
	require.Len(t, m.Messages(), 2)
	assert.Equal(t, "here you go", m.Messages()[1].Content)
	assert.Empty(t, m.toast)
}

func TestChatFallbackOnError(t *testing.T) {
	m := NewChatModel(NewRESTClient("http://127.0.0.1:1"), nil, NewStyles(theme.Dark))

	m.input.SetValue("hello")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(ChatErrorMsg{err: assert.AnError})

	require.Len(t, m.Messages(), 2)
	assert.Equal(t, chat.FallbackReply, m.Messages()[1].Content)
	assert.Equal(t, assert.AnError.Error(), m.toast)
	assert.Contains(t, m.View(), assert.AnError.Error())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.Messages())
	assert.Empty(t, m.toast)
}

func TestChatIgnoresBlankInput(t *testing.T) {
	m := NewChatModel(NewRESTClient("http://127.0.0.1:1"), nil, NewStyles(theme.Light))

	m.input.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.Messages())
	assert.False(t, m.isFetching)
}

func TestChatTabCyclesSuggestions(t *testing.T) {
	m := NewChatModel(NewRESTClient("http://127.0.0.1:1"), []string{"first", "second"}, NewStyles(theme.Light))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "first", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "second", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "first", m.input.Value())
}

func TestRESTClientSendCmd(t *testing.T) {
	var got chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"done"}}`))
	}))
	defer server.Close()

	client := NewRESTClient(server.URL + "/")
	assert.Equal(t, server.URL, client.Endpoint())

	msg := client.SendCmd([]chat.Message{{Role: chat.RoleUser, Content: "hi"}})()

	reply, ok := msg.(ChatResponseMsg)
	require.True(t, ok)
	assert.Equal(t, "done", reply.message.Content)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "hi", got.Messages[0].Content)
}

func TestRESTClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("plain") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"BAD_GATEWAY","message":"upstream down","details":"timeout"}`))
	}))
	defer server.Close()

	msg := NewRESTClient(server.URL).SendCmd([]chat.Message{{Role: chat.RoleUser, Content: "hi"}})()

	failed, ok := msg.(ChatErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, failed.err, "upstream down (timeout)")

	client := NewRESTClient(server.URL)
	req, err := http.NewRequest(http.MethodGet, server.URL+"/?plain=1", nil)
	require.NoError(t, err)

	var out chatResponse
	assert.EqualError(t, client.do(req, &out), "request failed with status 500")
}
