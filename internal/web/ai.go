package web

import (
	"net/url"

	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// form field names carrying the conversation between requests
const (
	FieldRole    = "role"
	FieldContent = "content"
	FieldMessage = "message"
)

type ChatState struct {
	Messages []chat.Message
	Draft    string
	KeyErr   error // set when the completion key is not usable
}

func ChatPage(site *content.Site, cfg PageConfig, state ChatState) g.Node {
	return Layout(site, cfg,
		Section(
			ID("chat"),
			g.If(state.KeyErr != nil, P(Class("notice"), Role("alert"), g.Text(errText(state.KeyErr)))),
			g.If(len(state.Messages) == 0, chatIntro(site.Suggestions)),
			Ol(Class("messages"),
				g.Map(state.Messages, chatMessage),
			),
			chatForm(state),
		),
	)
}

func chatIntro(suggestions []content.Suggestion) g.Node {
	return Div(
		Class("intro"),
		H1(g.Text("What can I help you build?")),
		Ul(Class("suggestions"),
			g.Map(suggestions, func(s content.Suggestion) g.Node {
				return Li(A(
					Class("chip"),
					Href("/ai?prompt="+url.QueryEscape(s.Prompt)),
					g.Text(s.Text),
				))
			}),
		),
	)
}

func chatMessage(m chat.Message) g.Node {
	return Li(
		Class("message message-"+string(m.Role)),
		Data("role", string(m.Role)),
		Pre(g.Text(m.Content)),
	)
}

func chatForm(state ChatState) g.Node {
	history := make([]g.Node, 0, len(state.Messages)*2)
	for _, m := range state.Messages {
		history = append(history,
			Input(Type("hidden"), Name(FieldRole), Value(string(m.Role))),
			Input(Type("hidden"), Name(FieldContent), Value(m.Content)),
		)
	}

	return Form(
		Method("post"),
		Action("/ai"),
		g.Group(history),
		Textarea(
			Name(FieldMessage),
			Rows("3"),
			Placeholder("Ask Frontend AI to build something..."),
			g.Text(state.Draft),
		),
		Button(Type("submit"), g.Text("Send")),
	)
}

func errText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
