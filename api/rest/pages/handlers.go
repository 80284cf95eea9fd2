package pages

import (
	"net/http"
	"strconv"
	"strings"

	"codeberg.org/crumbs/server/api/rest/contact"
	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/logger"
	"codeberg.org/crumbs/server/internal/showcase"
	"codeberg.org/crumbs/server/internal/web"
	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

func render(c *gin.Context, status int, node g.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")

	if err := node.Render(c.Writer); err != nil {
		logger.ErrorErr(err, "failed to render page", "path", c.Request.URL.Path)
	}
}

func pageConfig(c *gin.Context, deps Deps, title string) web.PageConfig {
	cfg := web.PageConfig{
		Title: title,
		Path:  c.Request.URL.Path,
		Theme: deps.Themes.Get(c.Request),
	}

	switch c.Query("toast") {
	case contact.ToastSent:
		cfg.Toast = contact.SuccessMessage
	case contact.ToastFailed:
		cfg.Toast = contactFailedMessage
		cfg.ToastErr = true
	}

	return cfg
}

// renders the carousel state for ?slide=N by running the controller on a
// virtual clock: mount starts at the first slide, select jumps to N.
func showcaseState(deps Deps, slideParam string) web.ShowcaseState {
	state := web.ShowcaseState{Dwell: deps.Dwell, AdvanceDelay: deps.AdvanceDelay}

	clock := showcase.NewVirtualClock()
	ctrl, err := showcase.New(deps.Site.Showcase.Slides, clock,
		showcase.WithDwell(deps.Dwell),
		showcase.WithAdvanceDelay(deps.AdvanceDelay),
	)
	if err != nil {
		return state
	}

	ctrl.Mount()
	defer ctrl.Unmount()

	if idx, err := strconv.Atoi(slideParam); err == nil {
		ctrl.Select(idx)
	}

	state.Snapshot = ctrl.Snapshot()
	return state
}

func HomeHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := pageConfig(c, deps, "")
		render(c, http.StatusOK, web.HomePage(deps.Site, cfg, showcaseState(deps, c.Query("slide"))))
	}
}

func PricingHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := pageConfig(c, deps, "Pricing")
		render(c, http.StatusOK, web.PricingPage(deps.Site, cfg, content.ParseBilling(c.Query("billing"))))
	}
}

// renders an empty conversation; ?prompt= pre-fills the input from a chip
func ChatPageHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := pageConfig(c, deps, "AI")
		render(c, http.StatusOK, web.ChatPage(deps.Site, cfg, web.ChatState{
			Draft:  c.Query("prompt"),
			KeyErr: deps.Chat.Validate(),
		}))
	}
}

// handles the chat form: the history travels in hidden fields, the new
// turn in the message field
func ChatSubmitHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := pageConfig(c, deps, "AI")
		conv := chat.NewConversation(historyFromForm(c)...)
		text := c.PostForm(web.FieldMessage)

		state := web.ChatState{Messages: conv.Messages(), Draft: text}

		if err := deps.Chat.Validate(); err != nil {
			cfg.Toast, cfg.ToastErr = err.Error(), true
			state.KeyErr = err
			render(c, http.StatusOK, web.ChatPage(deps.Site, cfg, state))
			return
		}

		if _, err := conv.AddUser(text, nil); err != nil {
			render(c, http.StatusOK, web.ChatPage(deps.Site, cfg, state))
			return
		}

		if _, err := conv.Reply(c.Request.Context(), deps.Chat); err != nil {
			logger.ErrorErr(err, "chat reply failed", "history_length", conv.Len())
			cfg.Toast, cfg.ToastErr = err.Error(), true
		}

		state.Messages = conv.Messages()
		state.Draft = ""
		render(c, http.StatusOK, web.ChatPage(deps.Site, cfg, state))
	}
}

func historyFromForm(c *gin.Context) []chat.Message {
	roles := c.PostFormArray(web.FieldRole)
	contents := c.PostFormArray(web.FieldContent)

	n := min(len(roles), len(contents))
	history := make([]chat.Message, 0, n)
	for i := 0; i < n; i++ {
		role := chat.Role(roles[i])
		if !role.Valid() {
			continue
		}

		history = append(history, chat.Message{Role: role, Content: contents[i]})
	}

	return history
}

// cycles the theme cookie and returns to the page the toggle was on
func NextThemeHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := deps.Themes.Get(c.Request).Next()
		if err := deps.Themes.Set(c.Writer, c.Request, next); err != nil {
			logger.ErrorErr(err, "failed to save theme")
		}

		redirect := c.PostForm("redirect")
		if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
			redirect = "/"
		}

		c.Redirect(http.StatusSeeOther, redirect)
	}
}
