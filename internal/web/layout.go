package web

import (
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/theme"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// per-request data shared by every page
type PageConfig struct {
	Title    string
	Path     string // used for the active nav link and the theme toggle redirect
	Theme    theme.Theme
	Toast    string
	ToastErr bool
}

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/pricing", "Pricing"},
	{"/ai", "AI"},
}

// wraps page sections in the document shell. the theme class goes on <html>.
func Layout(site *content.Site, cfg PageConfig, children ...g.Node) g.Node {
	title := site.Name
	if cfg.Title != "" {
		title = cfg.Title + " | " + site.Name
	}

	return Doctype(
		HTML(
			Lang("en"),
			g.If(cfg.Theme.Class() != "", Class(cfg.Theme.Class())),
			Data("theme", cfg.Theme.String()),

			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
			),

			Body(
				pageHeader(site, cfg),
				g.If(cfg.Toast != "", toast(cfg.Toast, cfg.ToastErr)),
				Main(children...),
				pageFooter(site, cfg),
			),
		),
	)
}

func pageHeader(site *content.Site, cfg PageConfig) g.Node {
	links := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		links = append(links, A(
			Href(l.href),
			g.If(l.href == cfg.Path, Aria("current", "page")),
			g.Text(l.label),
		))
	}

	return Header(
		Class("site-header"),
		A(Class("logo"), Href("/"), g.Text(site.Name)),
		Nav(links...),
		themeToggle(cfg),
	)
}

// plain form post so the toggle works without scripts
func themeToggle(cfg PageConfig) g.Node {
	next := cfg.Theme.Next()

	return Form(
		Class("theme-toggle"),
		Method("post"),
		Action("/theme/next"),
		Input(Type("hidden"), Name("redirect"), Value(cfg.Path)),
		Button(
			Type("submit"),
			Aria("label", "Switch to "+next.String()+" theme"),
			g.Text(next.String()),
		),
	)
}

func toast(message string, isErr bool) g.Node {
	kind := "success"
	if isErr {
		kind = "error"
	}

	return Div(
		Class("toast toast-"+kind),
		Role("status"),
		g.Text(message),
	)
}

func pageFooter(site *content.Site, cfg PageConfig) g.Node {
	return Footer(
		Class("site-footer"),
		contactForm(site, cfg.Path),
		P(g.Textf("© %s", site.Name)),
	)
}

func contactForm(site *content.Site, redirect string) g.Node {
	options := make([]g.Node, 0, len(site.ContactSubjects))
	for _, s := range site.ContactSubjects {
		options = append(options, Option(Value(s), g.Text(s)))
	}

	return Form(
		ID("contact"),
		Method("post"),
		Action("/contact"),
		H2(g.Text("Contact Us")),
		Input(Type("hidden"), Name("redirect"), Value(redirect)),
		Label(For("contact-first-name"), g.Text("First name")),
		Input(ID("contact-first-name"), Name("first_name"), Type("text"), Required()),
		Label(For("contact-last-name"), g.Text("Last name")),
		Input(ID("contact-last-name"), Name("last_name"), Type("text")),
		Label(For("contact-email"), g.Text("Email")),
		Input(ID("contact-email"), Name("email"), Type("email"), Required()),
		Label(For("contact-phone"), g.Text("Phone number")),
		Input(ID("contact-phone"), Name("phone_number"), Type("tel")),
		Label(For("contact-subject"), g.Text("Subject")),
		Select(ID("contact-subject"), Name("subject"), g.Group(options)),
		Label(For("contact-message"), g.Text("Message")),
		Textarea(ID("contact-message"), Name("message"), Rows("4"), Required()),
		Button(Type("submit"), g.Text("Send Message")),
	)
}
