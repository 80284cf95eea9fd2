package web

import (
	"time"

	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/showcase"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// server-side state of the showcase carousel at render time
type ShowcaseState struct {
	Snapshot     showcase.Snapshot
	Dwell        time.Duration
	AdvanceDelay time.Duration
}

func HomePage(site *content.Site, cfg PageConfig, state ShowcaseState) g.Node {
	return Layout(site, cfg,
		hero(site.Hero),
		advantages(site.Advantages),
		ShowcaseSection(site.Showcase, state),
		features(site.Features),
		integrations(site.Integrations),
		testimonials(site.Testimonials),
		PricingSection(site.Pricing, content.BillingMonthly),
		callToAction(site.CTA),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return g.Group([]g.Node{
		H2(g.Text(title)),
		g.If(subtitle != "", P(Class("subtitle"), g.Text(subtitle))),
	})
}

func hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		H1(g.Text(h.Title)),
		P(g.Text(h.Subtitle)),
		Div(
			Class("actions"),
			A(Class("btn btn-primary"), Href("/ai"), g.Text(h.PrimaryCTA)),
			A(Class("btn btn-ghost"), Href("#contact"), g.Text(h.SecondaryCTA)),
		),
		Img(Src(h.ImageURL), Alt(h.ImageAlt)),
	)
}

func advantages(s content.Section[content.Advantage]) g.Node {
	return Section(
		ID("advantages"),
		sectionHeading(s.Title, s.Subtitle),
		Div(Class("grid"),
			g.Map(s.Items, func(a content.Advantage) g.Node {
				return Article(
					Span(Class("icon"), Aria("hidden", "true"), g.Text(a.Icon)),
					H3(g.Text(a.Title)),
					P(g.Text(a.Description)),
				)
			}),
		),
	)
}

func features(s content.Section[content.Feature]) g.Node {
	return Section(
		ID("features"),
		sectionHeading(s.Title, s.Subtitle),
		Div(Class("grid"),
			g.Map(s.Items, func(f content.Feature) g.Node {
				return Article(
					Img(Src(f.ImageURL), Alt(f.Title)),
					H3(g.Text(f.Title)),
					P(g.Text(f.Description)),
				)
			}),
		),
	)
}

func integrations(s content.Section[content.Integration]) g.Node {
	return Section(
		ID("integrations"),
		sectionHeading(s.Title, s.Subtitle),
		Ul(Class("logos"),
			g.Map(s.Items, func(i content.Integration) g.Node {
				return Li(Img(Src(i.LogoURL), Alt(i.Name), Title(i.Name)))
			}),
		),
	)
}

func testimonials(s content.Section[content.Testimonial]) g.Node {
	return Section(
		ID("testimonials"),
		sectionHeading(s.Title, s.Subtitle),
		Div(Class("grid"),
			g.Map(s.Items, func(t content.Testimonial) g.Node {
				return Figure(
					Img(Src(t.ImageURL), Alt(t.Name)),
					BlockQuote(P(g.Text(t.Quote))),
					FigCaption(Strong(g.Text(t.Name)), Span(g.Text(t.Role))),
				)
			}),
		),
	)
}

func callToAction(c content.CTA) g.Node {
	return Section(
		ID("cta"),
		H2(g.Text(c.Title)),
		P(g.Text(c.Subtitle)),
		A(Class("btn btn-primary"), Href("/pricing"), g.Text(c.Button)),
	)
}
