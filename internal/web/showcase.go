package web

import (
	"strconv"

	"codeberg.org/crumbs/server/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// renders the carousel with the given slide active. each tab links to the
// page with that slide selected; dwell, advance delay and the active index
// are exposed to clients as data attributes.
func ShowcaseSection(sc content.Showcase, state ShowcaseState) g.Node {
	snap := state.Snapshot
	if snap.ActiveIndex < 0 || snap.ActiveIndex >= len(sc.Slides) {
		snap.ActiveIndex = 0
		snap.Progress = 0
	}

	tabs := make([]g.Node, 0, len(sc.Slides))
	for i, slide := range sc.Slides {
		active := i == snap.ActiveIndex

		tabs = append(tabs, A(
			Href("/?slide="+strconv.Itoa(i)+"#showcase"),
			Role("tab"),
			Class("slide"),
			Data("index", strconv.Itoa(i)),
			Aria("selected", strconv.FormatBool(active)),
			H3(
				g.Text(slide.Title),
				g.If(slide.HasBadge(), Span(Class("badge"), g.Text(deref(slide.Badge)))),
			),
			g.If(slide.Description != "", P(g.Text(slide.Description))),
			g.If(active, Progress(
				Max("100"),
				Value(strconv.FormatFloat(snap.Progress, 'f', 1, 64)),
			)),
		))
	}

	var image g.Node
	if len(sc.Slides) > 0 {
		activeSlide := sc.Slides[snap.ActiveIndex]
		image = Img(Class("slide-image"), Src(activeSlide.ImageURL), Alt(activeSlide.Title))
	}

	return Section(
		ID("showcase"),
		Data("dwell-ms", strconv.FormatInt(state.Dwell.Milliseconds(), 10)),
		Data("advance-delay-ms", strconv.FormatInt(state.AdvanceDelay.Milliseconds(), 10)),
		Data("active-index", strconv.Itoa(snap.ActiveIndex)),
		sectionHeading(sc.Title, sc.Subtitle),
		Div(Class("showcase"),
			Div(Role("tablist"), g.Group(tabs)),
			image,
		),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
