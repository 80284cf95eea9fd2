package web

import (
	"codeberg.org/crumbs/server/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PricingPage(site *content.Site, cfg PageConfig, billing content.Billing) g.Node {
	return Layout(site, cfg,
		PricingSection(site.Pricing, billing),
		callToAction(site.CTA),
	)
}

// plan cards with a monthly/yearly toggle driven by the billing query param
func PricingSection(p content.Pricing, billing content.Billing) g.Node {
	return Section(
		ID("pricing"),
		sectionHeading(p.Title, p.Subtitle),
		billingToggle(p, billing),
		Div(Class("plans"),
			g.Map(p.Plans, func(plan content.Plan) g.Node {
				return planCard(plan, billing)
			}),
		),
	)
}

func billingToggle(p content.Pricing, billing content.Billing) g.Node {
	option := func(b content.Billing, label string) g.Node {
		return A(
			Href("/pricing?billing="+string(b)),
			g.If(b == billing, Aria("current", "true")),
			g.Text(label),
		)
	}

	return Div(
		Class("billing-toggle"),
		option(content.BillingMonthly, "Monthly"),
		option(content.BillingYearly, "Yearly"),
		g.If(p.YearlyDiscount != "", Span(Class("discount"), g.Text(p.YearlyDiscount))),
	)
}

func planCard(plan content.Plan, billing content.Billing) g.Node {
	class := "plan"
	if plan.Popular {
		class += " popular"
	}

	return Article(
		Class(class),
		g.If(plan.Popular, Span(Class("badge"), g.Text("Most popular"))),
		H3(g.Text(plan.Title)),
		P(g.Text(plan.Description)),
		P(Class("price"),
			Strong(g.Text(plan.Price(billing))),
			g.If(!plan.IsCustom(), Span(Class("period"), g.Text(billing.Period()))),
		),
		A(Class("btn"), Href("#contact"), g.Text(plan.CTAText)),
		Ul(g.Map(plan.Features, func(f string) g.Node {
			return Li(g.Text(f))
		})),
	)
}
