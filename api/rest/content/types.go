package content

import (
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/showcase"
)

type ShowcaseResponse struct {
	Title          string           `json:"title"`
	Subtitle       string           `json:"subtitle"`
	Slides         []showcase.Slide `json:"slides"`
	DwellMS        int64            `json:"dwell_ms"`
	AdvanceDelayMS int64            `json:"advance_delay_ms"`
}

type PricedPlan struct {
	content.Plan
	Price  string `json:"price"`
	Period string `json:"period,omitempty"`
}

type PricingResponse struct {
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	Billing        content.Billing `json:"billing"`
	YearlyDiscount string          `json:"yearly_discount,omitempty"`
	Plans          []PricedPlan    `json:"plans"`
}
