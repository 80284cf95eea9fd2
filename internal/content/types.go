package content

import "codeberg.org/crumbs/server/internal/showcase"

// billing period for pricing plans
type Billing string

const (
	BillingMonthly Billing = "monthly"
	BillingYearly  Billing = "yearly"
)

// everything the marketing pages render
type Site struct {
	Name            string               `yaml:"name" json:"name"`
	Hero            Hero                 `yaml:"hero" json:"hero"`
	Advantages      Section[Advantage]   `yaml:"advantages" json:"advantages"`
	Showcase        Showcase             `yaml:"showcase" json:"showcase"`
	Features        Section[Feature]     `yaml:"features" json:"features"`
	Integrations    Section[Integration] `yaml:"integrations" json:"integrations"`
	Testimonials    Section[Testimonial] `yaml:"testimonials" json:"testimonials"`
	Pricing         Pricing              `yaml:"pricing" json:"pricing"`
	CTA             CTA                  `yaml:"cta" json:"cta"`
	Suggestions     []Suggestion         `yaml:"suggestions" json:"suggestions"`
	ContactSubjects []string             `yaml:"contact_subjects" json:"contact_subjects"`
}

// titled list of items
type Section[T any] struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Items    []T    `yaml:"items" json:"items"`
}

type Hero struct {
	Title        string `yaml:"title" json:"title"`
	Subtitle     string `yaml:"subtitle" json:"subtitle"`
	ImageURL     string `yaml:"image_url" json:"image_url"`
	ImageAlt     string `yaml:"image_alt" json:"image_alt"`
	PrimaryCTA   string `yaml:"primary_cta" json:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta" json:"secondary_cta"`
}

type Advantage struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Showcase struct {
	Title    string           `yaml:"title" json:"title"`
	Subtitle string           `yaml:"subtitle" json:"subtitle"`
	Slides   []showcase.Slide `yaml:"slides" json:"slides"`
}

type Feature struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	ImageURL    string `yaml:"image_url" json:"image_url"`
}

type Integration struct {
	Name    string `yaml:"name" json:"name"`
	LogoURL string `yaml:"logo_url" json:"logo_url"`
}

type Testimonial struct {
	Quote    string `yaml:"quote" json:"quote"`
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	ImageURL string `yaml:"image_url" json:"image_url"`
}

type Pricing struct {
	Title          string `yaml:"title" json:"title"`
	Subtitle       string `yaml:"subtitle" json:"subtitle"`
	YearlyDiscount string `yaml:"yearly_discount" json:"yearly_discount"`
	Plans          []Plan `yaml:"plans" json:"plans"`
}

type Plan struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	MonthlyPrice string   `yaml:"monthly_price" json:"monthly_price"`
	YearlyPrice  string   `yaml:"yearly_price" json:"yearly_price"`
	CTAText      string   `yaml:"cta_text" json:"cta_text"`
	Popular      bool     `yaml:"popular" json:"popular"`
	Features     []string `yaml:"features" json:"features"`
}

type CTA struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Button   string `yaml:"button" json:"button"`
}

// prompt chip shown on the chat page
type Suggestion struct {
	Text   string `yaml:"text" json:"text"`
	Prompt string `yaml:"prompt" json:"prompt"`
}
