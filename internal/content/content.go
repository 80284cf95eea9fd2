package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

var (
	loadOnce sync.Once
	loaded   *Site
	loadErr  error
)

// returns the embedded site content, parsed once
func Load() (*Site, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(siteYAML)
	})

	return loaded, loadErr
}

// decodes and validates a site document
func Parse(data []byte) (*Site, error) {
	var site Site

	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to decode site content: %w", err)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	return &site, nil
}

// checks the content the pages cannot render without
func (s *Site) Validate() error {
	var problems []string

	if s.Name == "" {
		problems = append(problems, "name is required")
	}

	if len(s.Showcase.Slides) == 0 {
		problems = append(problems, "showcase needs at least one slide")
	}

	for i, slide := range s.Showcase.Slides {
		if slide.Title == "" {
			problems = append(problems, fmt.Sprintf("slide %d has no title", i))
		}
	}

	if len(s.Pricing.Plans) == 0 {
		problems = append(problems, "pricing needs at least one plan")
	}

	for i, plan := range s.Pricing.Plans {
		if plan.Title == "" {
			problems = append(problems, fmt.Sprintf("plan %d has no title", i))
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid site content: " + strings.Join(problems, "; "))
	}

	return nil
}

// parses a billing query value; anything other than "yearly" is monthly
func ParseBilling(raw string) Billing {
	if strings.EqualFold(strings.TrimSpace(raw), string(BillingYearly)) {
		return BillingYearly
	}

	return BillingMonthly
}

func (b Billing) Period() string {
	if b == BillingYearly {
		return "/year"
	}

	return "/month"
}

func (p Plan) Price(b Billing) string {
	if b == BillingYearly {
		return p.YearlyPrice
	}

	return p.MonthlyPrice
}

// reports whether the plan has a fixed price rather than "Custom"
func (p Plan) IsCustom() bool {
	return strings.EqualFold(p.MonthlyPrice, "custom")
}

// returns the suggestion whose chip text matches, case-insensitively
func (s *Site) Suggestion(text string) (Suggestion, bool) {
	for _, sg := range s.Suggestions {
		if strings.EqualFold(sg.Text, text) {
			return sg, true
		}
	}

	return Suggestion{}, false
}
