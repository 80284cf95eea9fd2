package content

import (
	"net/http"
	"time"

	"codeberg.org/crumbs/server/internal/content"
	"github.com/gin-gonic/gin"
)

// returns the full site content
func GetContentHandler(site *content.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, site)
	}
}

// returns the showcase slides with the carousel timing
func GetShowcaseHandler(site *content.Site, dwell, advanceDelay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ShowcaseResponse{
			Title:          site.Showcase.Title,
			Subtitle:       site.Showcase.Subtitle,
			Slides:         site.Showcase.Slides,
			DwellMS:        dwell.Milliseconds(),
			AdvanceDelayMS: advanceDelay.Milliseconds(),
		})
	}
}

// returns the plans priced for ?billing=monthly|yearly
func GetPricingHandler(site *content.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		billing := content.ParseBilling(c.Query("billing"))

		plans := make([]PricedPlan, 0, len(site.Pricing.Plans))
		for _, p := range site.Pricing.Plans {
			priced := PricedPlan{Plan: p, Price: p.Price(billing)}
			if !p.IsCustom() {
				priced.Period = billing.Period()
			}

			plans = append(plans, priced)
		}

		c.JSON(http.StatusOK, PricingResponse{
			Title:          site.Pricing.Title,
			Subtitle:       site.Pricing.Subtitle,
			Billing:        billing,
			YearlyDiscount: site.Pricing.YearlyDiscount,
			Plans:          plans,
		})
	}
}
