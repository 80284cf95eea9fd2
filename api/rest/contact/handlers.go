package contact

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/errors"
	"codeberg.org/crumbs/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	SuccessMessage = "Message sent successfully!"

	// toast codes appended to the redirect for form posts
	ToastSent   = "sent"
	ToastFailed = "contact_failed"
)

// accepts a contact message. JSON callers get a JSON answer, browser form
// posts are redirected back to the page they came from with a toast code.
func SubmitHandler(site *content.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		isForm := c.ContentType() != gin.MIMEJSON

		var req Request
		err := c.ShouldBind(&req)
		if err == nil {
			err = validateSubject(site, req.Subject)
		}

		if err != nil {
			if isForm {
				c.Redirect(http.StatusSeeOther, withToast(req.Redirect, ToastFailed))
				return
			}

			errors.ValidationError(c, err)
			return
		}

		logger.Info("contact message received",
			"subject", req.Subject,
			"email_domain", emailDomain(req.Email),
			"message_length", len(req.Message),
		)

		if isForm {
			c.Redirect(http.StatusSeeOther, withToast(req.Redirect, ToastSent))
			return
		}

		c.JSON(http.StatusOK, Response{Message: SuccessMessage})
	}
}

func validateSubject(site *content.Site, subject string) error {
	if !slices.Contains(site.ContactSubjects, subject) {
		return fmt.Errorf("invalid subject %q", subject)
	}

	return nil
}

// only same-site paths are allowed as redirect targets
func withToast(redirect, code string) string {
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = "/"
	}

	u, err := url.Parse(redirect)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	q := u.Query()
	q.Set("toast", code)
	u.RawQuery = q.Encode()

	return u.String()
}

func emailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}

	return domain
}
