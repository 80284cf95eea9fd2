package theme

import (
	"net/http"

	"codeberg.org/crumbs/server/internal/errors"
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/gin-gonic/gin"
)

func newResponse(t theme.Theme) Response {
	all := theme.All()
	names := make([]string, len(all))
	for i, th := range all {
		names[i] = th.String()
	}

	return Response{
		Theme:  t.String(),
		Class:  t.Class(),
		Dark:   t.IsDark(),
		Themes: names,
	}
}

// returns the theme stored in the preference cookie
func GetThemeHandler(store *theme.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, newResponse(store.Get(c.Request)))
	}
}

// stores an explicit theme choice
func UpdateThemeHandler(store *theme.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		t, err := theme.Parse(req.Theme)
		if err != nil {
			errors.BadRequest(c, "unknown theme", err)
			return
		}

		if err := store.Set(c.Writer, c.Request, t); err != nil {
			errors.InternalError(c, "failed to save theme", err)
			return
		}

		c.JSON(http.StatusOK, newResponse(t))
	}
}

// advances to the next theme in toggle order
func NextThemeHandler(store *theme.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := store.Get(c.Request).Next()

		if err := store.Set(c.Writer, c.Request, next); err != nil {
			errors.InternalError(c, "failed to save theme", err)
			return
		}

		c.JSON(http.StatusOK, newResponse(next))
	}
}
