package locale

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/noah-isme/hr-disciplinary-api/pkg/i18n"
)

var supported = language.NewMatcher([]language.Tag{
	language.English,
	language.Indonesian,
})

// Middleware resolves Accept-Language against the bundled locales and stores
// the base language on the request context for message rendering.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Accept-Language"); header != "" {
			tags, _, err := language.ParseAcceptLanguage(header)
			if err == nil && len(tags) > 0 {
				_, idx, conf := supported.Match(tags...)
				if conf != language.No {
					base := []string{"en", "id"}[idx]
					c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), base))
				}
			}
		}
		c.Next()
	}
}
