package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/pkg/i18n"
)

func TestMiddlewareSelectsLocale(t *testing.T) {
	cat, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = cat.T(c.Request.Context(), "event.case.closed", map[string]any{"Actor": "hr"})
	})

	cases := map[string]string{
		"id-ID,id;q=0.9": "hr menutup kasus",
		"en-GB":          "hr closed the case",
		"":               "hr closed the case",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, want, got, header)
	}
}
