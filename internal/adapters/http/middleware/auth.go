package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/adapters/http/problems"
	"github.com/cheneysan/link-shortener/internal/platform/metrics"
)

const apiKeyHeader = "X-Api-Key"

type Verifier interface {
	Verify(ctx context.Context, apiKey string) error
}

// APIKey guards mutating routes. A missing header never reaches the store;
// an unverifiable key (store fault) keeps the gate closed. Every rejection
// is counted against the attempted target.
func APIKey(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(apiKeyHeader))

		err := verifier.Verify(c.Request.Context(), key)
		if err == nil {
			c.Next()

			return
		}

		p := problems.FromError(err)

		// The response never reveals whether the key was absent or wrong.
		if p.Status == http.StatusUnauthorized {
			metrics.UnauthorizedCall(c.Request.URL.Path)
		} else {
			metrics.RequestError(p.Type)
		}

		problems.WriteProblem(c, p)
		c.Abort()
	}
}
