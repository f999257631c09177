package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/domain"
)

// Intermediaries may cache the redirect for five minutes, so a repointed
// link converges within that window while repeated clicks stay off the store.
const redirectCacheControl = "public, max-age=300, s-maxage=300, stale-while-revalidate=300, stale-if-error=300"

// Redirect godoc
// @Summary Redirect by short id
// @Description Redirects to the target URL and records the visit best-effort.
// @Tags redirect
// @Param id path string true "Short id"
// @Success 307 {string} string "Temporary Redirect"
// @Header 307 {string} Location "Redirect target"
// @Header 307 {string} Cache-Control "Caching policy"
// @Failure 404 {object} problems.Problem
// @Failure 500 {object} problems.Problem
// @Router /{id} [get]
func (h *Handler) Redirect(c *gin.Context) {
	id := c.Param("id")

	visit := domain.Visit{
		Referer:   c.GetHeader("Referer"),
		UserAgent: c.GetHeader("User-Agent"),
	}

	link, err := h.svc.Resolve(c.Request.Context(), id, visit)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Header("Cache-Control", redirectCacheControl)
	c.Redirect(http.StatusTemporaryRedirect, link.TargetURL)
}
