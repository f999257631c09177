package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/adapters/http/handlers"
	"github.com/cheneysan/link-shortener/internal/adapters/http/middleware"
	"github.com/cheneysan/link-shortener/internal/app/links"
	"github.com/cheneysan/link-shortener/internal/platform/metrics"
)

const (
	linksPath          = "/links"
	linkByIDPath       = "/links/:id"
	linkStatisticsPath = "/links/:id/statistics"
	redirectPath       = "/:id"
)

type RouterDeps struct {
	Links links.UseCase
	Auth  middleware.Verifier
}

type EnginePlugin func(*gin.Engine)

// NewEngine creates a bare gin.Engine and applies plugins in order.
func NewEngine(plugins ...EnginePlugin) *gin.Engine {
	r := gin.New()

	for _, p := range plugins {
		p(r)
	}

	return r
}

// RegisterRoutes attaches routes/handlers to an existing engine. Only the
// mutating routes sit behind the API-key gate; statistics are public.
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	h := handlers.New(deps.Links)
	guarded := middleware.APIKey(deps.Auth)

	r.NoRoute(h.NotFound)
	r.GET("/health", h.Health)
	r.GET("/debug/vars", gin.WrapH(metrics.Handler()))

	r.POST(linksPath, guarded, h.CreateLink)
	r.PUT(linkByIDPath, guarded, h.UpdateLink)
	r.GET(linkStatisticsPath, h.LinkStatistics)

	r.GET(redirectPath, h.Redirect)
}
