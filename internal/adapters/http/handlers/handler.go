package handlers

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/adapters/http/problems"
	"github.com/cheneysan/link-shortener/internal/app/links"
	"github.com/cheneysan/link-shortener/internal/platform/metrics"
)

type Handler struct {
	svc links.UseCase
}

func New(svc links.UseCase) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) fail(c *gin.Context, err error) {
	p := problems.FromError(err)

	metrics.RequestError(p.Type)

	if p.Status >= http.StatusInternalServerError {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	problems.WriteProblem(c, p)
}

func (h *Handler) NotFound(c *gin.Context) {
	problems.WriteProblem(c, problems.Problem{
		Type:   problems.ProblemTypeNotFound,
		Title:  problems.TitleNotFound,
		Status: http.StatusNotFound,
		Detail: problems.DetailNotFound,
	})
}
