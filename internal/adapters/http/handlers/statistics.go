package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/adapters/http/dto"
)

// LinkStatistics godoc
// @Summary Visit statistics for a link
// @Description Grouped visit counts by referer and user agent. A link with no
// @Description visits yields an empty array.
// @Tags links
// @Produce json
// @Param id path string true "Short id"
// @Success 200 {array} dto.CountedStatisticResponse
// @Failure 500 {object} problems.Problem
// @Router /links/{id}/statistics [get]
func (h *Handler) LinkStatistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)

		return
	}

	resp := make([]dto.CountedStatisticResponse, 0, len(stats))
	for _, stat := range stats {
		resp = append(resp, dto.FromStatistic(stat))
	}

	c.JSON(http.StatusOK, resp)
}
