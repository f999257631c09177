package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheneysan/link-shortener/internal/adapters/http/dto"
)

type LinkTargetRequest struct {
	TargetURL string `json:"targetUrl" validate:"required" example:"https://example.com"`
}

// CreateLink godoc
// @Summary Create a short link
// @Description Provisions a new short id for the target URL.
// @Tags links
// @Accept json
// @Produce json
// @Param request body LinkTargetRequest true "Target URL"
// @Success 201 {object} dto.LinkResponse
// @Failure 400 {object} problems.Problem
// @Failure 401 {object} problems.Problem
// @Failure 409 {object} problems.Problem
// @Failure 500 {object} problems.Problem
// @Router /links [post]
func (h *Handler) CreateLink(c *gin.Context) {
	var req LinkTargetRequest

	if err := bindJSONStrict(c, &req); err != nil {
		badJSON(c)

		return
	}

	if !validateRequest(c, &req) {
		return
	}

	link, err := h.svc.Create(c.Request.Context(), req.TargetURL)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, dto.FromDomain(link))
}

// UpdateLink godoc
// @Summary Repoint a short link
// @Description Updates the target URL of an existing short id.
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Short id"
// @Param request body LinkTargetRequest true "Target URL"
// @Success 200 {object} dto.LinkResponse
// @Failure 400 {object} problems.Problem
// @Failure 401 {object} problems.Problem
// @Failure 404 {object} problems.Problem
// @Failure 409 {object} problems.Problem
// @Failure 500 {object} problems.Problem
// @Router /links/{id} [put]
func (h *Handler) UpdateLink(c *gin.Context) {
	id := c.Param("id")

	var req LinkTargetRequest

	if err := bindJSONStrict(c, &req); err != nil {
		badJSON(c)

		return
	}

	if !validateRequest(c, &req) {
		return
	}

	link, err := h.svc.Update(c.Request.Context(), id, req.TargetURL)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.FromDomain(link))
}
