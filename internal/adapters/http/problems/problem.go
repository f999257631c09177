package problems

import (
	"github.com/gin-gonic/gin"
)

type Problem struct {
	Type   string `json:"type" example:"malformed_url"`
	Title  string `json:"title" example:"Conflict"`
	Status int    `json:"status" example:"409"`
	Detail string `json:"detail,omitempty" example:"malformed url"`
}

func WriteProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(p.Status, p)
}
