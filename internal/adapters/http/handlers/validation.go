package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cheneysan/link-shortener/internal/adapters/http/problems"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateRequest rejects structurally invalid payloads (missing fields)
// before the domain sees them. URL semantics stay with the domain.
func validateRequest(c *gin.Context, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		problems.WriteProblem(c, problems.Problem{
			Type:   problems.ProblemTypeValidation,
			Title:  problems.TitleValidation,
			Status: http.StatusBadRequest,
		})

		return false
	}

	problems.WriteProblem(c, problems.Problem{
		Type:   problems.ProblemTypeValidation,
		Title:  problems.TitleValidation,
		Status: http.StatusBadRequest,
		Detail: "invalid field: " + verrs[0].Field(),
	})

	return false
}
