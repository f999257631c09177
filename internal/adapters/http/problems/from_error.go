package problems

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/cheneysan/link-shortener/internal/domain"
)

// FromError maps the domain error taxonomy onto problem responses. Store
// causes never leak into response bodies; the generic detail is all a caller
// sees of an infrastructure fault.
func FromError(err error) Problem {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		// The original API contract reports a malformed target URL as a
		// conflict rather than a bad request; clients depend on the 409.
		return Problem{
			Type:   ProblemTypeMalformedURL,
			Title:  TitleConflict,
			Status: http.StatusConflict,
			Detail: DetailMalformedURL,
		}
	case errors.Is(err, domain.ErrNotFound):
		return Problem{
			Type:   ProblemTypeNotFound,
			Title:  TitleNotFound,
			Status: http.StatusNotFound,
			Detail: DetailNotFound,
		}
	case errors.Is(err, domain.ErrUnauthenticated):
		return Problem{
			Type:   ProblemTypeUnauthorized,
			Title:  TitleUnauthorized,
			Status: http.StatusUnauthorized,
			Detail: DetailUnauthorized,
		}
	case errors.Is(err, domain.ErrIDConflict):
		return Problem{
			Type:   ProblemTypeConflict,
			Title:  TitleConflict,
			Status: http.StatusConflict,
			Detail: DetailConflict,
		}
	case errors.Is(err, domain.ErrIDExhausted):
		return Problem{
			Type:   ProblemTypeIDExhausted,
			Title:  TitleInternalError,
			Status: http.StatusInternalServerError,
			Detail: DetailInternalError,
		}
	case isTimeout(err):
		return Problem{
			Type:   ProblemTypeTimeout,
			Title:  TitleGatewayTimeout,
			Status: http.StatusGatewayTimeout,
			Detail: DetailTimeout,
		}
	case isCanceled(err):
		return Problem{
			Type:   ProblemTypeCanceled,
			Title:  TitleRequestCancel,
			Status: StatusClientClosedRequest,
			Detail: DetailRequestCanceled,
		}
	default:
		return Problem{
			Type:   ProblemTypeInternal,
			Title:  TitleInternalError,
			Status: http.StatusInternalServerError,
			Detail: DetailInternalError,
		}
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domain.ErrStoreTimeout) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if errors.Is(err, http.ErrHandlerTimeout) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func isCanceled(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, context.Canceled)
}
