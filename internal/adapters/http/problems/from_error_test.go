package problems

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheneysan/link-shortener/internal/domain"
)

func TestFromError_Taxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"malformed url", domain.ErrInvalidURL, http.StatusConflict, ProblemTypeMalformedURL},
		{"not found", domain.ErrNotFound, http.StatusNotFound, ProblemTypeNotFound},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, ProblemTypeUnauthorized},
		{"id conflict", domain.ErrIDConflict, http.StatusConflict, ProblemTypeConflict},
		{"id exhausted", domain.ErrIDExhausted, http.StatusInternalServerError, ProblemTypeIDExhausted},
		{"store timeout", domain.ErrStoreTimeout, http.StatusGatewayTimeout, ProblemTypeTimeout},
		{"context deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, ProblemTypeTimeout},
		{"canceled", context.Canceled, StatusClientClosedRequest, ProblemTypeCanceled},
		{"store failure", domain.ErrStoreFailure, http.StatusInternalServerError, ProblemTypeInternal},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ProblemTypeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := FromError(tc.err)
			require.Equal(t, tc.wantStatus, p.Status)
			require.Equal(t, tc.wantType, p.Type)
		})
	}
}

func TestFromError_WrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("links create: %w", fmt.Errorf("postgres: create link: %w", domain.ErrStoreTimeout))

	p := FromError(err)
	require.Equal(t, http.StatusGatewayTimeout, p.Status)
}

func TestFromError_NeverLeaksCause(t *testing.T) {
	err := fmt.Errorf("postgres: get link: connection refused to 10.0.0.5: %w", domain.ErrStoreFailure)

	p := FromError(err)
	require.Equal(t, DetailInternalError, p.Detail)
	require.NotContains(t, p.Detail, "10.0.0.5")
}
