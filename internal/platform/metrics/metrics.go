// Package metrics publishes the service's failure counters through expvar so
// alerting does not depend on log scraping. Counters are exposed on
// GET /debug/vars.
package metrics

import (
	"expvar"
	"net/http"
)

var (
	unauthorizedCalls = expvar.NewMap("unauthorized_calls_total")
	requestErrors     = expvar.NewMap("request_errors_total")
	idExhausted       = expvar.NewInt("link_id_exhausted_total")
	visitWriteFails   = expvar.NewInt("visit_write_failures_total")
)

// UnauthorizedCall counts a rejected call per request target, to surface
// credential-guessing traffic.
func UnauthorizedCall(target string) {
	if target == "" {
		target = "unknown"
	}

	unauthorizedCalls.Add(target, 1)
}

// RequestError counts a failed call per failure kind.
func RequestError(kind string) {
	if kind == "" {
		kind = "unknown"
	}

	requestErrors.Add(kind, 1)
}

// IDExhausted counts provisioning runs that burned every generation attempt.
// Distinct from ordinary request errors: repeated hits indicate a shrinking
// id space or a uniqueness bug, not transient load.
func IDExhausted() {
	idExhausted.Add(1)
}

// VisitWriteFailure counts best-effort visit writes that were dropped.
func VisitWriteFailure() {
	visitWriteFails.Add(1)
}

func Handler() http.Handler {
	return expvar.Handler()
}
