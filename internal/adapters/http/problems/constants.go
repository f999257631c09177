package problems

const (
	ContentTypeProblemJSON = "application/problem+json"

	// Non-standard nginx convention for "client closed request".
	StatusClientClosedRequest = 499

	ProblemTypeValidation    = "validation_error"
	ProblemTypeInvalidJSON   = "invalid_json"
	ProblemTypeMalformedURL  = "malformed_url"
	ProblemTypeNotFound      = "about:blank"
	ProblemTypeConflict      = "conflict"
	ProblemTypeUnauthorized  = "unauthorized"
	ProblemTypeIDExhausted   = "id_space_exhausted"
	ProblemTypeTimeout       = "timeout"
	ProblemTypeCanceled      = "client_cancelled"
	ProblemTypeInternal      = "internal_error"

	TitleBadRequest     = "Bad Request"
	TitleValidation     = "Validation error"
	TitleConflict       = "Conflict"
	TitleUnauthorized   = "Unauthorized"
	TitleNotFound       = "Not Found"
	TitleGatewayTimeout = "Gateway Timeout"
	TitleRequestCancel  = "Client Closed Request"
	TitleInternalError  = "Internal Server Error"

	DetailMalformedURL    = "malformed url"
	DetailInvalidJSON     = "invalid json"
	DetailUnauthorized    = "unauthorized"
	DetailNotFound        = "not found"
	DetailConflict        = "short id already exists"
	DetailTimeout         = "timeout"
	DetailRequestCanceled = "request canceled"
	DetailInternalError   = "internal error"
)
