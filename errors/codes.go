package errors

// Code is a stable machine-readable error code. Codes are part of the wire
// contract; clients match on them, so they never change.
type Code string

const (
	// CodeUnauthorized indicates a protected route was reached without a
	// valid authenticated principal.
	CodeUnauthorized Code = "unauthorized"
	// CodeInvalidCredentials indicates a failed login attempt.
	CodeInvalidCredentials Code = "invalid_credentials"
	// CodeUserExists indicates a registration conflict.
	CodeUserExists Code = "user_exists"
	// CodeValidationFailed indicates missing or malformed request fields.
	CodeValidationFailed Code = "validation_failed"
	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound Code = "not_found"
	// CodeBadRequest indicates an unparseable or invalid request.
	CodeBadRequest Code = "bad_request"
	// CodeRateLimited indicates the client exceeded a request rate limit.
	CodeRateLimited Code = "rate_limited"
	// CodeInternal indicates an unexpected server-side failure.
	CodeInternal Code = "internal_error"
)
