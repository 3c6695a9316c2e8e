package models

// APIError is the body of every failed restaurant API response
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Machine readable error codes
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	ErrTableTaken        = "TABLE_ALREADY_RESERVED"
	ErrInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrDuplicateEmail    = "DUPLICATE_EMAIL"
	ErrInvalidRole       = "INVALID_ROLE"
)

// ErrUnsupportedGrantType is the RFC 6749 code for a grant the token endpoint does not serve
const ErrUnsupportedGrantType = "unsupported_grant_type"

func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{Error: code, ErrorDescription: description}
}
