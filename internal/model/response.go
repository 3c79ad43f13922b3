package model

// APIResponse is the envelope shared by every endpoint. Error carries a
// stable machine-readable code that clients branch on.
type APIResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Data          any      `json:"data,omitempty"`
	Error         string   `json:"error,omitempty"`
	RequiredRoles []string `json:"requiredRoles,omitempty"`
	UserRole      string   `json:"userRole,omitempty"`
}

// Stable error codes returned in APIResponse.Error.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidEmail     = "INVALID_EMAIL"
	ErrCodeInvalidPassword  = "INVALID_PASSWORD"
	ErrCodeMissingFields    = "MISSING_REQUIRED_FIELDS"
	ErrCodeEmailExists      = "EMAIL_EXISTS"
	ErrCodeInvalidOtp       = "INVALID_OTP"
	ErrCodeInvalidCreds     = "INVALID_CREDENTIALS"
	ErrCodeAccountDisabled  = "ACCOUNT_DISABLED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeAlreadyAdmin     = "ALREADY_ADMIN"
	ErrCodeCannotDeleteSelf = "CANNOT_DELETE_SELF"
	ErrCodeArticleNotFound  = "ARTICLE_NOT_FOUND"
	ErrCodeInternal         = "INTERNAL_SERVER_ERROR"
)
