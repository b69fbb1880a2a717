package apperrors

// Error codes grouped by domain
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountFraud       ErrorCode = "ACCOUNT_FRAUD"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Accounts
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeCompanyNotFound    ErrorCode = "COMPANY_NOT_FOUND"
	CodeRepNotFound        ErrorCode = "REP_NOT_FOUND"
	CodeAdminNotFound      ErrorCode = "ADMIN_NOT_FOUND"

	// Gigs
	CodeGigNotFound        ErrorCode = "GIG_NOT_FOUND"
	CodeGigNotActive       ErrorCode = "GIG_NOT_ACTIVE"
	CodeGigAlreadyAssigned ErrorCode = "GIG_ALREADY_ASSIGNED"

	// Applications
	CodeApplicationExists   ErrorCode = "APPLICATION_EXISTS"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeApplicationDecided  ErrorCode = "APPLICATION_DECIDED"
	CodeInvalidAppStatus    ErrorCode = "INVALID_APPLICATION_STATUS"

	// Reports
	CodeNoAcceptedApplication ErrorCode = "NO_ACCEPTED_APPLICATION"

	// Generic
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
