package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode tags an AppError with a machine-readable code.
type ErrorCode string

// AppError is the single error type every service returns. Handlers map
// HTTPCode straight to the response status.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountFraud       = New(CodeAccountFraud, "Account is flagged as fraudulent", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)

	// Accounts
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrCompanyNotFound    = New(CodeCompanyNotFound, "Company not found", http.StatusNotFound)
	ErrRepNotFound        = New(CodeRepNotFound, "Rep not found", http.StatusNotFound)
	ErrAdminNotFound      = New(CodeAdminNotFound, "Admin not found", http.StatusNotFound)

	// Gigs
	ErrGigNotFound        = New(CodeGigNotFound, "Gig not found", http.StatusNotFound)
	ErrGigNotActive       = New(CodeGigNotActive, "Gig is not active", http.StatusBadRequest)
	ErrGigAlreadyAssigned = New(CodeGigAlreadyAssigned, "Gig already has an accepted application", http.StatusConflict)

	// Applications
	ErrApplicationExists   = New(CodeApplicationExists, "Application already exists for this rep and gig", http.StatusConflict)
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationDecided  = New(CodeApplicationDecided, "Application has already been decided", http.StatusConflict)
	ErrInvalidAppStatus    = New(CodeInvalidAppStatus, "Invalid application status", http.StatusBadRequest)

	// Reports
	ErrNoAcceptedApplication = New(CodeNoAcceptedApplication, "Rep has no accepted application for this gig", http.StatusForbidden)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Helpers for errors with details

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
