// Package errors provides standardized error handling for the activities service.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound    ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeParticipantNotFound ErrorCode = "PARTICIPANT_NOT_FOUND"
	ErrCodeAlreadySignedUp     ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeActivityFull        ErrorCode = "ACTIVITY_FULL"
	ErrCodeEmailRequired       ErrorCode = "EMAIL_REQUIRED"
	ErrCodeSeedInvalid         ErrorCode = "SEED_INVALID"
	ErrCodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// ServiceError represents a structured application error. The Message field
// is the exact `detail` text the HTTP boundary renders.
type ServiceError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError signals that the named activity is not in the registry.
func NewActivityNotFoundError(activityName string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewParticipantNotFoundError signals that the email is not enrolled in the activity.
func NewParticipantNotFoundError(activityName, email string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeParticipantNotFound,
		Message:   "Participant not found",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError signals a duplicate signup attempt.
func NewAlreadySignedUpError(activityName, email string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeAlreadySignedUp,
		Message:   "Participant already signed up",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewActivityFullError signals that the activity reached max_participants.
func NewActivityFullError(activityName string, max int) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeActivityFull,
		Message:   "Activity is full",
		Details:   fmt.Sprintf("activity: %s, maxParticipants: %d", activityName, max),
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailRequiredError signals a missing email query parameter.
func NewEmailRequiredError() *ServiceError {
	return &ServiceError{
		Code:      ErrCodeEmailRequired,
		Message:   "Email is required",
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedInvalidError signals a seed document that failed schema validation.
func NewSeedInvalidError(details string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeSeedInvalid,
		Message:   "Seed data failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes. Both
// not-found conditions share 404 and are distinguished by detail text only.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound:    http.StatusNotFound,
	ErrCodeParticipantNotFound: http.StatusNotFound,
	ErrCodeAlreadySignedUp:     http.StatusBadRequest,
	ErrCodeActivityFull:        http.StatusBadRequest,
	ErrCodeEmailRequired:       http.StatusBadRequest,
	ErrCodeSeedInvalid:         http.StatusInternalServerError,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// HTTPStatus returns the status for a code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}
