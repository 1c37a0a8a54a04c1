// Package error defines domain-specific errors for the activity platform.
package error

import "errors"

// Activity domain errors.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityNotActive is returned when orders are placed against a
	// finished or cancelled activity.
	ErrActivityNotActive = errors.New("activity is not active")

	// ErrOptionNotFound is returned when an option does not exist or does
	// not belong to the given activity.
	ErrOptionNotFound = errors.New("option not found for activity")

	// ErrActivityTitleRequired is returned when an activity title is missing.
	ErrActivityTitleRequired = errors.New("activity title is required")

	// ErrInvalidActivityStatus is returned when the activity status value is invalid.
	ErrInvalidActivityStatus = errors.New("invalid activity status")

	// ErrOptionNameRequired is returned when an option name is missing.
	ErrOptionNameRequired = errors.New("option name is required")

	// ErrInvalidOptionPrice is returned when an option price is negative.
	ErrInvalidOptionPrice = errors.New("option price must not be negative")

	// ErrNotAuthorizedToManageActivity is returned when the caller lacks
	// permission for the target activity.
	ErrNotAuthorizedToManageActivity = errors.New("not authorized to manage activity")
)

// ActivityErrorCode defines error codes for activity errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type ActivityErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeActivityTitleRequired  ActivityErrorCode = "ACT-010001"
	ErrCodeInvalidActivityStatus  ActivityErrorCode = "ACT-010002"
	ErrCodeOptionNameRequired     ActivityErrorCode = "ACT-010003"
	ErrCodeInvalidOptionPrice     ActivityErrorCode = "ACT-010004"
	ErrCodeMissingActivityFields  ActivityErrorCode = "ACT-010005"

	// Lookup errors (02XXXX)
	ErrCodeActivityNotFound ActivityErrorCode = "ACT-020001"
	ErrCodeOptionNotFound   ActivityErrorCode = "ACT-020002"

	// State errors (03XXXX)
	ErrCodeActivityNotActive ActivityErrorCode = "ACT-030001"

	// Authorization errors (04XXXX)
	ErrCodeActivityForbidden ActivityErrorCode = "ACT-040001"
)

// ActivityError represents an activity error with code and message.
type ActivityError struct {
	Code    ActivityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActivityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActivityError) Unwrap() error {
	return e.Err
}

// NewActivityError creates a new ActivityError with the given code and message.
func NewActivityError(code ActivityErrorCode, message string, err error) *ActivityError {
	return &ActivityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
