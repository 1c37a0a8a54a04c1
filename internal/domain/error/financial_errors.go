package error

import "errors"

// Financial summary domain errors.
var (
	// ErrNotAuthorizedToViewSummary is returned when the caller may not view
	// the financial summary of the target activity.
	ErrNotAuthorizedToViewSummary = errors.New("not authorized to view financial summary")
)

// FinancialErrorCode defines error codes for financial summary errors.
type FinancialErrorCode string

const (
	// Lookup errors (02XXXX)
	ErrCodeSummaryActivityNotFound FinancialErrorCode = "FIN-020001"

	// Authorization errors (04XXXX)
	ErrCodeSummaryForbidden FinancialErrorCode = "FIN-040001"
)

// FinancialError represents a financial summary error with code and message.
type FinancialError struct {
	Code    FinancialErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinancialError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinancialError) Unwrap() error {
	return e.Err
}

// NewFinancialError creates a new FinancialError with the given code and message.
func NewFinancialError(code FinancialErrorCode, message string, err error) *FinancialError {
	return &FinancialError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
