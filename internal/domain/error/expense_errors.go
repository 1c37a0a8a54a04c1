package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseConceptRequired is returned when the expense concept is missing.
	ErrExpenseConceptRequired = errors.New("expense concept is required")

	// ErrInvalidExpenseAmount is returned when the expense amount is negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must not be negative")

	// ErrInvalidExpenseCategory is returned when the category is neither
	// fixed nor variable.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrNotAuthorizedToManageExpenses is returned when the caller lacks
	// permission for the expense's activity.
	ErrNotAuthorizedToManageExpenses = errors.New("not authorized to manage expenses for this activity")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseConceptRequired ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010004"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Authorization errors (04XXXX)
	ErrCodeExpenseForbidden ExpenseErrorCode = "EXP-040001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
