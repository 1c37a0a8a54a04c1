package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrClientNotFound is returned when the ordering client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidOrderQuantity is returned when the quantity is below one.
	ErrInvalidOrderQuantity = errors.New("order quantity must be at least one")

	// ErrInvalidPaymentStatus is returned when the payment status value is invalid.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrNotAuthorizedToPlaceOrder is returned when a caller orders on behalf
	// of a client record that is not their own.
	ErrNotAuthorizedToPlaceOrder = errors.New("not authorized to place order for this client")

	// ErrNotAuthorizedToModifyOrder is returned when a non-admin caller tries
	// to update or delete an order.
	ErrNotAuthorizedToModifyOrder = errors.New("not authorized to modify order")

	// ErrNotAuthorizedToReadOrders is returned when a caller requests orders
	// outside their own client or activity scope.
	ErrNotAuthorizedToReadOrders = errors.New("not authorized to read these orders")

	// ErrOrderTripleExists is returned when a write would produce a second
	// order for the same (activity, client, option) triple.
	ErrOrderTripleExists = errors.New("an order for this activity, client and option already exists")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidOrderQuantity OrderErrorCode = "ORD-010001"
	ErrCodeInvalidPaymentStatus OrderErrorCode = "ORD-010002"
	ErrCodeMissingOrderFields   OrderErrorCode = "ORD-010003"

	// Lookup errors (02XXXX)
	ErrCodeOrderNotFound       OrderErrorCode = "ORD-020001"
	ErrCodeOrderClientNotFound OrderErrorCode = "ORD-020002"

	// State errors (03XXXX)
	ErrCodeOrderTripleConflict OrderErrorCode = "ORD-030001"

	// Authorization errors (04XXXX)
	ErrCodeOrderPlaceForbidden  OrderErrorCode = "ORD-040001"
	ErrCodeOrderModifyForbidden OrderErrorCode = "ORD-040002"
	ErrCodeOrderReadForbidden   OrderErrorCode = "ORD-040003"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
