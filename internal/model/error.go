package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"code"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidPrice       = "INVALID_PRICE"
	ErrCodeInvalidDiscount    = "INVALID_DISCOUNT"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidBookingDate = "INVALID_BOOKING_DATE"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeEmptyMessage       = "EMPTY_MESSAGE"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeAuthRequired       = "AUTHENTICATION_REQUIRED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeRequestCancelled   = "REQUEST_CANCELLED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// AsDomainError returns the DomainError in err's chain, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrMissingField       = NewDomainError(ErrCodeMissingField, "Please fill in all required fields")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Price must be a positive number")
	ErrInvalidDiscount    = NewDomainError(ErrCodeInvalidDiscount, "Discount must be between 0 and 100")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidBookingDate = NewDomainError(ErrCodeInvalidBookingDate, "Booking date must be today or later")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Your cart is empty")
	ErrEmptyMessage       = NewDomainError(ErrCodeEmptyMessage, "Message must not be empty")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrAuthRequired       = NewDomainError(ErrCodeAuthRequired, "Authentication required")
	ErrForbidden          = NewDomainError(ErrCodeForbidden, "Administrator access required")
)
