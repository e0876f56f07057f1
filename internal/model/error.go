package model

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeLineNotFound      = "LINE_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeSizeNotFound      = "SIZE_NOT_FOUND"
	ErrCodeFeeNotConfigured  = "DELIVERY_FEE_NOT_CONFIGURED"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodeHandoffFailed     = "HANDOFF_FAILED"
	ErrCodeInvalidCredential = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
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

// Common domain errors
var (
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty; add products before checking out")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be a positive integer")
	ErrLineNotFound       = NewDomainError(ErrCodeLineNotFound, "Cart line index is out of range")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found in catalogue")
	ErrSizeNotFound       = NewDomainError(ErrCodeSizeNotFound, "Size variant not found for product")
	ErrFeeNotConfigured   = NewDomainError(ErrCodeFeeNotConfigured, "No delivery fee configured for this neighborhood")
	ErrCustomerNotFound   = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrHandoffFailed      = NewDomainError(ErrCodeHandoffFailed, "Could not prepare the WhatsApp hand-off; please try again")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredential, "Invalid admin password")
)

// ValidationErrors maps field names to messages so the form UI can surface
// each failure inline. Fields fail independently of one another.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(fields, ", "))
}
