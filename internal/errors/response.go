package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, a client-safe message and the trace ID
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts the detail of a response built by NewErrorResponse
type ErrorOption func(*ErrorDetail)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Details = details
	}
}

// WithMessage overrides the default message of the code
func WithMessage(message string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Message = message
	}
}

// WithFieldErrors renders field failures as "field: reason", ordered by field
func WithFieldErrors(fieldErrors map[string]string) ErrorOption {
	return func(d *ErrorDetail) {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		d.Details = make([]string, 0, len(fields))
		for _, field := range fields {
			d.Details = append(d.Details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
		}
	}
}

// WithPendingEntries appends how many ledger entries are still waiting for the store
func WithPendingEntries(pending int) ErrorOption {
	return func(d *ErrorDetail) {
		d.Details = append(d.Details, fmt.Sprintf("pending_entries: %d", pending))
	}
}

// NewErrorResponse builds a response for code. Options apply in order.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(&response.Error)
	}
	return response
}

// NewValidationError reports request validation failures
func NewValidationError(traceID string, details ...string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back for
// server-side logging only.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, OwnerInvalid, BudgetInvalidIncome, BudgetInvalidSplit,
		HoldingInvalidPurchase:
		return http.StatusBadRequest
	case OwnerMissing:
		return http.StatusUnauthorized
	case BudgetNotInitialized, ForecastInvalidSymbol, SystemRouteNotFound:
		return http.StatusNotFound
	case BudgetUnknownCategory, ForecastInsufficientHistory:
		return http.StatusUnprocessableEntity
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests
	case ForecastProviderUnavailable:
		return http.StatusBadGateway
	case SystemServiceUnavailable, LedgerNotPersisted, LedgerStoreOffline:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status for the response code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
