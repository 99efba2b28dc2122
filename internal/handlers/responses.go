package handlers

import (
	stderrors "errors"
	"net/http"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for client and domain errors,
// SendSystemError for anything that must not leak internals, and the ledger
// helpers for entries that are held in memory awaiting persistence.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PersistenceMeta accompanies a change that was applied but not yet stored
type PersistenceMeta struct {
	Persisted bool                `json:"persisted"`
	Pending   int                 `json:"pending"`
	Warning   *errors.ErrorDetail `json:"warning,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	c.Logger().Errorf("trace_id=%s internal error: %v", traceID, internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures field by field
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationError(getTraceID(c), validation.FormatErrors(err)...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendPersistenceError reports entries that are still waiting for the store
func SendPersistenceError(c echo.Context, err error, pending int) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(errors.LedgerNotPersisted, traceID, errors.WithPendingEntries(pending))
	c.Logger().Warnf("trace_id=%s persistence pending: %v", traceID, err)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendAcceptedUnpersisted returns data for a change that was applied in memory
// while its log entry is still pending.
func SendAcceptedUnpersisted(c echo.Context, data interface{}, err error, pending int) error {
	traceID := getTraceID(c)
	warning := errors.NewErrorResponse(errors.LedgerNotPersisted, traceID, errors.WithPendingEntries(pending))
	c.Logger().Warnf("trace_id=%s persistence pending: %v", traceID, err)
	return c.JSON(http.StatusAccepted, SuccessResponse{
		Data:    data,
		Message: "Applied; storage write pending",
		Meta: PersistenceMeta{
			Persisted: false,
			Pending:   pending,
			Warning:   &warning.Error,
		},
	})
}

// sendServiceError maps service sentinel errors onto API error codes
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidOwner):
		return SendError(c, errors.OwnerInvalid)
	case stderrors.Is(err, services.ErrBudgetNotInitialized):
		return SendError(c, errors.BudgetNotInitialized)
	case stderrors.Is(err, models.ErrInvalidIncome):
		return SendError(c, errors.BudgetInvalidIncome, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidAllocation):
		return SendError(c, errors.BudgetInvalidSplit, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidPurchase):
		return SendError(c, errors.HoldingInvalidPurchase, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidSymbol):
		return SendError(c, errors.ForecastInvalidSymbol)
	case stderrors.Is(err, services.ErrInsufficientHistory):
		return SendError(c, errors.ForecastInsufficientHistory)
	case stderrors.Is(err, services.ErrPriceProviderUnavailable):
		return SendError(c, errors.ForecastProviderUnavailable)
	case stderrors.Is(err, services.ErrPersistenceUnavailable):
		return SendError(c, errors.LedgerStoreOffline)
	default:
		return SendSystemError(c, err)
	}
}
