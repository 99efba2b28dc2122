package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultMessage() {
	response := NewErrorResponse(OwnerMissing, s.traceID)

	s.Equal("OWNER_001", response.Error.Code)
	s.Equal("Owner identity is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_OptionsApplyInOrder() {
	response := NewErrorResponse(BudgetNotInitialized, s.traceID,
		WithMessage("first"),
		WithDetails("a", "b"),
		WithMessage("second"),
		WithDetails("c"),
	)

	s.Equal("BUDGET_001", response.Error.Code)
	s.Equal("second", response.Error.Message)
	s.Equal([]string{"c"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithFieldErrors_SortedByField() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithFieldErrors(map[string]string{
		"income":     "must be greater than 0",
		"categories": "must contain at least 1 item",
		"category":   "is required",
	}))

	s.Equal([]string{
		"categories: must contain at least 1 item",
		"category: is required",
		"income: must be greater than 0",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithFieldErrors_Empty() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithFieldErrors(nil))
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(s.traceID, "symbol: failed stock_symbol", "amount: failed required")

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal([]string{"symbol: failed stock_symbol", "amount: failed required"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWithPendingEntries_AppendsAfterDetails() {
	notPersisted := NewErrorResponse(LedgerNotPersisted, s.traceID, WithPendingEntries(3))
	s.Equal([]string{"pending_entries: 3"}, notPersisted.Error.Details)
	s.Equal(http.StatusServiceUnavailable, notPersisted.GetHTTPStatus())

	flushFailed := NewErrorResponse(LedgerNotPersisted, s.traceID,
		WithDetails("log: transactions"),
		WithPendingEntries(1),
	)
	s.Equal([]string{"log: transactions", "pending_entries: 1"}, flushFailed.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	internalErr := errors.New("SQL error: relation \"budget_entries\" does not exist")

	response, returned := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "budget_entries")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, returned)
}

func (s *ResponseTestSuite) TestJSONShape() {
	withDetails, err := json.Marshal(NewErrorResponse(ForecastInvalidSymbol, s.traceID, WithDetails("symbol: ZZZZ")))
	s.Require().NoError(err)
	s.JSONEq(`{"error":{"code":"FORECAST_001","message":"No price data found for symbol","details":["symbol: ZZZZ"],"trace_id":"`+s.traceID+`"}}`, string(withDetails))

	bare, err := json.Marshal(NewErrorResponse(OwnerMissing, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(bare), "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{OwnerInvalid, http.StatusBadRequest},
		{BudgetInvalidIncome, http.StatusBadRequest},
		{BudgetInvalidSplit, http.StatusBadRequest},
		{HoldingInvalidPurchase, http.StatusBadRequest},
		{OwnerMissing, http.StatusUnauthorized},
		{BudgetNotInitialized, http.StatusNotFound},
		{ForecastInvalidSymbol, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{BudgetUnknownCategory, http.StatusUnprocessableEntity},
		{ForecastInsufficientHistory, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{ForecastProviderUnavailable, http.StatusBadGateway},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{LedgerNotPersisted, http.StatusServiceUnavailable},
		{LedgerStoreOffline, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
			s.Equal(tc.status, NewErrorResponse(tc.code, s.traceID).GetHTTPStatus())
		})
	}
}
