package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Owner identity error codes (OWNER_*)
const (
	OwnerMissing ErrorCode = "OWNER_001"
	OwnerInvalid ErrorCode = "OWNER_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotInitialized  ErrorCode = "BUDGET_001"
	BudgetInvalidIncome   ErrorCode = "BUDGET_002"
	BudgetInvalidSplit    ErrorCode = "BUDGET_003"
	BudgetUnknownCategory ErrorCode = "BUDGET_004"
)

// Holding error codes (HOLDING_*)
const (
	HoldingInvalidPurchase ErrorCode = "HOLDING_001"
)

// Forecast error codes (FORECAST_*)
const (
	ForecastInvalidSymbol       ErrorCode = "FORECAST_001"
	ForecastInsufficientHistory ErrorCode = "FORECAST_002"
	ForecastProviderUnavailable ErrorCode = "FORECAST_003"
)

// Ledger persistence error codes (LEDGER_*)
const (
	LedgerNotPersisted ErrorCode = "LEDGER_001"
	LedgerStoreOffline ErrorCode = "LEDGER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	OwnerMissing: "Owner identity is required",
	OwnerInvalid: "Owner identity is invalid",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	BudgetNotInitialized:  "Budget has not been initialized",
	BudgetInvalidIncome:   "Income must be a positive amount",
	BudgetInvalidSplit:    "Category percentages must be unique, within 0-100 and sum to 100",
	BudgetUnknownCategory: "Unknown budget category",

	HoldingInvalidPurchase: "Invalid purchase: symbol, positive unit price and a quantity of at least 1 are required",

	ForecastInvalidSymbol:       "No price data found for symbol",
	ForecastInsufficientHistory: "Not enough price history to forecast",
	ForecastProviderUnavailable: "Price data provider is unavailable",

	LedgerNotPersisted: "Change applied but not yet saved; it will be retried",
	LedgerStoreOffline: "Saved data is temporarily unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
