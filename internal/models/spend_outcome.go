package models

// SpendOutcome is the result of a spend request against a budget category
type SpendOutcome string

const (
	SpendOutcomePaid              SpendOutcome = "paid"
	SpendOutcomeInsufficientFunds SpendOutcome = "insufficient_funds"
	SpendOutcomeInvalidAmount     SpendOutcome = "invalid_amount"
	SpendOutcomeUnknownCategory   SpendOutcome = "unknown_category"
)

// IsPaid reports whether the spend was applied
func (o SpendOutcome) IsPaid() bool {
	return o == SpendOutcomePaid
}

// SpendResult bundles the outcome, the snapshot after the call and the
// transaction recorded for a successful payment.
type SpendResult struct {
	Outcome     SpendOutcome   `json:"outcome"`
	Snapshot    BudgetSnapshot `json:"budget"`
	Transaction *Transaction   `json:"transaction,omitempty"`
}
