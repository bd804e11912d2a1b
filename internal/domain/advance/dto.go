package advance

import (
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordAdvanceRequest struct {
	EmployeeID string          `json:"employee_id"`
	AccountID  string          `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Date       string          `json:"date"` // "YYYY-MM-DD"
}

func (r *RecordAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AccountID) {
		errs = append(errs, validator.ValidationError{Field: "account_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReconcileAdvanceRequest struct {
	ID string `json:"-"`
	RecordAdvanceRequest
}

type AdvanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason,omitempty"`
	Date          string          `json:"date"`
	TransactionID string          `json:"transaction_id"`
}
