package payroll

import (
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PreviewRequest struct {
	From string
	To   string
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.ParseDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, okTo := validator.ParseDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must not be after 'to'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewRow is one employee's computed payroll line for a period.
type PreviewRow struct {
	EmployeeID   string                          `json:"employee_id"`
	EmployeeName string                          `json:"employee_name"`
	BaseSalary   decimal.Decimal                 `json:"base_salary"`
	GrossSalary  decimal.Decimal                 `json:"gross_salary"`
	Attendance   []attendance.AttendanceResponse `json:"attendance"`
	DaysWorked   decimal.Decimal                 `json:"days_worked"`
	OTHours      int                             `json:"ot_hours"`
	TotalAdvance decimal.Decimal                 `json:"total_advance"`
	// TotalSalaryPaid sums "Salary" ledger entries company-wide in the period,
	// not per employee. Scoping it per employee is an open product question;
	// until that is answered the observed behavior stands.
	TotalSalaryPaid decimal.Decimal `json:"total_salary_paid"`
	NetBalance      decimal.Decimal `json:"net_balance"`
}

type CommitPayrollRequest struct {
	EmployeeID string          `json:"employee_id"`
	AccountID  string          `json:"account_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Amount     decimal.Decimal `json:"amount"`
	Remarks    *string         `json:"remarks,omitempty"`
}

func (r *CommitPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AccountID) {
		errs = append(errs, validator.ValidationError{Field: "account_id", Message: "is required"})
	}
	from, okFrom := validator.ParseDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, okTo := validator.ParseDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must not be after 'to'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchCommitRequest struct {
	Commits []CommitPayrollRequest `json:"commits"`
}

func (r *BatchCommitRequest) Validate() error {
	if len(r.Commits) == 0 {
		return validator.ValidationErrors{
			{Field: "commits", Message: "must not be empty"},
		}
	}
	return nil
}

// BatchCommitResponse reports every per-employee outcome explicitly.
type BatchCommitResponse struct {
	Succeeded []PayrollRecordResponse `json:"succeeded"`
	Failed    []BatchFailure          `json:"failed"`
}

type PayrollRecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	AccountID     string          `json:"account_id"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       *string         `json:"remarks,omitempty"`
	TransactionID string          `json:"transaction_id"`
}
