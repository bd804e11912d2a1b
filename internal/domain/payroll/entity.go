package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is one finalized payroll run for one employee over one
// inclusive [FromDate, ToDate] period. At most one record may exist per
// (employee_id, from_date, to_date, company_id) tuple; the database enforces
// this with a unique index, and the application check is only a fast path.
// Records are terminal: there is no void or un-save, and later edits to the
// period's attendance or advances never touch a saved record.
type PayrollRecord struct {
	ID            string
	EmployeeID    string
	AccountID     string
	CompanyID     string
	FromDate      time.Time
	ToDate        time.Time
	Amount        decimal.Decimal
	Remarks       *string
	TransactionID string
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
