package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a cash payment made to an employee ahead of payroll settlement.
// Every advance carries the ID of its mirrored "Salary Advance" ledger entry;
// the two rows are written and removed together, never independently.
type Advance struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	AccountID     string
	Amount        decimal.Decimal
	Reason        string
	Date          time.Time
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
