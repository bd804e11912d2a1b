package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one cash ledger entry. The ledger is an append-only log
// shared with flows outside this service (manual entry, imports); payroll and
// advances only read from it and append to it.
type Transaction struct {
	ID          string
	CompanyID   string
	AccountID   string
	Amount      decimal.Decimal
	Category    string
	Type        Type
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

type Type string

const (
	TypeCashIn  Type = "Cash-In"
	TypeCashOut Type = "Cash-Out"
)

// Well-known categories written by the payroll and advance flows. Other
// categories are free-form and owned by manual entry.
const (
	CategorySalary        = "Salary"
	CategorySalaryAdvance = "Salary Advance"
)
