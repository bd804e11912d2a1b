package account

import "time"

// Account is a budget envelope/project the cash ledger settles against.
type Account struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
