package advance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	Create(ctx context.Context, newAdvance Advance) (Advance, error)
	GetByID(ctx context.Context, id string, companyID string) (Advance, error)
	DeleteByID(ctx context.Context, id string, companyID string) error
	// SumInRange totals the employee's advance amounts with date in [from, to]
	// inclusive.
	SumInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) (decimal.Decimal, error)
	ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]Advance, error)
}
