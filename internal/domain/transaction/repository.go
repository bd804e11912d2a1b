package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn Transaction) (Transaction, error)
	DeleteByID(ctx context.Context, id string, companyID string) error
	// SumByCategoryInRange totals entry amounts for one category across the
	// whole company with date in [from, to] inclusive.
	SumByCategoryInRange(ctx context.Context, category string, companyID string, from, to time.Time) (decimal.Decimal, error)
	ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]Transaction, error)
}
