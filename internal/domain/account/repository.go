package account

import "context"

type AccountRepository interface {
	Create(ctx context.Context, newAccount Account) (Account, error)
	// GetByID returns ErrAccountNotFound when the account does not exist or
	// belongs to another company.
	GetByID(ctx context.Context, id string, companyID string) (Account, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Account, error)
}
