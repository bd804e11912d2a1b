package account

import "context"

type Service interface {
	Create(ctx context.Context, companyID string, req CreateAccountRequest) (AccountResponse, error)
	List(ctx context.Context, companyID string) ([]AccountResponse, error)
	Get(ctx context.Context, companyID string, id string) (AccountResponse, error)
}
