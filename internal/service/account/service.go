package account

import (
	"context"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
)

type AccountServiceImpl struct {
	accountRepo account.AccountRepository
}

func NewAccountService(accountRepo account.AccountRepository) account.Service {
	return &AccountServiceImpl{accountRepo: accountRepo}
}

func (s *AccountServiceImpl) Create(ctx context.Context, companyID string, req account.CreateAccountRequest) (account.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return account.AccountResponse{}, err
	}

	created, err := s.accountRepo.Create(ctx, account.Account{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AccountServiceImpl) List(ctx context.Context, companyID string) ([]account.AccountResponse, error) {
	accounts, err := s.accountRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]account.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func (s *AccountServiceImpl) Get(ctx context.Context, companyID string, id string) (account.AccountResponse, error) {
	a, err := s.accountRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return mapToResponse(a), nil
}

func mapToResponse(a account.Account) account.AccountResponse {
	return account.AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	}
}
