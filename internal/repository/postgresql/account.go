package postgresql

import (
	"context"
	"fmt"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (id, company_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, name, description, created_at, updated_at
	`

	var a account.Account
	err := q.QueryRow(ctx, query,
		uuid.New().String(), newAccount.CompanyID, newAccount.Name, newAccount.Description,
	).Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return a, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string, companyID string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND company_id = $2
	`

	var a account.Account
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func (r *accountRepository) ListByCompanyID(ctx context.Context, companyID string) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM accounts
		WHERE company_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		var a account.Account
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}
