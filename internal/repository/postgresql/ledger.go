package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/transaction"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn transaction.Transaction) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, company_id, account_id, amount, category, type, date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, company_id, account_id, amount, category, type, date, description, created_at
	`

	var t transaction.Transaction
	err := q.QueryRow(ctx, query,
		uuid.New().String(), txn.CompanyID, txn.AccountID, txn.Amount,
		txn.Category, txn.Type, txn.Date, txn.Description,
	).Scan(
		&t.ID, &t.CompanyID, &t.AccountID, &t.Amount,
		&t.Category, &t.Type, &t.Date, &t.Description, &t.CreatedAt,
	)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return t, nil
}

func (r *transactionRepository) DeleteByID(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) SumByCategoryInRange(ctx context.Context, category string, companyID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE category = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, category, companyID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

func (r *transactionRepository) ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, account_id, amount, category, type, date, description, created_at
		FROM transactions
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.AccountID, &t.Amount,
			&t.Category, &t.Type, &t.Date, &t.Description, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}

	return txns, rows.Err()
}
