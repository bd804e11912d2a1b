package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/advance"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, newAdvance advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, employee_id, company_id, account_id, amount, reason, date, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, account_id, amount, reason, date, transaction_id, created_at, updated_at
	`

	var a advance.Advance
	err := q.QueryRow(ctx, query,
		uuid.New().String(), newAdvance.EmployeeID, newAdvance.CompanyID, newAdvance.AccountID,
		newAdvance.Amount, newAdvance.Reason, newAdvance.Date, newAdvance.TransactionID,
	).Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.AccountID,
		&a.Amount, &a.Reason, &a.Date, &a.TransactionID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string, companyID string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, account_id, amount, reason, date, transaction_id, created_at, updated_at
		FROM advances
		WHERE id = $1 AND company_id = $2
	`

	var a advance.Advance
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.AccountID,
		&a.Amount, &a.Reason, &a.Date, &a.TransactionID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) DeleteByID(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepository) SumInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advances
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, companyID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}

	return total, nil
}

func (r *advanceRepository) ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, account_id, amount, reason, date, transaction_id, created_at, updated_at
		FROM advances
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.AccountID,
			&a.Amount, &a.Reason, &a.Date, &a.TransactionID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}
