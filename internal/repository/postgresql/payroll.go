package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/payroll"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) FindByPeriod(ctx context.Context, employeeID string, from, to time.Time, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, account_id, company_id, from_date, to_date, amount, remarks, transaction_id, created_at
		FROM payrolls
		WHERE employee_id = $1 AND from_date = $2 AND to_date = $3 AND company_id = $4
	`

	var p payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, from, to, companyID).Scan(
		&p.ID, &p.EmployeeID, &p.AccountID, &p.CompanyID,
		&p.FromDate, &p.ToDate, &p.Amount, &p.Remarks, &p.TransactionID, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to find payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (id, employee_id, account_id, company_id, from_date, to_date, amount, remarks, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, account_id, company_id, from_date, to_date, amount, remarks, transaction_id, created_at
	`

	var p payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		uuid.New().String(), record.EmployeeID, record.AccountID, record.CompanyID,
		record.FromDate, record.ToDate, record.Amount, record.Remarks, record.TransactionID,
	).Scan(
		&p.ID, &p.EmployeeID, &p.AccountID, &p.CompanyID,
		&p.FromDate, &p.ToDate, &p.Amount, &p.Remarks, &p.TransactionID, &p.CreatedAt,
	)
	if err != nil {
		// uq_payroll_employee_period is the authoritative guard against two
		// concurrent saves for the same (employee, from, to, company) tuple.
		if strings.Contains(err.Error(), "uq_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollExistsForPeriod
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByCompanyID(ctx context.Context, companyID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.account_id, p.company_id, p.from_date, p.to_date,
			   p.amount, p.remarks, p.transaction_id, p.created_at, e.full_name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.company_id = $1
		ORDER BY p.from_date DESC, p.created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.AccountID, &p.CompanyID, &p.FromDate, &p.ToDate,
			&p.Amount, &p.Remarks, &p.TransactionID, &p.CreatedAt, &p.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}
