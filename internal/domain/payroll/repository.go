package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// FindByPeriod returns ErrPayrollRecordNotFound when no record exists for
	// the exact (employee, from, to, company) tuple. Overlap is not a match.
	FindByPeriod(ctx context.Context, employeeID string, from, to time.Time, companyID string) (PayrollRecord, error)
	// Create returns ErrPayrollExistsForPeriod on a period-uniqueness conflict.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]PayrollRecord, error)
}
