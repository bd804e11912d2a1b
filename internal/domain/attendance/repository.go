package attendance

import (
	"context"
	"time"
)

// MissingEmployee identifies an active employee with no attendance record for
// a given date. The absent-marking job runs as a system actor across tenants.
type MissingEmployee struct {
	EmployeeID string
	CompanyID  string
}

type AttendanceRepository interface {
	// Upsert writes the record for (employee_id, date), replacing the status if
	// a record for that day already exists.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
	// ListInRange returns the employee's records with date in [from, to],
	// inclusive on both ends, ordered by date.
	ListInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]Attendance, error)
	// ListMissingForDate returns active employees with no record on the given date.
	ListMissingForDate(ctx context.Context, date time.Time) ([]MissingEmployee, error)
}
