package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, company_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, date, status, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.New().String(), record.EmployeeID, record.CompanyID, record.Date, record.Status,
	).Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListMissingForDate(ctx context.Context, date time.Time) ([]attendance.MissingEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id
		FROM employees e
		WHERE e.status = 'active'
		AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		)
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees missing attendance: %w", err)
	}
	defer rows.Close()

	var missing []attendance.MissingEmployee
	for rows.Next() {
		var m attendance.MissingEmployee
		if err := rows.Scan(&m.EmployeeID, &m.CompanyID); err != nil {
			return nil, fmt.Errorf("failed to scan missing employee: %w", err)
		}
		missing = append(missing, m)
	}

	return missing, rows.Err()
}
