package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "company-1"

type memEmployeeRepo struct {
	employees []employee.Employee
}

func (f *memEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *memEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *memEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *memEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *memEmployeeRepo) SetStatus(ctx context.Context, id string, companyID string, status employee.Status) error {
	return nil
}

// memAttendanceRepo keys records by (employee, date), matching the database
// unique constraint the real repository upserts against.
type memAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(validator.DateLayout)
}

func (f *memAttendanceRepo) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	if f.records == nil {
		f.records = map[string]attendance.Attendance{}
	}
	record.ID = key(record.EmployeeID, record.Date)
	f.records[record.ID] = record
	return record, nil
}

func (f *memAttendanceRepo) ListInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.CompanyID == companyID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *memAttendanceRepo) ListMissingForDate(ctx context.Context, date time.Time) ([]attendance.MissingEmployee, error) {
	return nil, nil
}

func newAttendanceService(repo *memAttendanceRepo) attendance.Service {
	return NewAttendanceService(repo, &memEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: testCompanyID, FullName: "Asha", Status: employee.StatusActive},
	}})
}

func TestMarkCreatesRecord(t *testing.T) {
	repo := &memAttendanceRepo{}
	svc := newAttendanceService(repo)

	resp, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-01-10",
		Status:     "present",
	})
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-01-10", resp.Date)
	assert.Len(t, repo.records, 1)
}

func TestMarkSameDayOverwrites(t *testing.T) {
	repo := &memAttendanceRepo{}
	svc := newAttendanceService(repo)

	_, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-01-10", Status: "present",
	})
	require.NoError(t, err)

	resp, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-01-10", Status: "overtime_8h",
	})
	require.NoError(t, err)

	// Still one record for the day; the status is the latest write.
	require.Len(t, repo.records, 1)
	assert.Equal(t, "overtime_8h", resp.Status)
}

func TestMarkRejectsUnknownStatus(t *testing.T) {
	svc := newAttendanceService(&memAttendanceRepo{})

	_, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-01-10", Status: "half-day",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestMarkUnknownEmployee(t *testing.T) {
	svc := newAttendanceService(&memAttendanceRepo{})

	_, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
		EmployeeID: "ghost", Date: "2025-01-10", Status: "present",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListValidatesRange(t *testing.T) {
	svc := newAttendanceService(&memAttendanceRepo{})

	_, err := svc.List(context.Background(), testCompanyID, attendance.ListAttendanceRequest{
		EmployeeID: "emp-1", From: "2025-02-01", To: "2025-01-01",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestListReturnsRecordsInRange(t *testing.T) {
	repo := &memAttendanceRepo{}
	svc := newAttendanceService(repo)

	for _, date := range []string{"2025-01-05", "2025-01-20", "2025-02-02"} {
		_, err := svc.Mark(context.Background(), testCompanyID, attendance.MarkAttendanceRequest{
			EmployeeID: "emp-1", Date: date, Status: "present",
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), testCompanyID, attendance.ListAttendanceRequest{
		EmployeeID: "emp-1", From: "2025-01-01", To: "2025-01-31",
	})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
