package attendance

import (
	"context"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, companyID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(record), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, companyID string, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, _ := validator.ParseDate(req.From)
	to, _ := validator.ParseDate(req.To)

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListInRange(ctx, req.EmployeeID, companyID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result, nil
}

func mapToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		Status:     string(a.Status),
	}
}
