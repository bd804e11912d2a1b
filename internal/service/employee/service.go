package employee

import (
	"context"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:       companyID,
		FullName:        req.FullName,
		BaseSalary:      req.BaseSalary,
		SalaryFrequency: employee.SalaryFrequency(req.SalaryFrequency),
		Status:          employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, companyID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, companyID, req.ID)
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, companyID string, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapToResponse(e))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, companyID string, id string) error {
	return s.employeeRepo.SetStatus(ctx, id, companyID, employee.StatusInactive)
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              e.ID,
		FullName:        e.FullName,
		BaseSalary:      e.BaseSalary,
		SalaryFrequency: string(e.SalaryFrequency),
		Status:          string(e.Status),
	}
}
