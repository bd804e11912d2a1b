package employee

import "context"

type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, companyID string, id string) (EmployeeResponse, error)
	ListActive(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	// Deactivate flips the employee to inactive. Employees are never hard-deleted;
	// payroll history keeps pointing at them.
	Deactivate(ctx context.Context, companyID string, id string) error
}
