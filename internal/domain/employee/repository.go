package employee

import "context"

// EmployeeRepository defines data access for employees. Every method takes
// companyID so a tenant can never read or write another tenant's rows.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	SetStatus(ctx context.Context, id string, companyID string, status Status) error
}
