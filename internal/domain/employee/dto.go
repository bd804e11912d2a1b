package employee

import (
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName        string          `json:"full_name"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	SalaryFrequency string          `json:"salary_frequency"` // "daily" or "monthly"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if !validator.IsInSlice(r.SalaryFrequency, []string{string(FrequencyDaily), string(FrequencyMonthly)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_frequency", Message: "must be 'daily' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string           `json:"-"`
	FullName        *string          `json:"full_name,omitempty"`
	BaseSalary      *decimal.Decimal `json:"base_salary,omitempty"`
	SalaryFrequency *string          `json:"salary_frequency,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.SalaryFrequency != nil && !validator.IsInSlice(*r.SalaryFrequency, []string{string(FrequencyDaily), string(FrequencyMonthly)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_frequency", Message: "must be 'daily' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	FullName        string          `json:"full_name"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	SalaryFrequency string          `json:"salary_frequency"`
	Status          string          `json:"status"`
}
