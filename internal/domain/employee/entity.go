package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	CompanyID       string
	FullName        string
	BaseSalary      decimal.Decimal
	SalaryFrequency SalaryFrequency
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SalaryFrequency is informational metadata. The payroll formula treats
// BaseSalary as a per-attendance-unit rate for both frequencies; see the
// payroll service for the recorded ambiguity.
type SalaryFrequency string

const (
	FrequencyDaily   SalaryFrequency = "daily"
	FrequencyMonthly SalaryFrequency = "monthly"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
