package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one employee-day. At most one record exists per
// (employee_id, date); marking the same day again overwrites the status.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Status is a closed enumeration of day outcomes. Pay math never compares
// against raw multiplier values; it goes through PayMultiplier and OTHours.
type Status string

const (
	StatusAbsent    Status = "absent"
	StatusPresent   Status = "present"
	StatusOvertime4 Status = "overtime_4h" // half-day overtime ("OT 4 Hrs")
	StatusOvertime8 Status = "overtime_8h" // full-day overtime ("OT 8 Hrs")
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAbsent, StatusPresent, StatusOvertime4, StatusOvertime8:
		return true
	}
	return false
}

var (
	multiplierAbsent    = decimal.Zero
	multiplierPresent   = decimal.NewFromInt(1)
	multiplierOvertime4 = decimal.NewFromFloat(1.5)
	multiplierOvertime8 = decimal.NewFromInt(2)
)

// PayMultiplier returns the fraction of the per-unit base rate the day earns:
// absent 0, present 1, overtime_4h 1.5, overtime_8h 2.
func (s Status) PayMultiplier() decimal.Decimal {
	switch s {
	case StatusPresent:
		return multiplierPresent
	case StatusOvertime4:
		return multiplierOvertime4
	case StatusOvertime8:
		return multiplierOvertime8
	default:
		return multiplierAbsent
	}
}

// OTHours returns the overtime hours the day contributes.
func (s Status) OTHours() int {
	switch s {
	case StatusOvertime4:
		return 4
	case StatusOvertime8:
		return 8
	default:
		return 0
	}
}
