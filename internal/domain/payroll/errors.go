package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrPayrollRecordNotFound  = errors.New("payroll record not found")
	ErrPayrollExistsForPeriod = errors.New("payroll already completed for this period")
)

// BatchFailure is one employee's commit failure inside a batch run.
type BatchFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// PartialCommitError reports a batch save in which some per-employee commits
// failed while others succeeded. Every commit runs independently; a failure
// never rolls back or blocks a sibling. Callers get the full failure list,
// never a single boolean.
type PartialCommitError struct {
	Failed []BatchFailure
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("payroll batch completed with %d failed commit(s)", len(e.Failed))
}
