package response

import (
	"errors"
	"net/http"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/advance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/payroll"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/transaction"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollExistsForPeriod):
		Conflict(w, "Payroll already completed for this period")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Collaborator lookups
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
