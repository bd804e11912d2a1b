package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/advance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/payroll"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/transaction"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/cashbookhq/cashbook-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	db              *database.DB
	payrollRepo     payroll.PayrollRepository
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	advanceRepo     advance.AdvanceRepository
	transactionRepo transaction.TransactionRepository
	accountRepo     account.AccountRepository

	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	transactionRepo transaction.TransactionRepository,
	accountRepo account.AccountRepository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:              db,
		payrollRepo:     payrollRepo,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		advanceRepo:     advanceRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ========== PREVIEW ==========

func (s *PayrollServiceImpl) ComputePreview(ctx context.Context, companyID string, req payroll.PreviewRequest) ([]payroll.PreviewRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, _ := validator.ParseDate(req.From)
	to, _ := validator.ParseDate(req.To)

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	// One ledger aggregate for the whole company and period; every row carries
	// the same value. Whether this should be scoped per employee instead is an
	// open product question, so the observed behavior stands.
	salaryPaid, err := s.transactionRepo.SumByCategoryInRange(ctx, transaction.CategorySalary, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum salary transactions: %w", err)
	}

	// Each employee's queries are independent; fan out and keep roster order.
	rows := make([]payroll.PreviewRow, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	for i, emp := range employees {
		g.Go(func() error {
			records, err := s.attendanceRepo.ListInRange(gctx, emp.ID, companyID, from, to)
			if err != nil {
				return fmt.Errorf("failed to get attendance for employee %s: %w", emp.ID, err)
			}

			totalAdvance, err := s.advanceRepo.SumInRange(gctx, emp.ID, companyID, from, to)
			if err != nil {
				return fmt.Errorf("failed to sum advances for employee %s: %w", emp.ID, err)
			}

			if emp.SalaryFrequency == employee.FrequencyMonthly {
				// BaseSalary is applied as a per-attendance-unit rate for both
				// frequencies. Product has not yet clarified what a monthly
				// employee's stored salary actually denotes.
				slog.Debug("monthly-frequency employee paid at per-unit rate",
					"employee_id", emp.ID, "company_id", companyID)
			}

			rows[i] = buildPreviewRow(emp, records, totalAdvance, salaryPaid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// buildPreviewRow applies the central pay rule: each attendance record earns
// baseSalary scaled by its status multiplier, so a present day pays the full
// per-unit rate, a full-overtime day pays double and an absent day pays zero.
func buildPreviewRow(emp employee.Employee, records []attendance.Attendance, totalAdvance, salaryPaid decimal.Decimal) payroll.PreviewRow {
	gross := decimal.Zero
	daysWorked := decimal.Zero
	otHours := 0
	attResponses := make([]attendance.AttendanceResponse, 0, len(records))

	for _, rec := range records {
		multiplier := rec.Status.PayMultiplier()
		gross = gross.Add(emp.BaseSalary.Mul(multiplier))
		daysWorked = daysWorked.Add(multiplier)
		otHours += rec.Status.OTHours()
		attResponses = append(attResponses, attendance.AttendanceResponse{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date.Format(validator.DateLayout),
			Status:     string(rec.Status),
		})
	}

	return payroll.PreviewRow{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		BaseSalary:      emp.BaseSalary,
		GrossSalary:     gross,
		Attendance:      attResponses,
		DaysWorked:      daysWorked,
		OTHours:         otHours,
		TotalAdvance:    totalAdvance,
		TotalSalaryPaid: salaryPaid,
		// Advances may exceed gross; a negative balance is surfaced as-is.
		NetBalance: gross.Sub(totalAdvance),
	}
}

// ========== COMMIT ==========

func (s *PayrollServiceImpl) Commit(ctx context.Context, companyID string, req payroll.CommitPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	from, _ := validator.ParseDate(req.From)
	to, _ := validator.ParseDate(req.To)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if _, err := s.accountRepo.GetByID(ctx, req.AccountID, companyID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	// Fast-path duplicate check. The unique index on the payroll table is the
	// authoritative guard; this only produces a friendlier early error.
	_, err = s.payrollRepo.FindByPeriod(ctx, req.EmployeeID, from, to, companyID)
	if err == nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollExistsForPeriod
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	description := "Salary payment: " + emp.FullName
	if req.Remarks != nil && *req.Remarks != "" {
		description = *req.Remarks
	}

	var created payroll.PayrollRecord
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		txn, err := s.transactionRepo.Create(txCtx, transaction.Transaction{
			CompanyID:   companyID,
			AccountID:   req.AccountID,
			Amount:      req.Amount,
			Category:    transaction.CategorySalary,
			Type:        transaction.TypeCashOut,
			Date:        to,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to create salary transaction: %w", err)
		}

		created, err = s.payrollRepo.Create(txCtx, payroll.PayrollRecord{
			EmployeeID:    req.EmployeeID,
			AccountID:     req.AccountID,
			CompanyID:     companyID,
			FromDate:      from,
			ToDate:        to,
			Amount:        req.Amount,
			Remarks:       req.Remarks,
			TransactionID: txn.ID,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) CommitBatch(ctx context.Context, companyID string, req payroll.BatchCommitRequest) (payroll.BatchCommitResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchCommitResponse{}, err
	}

	resp := payroll.BatchCommitResponse{
		Succeeded: make([]payroll.PayrollRecordResponse, 0, len(req.Commits)),
		Failed:    make([]payroll.BatchFailure, 0),
	}

	// Every commit stands alone. A failed employee never rolls back or blocks
	// the others; the caller gets the full per-employee outcome.
	for _, commit := range req.Commits {
		record, err := s.Commit(ctx, companyID, commit)
		if err != nil {
			resp.Failed = append(resp.Failed, payroll.BatchFailure{
				EmployeeID: commit.EmployeeID,
				Reason:     err.Error(),
			})
			continue
		}
		resp.Succeeded = append(resp.Succeeded, record)
	}

	if len(resp.Failed) > 0 {
		return resp, &payroll.PartialCommitError{Failed: resp.Failed}
	}

	return resp, nil
}

func (s *PayrollServiceImpl) History(ctx context.Context, companyID string) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return payroll.PayrollRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  employeeName,
		AccountID:     r.AccountID,
		From:          r.FromDate.Format(validator.DateLayout),
		To:            r.ToDate.Format(validator.DateLayout),
		Amount:        r.Amount,
		Remarks:       r.Remarks,
		TransactionID: r.TransactionID,
	}
}
