package advance

import (
	"context"
	"fmt"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/advance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/transaction"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/cashbookhq/cashbook-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AdvanceServiceImpl struct {
	db              *database.DB
	advanceRepo     advance.AdvanceRepository
	employeeRepo    employee.EmployeeRepository
	accountRepo     account.AccountRepository
	transactionRepo transaction.TransactionRepository

	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewAdvanceService(
	db *database.DB,
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	accountRepo account.AccountRepository,
	transactionRepo transaction.TransactionRepository,
) advance.Service {
	return &AdvanceServiceImpl{
		db:              db,
		advanceRepo:     advanceRepo,
		employeeRepo:    employeeRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *AdvanceServiceImpl) RecordPayment(ctx context.Context, companyID string, req advance.RecordAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if _, err := s.accountRepo.GetByID(ctx, req.AccountID, companyID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	var created advance.Advance
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		txn, err := s.transactionRepo.Create(txCtx, transaction.Transaction{
			CompanyID:   companyID,
			AccountID:   req.AccountID,
			Amount:      req.Amount,
			Category:    transaction.CategorySalaryAdvance,
			Type:        transaction.TypeCashOut,
			Date:        date,
			Description: "Salary advance: " + emp.FullName,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance transaction: %w", err)
		}

		created, err = s.advanceRepo.Create(txCtx, advance.Advance{
			EmployeeID:    req.EmployeeID,
			CompanyID:     companyID,
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			Reason:        req.Reason,
			Date:          date,
			TransactionID: txn.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance: %w", err)
		}
		return nil
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AdvanceServiceImpl) Reconcile(ctx context.Context, companyID string, req advance.ReconcileAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	existing, err := s.advanceRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if _, err := s.accountRepo.GetByID(ctx, req.AccountID, companyID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	// Delete-then-recreate: the stale advance and its ledger mirror go away and
	// fresh rows come back inside the same database transaction, so the pair
	// can never drift apart.
	var created advance.Advance
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.advanceRepo.DeleteByID(txCtx, existing.ID, companyID); err != nil {
			return fmt.Errorf("failed to delete advance: %w", err)
		}
		if err := s.transactionRepo.DeleteByID(txCtx, existing.TransactionID, companyID); err != nil {
			return fmt.Errorf("failed to delete advance transaction: %w", err)
		}

		txn, err := s.transactionRepo.Create(txCtx, transaction.Transaction{
			CompanyID:   companyID,
			AccountID:   req.AccountID,
			Amount:      req.Amount,
			Category:    transaction.CategorySalaryAdvance,
			Type:        transaction.TypeCashOut,
			Date:        date,
			Description: "Salary advance: " + emp.FullName,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance transaction: %w", err)
		}

		created, err = s.advanceRepo.Create(txCtx, advance.Advance{
			EmployeeID:    req.EmployeeID,
			CompanyID:     companyID,
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			Reason:        req.Reason,
			Date:          date,
			TransactionID: txn.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create advance: %w", err)
		}
		return nil
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, companyID string, id string) error {
	existing, err := s.advanceRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.advanceRepo.DeleteByID(txCtx, existing.ID, companyID); err != nil {
			return fmt.Errorf("failed to delete advance: %w", err)
		}
		if err := s.transactionRepo.DeleteByID(txCtx, existing.TransactionID, companyID); err != nil {
			return fmt.Errorf("failed to delete advance transaction: %w", err)
		}
		return nil
	})
}

func (s *AdvanceServiceImpl) List(ctx context.Context, companyID string, from, to string) ([]advance.AdvanceResponse, error) {
	var errs validator.ValidationErrors
	fromDate, okFrom := validator.ParseDate(from)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	toDate, okTo := validator.ParseDate(to)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	advances, err := s.advanceRepo.ListInRange(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func mapToResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		AccountID:     a.AccountID,
		Amount:        a.Amount,
		Reason:        a.Reason,
		Date:          a.Date.Format(validator.DateLayout),
		TransactionID: a.TransactionID,
	}
}
