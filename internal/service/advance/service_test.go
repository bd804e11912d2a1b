package advance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/advance"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/employee"
	"github.com/cashbookhq/cashbook-backend-go/internal/domain/transaction"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "company-1"

func amount(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (f *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *stubEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *stubEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *stubEmployeeRepo) SetStatus(ctx context.Context, id string, companyID string, status employee.Status) error {
	return nil
}

type stubAccountRepo struct {
	accounts []account.Account
}

func (f *stubAccountRepo) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	return newAccount, nil
}

func (f *stubAccountRepo) GetByID(ctx context.Context, id string, companyID string) (account.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id && a.CompanyID == companyID {
			return a, nil
		}
	}
	return account.Account{}, account.ErrAccountNotFound
}

func (f *stubAccountRepo) ListByCompanyID(ctx context.Context, companyID string) ([]account.Account, error) {
	return f.accounts, nil
}

type stubAdvanceRepo struct {
	advances  []advance.Advance
	nextID    int
	createErr error
}

func (f *stubAdvanceRepo) Create(ctx context.Context, newAdvance advance.Advance) (advance.Advance, error) {
	if f.createErr != nil {
		return advance.Advance{}, f.createErr
	}
	f.nextID++
	newAdvance.ID = fmt.Sprintf("adv-%d", f.nextID)
	f.advances = append(f.advances, newAdvance)
	return newAdvance, nil
}

func (f *stubAdvanceRepo) GetByID(ctx context.Context, id string, companyID string) (advance.Advance, error) {
	for _, a := range f.advances {
		if a.ID == id && a.CompanyID == companyID {
			return a, nil
		}
	}
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (f *stubAdvanceRepo) DeleteByID(ctx context.Context, id string, companyID string) error {
	for i, a := range f.advances {
		if a.ID == id && a.CompanyID == companyID {
			f.advances = append(f.advances[:i], f.advances[i+1:]...)
			return nil
		}
	}
	return advance.ErrAdvanceNotFound
}

func (f *stubAdvanceRepo) SumInRange(ctx context.Context, employeeID string, companyID string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *stubAdvanceRepo) ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, a := range f.advances {
		if a.CompanyID == companyID && !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubTransactionRepo struct {
	transactions []transaction.Transaction
	nextID       int
}

func (f *stubTransactionRepo) Create(ctx context.Context, txn transaction.Transaction) (transaction.Transaction, error) {
	f.nextID++
	txn.ID = fmt.Sprintf("txn-%d", f.nextID)
	f.transactions = append(f.transactions, txn)
	return txn, nil
}

func (f *stubTransactionRepo) DeleteByID(ctx context.Context, id string, companyID string) error {
	for i, t := range f.transactions {
		if t.ID == id && t.CompanyID == companyID {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return transaction.ErrTransactionNotFound
}

func (f *stubTransactionRepo) SumByCategoryInRange(ctx context.Context, category string, companyID string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *stubTransactionRepo) ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]transaction.Transaction, error) {
	return f.transactions, nil
}

type advanceFixture struct {
	service      *AdvanceServiceImpl
	advances     *stubAdvanceRepo
	transactions *stubTransactionRepo
	rolledBack   bool
}

func newAdvanceFixture() *advanceFixture {
	f := &advanceFixture{
		advances:     &stubAdvanceRepo{},
		transactions: &stubTransactionRepo{},
	}
	f.service = &AdvanceServiceImpl{
		advanceRepo: f.advances,
		employeeRepo: &stubEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", CompanyID: testCompanyID, FullName: "Asha", Status: employee.StatusActive},
		}},
		accountRepo: &stubAccountRepo{accounts: []account.Account{
			{ID: "account-1", CompanyID: testCompanyID, Name: "Main"},
		}},
		transactionRepo: f.transactions,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			if err := fn(nil); err != nil {
				f.rolledBack = true
				return err
			}
			return nil
		},
	}
	return f
}

func TestRecordPaymentWritesMirroredPair(t *testing.T) {
	f := newAdvanceFixture()

	resp, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		AccountID:  "account-1",
		Amount:     amount("300"),
		Reason:     "medical",
		Date:       "2025-01-10",
	})
	require.NoError(t, err)

	require.Len(t, f.transactions.transactions, 1)
	txn := f.transactions.transactions[0]
	assert.Equal(t, transaction.CategorySalaryAdvance, txn.Category)
	assert.Equal(t, transaction.TypeCashOut, txn.Type)
	assert.Equal(t, "Salary advance: Asha", txn.Description)
	assert.True(t, txn.Amount.Equal(amount("300")))

	require.Len(t, f.advances.advances, 1)
	assert.Equal(t, txn.ID, resp.TransactionID)
	assert.Equal(t, "2025-01-10", resp.Date)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newAdvanceFixture()

	for _, amt := range []string{"0", "-50"} {
		_, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
			EmployeeID: "emp-1",
			AccountID:  "account-1",
			Amount:     amount(amt),
			Date:       "2025-01-10",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "amount %s", amt)
	}
	assert.Empty(t, f.transactions.transactions)
}

func TestRecordPaymentRollsBackLedgerOnAdvanceFailure(t *testing.T) {
	f := newAdvanceFixture()
	f.advances.createErr = fmt.Errorf("disk full")

	_, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		AccountID:  "account-1",
		Amount:     amount("300"),
		Date:       "2025-01-10",
	})
	require.Error(t, err)
	assert.True(t, f.rolledBack)
}

func TestReconcileReplacesBothRows(t *testing.T) {
	f := newAdvanceFixture()

	created, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		AccountID:  "account-1",
		Amount:     amount("300"),
		Date:       "2025-01-10",
	})
	require.NoError(t, err)

	updated, err := f.service.Reconcile(context.Background(), testCompanyID, advance.ReconcileAdvanceRequest{
		ID: created.ID,
		RecordAdvanceRequest: advance.RecordAdvanceRequest{
			EmployeeID: "emp-1",
			AccountID:  "account-1",
			Amount:     amount("450"),
			Date:       "2025-01-12",
		},
	})
	require.NoError(t, err)

	// Exactly one advance and one ledger entry remain, both the new pair.
	require.Len(t, f.advances.advances, 1)
	require.Len(t, f.transactions.transactions, 1)
	assert.NotEqual(t, created.ID, updated.ID)
	assert.NotEqual(t, created.TransactionID, updated.TransactionID)
	assert.Equal(t, f.transactions.transactions[0].ID, updated.TransactionID)
	assert.True(t, f.transactions.transactions[0].Amount.Equal(amount("450")))
}

func TestReconcileUnknownAdvance(t *testing.T) {
	f := newAdvanceFixture()

	_, err := f.service.Reconcile(context.Background(), testCompanyID, advance.ReconcileAdvanceRequest{
		ID: "nope",
		RecordAdvanceRequest: advance.RecordAdvanceRequest{
			EmployeeID: "emp-1",
			AccountID:  "account-1",
			Amount:     amount("450"),
			Date:       "2025-01-12",
		},
	})
	require.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}

func TestDeleteRemovesMirroredPair(t *testing.T) {
	f := newAdvanceFixture()

	created, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		AccountID:  "account-1",
		Amount:     amount("300"),
		Date:       "2025-01-10",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(context.Background(), testCompanyID, created.ID))
	assert.Empty(t, f.advances.advances)
	assert.Empty(t, f.transactions.transactions)
}

func TestDeleteTenantIsolation(t *testing.T) {
	f := newAdvanceFixture()

	created, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
		EmployeeID: "emp-1",
		AccountID:  "account-1",
		Amount:     amount("300"),
		Date:       "2025-01-10",
	})
	require.NoError(t, err)

	err = f.service.Delete(context.Background(), "other-company", created.ID)
	require.ErrorIs(t, err, advance.ErrAdvanceNotFound)
	assert.Len(t, f.advances.advances, 1)
}

func TestListFiltersByRange(t *testing.T) {
	f := newAdvanceFixture()

	for _, date := range []string{"2025-01-05", "2025-01-20", "2025-02-02"} {
		_, err := f.service.RecordPayment(context.Background(), testCompanyID, advance.RecordAdvanceRequest{
			EmployeeID: "emp-1",
			AccountID:  "account-1",
			Amount:     amount("100"),
			Date:       date,
		})
		require.NoError(t, err)
	}

	list, err := f.service.List(context.Background(), testCompanyID, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
