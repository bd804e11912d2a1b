package payroll

import "context"

type Service interface {
	// ComputePreview derives one preview row per active employee of the company
	// over the inclusive [from, to] period. Read-only; safe to call repeatedly
	// and concurrently. If any employee's ledger query fails the whole call
	// fails — no silent skipping of a row.
	ComputePreview(ctx context.Context, companyID string, req PreviewRequest) ([]PreviewRow, error)
	// Commit durably saves one preview line: one PayrollRecord plus its
	// mirrored "Salary" Cash-Out ledger entry, written atomically. A second
	// commit for the identical (employee, from, to) tuple fails with
	// ErrPayrollExistsForPeriod.
	Commit(ctx context.Context, companyID string, req CommitPayrollRequest) (PayrollRecordResponse, error)
	// CommitBatch runs Commit independently for every request and aggregates
	// the outcomes. The returned error is a *PartialCommitError when at least
	// one commit failed; the response always carries both lists.
	CommitBatch(ctx context.Context, companyID string, req BatchCommitRequest) (BatchCommitResponse, error)
	History(ctx context.Context, companyID string) ([]PayrollRecordResponse, error)
}
