package advance

import "context"

type Service interface {
	// RecordPayment writes the advance and its mirrored "Salary Advance"
	// Cash-Out ledger entry in one database transaction.
	RecordPayment(ctx context.Context, companyID string, req RecordAdvanceRequest) (AdvanceResponse, error)
	// Reconcile replaces an existing advance: the old advance and its ledger
	// entry are deleted and fresh ones written, all in one database transaction.
	Reconcile(ctx context.Context, companyID string, req ReconcileAdvanceRequest) (AdvanceResponse, error)
	// Delete removes the advance together with its mirrored ledger entry.
	Delete(ctx context.Context, companyID string, id string) error
	List(ctx context.Context, companyID string, from, to string) ([]AdvanceResponse, error)
}
