package repair

import "context"

// WorkOrderRepository is the persistence boundary for work orders. Every
// method that accepts a companyID includes it in the statement predicate;
// an order of another company is reported as shared.ErrNotFound.
type WorkOrderRepository interface {
	// FindAllByCompany returns every order of the company with related records joined,
	// ordered by creation time then ID
	FindAllByCompany(ctx context.Context, companyID string) ([]WorkOrder, error)

	// FindOneScoped returns a single joined order owned by the company
	FindOneScoped(ctx context.Context, id, companyID string) (*WorkOrder, error)

	// ExistsScoped reports whether the order exists and is owned by the company
	ExistsScoped(ctx context.Context, id, companyID string) (bool, error)

	// CreateWithNested inserts the order and all of its tasks and parts in one transaction
	CreateWithNested(ctx context.Context, order *WorkOrder) error

	// UpdateStatus sets the status with a single statement scoped by id and company
	// and returns the joined order as stored afterwards
	UpdateStatus(ctx context.Context, id, companyID string, status WorkOrderStatus) (*WorkOrder, error)

	// AppendTask inserts one task for an order whose ownership was verified
	AppendTask(ctx context.Context, task *Task) error

	// AppendParts inserts all parts in one transaction for an order whose ownership was verified
	AppendParts(ctx context.Context, parts []WorkOrderPart) error
}
