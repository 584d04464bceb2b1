package repair

import "github.com/repairshop/backend/internal/domain/shared"

// WorkOrderStatus represents the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "PENDING"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// AllWorkOrderStatuses returns every known status in lifecycle order
func AllWorkOrderStatuses() []WorkOrderStatus {
	return []WorkOrderStatus{
		WorkOrderStatusPending,
		WorkOrderStatusInProgress,
		WorkOrderStatusCompleted,
		WorkOrderStatusCancelled,
	}
}

// IsValid checks if the status is a valid WorkOrderStatus
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of WorkOrderStatus
func (s WorkOrderStatus) String() string {
	return string(s)
}

// ParseWorkOrderStatus converts raw input into a WorkOrderStatus.
// No transition table exists: an order may move from any status to any
// valid status, COMPLETED and CANCELLED included.
func ParseWorkOrderStatus(value string) (WorkOrderStatus, error) {
	status := WorkOrderStatus(value)
	if !status.IsValid() {
		return "", shared.NewValidationError("Status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
	}
	return status, nil
}
