package model

import "time"

type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

type WorkOrderPriority string

const (
	WorkOrderPriorityLow    WorkOrderPriority = "low"
	WorkOrderPriorityNormal WorkOrderPriority = "normal"
	WorkOrderPriorityHigh   WorkOrderPriority = "high"
	WorkOrderPriorityUrgent WorkOrderPriority = "urgent"
)

// workOrderTransitions lists the allowed status moves. Completed and
// cancelled are terminal.
var workOrderTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderStatusOpen:       {WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled},
	WorkOrderStatusInProgress: {WorkOrderStatusCompleted, WorkOrderStatusCancelled},
}

func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range workOrderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (p WorkOrderPriority) IsValid() bool {
	switch p {
	case WorkOrderPriorityLow, WorkOrderPriorityNormal, WorkOrderPriorityHigh, WorkOrderPriorityUrgent:
		return true
	}
	return false
}

type WorkOrder struct {
	ID           int64             `json:"id"`
	ProfileID    int64             `json:"profile_id"`
	WorkspaceID  *int64            `json:"workspace_id,omitempty"`
	PropertyID   *int64            `json:"property_id,omitempty"`
	Title        string            `json:"title"`
	Description  *string           `json:"description,omitempty"`
	Status       WorkOrderStatus   `json:"status"`
	Priority     WorkOrderPriority `json:"priority"`
	ScheduledFor *time.Time        `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	IsDeleted    bool              `json:"-"`
}
