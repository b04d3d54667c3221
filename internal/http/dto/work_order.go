package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type CreateWorkOrderRequest struct {
	WorkspaceID  *string    `json:"workspace_id,omitempty"`
	PropertyID   *string    `json:"property_id,omitempty"`
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=10000"`
	Priority     string     `json:"priority,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

func (r *CreateWorkOrderRequest) ToInput() (service.CreateWorkOrderInput, error) {
	workspaceID, err := parseOptionalID(r.WorkspaceID, "workspace_id")
	if err != nil {
		return service.CreateWorkOrderInput{}, err
	}
	propertyID, err := parseOptionalID(r.PropertyID, "property_id")
	if err != nil {
		return service.CreateWorkOrderInput{}, err
	}
	return service.CreateWorkOrderInput{
		WorkspaceID:  workspaceID,
		PropertyID:   propertyID,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     model.WorkOrderPriority(r.Priority),
		ScheduledFor: r.ScheduledFor,
	}, nil
}

type UpdateWorkOrderRequest struct {
	PropertyID   *string    `json:"property_id,omitempty"`
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=10000"`
	Status       string     `json:"status" binding:"required"`
	Priority     string     `json:"priority" binding:"required"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

func (r *UpdateWorkOrderRequest) ToInput() (service.UpdateWorkOrderInput, error) {
	propertyID, err := parseOptionalID(r.PropertyID, "property_id")
	if err != nil {
		return service.UpdateWorkOrderInput{}, err
	}
	return service.UpdateWorkOrderInput{
		PropertyID:   propertyID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       model.WorkOrderStatus(r.Status),
		Priority:     model.WorkOrderPriority(r.Priority),
		ScheduledFor: r.ScheduledFor,
	}, nil
}

type WorkOrderResponse struct {
	ID           int64      `json:"id,string"`
	WorkspaceID  *string    `json:"workspace_id,omitempty"`
	PropertyID   *string    `json:"property_id,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToWorkOrderResponse(wo *model.WorkOrder) *WorkOrderResponse {
	return &WorkOrderResponse{
		ID:           wo.ID,
		WorkspaceID:  formatOptionalID(wo.WorkspaceID),
		PropertyID:   formatOptionalID(wo.PropertyID),
		Title:        wo.Title,
		Description:  wo.Description,
		Status:       string(wo.Status),
		Priority:     string(wo.Priority),
		ScheduledFor: wo.ScheduledFor,
		CompletedAt:  wo.CompletedAt,
		CreatedAt:    wo.CreatedAt,
		UpdatedAt:    wo.UpdatedAt,
	}
}

func ToWorkOrderResponses(workOrders []model.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(workOrders))
	for i := range workOrders {
		out = append(out, *ToWorkOrderResponse(&workOrders[i]))
	}
	return out
}
