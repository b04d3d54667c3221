package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type CreateInvoiceRequest struct {
	WorkspaceID    *string    `json:"workspace_id,omitempty"`
	WorkOrderID    *string    `json:"work_order_id,omitempty"`
	AmountDueCents int64      `json:"amount_due_cents" binding:"min=0"`
	Currency       string     `json:"currency,omitempty" binding:"omitempty,len=3"`
	IssuedOn       *time.Time `json:"issued_on,omitempty"`
	DueOn          *time.Time `json:"due_on,omitempty"`
}

func (r *CreateInvoiceRequest) ToInput() (service.CreateInvoiceInput, error) {
	workspaceID, err := parseOptionalID(r.WorkspaceID, "workspace_id")
	if err != nil {
		return service.CreateInvoiceInput{}, err
	}
	workOrderID, err := parseOptionalID(r.WorkOrderID, "work_order_id")
	if err != nil {
		return service.CreateInvoiceInput{}, err
	}
	return service.CreateInvoiceInput{
		WorkspaceID:    workspaceID,
		WorkOrderID:    workOrderID,
		AmountDueCents: r.AmountDueCents,
		Currency:       r.Currency,
		IssuedOn:       r.IssuedOn,
		DueOn:          r.DueOn,
	}, nil
}

type UpdateInvoiceRequest struct {
	Status         string     `json:"status" binding:"required"`
	AmountDueCents int64      `json:"amount_due_cents" binding:"min=0"`
	Currency       string     `json:"currency" binding:"required,len=3"`
	IssuedOn       *time.Time `json:"issued_on,omitempty"`
	DueOn          *time.Time `json:"due_on,omitempty"`
}

func (r *UpdateInvoiceRequest) ToInput() service.UpdateInvoiceInput {
	return service.UpdateInvoiceInput{
		Status:         model.InvoiceStatus(r.Status),
		AmountDueCents: r.AmountDueCents,
		Currency:       r.Currency,
		IssuedOn:       r.IssuedOn,
		DueOn:          r.DueOn,
	}
}

type InvoiceResponse struct {
	ID             int64      `json:"id,string"`
	WorkspaceID    *string    `json:"workspace_id,omitempty"`
	WorkOrderID    *string    `json:"work_order_id,omitempty"`
	InvoiceNumber  string     `json:"invoice_number"`
	Status         string     `json:"status"`
	AmountDueCents int64      `json:"amount_due_cents"`
	Currency       string     `json:"currency"`
	IssuedOn       *time.Time `json:"issued_on,omitempty"`
	DueOn          *time.Time `json:"due_on,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToInvoiceResponse(inv *model.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:             inv.ID,
		WorkspaceID:    formatOptionalID(inv.WorkspaceID),
		WorkOrderID:    formatOptionalID(inv.WorkOrderID),
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         string(inv.Status),
		AmountDueCents: inv.AmountDueCents,
		Currency:       inv.Currency,
		IssuedOn:       inv.IssuedOn,
		DueOn:          inv.DueOn,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func ToInvoiceResponses(invoices []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, *ToInvoiceResponse(&invoices[i]))
	}
	return out
}
