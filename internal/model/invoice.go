package model

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

type Invoice struct {
	ID             int64         `json:"id"`
	ProfileID      int64         `json:"profile_id"`
	WorkspaceID    *int64        `json:"workspace_id,omitempty"`
	WorkOrderID    *int64        `json:"work_order_id,omitempty"`
	InvoiceNumber  string        `json:"invoice_number"`
	Status         InvoiceStatus `json:"status"`
	AmountDueCents int64         `json:"amount_due_cents"`
	Currency       string        `json:"currency"`
	IssuedOn       *time.Time    `json:"issued_on,omitempty"`
	DueOn          *time.Time    `json:"due_on,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	IsDeleted      bool          `json:"-"`
}
