package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

type CreateInvoiceInput struct {
	WorkspaceID    *int64
	WorkOrderID    *int64
	AmountDueCents int64
	Currency       string
	IssuedOn       *time.Time
	DueOn          *time.Time
}

type UpdateInvoiceInput struct {
	Status         model.InvoiceStatus
	AmountDueCents int64
	Currency       string
	IssuedOn       *time.Time
	DueOn          *time.Time
}

type InvoiceService interface {
	Create(ctx context.Context, profileID int64, input CreateInvoiceInput) (*model.Invoice, error)
	Get(ctx context.Context, profileID, invoiceID int64) (*model.Invoice, error)
	Update(ctx context.Context, profileID, invoiceID int64, input UpdateInvoiceInput) (*model.Invoice, error)
	Delete(ctx context.Context, profileID, invoiceID int64) error
	List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Invoice, error)
}

type invoiceService struct {
	invoiceStore store.InvoiceStore
}

func NewInvoiceService(invoiceStore store.InvoiceStore) InvoiceService {
	return &invoiceService{invoiceStore: invoiceStore}
}

func (s *invoiceService) Create(ctx context.Context, profileID int64, input CreateInvoiceInput) (*model.Invoice, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	invoiceID := id.New()
	inv := &model.Invoice{
		ID:             invoiceID,
		ProfileID:      profileID,
		WorkspaceID:    input.WorkspaceID,
		WorkOrderID:    input.WorkOrderID,
		InvoiceNumber:  generateInvoiceNumber(invoiceID),
		Status:         model.InvoiceStatusDraft,
		AmountDueCents: input.AmountDueCents,
		Currency:       currency,
		IssuedOn:       input.IssuedOn,
		DueOn:          input.DueOn,
	}

	if err := s.invoiceStore.Create(ctx, inv); err != nil {
		slog.ErrorContext(ctx, "failed to create invoice",
			"error", err,
			"profile_id", profileID,
		)
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, profileID, invoiceID int64) (*model.Invoice, error) {
	inv, err := s.invoiceStore.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	if inv.ProfileID != profileID {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *invoiceService) Update(ctx context.Context, profileID, invoiceID int64, input UpdateInvoiceInput) (*model.Invoice, error) {
	inv, err := s.Get(ctx, profileID, invoiceID)
	if err != nil {
		return nil, err
	}

	if !input.Status.IsValid() {
		return nil, ErrInvalidInvoiceStatus
	}

	inv.Status = input.Status
	inv.AmountDueCents = input.AmountDueCents
	if input.Currency != "" {
		inv.Currency = input.Currency
	}
	inv.IssuedOn = input.IssuedOn
	inv.DueOn = input.DueOn

	if err := s.invoiceStore.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, profileID, invoiceID int64) error {
	if _, err := s.Get(ctx, profileID, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceStore.Delete(ctx, invoiceID, profileID); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}
	return nil
}

func (s *invoiceService) List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Invoice, error) {
	return s.invoiceStore.ListByProfile(ctx, profileID, limit, offset)
}

// generateInvoiceNumber derives a human-readable unique number from the
// snowflake ID, which is already unique and time-ordered.
func generateInvoiceNumber(invoiceID int64) string {
	return fmt.Sprintf("INV-%d", invoiceID)
}
