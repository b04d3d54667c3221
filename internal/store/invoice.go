package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type invoiceStore struct {
	queries *sqlc.Queries
}

func newInvoiceStore(queries *sqlc.Queries) InvoiceStore {
	return &invoiceStore{queries: queries}
}

func (s *invoiceStore) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	row, err := s.queries.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toInvoiceModel(row), nil
}

func (s *invoiceStore) Create(ctx context.Context, inv *model.Invoice) error {
	row, err := s.queries.CreateInvoice(ctx, sqlc.CreateInvoiceParams{
		ID:             inv.ID,
		ProfileID:      inv.ProfileID,
		WorkspaceID:    inv.WorkspaceID,
		WorkOrderID:    inv.WorkOrderID,
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         string(inv.Status),
		AmountDueCents: inv.AmountDueCents,
		Currency:       inv.Currency,
		IssuedOn:       dateFromPtr(inv.IssuedOn),
		DueOn:          dateFromPtr(inv.DueOn),
	})
	if err != nil {
		return err
	}
	*inv = *toInvoiceModel(row)
	return nil
}

func (s *invoiceStore) Update(ctx context.Context, inv *model.Invoice) error {
	row, err := s.queries.UpdateInvoice(ctx, sqlc.UpdateInvoiceParams{
		ID:             inv.ID,
		ProfileID:      inv.ProfileID,
		Status:         string(inv.Status),
		AmountDueCents: inv.AmountDueCents,
		Currency:       inv.Currency,
		IssuedOn:       dateFromPtr(inv.IssuedOn),
		DueOn:          dateFromPtr(inv.DueOn),
		WorkOrderID:    inv.WorkOrderID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*inv = *toInvoiceModel(row)
	return nil
}

func (s *invoiceStore) Delete(ctx context.Context, id, profileID int64) error {
	return s.queries.SoftDeleteInvoice(ctx, sqlc.SoftDeleteInvoiceParams{
		ID:        id,
		ProfileID: profileID,
	})
}

func (s *invoiceStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Invoice, error) {
	rows, err := s.queries.ListInvoicesByProfile(ctx, sqlc.ListInvoicesByProfileParams{
		ProfileID: profileID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Invoice, len(rows))
	for i, row := range rows {
		result[i] = *toInvoiceModel(row)
	}
	return result, nil
}

func toInvoiceModel(row sqlc.Invoice) *model.Invoice {
	return &model.Invoice{
		ID:             row.ID,
		ProfileID:      row.ProfileID,
		WorkspaceID:    row.WorkspaceID,
		WorkOrderID:    row.WorkOrderID,
		InvoiceNumber:  row.InvoiceNumber,
		Status:         model.InvoiceStatus(row.Status),
		AmountDueCents: row.AmountDueCents,
		Currency:       row.Currency,
		IssuedOn:       datePtr(row.IssuedOn),
		DueOn:          datePtr(row.DueOn),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
		IsDeleted:      row.IsDeleted,
	}
}
