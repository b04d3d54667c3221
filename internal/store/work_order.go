package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type workOrderStore struct {
	queries *sqlc.Queries
}

func newWorkOrderStore(queries *sqlc.Queries) WorkOrderStore {
	return &workOrderStore{queries: queries}
}

func (s *workOrderStore) GetByID(ctx context.Context, id int64) (*model.WorkOrder, error) {
	row, err := s.queries.GetWorkOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkOrderModel(row), nil
}

func (s *workOrderStore) Create(ctx context.Context, wo *model.WorkOrder) error {
	row, err := s.queries.CreateWorkOrder(ctx, sqlc.CreateWorkOrderParams{
		ID:           wo.ID,
		ProfileID:    wo.ProfileID,
		WorkspaceID:  wo.WorkspaceID,
		PropertyID:   wo.PropertyID,
		Title:        wo.Title,
		Description:  wo.Description,
		Status:       string(wo.Status),
		Priority:     string(wo.Priority),
		ScheduledFor: timestamptzPtr(wo.ScheduledFor),
	})
	if err != nil {
		return err
	}
	*wo = *toWorkOrderModel(row)
	return nil
}

func (s *workOrderStore) Update(ctx context.Context, wo *model.WorkOrder) error {
	row, err := s.queries.UpdateWorkOrder(ctx, sqlc.UpdateWorkOrderParams{
		ID:           wo.ID,
		ProfileID:    wo.ProfileID,
		Title:        wo.Title,
		Description:  wo.Description,
		Status:       string(wo.Status),
		Priority:     string(wo.Priority),
		PropertyID:   wo.PropertyID,
		ScheduledFor: timestamptzPtr(wo.ScheduledFor),
		CompletedAt:  timestamptzPtr(wo.CompletedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*wo = *toWorkOrderModel(row)
	return nil
}

func (s *workOrderStore) Delete(ctx context.Context, id, profileID int64) error {
	return s.queries.SoftDeleteWorkOrder(ctx, sqlc.SoftDeleteWorkOrderParams{
		ID:        id,
		ProfileID: profileID,
	})
}

func (s *workOrderStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.WorkOrder, error) {
	rows, err := s.queries.ListWorkOrdersByProfile(ctx, sqlc.ListWorkOrdersByProfileParams{
		ProfileID: profileID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	return toWorkOrderModels(rows), nil
}

func (s *workOrderStore) ListByProfileAndStatus(ctx context.Context, profileID int64, status model.WorkOrderStatus, limit, offset int32) ([]model.WorkOrder, error) {
	rows, err := s.queries.ListWorkOrdersByProfileAndStatus(ctx, sqlc.ListWorkOrdersByProfileAndStatusParams{
		ProfileID: profileID,
		Status:    string(status),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	return toWorkOrderModels(rows), nil
}

func (s *workOrderStore) ListScheduled(ctx context.Context, profileID int64, from, until time.Time) ([]model.WorkOrder, error) {
	rows, err := s.queries.ListScheduledWorkOrders(ctx, sqlc.ListScheduledWorkOrdersParams{
		ProfileID: profileID,
		FromTime:  timestamptz(from),
		UntilTime: timestamptz(until),
	})
	if err != nil {
		return nil, err
	}
	return toWorkOrderModels(rows), nil
}

func (s *workOrderStore) CountByProfile(ctx context.Context, profileID int64) (int64, error) {
	return s.queries.CountWorkOrdersByProfile(ctx, profileID)
}

func toWorkOrderModel(row sqlc.WorkOrder) *model.WorkOrder {
	return &model.WorkOrder{
		ID:           row.ID,
		ProfileID:    row.ProfileID,
		WorkspaceID:  row.WorkspaceID,
		PropertyID:   row.PropertyID,
		Title:        row.Title,
		Description:  row.Description,
		Status:       model.WorkOrderStatus(row.Status),
		Priority:     model.WorkOrderPriority(row.Priority),
		ScheduledFor: timePtr(row.ScheduledFor),
		CompletedAt:  timePtr(row.CompletedAt),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
		IsDeleted:    row.IsDeleted,
	}
}

func toWorkOrderModels(rows []sqlc.WorkOrder) []model.WorkOrder {
	result := make([]model.WorkOrder, len(rows))
	for i, row := range rows {
		result[i] = *toWorkOrderModel(row)
	}
	return result
}
