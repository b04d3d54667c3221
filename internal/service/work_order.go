package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var (
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid work order status")
	ErrInvalidPriority   = errors.New("invalid work order priority")
)

type CreateWorkOrderInput struct {
	WorkspaceID  *int64
	PropertyID   *int64
	Title        string
	Description  *string
	Priority     model.WorkOrderPriority
	ScheduledFor *time.Time
}

type UpdateWorkOrderInput struct {
	PropertyID   *int64
	Title        string
	Description  *string
	Status       model.WorkOrderStatus
	Priority     model.WorkOrderPriority
	ScheduledFor *time.Time
}

type WorkOrderService interface {
	Create(ctx context.Context, profileID int64, input CreateWorkOrderInput) (*model.WorkOrder, error)
	Get(ctx context.Context, profileID, workOrderID int64) (*model.WorkOrder, error)
	Update(ctx context.Context, profileID, workOrderID int64, input UpdateWorkOrderInput) (*model.WorkOrder, error)
	Delete(ctx context.Context, profileID, workOrderID int64) error
	List(ctx context.Context, profileID int64, status *model.WorkOrderStatus, limit, offset int32) ([]model.WorkOrder, error)
}

type workOrderService struct {
	workOrderStore store.WorkOrderStore
	evaluator      *access.Evaluator
}

func NewWorkOrderService(workOrderStore store.WorkOrderStore, evaluator *access.Evaluator) WorkOrderService {
	return &workOrderService{
		workOrderStore: workOrderStore,
		evaluator:      evaluator,
	}
}

func (s *workOrderService) Create(ctx context.Context, profileID int64, input CreateWorkOrderInput) (*model.WorkOrder, error) {
	priority := input.Priority
	if priority == "" {
		priority = model.WorkOrderPriorityNormal
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if err := enforceFreeTierLimit(ctx, s.evaluator, profileID, s.workOrderStore.CountByProfile, FreeTierWorkOrderLimit, "work orders"); err != nil {
		return nil, err
	}

	wo := &model.WorkOrder{
		ID:           id.New(),
		ProfileID:    profileID,
		WorkspaceID:  input.WorkspaceID,
		PropertyID:   input.PropertyID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       model.WorkOrderStatusOpen,
		Priority:     priority,
		ScheduledFor: input.ScheduledFor,
	}

	if err := s.workOrderStore.Create(ctx, wo); err != nil {
		slog.ErrorContext(ctx, "failed to create work order",
			"error", err,
			"profile_id", profileID,
		)
		return nil, fmt.Errorf("creating work order: %w", err)
	}

	return wo, nil
}

func (s *workOrderService) Get(ctx context.Context, profileID, workOrderID int64) (*model.WorkOrder, error) {
	wo, err := s.workOrderStore.GetByID(ctx, workOrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("getting work order: %w", err)
	}
	if wo.ProfileID != profileID {
		return nil, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (s *workOrderService) Update(ctx context.Context, profileID, workOrderID int64, input UpdateWorkOrderInput) (*model.WorkOrder, error) {
	wo, err := s.Get(ctx, profileID, workOrderID)
	if err != nil {
		return nil, err
	}

	if !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !input.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if !wo.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, wo.Status, input.Status)
	}

	if input.Status == model.WorkOrderStatusCompleted && wo.Status != model.WorkOrderStatusCompleted {
		now := time.Now()
		wo.CompletedAt = &now
	}

	wo.PropertyID = input.PropertyID
	wo.Title = input.Title
	wo.Description = input.Description
	wo.Status = input.Status
	wo.Priority = input.Priority
	wo.ScheduledFor = input.ScheduledFor

	if err := s.workOrderStore.Update(ctx, wo); err != nil {
		return nil, fmt.Errorf("updating work order: %w", err)
	}
	return wo, nil
}

func (s *workOrderService) Delete(ctx context.Context, profileID, workOrderID int64) error {
	if _, err := s.Get(ctx, profileID, workOrderID); err != nil {
		return err
	}
	if err := s.workOrderStore.Delete(ctx, workOrderID, profileID); err != nil {
		return fmt.Errorf("deleting work order: %w", err)
	}
	return nil
}

func (s *workOrderService) List(ctx context.Context, profileID int64, status *model.WorkOrderStatus, limit, offset int32) ([]model.WorkOrder, error) {
	if status != nil {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		return s.workOrderStore.ListByProfileAndStatus(ctx, profileID, *status, limit, offset)
	}
	return s.workOrderStore.ListByProfile(ctx, profileID, limit, offset)
}
