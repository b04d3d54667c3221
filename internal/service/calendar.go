package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var ErrInvalidRange = errors.New("invalid calendar range")

type CalendarService interface {
	ListScheduled(ctx context.Context, profileID int64, from, until time.Time) ([]model.WorkOrder, error)
}

type calendarService struct {
	workOrderStore store.WorkOrderStore
}

func NewCalendarService(workOrderStore store.WorkOrderStore) CalendarService {
	return &calendarService{workOrderStore: workOrderStore}
}

// ListScheduled returns the profile's work orders scheduled within [from,
// until). Anything fancier than a range filter belongs to the client.
func (s *calendarService) ListScheduled(ctx context.Context, profileID int64, from, until time.Time) ([]model.WorkOrder, error) {
	if !until.After(from) {
		return nil, ErrInvalidRange
	}

	orders, err := s.workOrderStore.ListScheduled(ctx, profileID, from, until)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled work orders: %w", err)
	}
	return orders, nil
}
