package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var ErrPropertyNotFound = errors.New("property not found")

type CreatePropertyInput struct {
	WorkspaceID  *int64
	Name         string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
}

type UpdatePropertyInput struct {
	Name         string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
}

type PropertyService interface {
	Create(ctx context.Context, profileID int64, input CreatePropertyInput) (*model.Property, error)
	Get(ctx context.Context, profileID, propertyID int64) (*model.Property, error)
	Update(ctx context.Context, profileID, propertyID int64, input UpdatePropertyInput) (*model.Property, error)
	Delete(ctx context.Context, profileID, propertyID int64) error
	List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Property, error)
}

type propertyService struct {
	propertyStore store.PropertyStore
	evaluator     *access.Evaluator
}

func NewPropertyService(propertyStore store.PropertyStore, evaluator *access.Evaluator) PropertyService {
	return &propertyService{
		propertyStore: propertyStore,
		evaluator:     evaluator,
	}
}

func (s *propertyService) Create(ctx context.Context, profileID int64, input CreatePropertyInput) (*model.Property, error) {
	if err := enforceFreeTierLimit(ctx, s.evaluator, profileID, s.propertyStore.CountByProfile, FreeTierPropertyLimit, "properties"); err != nil {
		return nil, err
	}

	prop := &model.Property{
		ID:           id.New(),
		ProfileID:    profileID,
		WorkspaceID:  input.WorkspaceID,
		Name:         input.Name,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
	}

	if err := s.propertyStore.Create(ctx, prop); err != nil {
		slog.ErrorContext(ctx, "failed to create property",
			"error", err,
			"profile_id", profileID,
		)
		return nil, fmt.Errorf("creating property: %w", err)
	}

	return prop, nil
}

// Get scopes by owner: another profile's property reads as not found.
func (s *propertyService) Get(ctx context.Context, profileID, propertyID int64) (*model.Property, error) {
	prop, err := s.propertyStore.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("getting property: %w", err)
	}
	if prop.ProfileID != profileID {
		return nil, ErrPropertyNotFound
	}
	return prop, nil
}

func (s *propertyService) Update(ctx context.Context, profileID, propertyID int64, input UpdatePropertyInput) (*model.Property, error) {
	prop, err := s.Get(ctx, profileID, propertyID)
	if err != nil {
		return nil, err
	}

	prop.Name = input.Name
	prop.AddressLine1 = input.AddressLine1
	prop.AddressLine2 = input.AddressLine2
	prop.City = input.City
	prop.State = input.State
	prop.PostalCode = input.PostalCode

	if err := s.propertyStore.Update(ctx, prop); err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}
	return prop, nil
}

func (s *propertyService) Delete(ctx context.Context, profileID, propertyID int64) error {
	if _, err := s.Get(ctx, profileID, propertyID); err != nil {
		return err
	}
	if err := s.propertyStore.Delete(ctx, propertyID, profileID); err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}
	return nil
}

func (s *propertyService) List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Property, error) {
	return s.propertyStore.ListByProfile(ctx, profileID, limit, offset)
}
