package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/invopop/jsonschema"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/bus"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var (
	ErrUnknownModule        = errors.New("unknown module")
	ErrInvalidFeatureConfig = errors.New("invalid feature config")
)

// InvoicingConfig tunes invoice defaults for an organization.
type InvoicingConfig struct {
	DefaultCurrency string `json:"default_currency,omitempty" jsonschema:"example=USD"`
	NetDays         int    `json:"net_days,omitempty"`
}

// WorkOrdersConfig tunes work order defaults for an organization.
type WorkOrdersConfig struct {
	DefaultPriority string `json:"default_priority,omitempty" jsonschema:"enum=low,enum=normal,enum=high,enum=urgent"`
}

// CalendarConfig tunes the calendar for an organization.
type CalendarConfig struct {
	WeekStartsOn string `json:"week_starts_on,omitempty" jsonschema:"enum=sunday,enum=monday"`
}

// CustomerPortalConfig configures the customer-facing portal.
type CustomerPortalConfig struct {
	Subdomain string `json:"subdomain,omitempty"`
}

// moduleConfigs maps modules to their config prototypes. Modules absent here
// take no config payload.
var moduleConfigs = map[model.Module]func() any{
	model.ModuleWorkOrders:     func() any { return &WorkOrdersConfig{} },
	model.ModuleCalendar:       func() any { return &CalendarConfig{} },
	model.ModuleInvoicing:      func() any { return &InvoicingConfig{} },
	model.ModuleCustomerPortal: func() any { return &CustomerPortalConfig{} },
}

// ModuleFeature is one module's resolved state for an organization, defaults
// applied for modules without a stored row.
type ModuleFeature struct {
	Module  model.Module    `json:"module"`
	Enabled bool            `json:"enabled"`
	Config  json.RawMessage `json:"config,omitempty"`
}

// CatalogEntry describes one module to admin tooling: its default enablement
// and the JSON schema of its config payload, nil when the module takes none.
type CatalogEntry struct {
	Module         model.Module `json:"module"`
	DefaultEnabled bool         `json:"default_enabled"`
	ConfigSchema   any          `json:"config_schema,omitempty"`
}

type FeatureService interface {
	List(ctx context.Context, orgID int64) ([]ModuleFeature, error)
	Set(ctx context.Context, orgID int64, module model.Module, enabled bool, config json.RawMessage) (*model.OrgFeature, error)
	Refresh(ctx context.Context, orgID int64) error
	Catalog() []CatalogEntry
}

type featureService struct {
	featureStore store.OrgFeatureStore
	flags        *access.FlagCache
	publisher    bus.Publisher
}

func NewFeatureService(featureStore store.OrgFeatureStore, flags *access.FlagCache, publisher bus.Publisher) FeatureService {
	return &featureService{
		featureStore: featureStore,
		flags:        flags,
		publisher:    publisher,
	}
}

// List resolves every module through the flag cache, so reads here see the
// same snapshot the navigation projector sees.
func (s *featureService) List(ctx context.Context, orgID int64) ([]ModuleFeature, error) {
	fs, err := s.flags.Get(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("getting flags: %w", err)
	}

	features := make([]ModuleFeature, 0, len(model.AllModules))
	for _, m := range model.AllModules {
		features = append(features, ModuleFeature{
			Module:  m,
			Enabled: fs.ModuleEnabled(m),
			Config:  fs.Config(m),
		})
	}
	return features, nil
}

// Set upserts the (organization, module) row, then drops the local cache
// entry and tells other replicas to drop theirs. A failed publish is logged
// but does not fail the write; the other replicas converge at the soft TTL.
func (s *featureService) Set(ctx context.Context, orgID int64, module model.Module, enabled bool, config json.RawMessage) (*model.OrgFeature, error) {
	if !module.IsValid() {
		return nil, ErrUnknownModule
	}

	if err := validateModuleConfig(module, config); err != nil {
		return nil, err
	}

	feature := &model.OrgFeature{
		ID:             id.New(),
		OrganizationID: orgID,
		Module:         module,
		Enabled:        enabled,
		Config:         config,
	}

	if err := s.featureStore.Upsert(ctx, feature); err != nil {
		slog.ErrorContext(ctx, "failed to upsert org feature",
			"error", err,
			"organization_id", orgID,
			"module", module,
		)
		return nil, fmt.Errorf("upserting feature: %w", err)
	}

	s.flags.Invalidate(orgID)
	if err := s.publisher.PublishInvalidate(ctx, orgID); err != nil {
		slog.ErrorContext(ctx, "failed to publish flag invalidation",
			"error", err,
			"organization_id", orgID,
		)
	}

	slog.InfoContext(ctx, "org feature updated",
		"organization_id", orgID,
		"module", module,
		"enabled", enabled,
	)

	return feature, nil
}

// Refresh drops the organization's cached snapshot everywhere without
// changing any rows.
func (s *featureService) Refresh(ctx context.Context, orgID int64) error {
	s.flags.Invalidate(orgID)
	if err := s.publisher.PublishInvalidate(ctx, orgID); err != nil {
		return fmt.Errorf("publishing invalidation: %w", err)
	}
	return nil
}

func (s *featureService) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(model.AllModules))
	for _, m := range model.AllModules {
		entry := CatalogEntry{
			Module:         m,
			DefaultEnabled: m.DefaultEnabled(),
		}
		if newConfig, ok := moduleConfigs[m]; ok {
			entry.ConfigSchema = generateConfigSchema(newConfig())
		}
		entries = append(entries, entry)
	}
	return entries
}

func generateConfigSchema(prototype any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(prototype)
}

// validateModuleConfig rejects payloads that do not decode into the module's
// config type. Modules without a config type accept only an empty payload.
func validateModuleConfig(module model.Module, config json.RawMessage) error {
	if len(config) == 0 {
		return nil
	}

	newConfig, ok := moduleConfigs[module]
	if !ok {
		return fmt.Errorf("%w: module %s takes no config", ErrInvalidFeatureConfig, module)
	}

	dec := json.NewDecoder(bytes.NewReader(config))
	dec.DisallowUnknownFields()
	if err := dec.Decode(newConfig()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFeatureConfig, err)
	}

	return nil
}
