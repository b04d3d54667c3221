package model

import (
	"encoding/json"
	"time"
)

// Module identifies a product area whose visibility is toggled per
// organization.
type Module string

const (
	ModuleWorkOrders     Module = "work_orders"
	ModuleCalendar       Module = "calendar"
	ModuleProperties     Module = "properties"
	ModuleForms          Module = "forms"
	ModuleInvoicing      Module = "invoicing"
	ModuleInventory      Module = "inventory"
	ModuleReports        Module = "reports"
	ModuleFiles          Module = "files"
	ModulePointOfSale    Module = "point_of_sale"
	ModuleCustomerPortal Module = "customer_portal"
)

// AllModules is the fixed module enumeration in declaration order. Navigation
// projection preserves this order; it is never ranked dynamically.
var AllModules = []Module{
	ModuleWorkOrders,
	ModuleCalendar,
	ModuleProperties,
	ModuleForms,
	ModuleInvoicing,
	ModuleInventory,
	ModuleReports,
	ModuleFiles,
	ModulePointOfSale,
	ModuleCustomerPortal,
}

func (m Module) IsValid() bool {
	for _, known := range AllModules {
		if m == known {
			return true
		}
	}
	return false
}

// DefaultEnabled reports whether the module is on for organizations that have
// no org_features row for it. Specialty modules are opt-in.
func (m Module) DefaultEnabled() bool {
	switch m {
	case ModuleInventory, ModulePointOfSale, ModuleCustomerPortal:
		return false
	default:
		return true
	}
}

// OrgFeature is one (organization, module) enablement record. At most one row
// exists per pair; writes go through an upsert.
type OrgFeature struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	Module         Module          `json:"module"`
	Enabled        bool            `json:"enabled"`
	Config         json.RawMessage `json:"config,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
