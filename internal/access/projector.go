package access

import (
	"ordersnapr.app/server/internal/model"
)

// FreeTierQuickAddLimit caps the quick-add selection for free-tier profiles.
const FreeTierQuickAddLimit = 2

// NavItem is one entry of the application navigation. Module is nil for
// ungated items that every authenticated profile sees.
type NavItem struct {
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Module *model.Module `json:"module,omitempty"`
}

func gated(name, path string, m model.Module) NavItem {
	return NavItem{Name: name, Path: path, Module: &m}
}

// navItems is the static route declaration. Projection filters this list;
// declaration order is the display order and is never re-ranked.
var navItems = []NavItem{
	{Name: "Dashboard", Path: "/dashboard"},
	gated("Work Orders", "/work-orders", model.ModuleWorkOrders),
	gated("Calendar", "/calendar", model.ModuleCalendar),
	gated("Properties", "/properties", model.ModuleProperties),
	gated("Forms", "/forms", model.ModuleForms),
	gated("Invoicing", "/invoices", model.ModuleInvoicing),
	gated("Inventory", "/inventory", model.ModuleInventory),
	gated("Reports", "/reports", model.ModuleReports),
	gated("Files", "/files", model.ModuleFiles),
	gated("Point of Sale", "/point-of-sale", model.ModulePointOfSale),
	gated("Customer Portal", "/customer-portal", model.ModuleCustomerPortal),
	{Name: "Notes", Path: "/notes"},
	{Name: "Settings", Path: "/settings"},
}

// QuickAddShortcut is one kind of quick-add action. Module is nil for
// shortcuts that are not tied to a gated module.
type QuickAddShortcut struct {
	Kind   string        `json:"kind"`
	Label  string        `json:"label"`
	Module *model.Module `json:"module,omitempty"`
}

func shortcut(kind, label string, m model.Module) QuickAddShortcut {
	return QuickAddShortcut{Kind: kind, Label: label, Module: &m}
}

var quickAddCatalog = []QuickAddShortcut{
	shortcut("work_order", "New work order", model.ModuleWorkOrders),
	shortcut("property", "New property", model.ModuleProperties),
	shortcut("invoice", "New invoice", model.ModuleInvoicing),
	{Kind: "note", Label: "New note"},
	shortcut("calendar_event", "Schedule visit", model.ModuleCalendar),
}

// QuickAddCatalog returns the full shortcut catalog in declaration order.
func QuickAddCatalog() []QuickAddShortcut {
	return quickAddCatalog
}

// ShortcutByKind resolves a kind to its catalog entry; ok is false for kinds
// the catalog does not declare.
func ShortcutByKind(kind string) (QuickAddShortcut, bool) {
	for _, s := range quickAddCatalog {
		if s.Kind == kind {
			return s, true
		}
	}
	return QuickAddShortcut{}, false
}

// QuickAddProjection is the shortcut menu as the client should render it.
// Suppressed marks the warning state where quick-add is enabled but every
// selected shortcut projected away.
type QuickAddProjection struct {
	Enabled    bool               `json:"enabled"`
	Items      []QuickAddShortcut `json:"items"`
	Suppressed bool               `json:"suppressed"`
}

// moduleVisible applies the two gating layers: the tier decision and, for
// organization members, the org's module flag. When the org's flags could
// not be fetched (flags == nil with an org present) the module is hidden.
func moduleVisible(d Decision, flags *FlagSet, m model.Module) bool {
	if !d.CanAccess(m) {
		return false
	}
	if !d.HasOrganization() {
		return true
	}
	return flags.ModuleEnabled(m)
}

// ProjectNavigation filters the static route list down to what the profile
// can see. Ungated items survive even when every module is hidden.
func ProjectNavigation(d Decision, flags *FlagSet) []NavItem {
	visible := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if item.Module == nil {
			visible = append(visible, item)
			continue
		}
		if moduleVisible(d, flags, *item.Module) {
			visible = append(visible, item)
		}
	}
	return visible
}

// ProjectQuickAdd filters the profile's quick-add selection down to shortcuts
// whose module is visible, preserving the selection order. A nil preference
// means quick-add was never configured: disabled, nothing to suppress.
func ProjectQuickAdd(d Decision, flags *FlagSet, pref *model.UserPreference) QuickAddProjection {
	if pref == nil || !pref.QuickAddEnabled {
		return QuickAddProjection{Items: []QuickAddShortcut{}}
	}

	items := make([]QuickAddShortcut, 0, len(pref.QuickAddItems))
	for _, kind := range pref.QuickAddItems {
		s, ok := ShortcutByKind(kind)
		if !ok {
			continue
		}
		if s.Module != nil && !moduleVisible(d, flags, *s.Module) {
			continue
		}
		items = append(items, s)
	}

	return QuickAddProjection{
		Enabled:    true,
		Items:      items,
		Suppressed: len(items) == 0,
	}
}
