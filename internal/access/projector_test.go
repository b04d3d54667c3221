package access_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
)

var _ = Describe("Projector", func() {
	orgID := int64(7)

	freeDecision := access.EvaluateProfile(&model.Profile{
		ID:             1,
		ApprovalStatus: model.ApprovalStatusPending,
	})
	orgDecision := access.EvaluateProfile(&model.Profile{
		ID:             2,
		ApprovalStatus: model.ApprovalStatusPending,
		OrganizationID: &orgID,
	})

	flagsFor := func(rows []model.OrgFeature) *access.FlagSet {
		fetcher := &mockFlagFetcher{}
		fetcher.SetListFn(func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
			return rows, nil
		})
		cache := access.NewFlagCache(fetcher, 10*time.Minute, 30*time.Minute)
		fs, err := cache.Get(context.Background(), orgID)
		Expect(err).NotTo(HaveOccurred())
		return fs
	}

	names := func(items []access.NavItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Name
		}
		return out
	}

	Describe("navigation", func() {
		It("shows free-tier profiles only ungated items and the free allow-list", func() {
			nav := access.ProjectNavigation(freeDecision, nil)
			Expect(names(nav)).To(Equal([]string{
				"Dashboard", "Work Orders", "Calendar", "Properties", "Forms", "Notes", "Settings",
			}))
		})

		It("preserves the static declaration order for org members", func() {
			nav := access.ProjectNavigation(orgDecision, flagsFor(nil))
			// inventory, point_of_sale and customer_portal default off
			Expect(names(nav)).To(Equal([]string{
				"Dashboard", "Work Orders", "Calendar", "Properties", "Forms",
				"Invoicing", "Reports", "Files", "Notes", "Settings",
			}))
		})

		It("hides modules the organization disabled", func() {
			nav := access.ProjectNavigation(orgDecision, flagsFor([]model.OrgFeature{
				{OrganizationID: orgID, Module: model.ModuleInvoicing, Enabled: false},
				{OrganizationID: orgID, Module: model.ModuleInventory, Enabled: true},
			}))
			Expect(names(nav)).To(ContainElement("Inventory"))
			Expect(names(nav)).NotTo(ContainElement("Invoicing"))
		})

		It("hides all gated items when the org's flags could not be fetched", func() {
			nav := access.ProjectNavigation(orgDecision, nil)
			Expect(names(nav)).To(Equal([]string{"Dashboard", "Notes", "Settings"}))
		})

		It("shows nothing gated for the zero decision", func() {
			nav := access.ProjectNavigation(access.Decision{}, nil)
			Expect(names(nav)).To(Equal([]string{"Dashboard", "Notes", "Settings"}))
		})
	})

	Describe("quick-add", func() {
		pref := func(enabled bool, items ...string) *model.UserPreference {
			return &model.UserPreference{
				ProfileID:       1,
				QuickAddEnabled: enabled,
				QuickAddItems:   items,
			}
		}

		kinds := func(p access.QuickAddProjection) []string {
			out := make([]string, len(p.Items))
			for i, s := range p.Items {
				out[i] = s.Kind
			}
			return out
		}

		It("keeps the selection order", func() {
			p := access.ProjectQuickAdd(orgDecision, flagsFor(nil), pref(true, "invoice", "work_order", "note"))
			Expect(kinds(p)).To(Equal([]string{"invoice", "work_order", "note"}))
			Expect(p.Suppressed).To(BeFalse())
		})

		It("drops shortcuts whose module is not visible", func() {
			p := access.ProjectQuickAdd(freeDecision, nil, pref(true, "invoice", "work_order"))
			Expect(kinds(p)).To(Equal([]string{"work_order"}))
		})

		It("drops unknown kinds from stale selections", func() {
			p := access.ProjectQuickAdd(freeDecision, nil, pref(true, "work_order", "purchase_order"))
			Expect(kinds(p)).To(Equal([]string{"work_order"}))
		})

		It("suppresses the menu when enabled but everything projected away", func() {
			p := access.ProjectQuickAdd(freeDecision, nil, pref(true, "invoice"))
			Expect(p.Enabled).To(BeTrue())
			Expect(p.Items).To(BeEmpty())
			Expect(p.Suppressed).To(BeTrue())
		})

		It("is disabled and not suppressed when quick-add is off", func() {
			p := access.ProjectQuickAdd(freeDecision, nil, pref(false, "work_order"))
			Expect(p.Enabled).To(BeFalse())
			Expect(p.Suppressed).To(BeFalse())
		})

		It("is disabled when no preference exists", func() {
			p := access.ProjectQuickAdd(freeDecision, nil, nil)
			Expect(p.Enabled).To(BeFalse())
			Expect(p.Items).To(BeEmpty())
		})
	})
})

var _ = Describe("ShortcutByKind", func() {
	It("resolves every cataloged kind to its entry", func() {
		for _, want := range access.QuickAddCatalog() {
			got, ok := access.ShortcutByKind(want.Kind)
			Expect(ok).To(BeTrue(), want.Kind)
			Expect(got).To(Equal(want))
		}
	})

	It("reports unknown kinds", func() {
		_, ok := access.ShortcutByKind("purchase_order")
		Expect(ok).To(BeFalse())
	})
})
