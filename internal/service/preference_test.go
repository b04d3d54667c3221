package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
	"ordersnapr.app/server/internal/store"
)

var _ = Describe("PreferenceService", func() {
	var (
		svc      service.PreferenceService
		prefs    *mockUserPreferenceStore
		profiles *mockProfileStore
		features *mockOrgFeatureStore
		ctx      context.Context
	)

	orgID := int64(42)

	freeProfile := func(_ context.Context, pid int64) (*model.Profile, error) {
		return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusPending}, nil
	}
	orgProfile := func(_ context.Context, pid int64) (*model.Profile, error) {
		return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusPending, OrganizationID: &orgID}, nil
	}

	BeforeEach(func() {
		ctx = context.Background()
		prefs = &mockUserPreferenceStore{}
		profiles = &mockProfileStore{}
		features = &mockOrgFeatureStore{}

		gate := access.NewGate(
			access.NewEvaluator(profiles),
			access.NewFlagCache(features, 10*time.Minute, 30*time.Minute),
		)
		svc = service.NewPreferenceService(prefs, gate)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Get", func() {
		It("returns the stored preference when one exists", func() {
			prefs.getFn = func(_ context.Context, profileID int64, _ *int64) (*model.UserPreference, error) {
				return &model.UserPreference{ProfileID: profileID, QuickAddEnabled: false, QuickAddItems: []string{"note"}}, nil
			}

			pref, err := svc.Get(ctx, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pref.QuickAddEnabled).To(BeFalse())
			Expect(pref.QuickAddItems).To(Equal([]string{"note"}))
		})

		It("returns an unsaved default when none exists", func() {
			prefs.getFn = func(_ context.Context, _ int64, _ *int64) (*model.UserPreference, error) {
				return nil, store.ErrNotFound
			}

			pref, err := svc.Get(ctx, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pref.QuickAddEnabled).To(BeTrue())
			Expect(pref.QuickAddItems).To(BeEmpty())
			Expect(prefs.upserted).To(BeNil())
		})
	})

	Describe("UpdateQuickAdd", func() {
		It("persists a valid free-tier selection", func() {
			profiles.getByIDFn = freeProfile

			pref, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"work_order", "note"})
			Expect(err).NotTo(HaveOccurred())
			Expect(pref.QuickAddItems).To(Equal([]string{"work_order", "note"}))
			Expect(prefs.upserted).NotTo(BeNil())
		})

		It("rejects a third item for free-tier profiles and persists nothing", func() {
			profiles.getByIDFn = freeProfile

			_, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"work_order", "property", "note"})
			Expect(err).To(MatchError(service.ErrQuickAddLimit))
			Expect(prefs.upserted).To(BeNil())
		})

		It("allows more than two items once premium", func() {
			profiles.getByIDFn = orgProfile

			pref, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"work_order", "property", "invoice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(pref.QuickAddItems).To(HaveLen(3))
		})

		It("rejects kinds not in the catalog", func() {
			profiles.getByIDFn = freeProfile

			_, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"purchase_order"})
			Expect(err).To(MatchError(service.ErrUnknownQuickAddKind))
			Expect(prefs.upserted).To(BeNil())
		})

		It("rejects shortcuts whose module the profile cannot use", func() {
			profiles.getByIDFn = freeProfile

			_, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"invoice"})
			Expect(err).To(MatchError(service.ErrQuickAddLocked))
			Expect(prefs.upserted).To(BeNil())
		})

		It("rejects shortcuts whose module the organization disabled", func() {
			profiles.getByIDFn = orgProfile
			features.listByOrganizationFn = func(_ context.Context, _ int64) ([]model.OrgFeature, error) {
				return []model.OrgFeature{
					{OrganizationID: orgID, Module: model.ModuleInvoicing, Enabled: false},
				}, nil
			}

			_, err := svc.UpdateQuickAdd(ctx, 1, nil, true, []string{"invoice"})
			Expect(err).To(MatchError(service.ErrQuickAddLocked))
		})

		It("scopes the preference to a workspace when one is given", func() {
			profiles.getByIDFn = freeProfile

			_, err := svc.UpdateQuickAdd(ctx, 1, int64Ptr(9), true, []string{"note"})
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs.upserted.WorkspaceID).To(Equal(int64Ptr(9)))
		})
	})
})
