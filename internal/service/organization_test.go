package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
	"ordersnapr.app/server/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		svc          service.OrganizationService
		mockOrg      *mockOrganizationStore
		mockWork     *mockWorkspaceStore
		mockProfiles *mockProfileStore
		mockFeatures *mockOrgFeatureStore
		ctx          context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockOrg = &mockOrganizationStore{}
		mockWork = &mockWorkspaceStore{}
		mockProfiles = &mockProfileStore{}
		mockFeatures = &mockOrgFeatureStore{}

		mockOrg.getBySlugFn = func(_ context.Context, _ string) (*model.Organization, error) {
			return nil, store.ErrNotFound
		}
		mockWork.getByOrgAndSlugFn = func(_ context.Context, _ int64, _ string) (*model.Workspace, error) {
			return nil, store.ErrNotFound
		}

		svc = service.NewOrganizationService(mockOrg, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{
					orgs:     mockOrg,
					works:    mockWork,
					profiles: mockProfiles,
					features: mockFeatures,
				})
			},
		})
		Expect(id.Init(1)).To(Succeed())
	})

	It("creates the organization with a default workspace", func() {
		mockOrg.createFn = func(_ context.Context, org *model.Organization) error {
			Expect(org.Slug).To(Equal("acme-field-services"))
			return nil
		}
		mockWork.createFn = func(_ context.Context, ws *model.Workspace) error {
			Expect(ws.Name).To(Equal("Acme Field Services workspace"))
			Expect(ws.OrganizationID).NotTo(BeZero())
			return nil
		}

		org, err := svc.Create(ctx, "Acme Field Services", nil, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(org.Slug).To(Equal("acme-field-services"))
		Expect(org.AdminProfileID).To(Equal(int64(10)))
		Expect(mockOrg.createCalls).To(Equal(1))
		Expect(mockWork.createCalls).To(Equal(1))
	})

	It("honors a provided slug", func() {
		mockOrg.getBySlugFn = func(_ context.Context, slug string) (*model.Organization, error) {
			Expect(slug).To(Equal("custom-slug"))
			return nil, store.ErrNotFound
		}

		org, err := svc.Create(ctx, "Acme", strPtr("custom-slug"), 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(org.Slug).To(Equal("custom-slug"))
	})

	It("adds a numeric suffix when the slug is taken", func() {
		mockOrg.getBySlugFn = func(_ context.Context, slug string) (*model.Organization, error) {
			if slug == "acme" {
				return &model.Organization{}, nil // taken
			}
			return nil, store.ErrNotFound
		}

		org, err := svc.Create(ctx, "Acme", nil, 30)
		Expect(err).NotTo(HaveOccurred())
		Expect(org.Slug).To(Equal("acme-1"))
	})

	It("seeds one feature row per module with the module defaults", func() {
		_, err := svc.Create(ctx, "Acme", nil, 10)
		Expect(err).NotTo(HaveOccurred())

		Expect(mockFeatures.upsertCalls).To(Equal(len(model.AllModules)))

		seeded := map[model.Module]bool{}
		for _, f := range mockFeatures.upserted {
			seeded[f.Module] = f.Enabled
			Expect(f.Enabled).To(Equal(f.Module.DefaultEnabled()))
		}
		Expect(seeded).To(HaveLen(len(model.AllModules)))
		Expect(seeded[model.ModuleInventory]).To(BeFalse())
		Expect(seeded[model.ModuleInvoicing]).To(BeTrue())
	})

	It("links the admin profile to the new organization", func() {
		var linkedOrgID *int64
		mockProfiles.setOrganizationFn = func(_ context.Context, profileID int64, orgID *int64) (*model.Profile, error) {
			Expect(profileID).To(Equal(int64(10)))
			linkedOrgID = orgID
			return &model.Profile{ID: profileID, OrganizationID: orgID}, nil
		}

		org, err := svc.Create(ctx, "Acme", nil, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(mockProfiles.setOrganizationCalls).To(Equal(1))
		Expect(linkedOrgID).NotTo(BeNil())
		Expect(*linkedOrgID).To(Equal(org.ID))
	})

	It("aborts the transaction when linking fails", func() {
		mockProfiles.setOrganizationFn = func(_ context.Context, _ int64, _ *int64) (*model.Profile, error) {
			return nil, errors.New("connection reset")
		}

		_, err := svc.Create(ctx, "Acme", nil, 10)
		Expect(err).To(HaveOccurred())
	})
})
