package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("PropertyService", func() {
	var (
		svc        service.PropertyService
		properties *mockPropertyStore
		profiles   *mockProfileStore
		ctx        context.Context
	)

	orgID := int64(42)

	BeforeEach(func() {
		ctx = context.Background()
		properties = &mockPropertyStore{}
		profiles = &mockProfileStore{}
		svc = service.NewPropertyService(properties, access.NewEvaluator(profiles))
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("free-tier creation limit", func() {
		BeforeEach(func() {
			profiles.getByIDFn = func(_ context.Context, pid int64) (*model.Profile, error) {
				return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusPending}, nil
			}
		})

		It("allows creation below the cap", func() {
			properties.countByProfile = func(_ context.Context, _ int64) (int64, error) {
				return service.FreeTierPropertyLimit - 1, nil
			}

			prop, err := svc.Create(ctx, 1, service.CreatePropertyInput{Name: "Main St"})
			Expect(err).NotTo(HaveOccurred())
			Expect(prop.Name).To(Equal("Main St"))
			Expect(properties.createCalls).To(Equal(1))
		})

		It("rejects creation at the cap", func() {
			properties.countByProfile = func(_ context.Context, _ int64) (int64, error) {
				return service.FreeTierPropertyLimit, nil
			}

			_, err := svc.Create(ctx, 1, service.CreatePropertyInput{Name: "Main St"})
			Expect(err).To(MatchError(service.ErrFreeTierLimit))
			Expect(properties.createCalls).To(BeZero())
		})

		It("does not apply to premium profiles", func() {
			profiles.getByIDFn = func(_ context.Context, pid int64) (*model.Profile, error) {
				return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusPending, OrganizationID: &orgID}, nil
			}
			properties.countByProfile = func(_ context.Context, _ int64) (int64, error) {
				Fail("premium creation should not count records")
				return 0, nil
			}

			_, err := svc.Create(ctx, 1, service.CreatePropertyInput{Name: "Main St"})
			Expect(err).NotTo(HaveOccurred())
			Expect(properties.createCalls).To(Equal(1))
		})
	})
})
