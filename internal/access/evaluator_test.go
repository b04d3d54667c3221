package access_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var _ = Describe("Evaluator", func() {
	var (
		ctx      context.Context
		profiles *mockProfileGetter
		eval     *access.Evaluator
	)

	orgID := int64(42)

	BeforeEach(func() {
		ctx = context.Background()
		profiles = &mockProfileGetter{}
		eval = access.NewEvaluator(profiles)
	})

	profileReturning := func(p *model.Profile) {
		profiles.getByIDFn = func(_ context.Context, _ int64) (*model.Profile, error) {
			return p, nil
		}
	}

	Describe("super admins", func() {
		It("can access every module regardless of approval and org state", func() {
			profileReturning(&model.Profile{
				ID:             1,
				ApprovalStatus: model.ApprovalStatusRejected,
				IsSuperAdmin:   true,
			})

			d, err := eval.Evaluate(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeTrue())
			for _, m := range model.AllModules {
				Expect(d.CanAccess(m)).To(BeTrue(), string(m))
			}
		})
	})

	Describe("free-tier profiles", func() {
		BeforeEach(func() {
			profileReturning(&model.Profile{
				ID:             2,
				ApprovalStatus: model.ApprovalStatusPending,
			})
		})

		It("only accesses the free allow-list", func() {
			d, err := eval.Evaluate(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeFalse())

			Expect(d.CanAccess(model.ModuleWorkOrders)).To(BeTrue())
			Expect(d.CanAccess(model.ModuleProperties)).To(BeTrue())
			Expect(d.CanAccess(model.ModuleForms)).To(BeTrue())
			Expect(d.CanAccess(model.ModuleCalendar)).To(BeTrue())

			Expect(d.CanAccess(model.ModuleInvoicing)).To(BeFalse())
			Expect(d.CanAccess(model.ModuleInventory)).To(BeFalse())
			Expect(d.CanAccess(model.ModuleReports)).To(BeFalse())
			Expect(d.CanAccess(model.ModuleFiles)).To(BeFalse())
			Expect(d.CanAccess(model.ModulePointOfSale)).To(BeFalse())
			Expect(d.CanAccess(model.ModuleCustomerPortal)).To(BeFalse())
		})

		It("gains every module after joining an organization, same session", func() {
			d, err := eval.Evaluate(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.CanAccess(model.ModuleInvoicing)).To(BeFalse())
			Expect(d.CanAccess(model.ModuleWorkOrders)).To(BeTrue())

			// The profile joins an organization; the next evaluation sees it
			// without any session change.
			profileReturning(&model.Profile{
				ID:             2,
				ApprovalStatus: model.ApprovalStatusPending,
				OrganizationID: &orgID,
			})

			d, err = eval.Evaluate(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeTrue())
			Expect(d.CanAccess(model.ModuleInvoicing)).To(BeTrue())
			Expect(d.CanAccess(model.ModuleWorkOrders)).To(BeTrue())
		})
	})

	Describe("organization members", func() {
		It("grants premium access and every module", func() {
			profileReturning(&model.Profile{
				ID:             3,
				ApprovalStatus: model.ApprovalStatusPending,
				OrganizationID: &orgID,
			})

			d, err := eval.Evaluate(ctx, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeTrue())
			for _, m := range model.AllModules {
				Expect(d.CanAccess(m)).To(BeTrue(), string(m))
			}
		})
	})

	Describe("approved individuals", func() {
		It("grants premium access without an organization", func() {
			profileReturning(&model.Profile{
				ID:             4,
				ApprovalStatus: model.ApprovalStatusApproved,
			})

			d, err := eval.Evaluate(ctx, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeTrue())
			Expect(d.HasOrganization()).To(BeFalse())
		})
	})

	Describe("missing identity", func() {
		It("returns the zero decision for profile ID 0", func() {
			d, err := eval.Evaluate(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, m := range model.AllModules {
				Expect(d.CanAccess(m)).To(BeFalse(), string(m))
			}
		})

		It("returns the zero decision for an unknown profile", func() {
			profiles.getByIDFn = func(_ context.Context, _ int64) (*model.Profile, error) {
				return nil, store.ErrNotFound
			}

			d, err := eval.Evaluate(ctx, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.CanAccess(model.ModuleWorkOrders)).To(BeFalse())
		})
	})

	Describe("store failures", func() {
		It("fails closed: every module denied", func() {
			profiles.getByIDFn = func(_ context.Context, _ int64) (*model.Profile, error) {
				return nil, errors.New("connection reset")
			}

			d, err := eval.Evaluate(ctx, 5)
			Expect(err).To(HaveOccurred())
			Expect(d.HasPremiumAccess).To(BeFalse())
			for _, m := range model.AllModules {
				Expect(d.CanAccess(m)).To(BeFalse(), string(m))
			}
		})
	})
})

var _ = Describe("FreeTierModule", func() {
	It("matches what a free-tier decision can access", func() {
		d := access.EvaluateProfile(&model.Profile{
			ID:             9,
			ApprovalStatus: model.ApprovalStatusPending,
		})
		for _, m := range model.AllModules {
			Expect(access.FreeTierModule(m)).To(Equal(d.CanAccess(m)), string(m))
		}
	})
})
