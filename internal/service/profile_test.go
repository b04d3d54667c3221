package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
	"ordersnapr.app/server/internal/store"
)

var _ = Describe("ProfileService", func() {
	var (
		svc      service.ProfileService
		profiles *mockProfileStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		profiles = &mockProfileStore{}
		svc = service.NewProfileService(profiles)
	})

	pending := func(_ context.Context, pid int64) (*model.Profile, error) {
		return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusPending}, nil
	}

	Describe("Approve", func() {
		It("moves a pending profile to approved", func() {
			profiles.getByIDFn = pending
			profiles.setApprovalStatusFn = func(_ context.Context, pid int64, status model.ApprovalStatus) (*model.Profile, error) {
				Expect(status).To(Equal(model.ApprovalStatusApproved))
				return &model.Profile{ID: pid, ApprovalStatus: status}, nil
			}

			profile, err := svc.Approve(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ApprovalStatus).To(Equal(model.ApprovalStatusApproved))
		})

		It("refuses profiles that already left pending", func() {
			profiles.getByIDFn = func(_ context.Context, pid int64) (*model.Profile, error) {
				return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusRejected}, nil
			}

			_, err := svc.Approve(ctx, 5)
			Expect(err).To(MatchError(service.ErrNotPending))
		})

		It("maps a missing profile to ErrProfileNotFound", func() {
			profiles.getByIDFn = func(_ context.Context, _ int64) (*model.Profile, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Approve(ctx, 5)
			Expect(err).To(MatchError(service.ErrProfileNotFound))
		})
	})

	Describe("Reject", func() {
		It("moves a pending profile to rejected", func() {
			profiles.getByIDFn = pending
			profiles.setApprovalStatusFn = func(_ context.Context, pid int64, status model.ApprovalStatus) (*model.Profile, error) {
				Expect(status).To(Equal(model.ApprovalStatusRejected))
				return &model.Profile{ID: pid, ApprovalStatus: status}, nil
			}

			profile, err := svc.Reject(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ApprovalStatus).To(Equal(model.ApprovalStatusRejected))
		})

		It("refuses an approved profile", func() {
			profiles.getByIDFn = func(_ context.Context, pid int64) (*model.Profile, error) {
				return &model.Profile{ID: pid, ApprovalStatus: model.ApprovalStatusApproved}, nil
			}

			_, err := svc.Reject(ctx, 5)
			Expect(err).To(MatchError(service.ErrNotPending))
		})
	})
})
