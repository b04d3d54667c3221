package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("InvitationService", func() {
	var (
		svc      service.InvitationService
		invs     *mockInvitationStore
		profiles *mockProfileStore
		ctx      context.Context
	)

	orgID := int64(7)

	validInvitation := func() *model.Invitation {
		return &model.Invitation{
			ID:             100,
			OrganizationID: orgID,
			Email:          "tech@example.com",
			Token:          "tok",
			Status:         model.InvitationStatusPending,
			ExpiresAt:      time.Now().Add(24 * time.Hour),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		invs = &mockInvitationStore{}
		profiles = &mockProfileStore{}
		svc = service.NewInvitationService(invs, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{invs: invs, profiles: profiles})
			},
		}, "http://localhost:3000")
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("creates an org-scoped invitation with a token link", func() {
			var created *model.Invitation
			invs.createFn = func(_ context.Context, inv *model.Invitation) error {
				created = inv
				return nil
			}

			inv, url, err := svc.Create(ctx, orgID, "  Tech@Example.COM ", int64Ptr(10))
			Expect(err).NotTo(HaveOccurred())
			Expect(inv.OrganizationID).To(Equal(orgID))
			Expect(inv.Email).To(Equal("tech@example.com"))
			Expect(url).To(ContainSubstring("/invite?token=" + created.Token))
			Expect(created.ExpiresAt).To(BeTemporally(">", time.Now()))
		})
	})

	Describe("Accept", func() {
		It("accepts and joins the profile to the organization in one transaction", func() {
			inv := validInvitation()
			invs.getValidByTokenFn = func(_ context.Context, token string) (*model.Invitation, error) {
				Expect(token).To(Equal("tok"))
				return inv, nil
			}
			invs.acceptFn = func(_ context.Context, invID, acceptedBy int64) (*model.Invitation, error) {
				Expect(invID).To(Equal(inv.ID))
				Expect(acceptedBy).To(Equal(int64(2)))
				accepted := *inv
				accepted.Status = model.InvitationStatusAccepted
				return &accepted, nil
			}
			profiles.setOrganizationFn = func(_ context.Context, profileID int64, joined *int64) (*model.Profile, error) {
				Expect(profileID).To(Equal(int64(2)))
				Expect(*joined).To(Equal(orgID))
				return &model.Profile{ID: profileID, OrganizationID: joined}, nil
			}

			accepted, err := svc.Accept(ctx, "tok", &model.Profile{ID: 2, Email: "tech@example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Status).To(Equal(model.InvitationStatusAccepted))
			Expect(profiles.setOrganizationCalls).To(Equal(1))
		})

		It("rejects a mismatched email", func() {
			invs.getValidByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return validInvitation(), nil
			}

			_, err := svc.Accept(ctx, "tok", &model.Profile{ID: 2, Email: "other@example.com"})
			Expect(err).To(MatchError(service.ErrEmailMismatch))
			Expect(invs.acceptCalls).To(BeZero())
		})

		It("rejects profiles that already belong to an organization", func() {
			invs.getValidByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				return validInvitation(), nil
			}

			other := int64(99)
			_, err := svc.Accept(ctx, "tok", &model.Profile{ID: 2, Email: "tech@example.com", OrganizationID: &other})
			Expect(err).To(MatchError(service.ErrAlreadyMember))
			Expect(invs.acceptCalls).To(BeZero())
		})

		It("reports why a dead token is invalid", func() {
			invs.getByTokenFn = func(_ context.Context, _ string) (*model.Invitation, error) {
				inv := validInvitation()
				inv.Status = model.InvitationStatusRevoked
				return inv, nil
			}

			_, err := svc.Accept(ctx, "tok", &model.Profile{ID: 2, Email: "tech@example.com"})
			Expect(err).To(MatchError(service.ErrInviteRevoked))
		})
	})
})
