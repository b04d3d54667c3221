package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

const (
	InviteTokenLength = 32
	InviteExpiryDays  = 7
)

var (
	ErrInviteNotFound    = errors.New("invitation not found")
	ErrInviteExpired     = errors.New("invitation has expired")
	ErrInviteAlreadyUsed = errors.New("invitation has already been used")
	ErrInviteRevoked     = errors.New("invitation has been revoked")
	ErrEmailMismatch     = errors.New("authenticated email does not match invitation")
	ErrAlreadyMember     = errors.New("profile already belongs to an organization")
)

type InvitationService interface {
	Create(ctx context.Context, orgID int64, email string, invitedBy *int64) (*model.Invitation, string, error)
	ValidateToken(ctx context.Context, token string) (*model.Invitation, error)
	Accept(ctx context.Context, token string, profile *model.Profile) (*model.Invitation, error)
	Revoke(ctx context.Context, orgID, id int64) (*model.Invitation, error)
	List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Invitation, error)
}

type invitationService struct {
	invStore     store.InvitationStore
	tx           TxRunner
	dashboardURL string
}

func NewInvitationService(invStore store.InvitationStore, tx TxRunner, dashboardURL string) InvitationService {
	return &invitationService{
		invStore:     invStore,
		tx:           tx,
		dashboardURL: dashboardURL,
	}
}

func (s *invitationService) Create(ctx context.Context, orgID int64, email string, invitedBy *int64) (*model.Invitation, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	token, err := generateSecureToken(InviteTokenLength)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	inv := &model.Invitation{
		ID:             id.New(),
		OrganizationID: orgID,
		Email:          email,
		Token:          token,
		Status:         model.InvitationStatusPending,
		InvitedBy:      invitedBy,
		ExpiresAt:      time.Now().Add(InviteExpiryDays * 24 * time.Hour),
	}

	if err := s.invStore.Create(ctx, inv); err != nil {
		return nil, "", fmt.Errorf("creating invitation: %w", err)
	}

	inviteURL := fmt.Sprintf("%s/invite?token=%s", s.dashboardURL, token)

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"organization_id", orgID,
		"email", email,
		"expires_at", inv.ExpiresAt,
	)

	return inv, inviteURL, nil
}

func (s *invitationService) ValidateToken(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invStore.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Try to get by token to determine if expired/used/revoked
			inv, err := s.invStore.GetByToken(ctx, token)
			if err != nil {
				return nil, ErrInviteNotFound
			}
			switch inv.Status {
			case model.InvitationStatusAccepted:
				return nil, ErrInviteAlreadyUsed
			case model.InvitationStatusRevoked:
				return nil, ErrInviteRevoked
			case model.InvitationStatusExpired:
				return nil, ErrInviteExpired
			default:
				if time.Now().After(inv.ExpiresAt) {
					return nil, ErrInviteExpired
				}
				return nil, ErrInviteNotFound
			}
		}
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	return inv, nil
}

// Accept marks the invitation accepted and joins the profile to the inviting
// organization in one transaction. Membership takes effect on the profile's
// next evaluation; no new login is needed.
func (s *invitationService) Accept(ctx context.Context, token string, profile *model.Profile) (*model.Invitation, error) {
	inv, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(inv.Email, profile.Email) {
		slog.WarnContext(ctx, "email mismatch on invitation acceptance",
			"invitation_email", inv.Email,
			"profile_email", profile.Email,
			"invitation_id", inv.ID,
		)
		return nil, ErrEmailMismatch
	}

	if profile.OrganizationID != nil {
		return nil, ErrAlreadyMember
	}

	var accepted *model.Invitation
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		accepted, err = stores.Invitations().Accept(ctx, inv.ID, profile.ID)
		if err != nil {
			return fmt.Errorf("accepting invitation: %w", err)
		}

		if _, err := stores.Profiles().SetOrganization(ctx, profile.ID, &inv.OrganizationID); err != nil {
			return fmt.Errorf("joining organization: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"organization_id", inv.OrganizationID,
		"profile_id", profile.ID,
	)

	return accepted, nil
}

func (s *invitationService) Revoke(ctx context.Context, orgID, id int64) (*model.Invitation, error) {
	inv, err := s.invStore.Revoke(ctx, id, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("revoking invitation: %w", err)
	}

	slog.InfoContext(ctx, "invitation revoked",
		"invitation_id", id,
		"email", inv.Email,
	)

	return inv, nil
}

func (s *invitationService) List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Invitation, error) {
	return s.invStore.ListByOrganization(ctx, orgID, limit, offset)
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
