package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/core/config"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

const sessionLifetime = 7 * 24 * time.Hour

var (
	ErrInvalidCode     = errors.New("invalid authorization code")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSessionExpired  = errors.New("session expired")
)

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.Profile, *ProfileContext, error)
	Logout(ctx context.Context, sessionID int64) error
}

// ProfileContext is the resolved tenancy of an authenticated profile.
type ProfileContext struct {
	OrganizationID  *int64
	WorkspaceID     *int64
	HasOrganization bool
	IsSuperAdmin    bool
}

type authService struct {
	profileStore   store.ProfileStore
	sessionStore   store.SessionStore
	workspaceStore store.WorkspaceStore
	cfg            config.WorkOSConfig
	dashboardURL   string
}

func NewAuthService(
	profileStore store.ProfileStore,
	sessionStore store.SessionStore,
	workspaceStore store.WorkspaceStore,
	cfg config.WorkOSConfig,
	dashboardURL string,
) AuthService {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &authService{
		profileStore:   profileStore,
		sessionStore:   sessionStore,
		workspaceStore: workspaceStore,
		cfg:            cfg,
		dashboardURL:   dashboardURL,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error) {
	authResponse, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	workosUser := authResponse.User

	var avatarURL *string
	if workosUser.ProfilePictureURL != "" {
		avatarURL = &workosUser.ProfilePictureURL
	}

	profile := &model.Profile{
		ID:             id.New(),
		Name:           buildProfileName(workosUser),
		Email:          workosUser.Email,
		AvatarURL:      avatarURL,
		WorkOSID:       &workosUser.ID,
		ApprovalStatus: model.ApprovalStatusPending,
	}

	if err := s.profileStore.UpsertByWorkOSID(ctx, profile); err != nil {
		slog.ErrorContext(ctx, "failed to upsert profile",
			"error", err,
			"email", profile.Email,
			"workos_id", workosUser.ID,
		)
		return nil, nil, fmt.Errorf("upserting profile: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		ProfileID: profile.ID,
		ExpiresAt: time.Now().Add(sessionLifetime),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"profile_id", profile.ID,
		)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "profile authenticated",
		"profile_id", profile.ID,
		"email", profile.Email,
		"session_id", session.ID,
	)

	return profile, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.Profile, *ProfileContext, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrSessionExpired
		}
		return nil, nil, fmt.Errorf("getting session: %w", err)
	}

	profile, err := s.profileStore.GetByID(ctx, session.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, fmt.Errorf("getting profile: %w", err)
	}

	profileCtx := &ProfileContext{
		IsSuperAdmin: profile.IsSuperAdmin,
	}

	// Organization membership is re-read on every validation so a mid-session
	// join is visible without a new login.
	if profile.OrganizationID != nil {
		profileCtx.HasOrganization = true
		profileCtx.OrganizationID = profile.OrganizationID

		workspaces, err := s.workspaceStore.ListByOrganization(ctx, *profile.OrganizationID)
		if err != nil {
			return nil, nil, fmt.Errorf("listing workspaces: %w", err)
		}
		if len(workspaces) > 0 {
			profileCtx.WorkspaceID = &workspaces[0].ID
		}
	}

	return profile, profileCtx, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func buildProfileName(user usermanagement.User) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	return user.Email
}
