package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/common"
	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type OrganizationService interface {
	Create(ctx context.Context, name string, slug *string, adminProfileID int64) (*model.Organization, error)
	Get(ctx context.Context, orgID int64) (*model.Organization, error)
}

type organizationService struct {
	orgStore store.OrganizationStore
	tx       TxRunner
}

func NewOrganizationService(orgStore store.OrganizationStore, tx TxRunner) OrganizationService {
	return &organizationService{
		orgStore: orgStore,
		tx:       tx,
	}
}

// Create builds the organization, its default workspace and the default
// feature rows, and links the admin profile, all in one transaction. A
// profile gains premium access the moment this commits.
func (s *organizationService) Create(ctx context.Context, name string, slug *string, adminProfileID int64) (*model.Organization, error) {
	var createdOrg *model.Organization

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		orgStore := stores.Organizations()
		workspaceStore := stores.Workspaces()

		finalSlug, err := s.ensureOrgSlug(ctx, orgStore, name, slug)
		if err != nil {
			return err
		}

		org := &model.Organization{
			ID:             id.New(),
			AdminProfileID: adminProfileID,
			Name:           name,
			Slug:           finalSlug,
		}

		if err := orgStore.Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		if err := s.createDefaultWorkspace(ctx, workspaceStore, org, adminProfileID); err != nil {
			return fmt.Errorf("creating default workspace: %w", err)
		}

		if err := seedDefaultFeatures(ctx, stores.OrgFeatures(), org.ID); err != nil {
			return fmt.Errorf("seeding default features: %w", err)
		}

		if _, err := stores.Profiles().SetOrganization(ctx, adminProfileID, &org.ID); err != nil {
			return fmt.Errorf("linking admin profile: %w", err)
		}

		createdOrg = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"organization_id", createdOrg.ID,
		"slug", createdOrg.Slug,
		"admin_profile_id", adminProfileID,
	)

	return createdOrg, nil
}

func (s *organizationService) Get(ctx context.Context, orgID int64) (*model.Organization, error) {
	org, err := s.orgStore.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ensureOrgSlug(ctx context.Context, orgStore store.OrganizationStore, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

func (s *organizationService) createDefaultWorkspace(ctx context.Context, workspaceStore store.WorkspaceStore, org *model.Organization, adminProfileID int64) error {
	wsSlug, err := s.ensureWorkspaceSlug(ctx, workspaceStore, org.ID, org.Name)
	if err != nil {
		return err
	}

	ws := &model.Workspace{
		ID:             id.New(),
		OrganizationID: org.ID,
		AdminProfileID: adminProfileID,
		Name:           fmt.Sprintf("%s workspace", org.Name),
		Slug:           wsSlug,
	}

	if err := workspaceStore.Create(ctx, ws); err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}

	return nil
}

func (s *organizationService) ensureWorkspaceSlug(ctx context.Context, workspaceStore store.WorkspaceStore, orgID int64, orgName string) (string, error) {
	base, err := common.Slugify(orgName, "workspace")
	if err != nil {
		return "", fmt.Errorf("generating workspace slug: %w", err)
	}

	if _, err := workspaceStore.GetByOrgAndSlug(ctx, orgID, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking workspace slug availability: %w", err)
	}

	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := workspaceStore.GetByOrgAndSlug(ctx, orgID, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking workspace slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available workspace slug for %q", base)
}

// seedDefaultFeatures writes one row per module so an organization's flag set
// is explicit from the start. Lookups still fall back to the static defaults
// for rows that are missing.
func seedDefaultFeatures(ctx context.Context, featureStore store.OrgFeatureStore, orgID int64) error {
	for _, m := range model.AllModules {
		feature := &model.OrgFeature{
			ID:             id.New(),
			OrganizationID: orgID,
			Module:         m,
			Enabled:        m.DefaultEnabled(),
		}
		if err := featureStore.Upsert(ctx, feature); err != nil {
			return fmt.Errorf("seeding %s: %w", m, err)
		}
	}
	return nil
}
