package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/pkg/logger"
)

// Identity is what the auth token tells us about the caller. It is the
// only input to provisioning; everything else is derived or defaulted.
type Identity struct {
	ID          string
	Email       string
	Name        string
	CompanyName string
}

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
)

// BootstrapService makes sure a signed-in user has a profile, a tenant and
// a role. It is idempotent: the login flow calls it on every session start
// and existing rows are left untouched.
type BootstrapService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewBootstrapService(repo repository.Repository, logger *logger.Logger) *BootstrapService {
	return &BootstrapService{
		repo:   repo,
		logger: logger,
	}
}

// EnsureUser provisions the caller's profile, tenant and role as needed and
// returns the tenant ID the user ends up attached to.
func (s *BootstrapService) EnsureUser(ctx context.Context, identity Identity) (string, error) {
	if identity.ID == "" {
		return "", ErrUnauthenticated
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}
	if name == "" {
		name = "Usuário"
	}

	profile, err := s.repo.Profile().GetByID(ctx, identity.ID)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	if profile == nil {
		profile = &domain.Profile{
			ID:    identity.ID,
			Name:  name,
			Email: identity.Email,
		}
		if err := s.repo.Profile().Create(ctx, profile); err != nil {
			return "", fmt.Errorf("failed to create profile: %w", err)
		}
	}

	tenantID, err := s.ensureTenant(ctx, identity, profile)
	if err != nil {
		return "", err
	}

	if err := s.ensureRole(ctx, identity.ID, tenantID); err != nil {
		return "", err
	}

	// Keep the profile in sync with the auth identity. This is best effort;
	// a stale name never blocks login.
	if err := s.repo.Profile().UpdateIdentity(ctx, identity.ID, identity.Email, identity.Name); err != nil {
		s.logger.Warnf("failed to resync profile identity for %s: %v", identity.ID, err)
	}

	return tenantID, nil
}

// ensureTenant attaches the profile to a tenant: the one it already has,
// one the user owns from a previous session, or a brand new one.
func (s *BootstrapService) ensureTenant(ctx context.Context, identity Identity, profile *domain.Profile) (string, error) {
	if profile.TenantID != nil && *profile.TenantID != "" {
		return *profile.TenantID, nil
	}

	owned, err := s.repo.Tenant().GetByOwnerID(ctx, identity.ID)
	if err != nil {
		return "", fmt.Errorf("failed to look up owned tenant: %w", err)
	}

	if owned == nil {
		companyName := identity.CompanyName
		if companyName == "" {
			companyName = "Minha Empresa"
		}

		owned, err = s.repo.Tenant().Create(ctx, &domain.Tenant{
			Name:    companyName,
			Slug:    tenantSlug(companyName, identity.ID),
			OwnerID: identity.ID,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create tenant: %w", err)
		}
	}

	if err := s.repo.Profile().UpdateTenantID(ctx, identity.ID, owned.ID); err != nil {
		return "", fmt.Errorf("failed to attach profile to tenant: %w", err)
	}

	return owned.ID, nil
}

// ensureRole gives the user a role row: admin when they own the tenant,
// seller when they were invited into someone else's.
func (s *BootstrapService) ensureRole(ctx context.Context, userID, tenantID string) error {
	role, err := s.repo.Role().GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load role: %w", err)
	}

	if role == nil {
		tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("failed to load tenant: %w", err)
		}
		if tenant == nil {
			return ErrTenantNotFound
		}

		assigned := domain.RoleSeller
		if tenant.OwnerID == userID {
			assigned = domain.RoleAdmin
		}

		return s.repo.Role().Create(ctx, &domain.UserRole{
			UserID:   userID,
			Role:     assigned,
			TenantID: &tenantID,
		})
	}

	if role.TenantID == nil || *role.TenantID == "" {
		if err := s.repo.Role().UpdateTenantID(ctx, userID, tenantID); err != nil {
			return fmt.Errorf("failed to attach role to tenant: %w", err)
		}
	}

	return nil
}

// tenantSlug derives a URL-safe slug from the company name, suffixed with
// a prefix of the owner's user ID so two companies with the same name do
// not collide.
func tenantSlug(companyName, userID string) string {
	slug := strings.ToLower(companyName)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")

	suffix := userID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}

	return slug + "-" + suffix
}
