package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vendaflow/pos-api/internal/api/dto"
	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/domain"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/service/queue"
	"github.com/vendaflow/pos-api/pkg/logger"
)

const (
	genericResetMessage = "Se o usuário existir, um email de recuperação será enviado."
	adminResetMessage   = "Link de recuperação será enviado para o email do administrador."
)

//go:generate mockery --name ResetNotifier --output ../mocks
type ResetNotifier interface {
	SendResetNotification(ctx context.Context, notification *queue.ResetNotification) error
}

// PasswordResetService issues recovery links looked up by display name.
// A missing account or an account without an email gets the same generic
// answer, so the endpoint cannot confirm whether an account exists. The
// recovery link targets the user's email, but the notification is sent to
// the tenant owner, who hands it to the user in person.
type PasswordResetService struct {
	repo     repository.Repository
	notifier ResetNotifier
	config   *config.Config
	logger   *logger.Logger
}

func NewPasswordResetService(repo repository.Repository, notifier ResetNotifier, cfg *config.Config, logger *logger.Logger) *PasswordResetService {
	return &PasswordResetService{
		repo:     repo,
		notifier: notifier,
		config:   cfg,
		logger:   logger,
	}
}

func (s *PasswordResetService) Request(ctx context.Context, name, redirectURL string) (dto.PasswordResetResponse, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return dto.PasswordResetResponse{}, ErrInvalidName
	}

	generic := dto.PasswordResetResponse{Message: genericResetMessage}

	profile, err := s.repo.Profile().GetByName(ctx, trimmed)
	if err != nil {
		s.logger.Errorf("password reset lookup failed: %v", err)
		return dto.PasswordResetResponse{}, ErrUserLookup
	}
	if profile == nil {
		return generic, nil
	}

	adminEmail, err := s.resolveAdminEmail(ctx, profile)
	if err != nil {
		return dto.PasswordResetResponse{}, err
	}

	// Only the no-email case is masked; by now the account is known to
	// exist, but the caller still gets the generic answer.
	if profile.Email == "" {
		return generic, nil
	}

	link, err := s.recoveryLink(profile.Email, redirectURL)
	if err != nil {
		s.logger.Errorf("failed to build recovery link: %v", err)
		return dto.PasswordResetResponse{}, ErrRecoveryLink
	}

	notification := &queue.ResetNotification{
		UserName:   profile.Name,
		UserEmail:  profile.Email,
		AdminEmail: adminEmail,
		ActionLink: link,
	}
	if err := s.notifier.SendResetNotification(ctx, notification); err != nil {
		s.logger.Errorf("failed to queue reset notification: %v", err)
	}

	return dto.PasswordResetResponse{
		Message:       adminResetMessage,
		AdminNotified: true,
		AdminEmail:    adminEmail,
		UserName:      profile.Name,
		ActionLink:    link,
	}, nil
}

// resolveAdminEmail walks profile → tenant → owner profile to find where
// the notification goes. Any break in that chain is a hard error; without
// an admin inbox the reset cannot be delivered at all.
func (s *PasswordResetService) resolveAdminEmail(ctx context.Context, profile *domain.Profile) (string, error) {
	if profile.TenantID == nil || *profile.TenantID == "" {
		s.logger.Errorf("profile %s has no tenant", profile.ID)
		return "", ErrTenantLookup
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, *profile.TenantID)
	if err != nil {
		s.logger.Errorf("tenant lookup failed for profile %s: %v", profile.ID, err)
		return "", ErrTenantLookup
	}
	if tenant == nil {
		return "", ErrTenantLookup
	}

	admin, err := s.repo.Profile().GetByID(ctx, tenant.OwnerID)
	if err != nil {
		s.logger.Errorf("owner lookup failed for tenant %s: %v", tenant.ID, err)
		return "", ErrAdminLookup
	}
	if admin == nil || admin.Email == "" {
		return "", ErrAdminLookup
	}

	return admin.Email, nil
}

// recoveryLink signs a short-lived token identifying the account and
// embeds it in the recovery URL the mailer will send out.
func (s *PasswordResetService) recoveryLink(email, redirectURL string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": "recovery",
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign recovery token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/recovery?token=%s", s.config.AppBaseURL, url.QueryEscape(token))
	if redirectURL != "" {
		link += "&redirect_to=" + url.QueryEscape(redirectURL)
	}
	return link, nil
}
