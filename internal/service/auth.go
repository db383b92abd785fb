package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrPendingVerification = fmt.Errorf("%w: account pending verification", domain.ErrForbidden)
)

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staffRepo: staffRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, username, password string) (*domain.StaffAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Self-registration always yields an unverified Staff account; only an
	// Admin can verify it or create another Admin.
	acct := &domain.StaffAccount{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.StaffRoleStaff,
		IsVerified:   false,
	}
	if err := s.staffRepo.Create(ctx, acct); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: username already taken", domain.ErrConflict)
		}
		return nil, err
	}
	logger.Info("staff account registered", "username", username)
	return acct, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.StaffAccount, error) {
	acct, err := s.staffRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		// Not-found collapses into the generic credential error so login
		// does not leak which usernames exist.
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if acct.Role == domain.StaffRoleStaff && !acct.IsVerified {
		return "", nil, ErrPendingVerification
	}

	token, err := s.tokens.GenerateAccessToken(acct)
	if err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

func (s *authService) BootstrapAdmin(ctx context.Context, username, password string) error {
	count, err := s.staffRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		return fmt.Errorf("%w: no admin account exists and no bootstrap password configured", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acct := &domain.StaffAccount{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.StaffRoleAdmin,
		IsVerified:   true,
	}
	if err := s.staffRepo.Create(ctx, acct); err != nil {
		// A concurrent instance may have won the race; the store's unique
		// constraint is the arbiter.
		if errors.Is(err, domain.ErrConflict) {
			return nil
		}
		return err
	}
	logger.Info("default admin account created", "username", username)
	return nil
}
