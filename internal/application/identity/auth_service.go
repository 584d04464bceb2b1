package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/repairshop/backend/internal/domain/identity"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

var (
	errInvalidCredentials = shared.NewDomainError(shared.CodeUnauthorized, "Invalid credentials")
	errUserExists         = shared.NewValidationError("User already exists")
)

// AuthService handles registration, sign-in and sign-out
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Register creates a company and its ADMIN user in one transaction and signs the user in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		s.logger.Info("Registration rejected, email in use", zap.String("email", email))
		return nil, errUserExists
	}

	company, err := identity.NewCompany(req.CompanyName, email)
	if err != nil {
		return nil, err
	}
	user, err := identity.NewUser(company.ID, email, req.Password, req.FirstName, req.LastName, identity.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateWithCompany(ctx, company, user); err != nil {
		// a concurrent registration may win the unique index
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, errUserExists
		}
		return nil, err
	}

	s.logger.Info("Company registered",
		zap.String("company_id", company.ID),
		zap.String("user_id", user.ID))

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login failed, unknown email", zap.String("email", email))
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Login failed, wrong password", zap.String("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("company_id", user.CompanyID))
	return s.issue(user)
}

// Logout revokes the token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if s.blacklist == nil || input.TokenID == "" {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenID, input.TTL); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Me returns the profile of the signed-in user
func (s *AuthService) Me(ctx context.Context, tc shared.TenantContext) (*UserResponse, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByIDForCompany(ctx, tc.CompanyID, tc.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issue(user *identity.User) (*TokenResponse, error) {
	token, err := s.jwtService.GenerateToken(user.CompanyID, user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token.Token, ExpiresAt: token.ExpiresAt}, nil
}
