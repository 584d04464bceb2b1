package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/repairshop/backend/internal/domain/identity"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/auth"
	"github.com/repairshop/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithCompany(ctx context.Context, company *identity.Company, user *identity.User) error {
	args := m.Called(ctx, company, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIDForCompany(ctx context.Context, companyID, id string) (*identity.User, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newAuthService(t *testing.T) (*AuthService, *MockUserRepository, *auth.JWTService, *auth.InMemoryTokenBlacklist) {
	t.Helper()
	repo := new(MockUserRepository)
	t.Cleanup(func() { repo.AssertExpectations(t) })
	jwtService := auth.NewJWTService(config.JWTConfig{Secret: "test-secret-that-is-long-enough-for-hs256"})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, jwtService, blacklist, zap.NewNop()), repo, jwtService, blacklist
}

func newStoredUser(t *testing.T, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("company-1", "owner@garage.example", password, "Ada", "Lovelace", identity.UserRoleAdmin)
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	req := RegisterRequest{
		Email:       "Owner@Garage.example",
		Password:    "s3cret-pass",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		CompanyName: "Lovelace Motors",
	}

	t.Run("creates company and admin and returns a token", func(t *testing.T) {
		svc, repo, jwtService, _ := newAuthService(t)
		repo.On("ExistsByEmail", mock.Anything, "owner@garage.example").Return(false, nil)

		var company *identity.Company
		var user *identity.User
		repo.On("CreateWithCompany", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				company = args.Get(1).(*identity.Company)
				user = args.Get(2).(*identity.User)
			}).
			Return(nil)

		resp, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		assert.Equal(t, "Lovelace Motors", company.Name)
		assert.Equal(t, company.ID, user.CompanyID)
		assert.Equal(t, identity.UserRoleAdmin, user.Role)
		assert.NotEqual(t, req.Password, user.PasswordHash)
		assert.True(t, user.VerifyPassword(req.Password))

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, company.ID, claims.CompanyID)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, repo, _, _ := newAuthService(t)
		repo.On("ExistsByEmail", mock.Anything, "owner@garage.example").Return(true, nil)

		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Equal(t, "User already exists", err.Error())
	})

	t.Run("lost race on the unique index is reported as duplicate", func(t *testing.T) {
		svc, repo, _, _ := newAuthService(t)
		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("CreateWithCompany", mock.Anything, mock.Anything, mock.Anything).
			Return(shared.NewDomainError(shared.CodeAlreadyExists, "User already exists"))

		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("short password is a validation error", func(t *testing.T) {
		svc, repo, _, _ := newAuthService(t)
		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)

		short := req
		short.Password = "short"
		_, err := svc.Register(context.Background(), short)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	user := newStoredUser(t, "correct-horse")

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc, repo, jwtService, _ := newAuthService(t)
		repo.On("FindByEmail", mock.Anything, "owner@garage.example").Return(user, nil)

		resp, err := svc.Login(context.Background(), LoginRequest{Email: " OWNER@garage.example ", Password: "correct-horse"})
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.WithinDuration(t, time.Now().Add(auth.DefaultAccessTokenExpiration), resp.ExpiresAt, time.Minute)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		svc, repo, _, _ := newAuthService(t)
		repo.On("FindByEmail", mock.Anything, "owner@garage.example").Return(user, nil)
		repo.On("FindByEmail", mock.Anything, "nobody@garage.example").
			Return(nil, shared.NewNotFoundError("User not found"))

		_, wrongPassword := svc.Login(context.Background(), LoginRequest{Email: "owner@garage.example", Password: "nope-nope"})
		_, unknownEmail := svc.Login(context.Background(), LoginRequest{Email: "nobody@garage.example", Password: "whatever"})

		assert.ErrorIs(t, wrongPassword, shared.ErrUnauthorized)
		assert.ErrorIs(t, unknownEmail, shared.ErrUnauthorized)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		assert.Equal(t, "Invalid credentials", wrongPassword.Error())
	})

	t.Run("store failures are not masked as bad credentials", func(t *testing.T) {
		svc, repo, _, _ := newAuthService(t)
		boom := errors.New("db down")
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, boom)

		_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.example", Password: "whatever"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, _, blacklist := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, LogoutInput{TokenID: "jti-1", TTL: time.Hour}))

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, svc.Logout(ctx, LogoutInput{}))
}

func TestAuthService_Me(t *testing.T) {
	svc, repo, _, _ := newAuthService(t)
	user := newStoredUser(t, "correct-horse")
	repo.On("FindByIDForCompany", mock.Anything, "company-1", user.ID).Return(user, nil)

	resp, err := svc.Me(context.Background(), shared.TenantContext{CompanyID: "company-1", UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, "owner@garage.example", resp.Email)
	assert.Equal(t, "ADMIN", resp.Role)

	_, err = svc.Me(context.Background(), shared.TenantContext{})
	assert.ErrorIs(t, err, shared.ErrTenantRequired)
}
