package identity

import (
	"context"
	"strings"

	"github.com/compras/backend/internal/domain/identity"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

var errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService handles authentication and user management
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user and issues a token. Failed lookups and
// bad passwords return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errInvalidCredentials
	}
	if !user.Active || !user.CheckPassword(req.Password) {
		return nil, errInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      ToUserResponse(user),
	}, nil
}

// CreateUser registers a new user
func (s *AuthService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Username, req.DisplayName, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangePassword replaces a user's password after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return errInvalidCredentials
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// SetActive enables or disables a user account
func (s *AuthService) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ListUsers returns users matching the filter
func (s *AuthService) ListUsers(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}
