package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daytrackapp/daytrack-backend/internal/apperrors"
	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/dto"
	"github.com/daytrackapp/daytrack-backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, err
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID)
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// AuthenticateUser verifies username/password credentials. Every failure mode
// maps to ErrUnauthorized so callers can't probe which usernames exist.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	// Users provisioned via Google sign-in have no password.
	if user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// UpdateUser applies profile changes.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, err
	}

	return user, nil
}

// SetRefreshToken stores the hash of a newly issued refresh token.
func (s *userService) SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiresAt, time.Now())
}

// ClearRefreshToken invalidates any stored refresh token (logout).
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now())
}

// FindOrCreateGoogleUser provisions a user from a verified Google identity,
// reusing an existing user with the same email.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Username: email, // Email is unique, so it doubles as the username.
		Email:    email,
		Name:     name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision google user", "email", email)
		return nil, err
	}

	s.LogInfo(ctx, "User provisioned via google sign-in", "user_id", newUser.UserID)
	return &newUser, nil
}
