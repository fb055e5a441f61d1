package user

import (
	"context"

	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/auth"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	identity domain.IdentityProvider
	jwtSvc   auth.JWTService
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	identity domain.IdentityProvider,
	jwtSvc auth.JWTService,
	logger *logger.Logger,
) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		identity: identity,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

// SignIn exchanges an OAuth authorization code for an identity, upserts the
// user row keyed by the provider subject, and mints a session token.
func (uc *UserUseCase) SignIn(ctx context.Context, code string) (string, *domain.User, error) {
	if code == "" {
		return "", nil, domain.NewAppError(domain.ErrCodeCodeRequired, "Authorization code is required", 400, nil)
	}

	ident, err := uc.identity.Exchange(ctx, code)
	if err != nil {
		uc.logger.Warn("Identity exchange failed", zap.Error(err))
		return "", nil, domain.NewAppError(domain.ErrCodeIdentityServiceError, "Sign-in failed", 401, err)
	}

	u := &domain.User{
		ID:    ident.Subject,
		Name:  ident.Name,
		Email: ident.Email,
		Image: ident.Picture,
	}

	if err := uc.userRepo.Upsert(u); err != nil {
		uc.logger.Error("Failed to upsert user on sign-in",
			zap.String("user_id", ident.Subject),
			zap.Error(err))
		return "", nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to store user", 500, err)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID, u.Name)
	if err != nil {
		uc.logger.Error("Failed to generate session token",
			zap.String("user_id", u.ID),
			zap.Error(err))
		return "", nil, domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	// Re-read so the response carries the stored aggregate totals, not the
	// zero values of a fresh upsert payload.
	stored, err := uc.userRepo.GetByID(u.ID)
	if err != nil || stored == nil {
		stored = u
	}

	uc.logger.Info("User signed in", zap.String("user_id", u.ID))
	return token, stored, nil
}

// GetUserInfo retrieves a user's profile with its stored aggregates
func (uc *UserUseCase) GetUserInfo(userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("")
	}

	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to get user",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}
	if u == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}
	return u, nil
}
