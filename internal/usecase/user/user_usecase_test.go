package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweepscout/tracker/internal/config"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/domain/mocks"
	"github.com/sweepscout/tracker/internal/infrastructure/auth"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

func newTestUseCase(ctrl *gomock.Controller) (*UserUseCase, *mocks.MockUserRepository, *mocks.MockIdentityProvider, auth.JWTService) {
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockIdentity := mocks.NewMockIdentityProvider(ctrl)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	uc := &UserUseCase{
		userRepo: mockUserRepo,
		identity: mockIdentity,
		jwtSvc:   jwtSvc,
		logger:   logger.NewLogger("test", "debug"),
	}
	return uc, mockUserRepo, mockIdentity, jwtSvc
}

func TestSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, mockIdentity, jwtSvc := newTestUseCase(ctrl)

	mockIdentity.EXPECT().Exchange(gomock.Any(), "auth-code").Return(&domain.Identity{
		Subject: "google-sub-1",
		Name:    "Hank",
		Email:   "hank@example.com",
		Picture: "https://example.com/hank.png",
	}, nil)
	mockUserRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	mockUserRepo.EXPECT().GetByID("google-sub-1").Return(&domain.User{
		ID:           "google-sub-1",
		Name:         "Hank",
		TotalBalance: 432.10,
	}, nil)

	token, u, err := uc.SignIn(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", u.ID)
	// The response carries the stored aggregates, not a fresh zero row.
	assert.Equal(t, 432.10, u.TotalBalance)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.UserID)
	assert.Equal(t, "Hank", claims.Name)
}

func TestSignInRequiresCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestUseCase(ctrl)

	_, _, err := uc.SignIn(context.Background(), "")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeCodeRequired, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestSignInExchangeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockIdentity, _ := newTestUseCase(ctrl)

	mockIdentity.EXPECT().Exchange(gomock.Any(), "bad-code").Return(nil, errors.New("invalid_grant"))

	_, _, err := uc.SignIn(context.Background(), "bad-code")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeIdentityServiceError, appErr.Code)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestSignInFallsBackWhenRereadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, mockIdentity, _ := newTestUseCase(ctrl)

	mockIdentity.EXPECT().Exchange(gomock.Any(), "auth-code").Return(&domain.Identity{Subject: "sub", Name: "N"}, nil)
	mockUserRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	mockUserRepo.EXPECT().GetByID("sub").Return(nil, errors.New("read failed"))

	token, u, err := uc.SignIn(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "sub", u.ID)
}

func TestGetUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, _, _ := newTestUseCase(ctrl)

	mockUserRepo.EXPECT().GetByID("u1").Return(&domain.User{ID: "u1", Name: "Hank"}, nil)

	u, err := uc.GetUserInfo("u1")

	require.NoError(t, err)
	assert.Equal(t, "Hank", u.Name)
}

func TestGetUserInfoNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, _, _ := newTestUseCase(ctrl)

	mockUserRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := uc.GetUserInfo("ghost")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestGetUserInfoMissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newTestUseCase(ctrl)

	_, err := uc.GetUserInfo("")

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPStatus)
}
