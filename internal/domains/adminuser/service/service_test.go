package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jumpy/config"
	"jumpy/infras/jwt"
	"jumpy/infras/otel/mocks"
	adminuserMocks "jumpy/internal/domains/adminuser/mocks"
	"jumpy/internal/domains/adminuser/model"
	"jumpy/internal/domains/adminuser/model/dto"
	"jumpy/internal/domains/adminuser/service"
	"jumpy/shared/constant"
	"jumpy/shared/failure"
	gDto "jumpy/shared/dto"
	"jumpy/shared/password"
)

func newService(t *testing.T) (service.Auth, *adminuserMocks.MockAdminUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := adminuserMocks.NewMockAdminUser(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "jumpy-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 10080

	svc := service.New(mockRepo, cfg, jwt.New(cfg), mocks.NewOtel())

	return svc, mockRepo
}

func sampleAdmin(t *testing.T, plainPassword string, active bool) model.AdminUser {
	t.Helper()

	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)

	return model.AdminUser{
		ID:           "admin-1",
		Email:        "owner@example.com",
		PasswordHash: hash,
		Name:         "Owner",
		Role:         constant.RoleAdmin,
		Active:       active,
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(t *testing.T, repo *adminuserMocks.MockAdminUser)
		wantErr   bool
	}{
		{
			name: "valid credentials return a token pair",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "correct horse"},
			setupMock: func(t *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleAdmin(t, "correct horse", true), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldLastLogin)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "wrong"},
			setupMock: func(t *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleAdmin(t, "correct horse", true), nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"},
			setupMock: func(_ *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AdminUser{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "correct horse"},
			setupMock: func(t *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleAdmin(t, "correct horse", false), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(t, repo)

			res, err := svc.Login(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
				assert.Equal(t, "invalid email or password", err.Error())
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, res.Tokens.AccessToken)
				assert.NotEmpty(t, res.Tokens.RefreshToken)
				assert.Equal(t, "owner@example.com", res.User.Email)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc, repo := newService(t)

	admin := sampleAdmin(t, "correct horse", true)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(admin, nil)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: admin.Email, Password: "correct horse"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(t *testing.T, repo *adminuserMocks.MockAdminUser)
		wantErr   bool
	}{
		{
			name: "correct current password rehashes",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct horse", NewPassword: "battery staple"},
			setupMock: func(t *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleAdmin(t, "correct horse", true), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hash, _ := fields["password_hash"].(string)
						assert.NoError(t, password.Verify("battery staple", hash))

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "battery staple"},
			setupMock: func(t *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleAdmin(t, "correct horse", true), nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct horse", NewPassword: "battery staple"},
			setupMock: func(_ *testing.T, repo *adminuserMocks.MockAdminUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.AdminUser{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(t, repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

			err := svc.ChangePassword(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
