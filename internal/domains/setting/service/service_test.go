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
	"jumpy/infras/otel/mocks"
	settingMocks "jumpy/internal/domains/setting/mocks"
	"jumpy/internal/domains/setting/model"
	"jumpy/internal/domains/setting/model/dto"
	"jumpy/internal/domains/setting/service"
	cacheMocks "jumpy/shared/cache/mocks"
	"jumpy/shared/constant"
)

func newService(t *testing.T) (service.Setting, *settingMocks.MockSetting, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestSettingService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{Key: "business_phone", Value: "555-0100"},
			{Key: "delivery_radius_miles", Value: "25"},
		}, nil)

	cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "555-0100", res.Settings["business_phone"])
	assert.Equal(t, "25", res.Settings["delivery_radius_miles"])
}

func TestSettingService_Save(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *settingMocks.MockSetting, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "whole batch goes to the repository with audit stamps",
			setupMock: func(repo *settingMocks.MockSetting, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					UpsertBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, settings []model.Setting) error {
						assert.Len(t, settings, 2)

						for _, s := range settings {
							assert.Equal(t, "test-user-id", s.ModifiedBy)
							assert.False(t, s.ModifiedAt.IsZero())
						}

						return nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error surfaces and nothing is cached",
			setupMock: func(repo *settingMocks.MockSetting, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					UpsertBatch(gomock.Any(), gomock.Any()).
					Return(errors.New("transaction aborted"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			req := dto.SaveSettingsRequest{
				Settings: map[string]string{
					"business_phone":        "555-0100",
					"delivery_radius_miles": "30",
				},
			}

			err := svc.Save(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
